package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/sentiment"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/session"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/utils"
)

var (
	statsFlags   keywordFlags
	statsNoColor bool
)

// statsCmd prints a per-label breakdown of the filtered data.
var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Sentiment breakdown",
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := statsFlags.query(cmd)
		if err != nil {
			return err
		}
		store, err := loadStore()
		if err != nil {
			return err
		}
		st := session.NewState()
		res := session.Evaluate(store.Records(), q, &st)
		s := res.Stats

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Color = !statsNoColor
		styles := utils.NewRenderer(renderConfig).Styles()

		out := cmd.OutOrStdout()
		title := "All data"
		if res.FilterActive {
			title = "Filtered" + keywordArgs(res.Query)
		}
		fmt.Fprintln(out, styles.Title.Render(title))
		for _, l := range []sentiment.Label{sentiment.Positive, sentiment.Negative, sentiment.Neutral} {
			fmt.Fprintf(out, "  %s %6d  %5.1f%%\n",
				styles.LabelStyle(l.String()).Render(fmt.Sprintf("%-10s", l)), s.Count(l), s.Percent(l))
		}
		fmt.Fprintf(out, "  %-10s %6d\n", "TOTAL", s.Total)
		if s.HasMean() {
			fmt.Fprintf(out, "  %-10s %s (%s)\n", "MEAN",
				utils.FormatScore(sentiment.RoundScore(s.Mean)), s.MeanLabel())
		}
		return nil
	},
}

func init() {
	statsFlags.register(statsCmd)
	statsCmd.Flags().BoolVar(&statsNoColor, "no-color", false, "Disable colored output")
}
