package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/session"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/utils"
)

var (
	locateFlags   keywordFlags
	locateNoColor bool
)

// locateCmd reports where a word first appears without filtering by it.
var locateCmd = &cobra.Command{
	Use:   "locate <word>",
	Short: "Find the row and page where a word first appears",
	Long: `Rows are counted in file order over the filtered data, so the page
refers to "sentimen show --subset all".

Examples:
	sentimen locate bayar
	sentimen locate bayar -k "split bill" --limit 20`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		q, err := locateFlags.query(cmd)
		if err != nil {
			return err
		}
		q.Locate = strings.Join(args, " ")

		store, err := loadStore()
		if err != nil {
			return err
		}
		st := session.NewState()
		res := session.Evaluate(store.Records(), q, &st)

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Color = !locateNoColor
		styles := utils.NewRenderer(renderConfig).Styles()

		out := cmd.OutOrStdout()
		if !res.Location.Found {
			fmt.Fprintln(out, styles.Error.Render(
				fmt.Sprintf("%q was not found in the data currently shown", res.Query.Locate)))
			return nil
		}
		loc := res.Location
		fmt.Fprintln(out, styles.Success.Render(
			fmt.Sprintf("Found %q first at row %d, page %d", res.Query.Locate, loc.Rank, loc.Page)))
		fmt.Fprintln(out, styles.Meta.Render(fmt.Sprintf("  sentimen show --subset all --page %d --limit %d%s",
			loc.Page, res.Query.PageSize, keywordArgs(res.Query))))
		return nil
	},
}

// keywordArgs rebuilds the filter flags of q for a follow-up command.
func keywordArgs(q session.Query) string {
	var b strings.Builder
	if q.Include != "" {
		fmt.Fprintf(&b, " -k %q", q.Include)
	}
	if q.Exclude != "" {
		fmt.Fprintf(&b, " -e %q", q.Exclude)
	}
	return b.String()
}

func init() {
	locateFlags.register(locateCmd)
	locateCmd.Flags().BoolVar(&locateNoColor, "no-color", false, "Disable colored output")
}
