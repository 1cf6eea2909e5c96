package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/sentiment"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/session"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/utils"
)

var (
	showFlags   keywordFlags
	showSubset  string
	showPage    string
	showFormat  string
	showNoColor bool
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print one page of a sentiment subset",
	Long: `Examples:
	sentimen show                                 # first page of negative tweets
	sentimen show --subset all --page 3           # third page in file order
	sentimen show -k "split bill" -e KUA -s pos   # positive tweets about split bill, without KUA
	sentimen show --page last --limit 50          # last page, 50 rows
	sentimen show --format csv > negative.csv     # export the current page`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := sentiment.ParseSubset(showSubset)
		if err != nil {
			return err
		}
		format, err := utils.ParseFormat(showFormat)
		if err != nil {
			return err
		}
		q, err := showFlags.query(cmd)
		if err != nil {
			return err
		}

		store, err := loadStore()
		if err != nil {
			return err
		}

		sess := session.New(store, logger)
		res := sess.Apply(q)
		page, err := utils.ParsePage(showPage, res.Page(sub).TotalPages)
		if err != nil {
			return err
		}
		res = sess.Jump(sub, page)

		renderConfig := utils.DefaultRenderConfig()
		renderConfig.Format = format
		if showNoColor {
			renderConfig.Color = false
		}
		output, err := utils.NewRenderer(renderConfig).RenderPageList(pageList(res, sub))
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	},
}

// pageList converts a subset page into the renderer's list shape.
func pageList(res session.Result, sub sentiment.Subset) *utils.PageList {
	p := res.Page(sub)
	list := &utils.PageList{
		Subset:     sub.String(),
		Rows:       make([]utils.Row, 0, len(p.Rows)),
		Total:      p.TotalRows,
		Page:       p.Current,
		PerPage:    res.Query.PageSize,
		TotalPages: p.TotalPages,
	}
	if res.FilterActive {
		list.Filters = map[string]string{
			"include": res.Query.Include,
			"exclude": res.Query.Exclude,
		}
	}
	for _, r := range p.Rows {
		list.Rows = append(list.Rows, utils.Row{
			Rank:     r.Rank,
			Position: r.Position,
			Text:     r.Text,
			Missing:  !r.HasText,
			Label:    r.Label.String(),
			Score:    r.Score,
		})
	}
	return list
}

func init() {
	showFlags.register(showCmd)
	showCmd.Flags().StringVarP(&showSubset, "subset", "s", "negative", "Subset: negative, positive, neutral, all")
	showCmd.Flags().StringVarP(&showPage, "page", "p", "1", "Page number, first or last")
	showCmd.Flags().StringVar(&showFormat, "format", "default", "Output format: default, table, json, csv, compact, quiet")
	showCmd.Flags().BoolVar(&showNoColor, "no-color", false, "Disable colored output")
}
