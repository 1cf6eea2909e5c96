package session

import (
	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/sentiment"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/utils"
)

// Row is one visible line of a page.
type Row struct {
	Rank     int
	Position int
	Text     string
	HasText  bool
	Label    sentiment.Label
	Score    float64 // rounded to 4 decimal places
}

// Page is the visible window of one subset.
type Page struct {
	Subset     sentiment.Subset
	Rows       []Row
	Empty      bool
	Current    int
	TotalPages int
	TotalRows  int
	CanPrev    bool
	CanNext    bool
}

// Result is the outcome of one evaluation.
type Result struct {
	Query        Query
	FilterActive bool
	Empty        bool // no record passed the filter
	Stats        sentiment.Stats
	Pages        [len(sentiment.Subsets)]Page
	Locating     bool // a locator keyword was given
	Location     sentiment.Location
}

// Page returns the page of sub.
func (r Result) Page(sub sentiment.Subset) Page { return r.Pages[sub] }

// Evaluate runs the whole pipeline for q over records. Cursors in st that
// point past the last page of their subset are reset to 1.
func Evaluate(records []dataset.Record, q Query, st *State) Result {
	q = q.Normalize()
	filtered := sentiment.Filter(records, q.Include, q.Exclude)
	return evaluate(filtered, sentiment.BuildView(filtered), q, st)
}

func evaluate(filtered []dataset.Record, view sentiment.View, q Query, st *State) Result {
	res := Result{
		Query:        q,
		FilterActive: q.Include != "" || q.Exclude != "",
		Empty:        len(filtered) == 0,
		Stats:        sentiment.Summarize(filtered),
	}
	for _, sub := range sentiment.Subsets {
		res.Pages[sub] = paginate(sub, view.Rows(sub), q.PageSize, st.Cursor(sub))
	}
	if q.Locate != "" {
		res.Locating = true
		res.Location = sentiment.Locate(filtered, q.Locate, q.PageSize)
	}
	return res
}

func paginate(sub sentiment.Subset, rows []sentiment.Row, pageSize int, cursor *int) Page {
	w, ok := utils.Paginate(rows, pageSize, cursor)
	if !ok {
		return Page{Subset: sub, Empty: true}
	}

	p := Page{
		Subset:     sub,
		Rows:       make([]Row, len(w.Items)),
		Current:    w.Current,
		TotalPages: w.TotalPages,
		TotalRows:  w.Total,
		CanPrev:    w.HasPrev(),
		CanNext:    w.HasNext(),
	}
	for i, r := range w.Items {
		p.Rows[i] = Row{
			Rank:     w.Rank(i),
			Position: r.Position,
			Text:     r.Text,
			HasText:  r.HasText,
			Label:    r.Label,
			Score:    sentiment.RoundScore(r.Score),
		}
	}
	return p
}
