package session

import (
	"slices"
	"strings"
)

// PageSizes are the page sizes a session offers, smallest first.
var PageSizes = []int{10, 20, 50, 100}

// DefaultPageSize is used when a query names no valid page size.
const DefaultPageSize = 10

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool { return slices.Contains(PageSizes, n) }

// NextPageSize returns the page size after n in PageSizes, wrapping around.
func NextPageSize(n int) int {
	i := slices.Index(PageSizes, n)
	return PageSizes[(i+1)%len(PageSizes)]
}

// Query is everything a user can type or choose for one evaluation.
type Query struct {
	Include  string
	Exclude  string
	PageSize int
	Locate   string
}

// Normalize trims keywords and falls back to DefaultPageSize.
func (q Query) Normalize() Query {
	q.Include = strings.TrimSpace(q.Include)
	q.Exclude = strings.TrimSpace(q.Exclude)
	q.Locate = strings.TrimSpace(q.Locate)
	if !ValidPageSize(q.PageSize) {
		q.PageSize = DefaultPageSize
	}
	return q
}

// reshapes reports whether moving from q to next changes the filtered view
// or its paging, which invalidates every stored cursor.
func (q Query) reshapes(next Query) bool {
	return q.Include != next.Include || q.Exclude != next.Exclude || q.PageSize != next.PageSize
}
