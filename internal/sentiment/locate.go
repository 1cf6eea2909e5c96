package sentiment

import "github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"

// Location is where a keyword first occurs in a filtered view. Rank is
// 1-based in filtered order, which is the order of the All subset, and Page
// is the All-subset page holding that rank.
type Location struct {
	Found bool
	Rank  int
	Page  int
}

// Locate scans the filtered view in order for the first record containing
// keyword. It never touches pagination state; writing Page into a cursor is
// the caller's decision.
func Locate(filtered []dataset.Record, keyword string, pageSize int) Location {
	if keyword == "" {
		return Location{}
	}
	if pageSize < 1 {
		pageSize = 1
	}
	m := NewMatcher(keyword)
	for i, r := range filtered {
		if m.MatchRecord(r) {
			rank := i + 1
			return Location{Found: true, Rank: rank, Page: (rank + pageSize - 1) / pageSize}
		}
	}
	return Location{}
}
