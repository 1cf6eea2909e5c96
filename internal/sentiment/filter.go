package sentiment

import "github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"

// Filter keeps the records that contain include and do not contain exclude,
// preserving their order. An empty include keeps everything; an empty
// exclude removes nothing.
func Filter(records []dataset.Record, include, exclude string) []dataset.Record {
	var inc, exc *Matcher
	if include != "" {
		inc = NewMatcher(include)
	}
	if exclude != "" {
		exc = NewMatcher(exclude)
	}

	out := make([]dataset.Record, 0, len(records))
	for _, r := range records {
		if inc != nil && !inc.MatchRecord(r) {
			continue
		}
		if exc != nil && exc.MatchRecord(r) {
			continue
		}
		out = append(out, r)
	}
	return out
}
