package sentiment

import "github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"

// Stats summarizes a filtered view.
type Stats struct {
	Total    int
	Positive int
	Negative int
	Neutral  int
	Mean     float64 // zero when Total is zero
}

// Summarize counts labels and averages scores over a filtered view.
func Summarize(filtered []dataset.Record) Stats {
	var s Stats
	var sum float64
	for _, r := range filtered {
		s.Total++
		sum += r.Score
		switch Categorize(r.Score) {
		case Positive:
			s.Positive++
		case Negative:
			s.Negative++
		default:
			s.Neutral++
		}
	}
	if s.Total > 0 {
		s.Mean = sum / float64(s.Total)
	}
	return s
}

func (s Stats) Count(l Label) int {
	switch l {
	case Positive:
		return s.Positive
	case Negative:
		return s.Negative
	default:
		return s.Neutral
	}
}

// Percent is the share of l in the view, 0 for an empty view.
func (s Stats) Percent(l Label) float64 {
	if s.Total == 0 {
		return 0
	}
	return float64(s.Count(l)) * 100 / float64(s.Total)
}

// HasMean reports whether Mean is meaningful.
func (s Stats) HasMean() bool { return s.Total > 0 }

// MeanLabel labels the mean score with the same rule as a single score.
func (s Stats) MeanLabel() Label { return Categorize(s.Mean) }
