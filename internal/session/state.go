package session

import "github.com/akbaralfaidah/sentimen-splitbill/internal/sentiment"

// State holds the remembered page of every subset. Pages are 1-based.
type State struct {
	Negative int
	Positive int
	Neutral  int
	All      int
}

// NewState returns a state with every subset on page 1.
func NewState() State {
	return State{Negative: 1, Positive: 1, Neutral: 1, All: 1}
}

// Reset puts every subset back on page 1.
func (s *State) Reset() { *s = NewState() }

// Cursor returns the page slot for sub.
func (s *State) Cursor(sub sentiment.Subset) *int {
	switch sub {
	case sentiment.SubsetNegative:
		return &s.Negative
	case sentiment.SubsetPositive:
		return &s.Positive
	case sentiment.SubsetNeutral:
		return &s.Neutral
	default:
		return &s.All
	}
}
