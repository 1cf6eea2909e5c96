package sentiment

import "math"

// Label is the sentiment category derived from a polarity score.
type Label int

const (
	Neutral Label = iota
	Positive
	Negative
)

func (l Label) String() string {
	switch l {
	case Positive:
		return "Positive"
	case Negative:
		return "Negative"
	default:
		return "Neutral"
	}
}

// Categorize maps a score to its label: above zero is Positive, below zero
// Negative, zero Neutral.
func Categorize(score float64) Label {
	switch {
	case score > 0:
		return Positive
	case score < 0:
		return Negative
	default:
		return Neutral
	}
}

// RoundScore rounds a score to 4 decimal places for display, halves to even.
func RoundScore(score float64) float64 {
	return math.RoundToEven(score*1e4) / 1e4
}
