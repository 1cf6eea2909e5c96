package sentiment

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
)

// Subset names one of the four groupings of a filtered view, in tab order.
type Subset int

const (
	SubsetNegative Subset = iota
	SubsetPositive
	SubsetNeutral
	SubsetAll
)

// Subsets lists every subset in tab order.
var Subsets = [...]Subset{SubsetNegative, SubsetPositive, SubsetNeutral, SubsetAll}

func (s Subset) String() string {
	switch s {
	case SubsetNegative:
		return "Negative"
	case SubsetPositive:
		return "Positive"
	case SubsetNeutral:
		return "Neutral"
	case SubsetAll:
		return "All"
	}
	return fmt.Sprintf("Subset(%d)", int(s))
}

// ParseSubset accepts a subset name or its three-letter short form.
func ParseSubset(s string) (Subset, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "neg", "negative":
		return SubsetNegative, nil
	case "pos", "positive":
		return SubsetPositive, nil
	case "net", "neu", "neutral":
		return SubsetNeutral, nil
	case "", "all":
		return SubsetAll, nil
	}
	return SubsetAll, fmt.Errorf("unknown subset %q (want all, negative, positive or neutral)", s)
}

// Row is a record with its derived label.
type Row struct {
	dataset.Record
	Label Label
}

// View is a filtered view split into its four subsets.
//
// All keeps filtered order. Negative is sorted most negative first and
// Positive most positive first; ties keep filtered order. Neutral keeps
// filtered order.
type View struct {
	Negative []Row
	Positive []Row
	Neutral  []Row
	All      []Row
}

// Rows returns the rows of one subset.
func (v View) Rows(s Subset) []Row {
	switch s {
	case SubsetNegative:
		return v.Negative
	case SubsetPositive:
		return v.Positive
	case SubsetNeutral:
		return v.Neutral
	default:
		return v.All
	}
}

// BuildView labels every record of a filtered view and partitions it.
func BuildView(filtered []dataset.Record) View {
	v := View{All: make([]Row, 0, len(filtered))}
	for _, r := range filtered {
		row := Row{Record: r, Label: Categorize(r.Score)}
		v.All = append(v.All, row)
		switch row.Label {
		case Negative:
			v.Negative = append(v.Negative, row)
		case Positive:
			v.Positive = append(v.Positive, row)
		default:
			v.Neutral = append(v.Neutral, row)
		}
	}

	slices.SortStableFunc(v.Negative, func(a, b Row) int { return cmp.Compare(a.Score, b.Score) })
	slices.SortStableFunc(v.Positive, func(a, b Row) int { return cmp.Compare(b.Score, a.Score) })
	return v
}
