package dataset

import "slices"

// Record is one scored tweet. Position is the zero-based row index in the
// source file and is fixed for the life of the Store that holds it.
type Record struct {
	Position int
	Text     string
	HasText  bool // false when the source cell was empty or NA
	Score    float64
}

// Store is the ordered, read-only record set of one dataset. It is safe to
// share between sessions.
type Store struct {
	source  string
	records []Record
}

// NewStore builds a Store from records in the given order, numbering their
// positions from zero.
func NewStore(source string, records []Record) *Store {
	rs := make([]Record, len(records))
	for i, r := range records {
		r.Position = i
		rs[i] = r
	}
	return &Store{source: source, records: rs}
}

// Source names where the records came from.
func (s *Store) Source() string { return s.source }

func (s *Store) Len() int { return len(s.records) }

// At returns the record at original position i.
func (s *Store) At(i int) Record { return s.records[i] }

// Records returns a copy of every record in original order.
func (s *Store) Records() []Record { return slices.Clone(s.records) }
