package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

// DefaultTextColumn is the header of the tweet text column.
const DefaultTextColumn = "text"

// DefaultScoreColumns are tried in order when no score column is configured.
var DefaultScoreColumns = []string{"polarity_score", "skor_polaritas"}

// Columns names the two required columns. An empty Score means auto-detect
// from DefaultScoreColumns.
type Columns struct {
	Text  string
	Score string
}

// naValues are the cell contents pandas reads as missing by default.
var naValues = map[string]struct{}{
	"": {}, "#N/A": {}, "#N/A N/A": {}, "#NA": {}, "-1.#IND": {}, "-1.#QNAN": {},
	"-NaN": {}, "-nan": {}, "1.#IND": {}, "1.#QNAN": {}, "<NA>": {}, "N/A": {},
	"NA": {}, "NULL": {}, "NaN": {}, "None": {}, "n/a": {}, "nan": {}, "null": {},
}

func isNA(cell string) bool {
	_, ok := naValues[cell]
	return ok
}

// LoadCSV reads a scored dataset from a CSV file.
func LoadCSV(path string, cols Columns) (*Store, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, loadErr(path, err)
	}
	defer f.Close()

	records, err := ReadCSV(f, cols)
	if err != nil {
		return nil, loadErr(path, err)
	}
	return NewStore(path, records), nil
}

// ReadCSV parses CSV rows into records. The header row must contain the text
// column and a score column; other columns are ignored.
func ReadCSV(r io.Reader, cols Columns) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("empty file: no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("read header: %w", err)
	}
	textIdx, scoreIdx, err := resolveColumns(header, cols)
	if err != nil {
		return nil, err
	}

	var out []Record
	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		rec := Record{Position: len(out)}
		if textIdx < len(row) && !isNA(row[textIdx]) {
			rec.Text = row[textIdx]
			rec.HasText = true
		}

		var cell string
		if scoreIdx < len(row) {
			cell = strings.TrimSpace(row[scoreIdx])
		}
		if isNA(cell) {
			return nil, fmt.Errorf("line %d: missing score", line)
		}
		score, err := strconv.ParseFloat(cell, 64)
		if err != nil || math.IsNaN(score) {
			return nil, fmt.Errorf("line %d: score %q is not a number", line, cell)
		}
		rec.Score = score
		out = append(out, rec)
	}
	return out, nil
}

func resolveColumns(header []string, cols Columns) (textIdx, scoreIdx int, err error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		h = strings.TrimSpace(h)
		if i == 0 {
			h = strings.TrimPrefix(h, "\ufeff")
		}
		if _, dup := index[h]; !dup {
			index[h] = i
		}
	}

	textCol := cols.Text
	if textCol == "" {
		textCol = DefaultTextColumn
	}
	textIdx, ok := index[textCol]
	if !ok {
		return 0, 0, fmt.Errorf("missing column %q", textCol)
	}

	candidates := DefaultScoreColumns
	if cols.Score != "" {
		candidates = []string{cols.Score}
	}
	for _, c := range candidates {
		if i, ok := index[c]; ok {
			return textIdx, i, nil
		}
	}
	return 0, 0, fmt.Errorf("missing score column (want one of %s)", strings.Join(candidates, ", "))
}
