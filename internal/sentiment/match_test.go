package sentiment

import (
	"testing"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
	"github.com/stretchr/testify/assert"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		text    string
		keyword string
		want    bool
	}{
		{"splitbill", "split", false},
		{"split bill now", "split", true},
		{"Split", "split", true},
		{"SPLIT BILL", "split bill", true},
		{"mau split_bill", "split", false},
		{"bayar,dong", "bayar", true},
		{"bayar2", "bayar", false},
		{"a.b", "a.b", true},
		{"axb", "a.b", false},
		{"pakai [regex] (x)", "[regex]", false},
		{"gaji* naik", "gaji*", false},
		{"gaji naik", "gaji*", false},
		{"Café bayar", "café", true},
		{"Cafe\u0301 bayar", "café", true},
		{"aaa aa", "aa", true},
		{"", "bayar", false},
	}
	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.keyword, func(t *testing.T) {
			assert.Equal(t, tt.want, Matches(tt.text, tt.keyword))
		})
	}
}

func TestMatcherEmptyKeywordMatchesNothing(t *testing.T) {
	assert.False(t, Matches("anything", ""))
}

func TestMatchRecordMissingText(t *testing.T) {
	m := NewMatcher("null")
	assert.False(t, m.MatchRecord(dataset.Record{Text: "null", HasText: false}))
	assert.True(t, m.MatchRecord(dataset.Record{Text: "null", HasText: true}))
}
