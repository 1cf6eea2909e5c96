package utils

import (
	"encoding/csv"
	"encoding/json"
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func samplePage() *PageList {
	return &PageList{
		Subset: "Negative",
		Rows: []Row{
			{Rank: 11, Position: 40, Text: "split bill, bikin \"ribet\"", Label: "Negative", Score: -0.75},
			{Rank: 12, Position: 7, Missing: true, Label: "Negative", Score: -0.1235},
		},
		Total:      12,
		Page:       2,
		PerPage:    10,
		TotalPages: 2,
		Filters:    map[string]string{"include": "split"},
	}
}

func render(t *testing.T, format OutputFormat, list *PageList) string {
	t.Helper()
	r := NewRenderer(&RenderConfig{Format: format, Width: 80})
	out, err := r.RenderPageList(list)
	require.NoError(t, err)
	return out
}

func TestRenderDefault(t *testing.T) {
	out := render(t, FormatDefault, samplePage())
	assert.Contains(t, out, "Negative tweets")
	assert.Contains(t, out, `include: "split"`)
	assert.Contains(t, out, "Showing 11-12 of 12 rows (page 2 of 2)")
	assert.Contains(t, out, "#11")
	assert.Contains(t, out, "-0.7500")
	assert.Contains(t, out, "(no text)")
	assert.Contains(t, out, "use --page 1 for previous")
}

func TestRenderDefaultEmpty(t *testing.T) {
	out := render(t, FormatDefault, &PageList{Subset: "Positive"})
	assert.Contains(t, out, "No matching data.")
}

func TestRenderJSON(t *testing.T) {
	out := render(t, FormatJSON, samplePage())
	var got PageList
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, *samplePage(), got)

	out = render(t, FormatJSON, &PageList{Subset: "All"})
	assert.Contains(t, out, `"rows": []`)
}

func TestRenderCSVQuotesText(t *testing.T) {
	out := render(t, FormatCSV, samplePage())
	records, err := csv.NewReader(strings.NewReader(out)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, []string{"rank", "position", "text", "label", "score"}, records[0])
	assert.Equal(t, []string{"11", "40", "split bill, bikin \"ribet\"", "Negative", "-0.7500"}, records[1])
	assert.Equal(t, "", records[2][2])
}

func TestRenderTable(t *testing.T) {
	out := render(t, FormatTable, samplePage())
	assert.Contains(t, out, "Sentiment")
	assert.Contains(t, out, "-0.1235")
	assert.Contains(t, out, "Showing 11-12 of 12 rows")
}

func TestTableHeaderStyleOnHeaderRowOnly(t *testing.T) {
	r := NewRenderer(&RenderConfig{Format: FormatTable, Width: 80})

	assert.True(t, r.cellStyle(tableHeaderRow, 0).GetBold(), "header row is bold")
	for row := 1; row <= 2; row++ {
		assert.False(t, r.cellStyle(row, 1).GetBold(), "data row %d is plain", row)
	}
}

func TestRenderQuiet(t *testing.T) {
	out := render(t, FormatQuiet, samplePage())
	assert.Equal(t, "split bill, bikin \"ribet\"\n\n", out)
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("JSON")
	require.NoError(t, err)
	assert.Equal(t, FormatJSON, f)

	f, err = ParseFormat("")
	require.NoError(t, err)
	assert.Equal(t, FormatDefault, f)

	_, err = ParseFormat("xml")
	assert.Error(t, err)
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "a b c", Truncate("a\nb   c", 20))
	got := Truncate("patungan itu adil banget", 10)
	assert.LessOrEqual(t, runewidth.StringWidth(got), 10)
	assert.True(t, strings.HasSuffix(got, "…"))
}

func TestFormatScore(t *testing.T) {
	assert.Equal(t, "0.1235", FormatScore(0.1235))
	assert.Equal(t, "0.0000", FormatScore(0))
}
