package dataset

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "scores.csv")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestReadCSVOriginalColumns(t *testing.T) {
	body := "id,text,skor_polaritas\n" +
		"1,\"split bill, lagi\",0.25\n" +
		"2,,-0.5\n" +
		"3,biasa aja,0\n"
	records, err := ReadCSV(strings.NewReader(body), Columns{})
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "split bill, lagi", records[0].Text)
	assert.True(t, records[0].HasText)
	assert.Equal(t, 0.25, records[0].Score)

	assert.False(t, records[1].HasText, "empty cell is missing text")
	assert.Equal(t, -0.5, records[1].Score)

	for i, r := range records {
		assert.Equal(t, i, r.Position)
	}
}

func TestReadCSVPolarityScoreAndBOM(t *testing.T) {
	body := "\ufefftext,polarity_score\nhalo,1.5\n"
	records, err := ReadCSV(strings.NewReader(body), Columns{})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, 1.5, records[0].Score)
}

func TestReadCSVNAText(t *testing.T) {
	records, err := ReadCSV(strings.NewReader("text,polarity_score\nNaN,0.1\nnull,0.2\n"), Columns{})
	require.NoError(t, err)
	for _, r := range records {
		assert.False(t, r.HasText)
	}
}

func TestReadCSVConfiguredColumns(t *testing.T) {
	body := "tweet,score\nhai,0.3\n"
	records, err := ReadCSV(strings.NewReader(body), Columns{Text: "tweet", Score: "score"})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "hai", records[0].Text)
}

func TestReadCSVErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
		want string
	}{
		{"empty", "", "empty file"},
		{"no text column", "tweet,polarity_score\nx,1\n", `missing column "text"`},
		{"no score column", "text,other\nx,1\n", "missing score column"},
		{"bad score", "text,polarity_score\nx,abc\n", `line 2: score "abc"`},
		{"missing score", "text,polarity_score\nx,1\ny,\n", "line 3: missing score"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ReadCSV(strings.NewReader(tt.body), Columns{})
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadCSVMissingFileIsUnavailable(t *testing.T) {
	_, err := LoadCSV(filepath.Join(t.TempDir(), "nope.csv"), Columns{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnavailable))
	assert.True(t, errors.Is(err, fs.ErrNotExist))

	var le *LoadError
	require.True(t, errors.As(err, &le))
	assert.Contains(t, le.Path, "nope.csv")
}

func TestLoadCSVMalformedIsUnavailable(t *testing.T) {
	path := writeCSV(t, "foo,bar\n1,2\n")
	_, err := LoadCSV(path, Columns{})
	assert.True(t, errors.Is(err, ErrUnavailable))
}

func TestStoreRecordsIsACopy(t *testing.T) {
	store := NewStore("mem", []Record{{Text: "a", HasText: true, Score: 1}})
	rs := store.Records()
	rs[0].Text = "changed"
	assert.Equal(t, "a", store.At(0).Text)
	assert.Equal(t, 1, store.Len())
	assert.Equal(t, "mem", store.Source())
}
