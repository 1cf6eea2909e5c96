package sentiment

import (
	"fmt"
	"testing"

	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rec(text string, score float64) dataset.Record {
	return dataset.Record{Text: text, HasText: true, Score: score}
}

func testRecords() []dataset.Record {
	return dataset.NewStore("test", []dataset.Record{
		rec("split bill sama teman", 0.5),
		rec("split bill bikin ribet", -0.75),
		rec("bayar sendiri aja", 0),
		rec("KUA split bill", -0.1),
		{Score: 0.2},
		rec("patungan itu adil", 0.9),
		rec("split bill di KUA", 0.5),
	}).Records()
}

func positions(rows []Row) []int {
	out := make([]int, len(rows))
	for i, r := range rows {
		out[i] = r.Position
	}
	return out
}

func TestFilterEmptyKeywordsKeepsEverything(t *testing.T) {
	records := testRecords()
	got := Filter(records, "", "")
	if diff := cmp.Diff(records, got); diff != "" {
		t.Fatalf("filter changed the record set (-want +got):\n%s", diff)
	}
}

func TestFilterIncludeExclude(t *testing.T) {
	records := testRecords()

	got := Filter(records, "split", "")
	assert.Equal(t, []int{0, 1, 3, 6}, recordPositions(got))

	got = Filter(records, "split", "kua")
	assert.Equal(t, []int{0, 1}, recordPositions(got))

	got = Filter(records, "", "kua")
	assert.Equal(t, []int{0, 1, 2, 4, 5}, recordPositions(got), "missing text is never excluded")

	assert.Empty(t, Filter(records, "tidakada", ""))
}

func TestFilterIsIdempotent(t *testing.T) {
	records := testRecords()
	once := Filter(records, "split", "kua")
	twice := Filter(once, "split", "kua")
	assert.Equal(t, once, twice)
}

func recordPositions(rs []dataset.Record) []int {
	out := make([]int, len(rs))
	for i, r := range rs {
		out[i] = r.Position
	}
	return out
}

func TestCategorize(t *testing.T) {
	assert.Equal(t, Positive, Categorize(0.0001))
	assert.Equal(t, Negative, Categorize(-3))
	assert.Equal(t, Neutral, Categorize(0))
	assert.Equal(t, "Negative", Negative.String())
}

func TestRoundScore(t *testing.T) {
	assert.Equal(t, 0.1235, RoundScore(0.123456789))
	assert.Equal(t, -0.5, RoundScore(-0.5))
	assert.Equal(t, 0.0, RoundScore(0.00004))
}

func TestBuildViewPartitionAndOrder(t *testing.T) {
	v := BuildView(testRecords())

	assert.Equal(t, len(v.All), len(v.Positive)+len(v.Negative)+len(v.Neutral))
	seen := map[int]Label{}
	for _, s := range []Subset{SubsetNegative, SubsetPositive, SubsetNeutral} {
		for _, r := range v.Rows(s) {
			_, dup := seen[r.Position]
			require.False(t, dup, "record %d in two subsets", r.Position)
			seen[r.Position] = r.Label
		}
	}
	assert.Len(t, seen, len(v.All))

	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6}, positions(v.All))
	assert.Equal(t, []int{1, 3}, positions(v.Negative), "most negative first")
	assert.Equal(t, []int{5, 0, 6, 4}, positions(v.Positive), "most positive first, ties stable")
	assert.Equal(t, []int{2}, positions(v.Neutral))
	for _, r := range v.Positive {
		assert.Equal(t, Positive, r.Label)
	}
}

func TestParseSubset(t *testing.T) {
	for in, want := range map[string]Subset{"all": SubsetAll, "NEG": SubsetNegative, "positive": SubsetPositive, "net": SubsetNeutral, "": SubsetAll} {
		got, err := ParseSubset(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
	_, err := ParseSubset("mixed")
	assert.Error(t, err)
}

func TestSummarize(t *testing.T) {
	s := Summarize(testRecords())
	assert.Equal(t, 7, s.Total)
	assert.Equal(t, 4, s.Positive)
	assert.Equal(t, 2, s.Negative)
	assert.Equal(t, 1, s.Neutral)
	assert.InDelta(t, 400.0/7, s.Percent(Positive), 1e-9)
	assert.InDelta(t, (0.5-0.75+0-0.1+0.2+0.9+0.5)/7, s.Mean, 1e-12)
	assert.Equal(t, Positive, s.MeanLabel())
	assert.True(t, s.HasMean())

	empty := Summarize(nil)
	assert.Zero(t, empty.Percent(Negative))
	assert.False(t, empty.HasMean())
}

func TestLocate(t *testing.T) {
	var records []dataset.Record
	for i := 1; i <= 25; i++ {
		text := fmt.Sprintf("tweet nomor %d", i)
		if i == 23 || i == 25 {
			text += " harus bayar"
		}
		records = append(records, rec(text, 0))
	}
	filtered := Filter(records, "tweet", "")

	loc := Locate(filtered, "bayar", 10)
	assert.Equal(t, Location{Found: true, Rank: 23, Page: 3}, loc)

	assert.Equal(t, Location{Found: true, Rank: 23, Page: 2}, Locate(filtered, "BAYAR", 20))
	assert.False(t, Locate(filtered, "bayarin", 10).Found)
	assert.False(t, Locate(filtered, "", 10).Found)
	assert.False(t, Locate(nil, "bayar", 10).Found)
}

func TestLocateSearchesFilteredView(t *testing.T) {
	records := testRecords()
	filtered := Filter(records, "split", "")
	loc := Locate(filtered, "kua", 1)
	assert.Equal(t, Location{Found: true, Rank: 3, Page: 3}, loc, "rank counts filtered rows only")
}
