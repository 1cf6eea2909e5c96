package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func items(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestPaginateTwentyFiveByTen(t *testing.T) {
	all := items(25)
	for page, want := range map[int]int{1: 10, 2: 10, 3: 5} {
		cursor := page
		w, ok := Paginate(all, 10, &cursor)
		require.True(t, ok)
		assert.Equal(t, 3, w.TotalPages)
		assert.Equal(t, page, w.Current)
		assert.Len(t, w.Items, want, "page %d", page)
		assert.Equal(t, (page-1)*10+1, w.Rank(0))
		assert.Equal(t, w.Items[0]+1, w.Rank(0))
	}
}

func TestPaginateResetsCursorPastEnd(t *testing.T) {
	cursor := 5
	w, ok := Paginate(items(15), 10, &cursor)
	require.True(t, ok)
	assert.Equal(t, 1, w.Current)
	assert.Equal(t, 1, cursor, "reset is visible through the cursor")

	cursor = 0
	_, _ = Paginate(items(15), 10, &cursor)
	assert.Equal(t, 1, cursor)
}

func TestPaginateEmpty(t *testing.T) {
	cursor := 4
	w, ok := Paginate([]int{}, 10, &cursor)
	assert.False(t, ok)
	assert.Empty(t, w.Items)
	assert.Equal(t, 4, cursor)
}

func TestNavigationBounds(t *testing.T) {
	cursor := 1
	p := NewPagination(25, 10, &cursor)
	assert.False(t, p.HasPrev())
	assert.True(t, p.HasNext())
	assert.Equal(t, 2, p.GetNextPage())
	assert.Equal(t, 1, p.GetPrevPage())

	cursor = 3
	p = NewPagination(25, 10, &cursor)
	assert.True(t, p.HasPrev())
	assert.False(t, p.HasNext())
	assert.Equal(t, 3, p.GetNextPage())
	start, end := p.GetRange()
	assert.Equal(t, 21, start)
	assert.Equal(t, 25, end)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 0, TotalPages(0, 10))
	assert.Equal(t, 1, TotalPages(10, 10))
	assert.Equal(t, 3, TotalPages(25, 10))
	assert.Equal(t, 1, TotalPages(99, 100))
}

func TestFormatSummary(t *testing.T) {
	cursor := 2
	p := NewPagination(25, 10, &cursor)
	assert.Equal(t, "Showing 11-20 of 25 rows (page 2 of 3)", p.FormatSummary())
	assert.Equal(t, "use --page 1 for previous, use --page 3 for next", p.FormatNavigation())

	var none *PaginationInfo
	assert.Equal(t, "No results", none.FormatSummary())
	assert.Equal(t, "", none.FormatNavigation())
}

func TestParsePage(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"", 1, false},
		{"first", 1, false},
		{"2", 2, false},
		{"last", 3, false},
		{"9", 3, false},
		{"0", 1, true},
		{"two", 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParsePage(tt.in, 3)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
