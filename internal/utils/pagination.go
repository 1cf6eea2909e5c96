package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// PaginationInfo contains pagination metadata
type PaginationInfo struct {
	Total      int
	PerPage    int
	Current    int
	Offset     int
	TotalPages int
}

// TotalPages returns the number of pages needed for total items, 0 when
// there are none.
func TotalPages(total, perPage int) int {
	if perPage < 1 {
		perPage = 1
	}
	return (total + perPage - 1) / perPage
}

// NewPagination creates pagination info for the page stored in *cursor.
//
// A cursor outside [1, TotalPages] is reset to 1 in place, so the caller's
// stored page heals itself after the item count shrinks. It returns nil for
// an empty item set, which has no pages.
func NewPagination(total, perPage int, cursor *int) *PaginationInfo {
	if total <= 0 {
		return nil
	}
	if perPage < 1 {
		perPage = 1
	}
	totalPages := TotalPages(total, perPage)

	if *cursor < 1 || *cursor > totalPages {
		*cursor = 1
	}
	current := *cursor

	return &PaginationInfo{
		Total:      total,
		PerPage:    perPage,
		Current:    current,
		Offset:     (current - 1) * perPage,
		TotalPages: totalPages,
	}
}

// GetRange returns the range of items on the current page (1-indexed)
func (p *PaginationInfo) GetRange() (start, end int) {
	start = p.Offset + 1
	end = p.Offset + p.PerPage
	if end > p.Total {
		end = p.Total
	}
	return start, end
}

// HasNext returns true if there's a next page
func (p *PaginationInfo) HasNext() bool {
	return p.Current < p.TotalPages
}

// HasPrev returns true if there's a previous page
func (p *PaginationInfo) HasPrev() bool {
	return p.Current > 1
}

// GetNextPage returns the next page number
func (p *PaginationInfo) GetNextPage() int {
	if p.HasNext() {
		return p.Current + 1
	}
	return p.Current
}

// GetPrevPage returns the previous page number
func (p *PaginationInfo) GetPrevPage() int {
	if p.HasPrev() {
		return p.Current - 1
	}
	return p.Current
}

// FormatSummary returns a human-readable summary
func (p *PaginationInfo) FormatSummary() string {
	if p == nil || p.Total == 0 {
		return "No results"
	}

	start, end := p.GetRange()
	if p.TotalPages == 1 {
		return fmt.Sprintf("Showing %d-%d of %d row%s", start, end, p.Total, plural(p.Total))
	}
	return fmt.Sprintf("Showing %d-%d of %d row%s (page %d of %d)",
		start, end, p.Total, plural(p.Total), p.Current, p.TotalPages)
}

// FormatNavigation returns navigation hints for CLI
func (p *PaginationInfo) FormatNavigation() string {
	if p == nil || p.TotalPages <= 1 {
		return ""
	}

	var hints []string
	if p.HasPrev() {
		hints = append(hints, fmt.Sprintf("use --page %d for previous", p.GetPrevPage()))
	}
	if p.HasNext() {
		hints = append(hints, fmt.Sprintf("use --page %d for next", p.GetNextPage()))
	}

	return strings.Join(hints, ", ")
}

// plural returns "s" if count is not 1
func plural(count int) string {
	if count == 1 {
		return ""
	}
	return "s"
}

// Window is the part of an item list visible on one page.
type Window[T any] struct {
	PaginationInfo
	Items []T
}

// Rank returns the 1-based position of Items[i] in the full list.
func (w Window[T]) Rank(i int) int { return w.Offset + i + 1 }

// Paginate cuts the page stored in *cursor out of items. ok is false when
// items is empty; the cursor is left untouched in that case.
func Paginate[T any](items []T, perPage int, cursor *int) (w Window[T], ok bool) {
	p := NewPagination(len(items), perPage, cursor)
	if p == nil {
		return Window[T]{}, false
	}
	_, end := p.GetRange()
	return Window[T]{PaginationInfo: *p, Items: items[p.Offset:end]}, true
}

// ParsePage parses a page argument: a number, "first" or "last". Numbers
// past the last page are clamped to it.
func ParsePage(pageStr string, totalPages int) (int, error) {
	pageStr = strings.TrimSpace(strings.ToLower(pageStr))

	var page int
	switch pageStr {
	case "", "first", "start", "beginning":
		page = 1
	case "last", "end":
		page = totalPages
	default:
		n, err := strconv.Atoi(pageStr)
		if err != nil {
			return 1, fmt.Errorf("invalid page number: %q", pageStr)
		}
		if n < 1 {
			return 1, fmt.Errorf("page number must be positive")
		}
		page = n
	}

	if totalPages > 0 && page > totalPages {
		page = totalPages
	}
	if page < 1 {
		page = 1
	}
	return page, nil
}
