// Package session owns the per-user state of one viewing session: the
// current query, the remembered page of each subset and the cached
// filtered view. The record store is shared read-only; nothing else is.
package session

import (
	"github.com/akbaralfaidah/sentimen-splitbill/internal/dataset"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/sentiment"
	"github.com/akbaralfaidah/sentimen-splitbill/internal/utils"
	"go.uber.org/zap"
)

// Session is one user's view over a record store. It is not safe for
// concurrent use; each host loop owns its own Session.
type Session struct {
	store *dataset.Store
	log   *zap.Logger

	query    Query
	state    State
	filtered []dataset.Record
	view     sentiment.View
}

// New starts a session over store with an empty query.
func New(store *dataset.Store, log *zap.Logger) *Session {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Session{
		store: store,
		log:   log,
		query: Query{PageSize: DefaultPageSize},
		state: NewState(),
	}
	s.refilter()
	return s
}

// Query returns the active query.
func (s *Session) Query() Query { return s.query }

// State returns a copy of the remembered pages.
func (s *Session) State() State { return s.state }

// Apply replaces the query. Changing either keyword or the page size sends
// every subset back to page 1; changing only the locator keyword keeps them.
func (s *Session) Apply(q Query) Result {
	q = q.Normalize()
	if s.query.reshapes(q) {
		s.log.Debug("query changed, cursors reset",
			zap.String("include", q.Include),
			zap.String("exclude", q.Exclude),
			zap.Int("page_size", q.PageSize))
		s.state.Reset()
	}
	refilter := s.query.Include != q.Include || s.query.Exclude != q.Exclude
	s.query = q
	if refilter {
		s.refilter()
	}
	return s.Result()
}

// Result evaluates the active query against the current cursors.
func (s *Session) Result() Result {
	before := s.state
	res := evaluate(s.filtered, s.view, s.query, &s.state)
	if before != s.state {
		s.log.Debug("cursor out of range, reset to first page",
			zap.Any("before", before), zap.Any("after", s.state))
	}
	return res
}

// Advance moves sub one page forward if it is not on the last page.
func (s *Session) Advance(sub sentiment.Subset) Result {
	if p := s.pagination(sub); p != nil && p.HasNext() {
		*s.state.Cursor(sub) = p.GetNextPage()
	}
	return s.Result()
}

// Retreat moves sub one page back if it is not on the first page.
func (s *Session) Retreat(sub sentiment.Subset) Result {
	if p := s.pagination(sub); p != nil && p.HasPrev() {
		*s.state.Cursor(sub) = p.GetPrevPage()
	}
	return s.Result()
}

// Jump sets the page of sub. An out-of-range page is stored as given and
// resolves to page 1 on evaluation.
func (s *Session) Jump(sub sentiment.Subset, page int) Result {
	*s.state.Cursor(sub) = page
	return s.Result()
}

// JumpToMatch moves the All subset to the page holding the locator match.
// It reports false, leaving every cursor alone, when there is no match.
func (s *Session) JumpToMatch() (Result, bool) {
	if s.query.Locate == "" {
		return s.Result(), false
	}
	loc := sentiment.Locate(s.filtered, s.query.Locate, s.query.PageSize)
	if !loc.Found {
		return s.Result(), false
	}
	s.log.Debug("jump to locator match",
		zap.String("keyword", s.query.Locate),
		zap.Int("rank", loc.Rank),
		zap.Int("page", loc.Page))
	s.state.All = loc.Page
	return s.Result(), true
}

// pagination recomputes paging for sub from the current view, healing the
// cursor first.
func (s *Session) pagination(sub sentiment.Subset) *utils.PaginationInfo {
	return utils.NewPagination(len(s.view.Rows(sub)), s.query.PageSize, s.state.Cursor(sub))
}

func (s *Session) refilter() {
	s.filtered = sentiment.Filter(s.store.Records(), s.query.Include, s.query.Exclude)
	s.view = sentiment.BuildView(s.filtered)
}
