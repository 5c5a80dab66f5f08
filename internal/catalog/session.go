package catalog

import (
	"sync"
	"time"
)

// Session is the interactive browsing state for the storefront: the current
// filter/sort/page query plus the debounced search evaluation. Category,
// sort, and page changes recompute the visible page immediately; search text
// recomputes only after the input settles.
type Session struct {
	mu        sync.Mutex
	store     *Store
	query     Query
	page      Page
	pageSize  int
	debouncer *Debouncer
}

func NewSession(store *Store, settleDelay time.Duration, pageSize int) *Session {

	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	s := &Session{
		store:    store,
		query:    NewQuery(),
		pageSize: pageSize,
	}

	s.debouncer = NewDebouncer(settleDelay, s.settleSearch)
	s.recompute()

	return s
}

// SetSearch records new search text and resets to page 1. The projection is
// deferred until the debouncer settles; until then the session reports
// searching.
func (s *Session) SetSearch(text string) {
	s.mu.Lock()
	s.query = s.query.WithSearch(text)
	s.mu.Unlock()

	s.debouncer.Trigger(text)
}

func (s *Session) SetCategory(category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = s.query.WithCategory(category)
	s.recomputeLocked()
}

func (s *Session) SetSort(key SortKey) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = s.query.WithSort(key)
	s.recomputeLocked()
}

func (s *Session) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = s.query.WithPage(page)
	s.recomputeLocked()
}

// Refresh re-projects against the current snapshot, used after the product
// store is replaced.
func (s *Session) Refresh() {
	s.recompute()
}

// View returns the current page plus whether a search is still settling.
func (s *Session) View() (Page, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.page, s.debouncer.Pending()
}

// Query returns the session's current filter/sort/page state.
func (s *Session) Query() Query {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.query
}

// Close cancels any outstanding debounce timer.
func (s *Session) Close() {
	s.debouncer.Stop()
}

func (s *Session) settleSearch(value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// a stale settle must never clobber newer input
	if s.query.Search != value {
		return
	}

	s.recomputeLocked()
}

func (s *Session) recompute() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.recomputeLocked()
}

func (s *Session) recomputeLocked() {
	s.page = Project(s.store.All(), s.query, s.pageSize)
}
