package biz

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"moviezone/internal/conf"

	"github.com/go-kratos/kratos/v2/log"
	lru "github.com/hashicorp/golang-lru/v2"
)

const (
	defaultPageCap     = 3
	defaultMaxSessions = 1024
	// DefaultSessionID names the session of clients that do not send one.
	DefaultSessionID = "default"
)

// SearchOptions tunes a SearchSession.
type SearchOptions struct {
	// PageCap is the number of results kept from each catalog page.
	PageCap int
	// StopWhenExhausted makes LoadMore fail with ErrSearchExhausted after a short page.
	StopWhenExhausted bool
}

// SearchSession drives paginated catalog searches and accumulates the results.
type SearchSession struct {
	catalog CatalogClient
	opts    SearchOptions
	log     *log.Helper

	mu       sync.Mutex
	query    string
	page     int
	results  []Movie
	active   bool
	short    bool
	inflight int

	// gen changes on every new query or reset; late pages of an older
	// generation are dropped.
	gen uint64
}

// NewSearchSession creates an idle session.
func NewSearchSession(catalog CatalogClient, opts SearchOptions, logger log.Logger) *SearchSession {
	if opts.PageCap <= 0 {
		opts.PageCap = defaultPageCap
	}
	return &SearchSession{
		catalog: catalog,
		opts:    opts,
		log:     log.NewHelper(logger),
		page:    1,
		results: []Movie{},
	}
}

// Search starts a new query at page 1, replacing any accumulated results.
// A blank query is a no-op returning ErrEmptyQuery. A catalog failure leaves
// an empty result list and is returned alongside the resulting state.
func (s *SearchSession) Search(ctx context.Context, query string) (SearchState, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return s.State(), ErrEmptyQuery
	}

	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.inflight++
	s.mu.Unlock()
	settled := false
	defer s.releaseUnlessSettled(&settled)

	raw, err := s.catalog.SearchMovies(ctx, query, 1)
	if err != nil {
		s.log.Warnf("search for %q failed: %v", query, err)
		raw = nil
	}

	s.mu.Lock()
	if gen == s.gen {
		s.query = query
		s.page = 1
		s.results = s.capPage(raw)
		s.active = true
		s.short = err == nil && len(raw) < s.opts.PageCap
	}
	state := s.settle(&settled)
	s.mu.Unlock()

	if err != nil {
		return state, fmt.Errorf("failed to search movies: %w", err)
	}
	return state, nil
}

// LoadMore fetches the next page of the active query and appends it.
// On a catalog failure the accumulated results and page are left as they were.
func (s *SearchSession) LoadMore(ctx context.Context) (SearchState, error) {
	s.mu.Lock()
	if !s.active {
		state := s.snapshot()
		s.mu.Unlock()
		return state, ErrNoActiveSearch
	}
	if s.opts.StopWhenExhausted && s.short {
		state := s.snapshot()
		s.mu.Unlock()
		return state, ErrSearchExhausted
	}
	gen := s.gen
	query := s.query
	next := s.page + 1
	s.inflight++
	s.mu.Unlock()
	settled := false
	defer s.releaseUnlessSettled(&settled)

	raw, err := s.catalog.SearchMovies(ctx, query, next)

	s.mu.Lock()
	if err != nil {
		state := s.settle(&settled)
		s.mu.Unlock()
		s.log.Warnf("loading page %d for %q failed: %v", next, query, err)
		return state, fmt.Errorf("failed to load more movies: %w", err)
	}
	if gen == s.gen && next == s.page+1 {
		s.results = append(s.results, s.capPage(raw)...)
		s.page = next
		s.short = len(raw) < s.opts.PageCap
	}
	state := s.settle(&settled)
	s.mu.Unlock()

	return state, nil
}

// Reset returns the session to its idle state.
func (s *SearchSession) Reset() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.gen++
	s.query = ""
	s.page = 1
	s.results = []Movie{}
	s.active = false
	s.short = false
	return s.snapshot()
}

// State returns a copy of the current session state.
func (s *SearchSession) State() SearchState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshot()
}

// settle ends the caller's in-flight call and snapshots the result.
// The caller holds mu.
func (s *SearchSession) settle(settled *bool) SearchState {
	s.inflight--
	*settled = true
	return s.snapshot()
}

// releaseUnlessSettled drops the in-flight count of a call that panicked
// before reaching settle.
func (s *SearchSession) releaseUnlessSettled(settled *bool) {
	if *settled {
		return
	}
	s.mu.Lock()
	s.inflight--
	s.mu.Unlock()
}

func (s *SearchSession) capPage(raw []Movie) []Movie {
	n := len(raw)
	if n > s.opts.PageCap {
		n = s.opts.PageCap
	}
	out := make([]Movie, n)
	copy(out, raw[:n])
	return out
}

func (s *SearchSession) snapshot() SearchState {
	results := make([]Movie, len(s.results))
	copy(results, s.results)
	return SearchState{
		Query:       s.query,
		CurrentPage: s.page,
		Results:     results,
		IsLoading:   s.inflight > 0,
		IsActive:    s.active,
		Exhausted:   s.short,
	}
}

// SessionManager keeps one SearchSession per client, evicting the least recently used.
type SessionManager struct {
	catalog  CatalogClient
	opts     SearchOptions
	sessions *lru.Cache[string, *SearchSession]
	logger   log.Logger
}

// NewSessionManager creates a new SessionManager instance
func NewSessionManager(catalog CatalogClient, c *conf.Search, logger log.Logger) (*SessionManager, error) {
	opts := SearchOptions{PageCap: defaultPageCap}
	size := defaultMaxSessions
	if c != nil {
		if c.PageCap > 0 {
			opts.PageCap = int(c.PageCap)
		}
		if c.MaxSessions > 0 {
			size = int(c.MaxSessions)
		}
		opts.StopWhenExhausted = c.StopWhenExhausted
	}

	sessions, err := lru.New[string, *SearchSession](size)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}

	return &SessionManager{
		catalog:  catalog,
		opts:     opts,
		sessions: sessions,
		logger:   logger,
	}, nil
}

// Session returns the session of id, creating it on first use.
func (m *SessionManager) Session(id string) *SearchSession {
	if id == "" {
		id = DefaultSessionID
	}
	if s, ok := m.sessions.Get(id); ok {
		return s
	}

	s := NewSearchSession(m.catalog, m.opts, log.With(m.logger, "session", id))
	if prev, ok, _ := m.sessions.PeekOrAdd(id, s); ok {
		return prev
	}
	return s
}
