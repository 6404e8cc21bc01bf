package view

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// Search defaults matching the dashboard behavior.
const (
	DefaultSearchDelay     = 300 * time.Millisecond
	DefaultSearchMinLength = 2
)

// RecordSearcher dispatches a free-text query to the backend.
type RecordSearcher interface {
	Search(ctx context.Context, query string) ([]types.Record, error)
}

// SearchResult is one delivered search outcome.
type SearchResult struct {
	Query   string
	Records []types.Record
	Err     error
}

// Searcher debounces keystrokes before dispatching a server search and
// guarantees that a stale in-flight response never overwrites a fresher
// one: each scheduled query gets a monotonically increasing sequence
// number, and a response is delivered only if its sequence is still
// current.
//
// Input is called from the owning goroutine; delivery happens on the
// dispatch goroutine, serialized by the internal mutex.
type Searcher struct {
	backend   RecordSearcher
	deliver   func(SearchResult)
	delay     time.Duration
	minLength int

	mu     sync.Mutex
	seq    uint64
	timer  *time.Timer
	cancel context.CancelFunc
}

// NewSearcher creates a debounced searcher delivering results through
// the given callback.
func NewSearcher(backend RecordSearcher, deliver func(SearchResult)) *Searcher {
	return &Searcher{
		backend:   backend,
		deliver:   deliver,
		delay:     DefaultSearchDelay,
		minLength: DefaultSearchMinLength,
	}
}

// Input registers a keystroke. Queries shorter than the minimum length
// clear the results locally without a network call. Longer queries are
// dispatched after the debounce delay; scheduling a new query supersedes
// any pending or in-flight one.
func (s *Searcher) Input(ctx context.Context, text string) {
	query := strings.TrimSpace(text)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.supersedeLocked()

	if len([]rune(query)) < s.minLength {
		s.deliver(SearchResult{Query: query})
		return
	}

	seq := s.seq
	reqCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel

	s.timer = time.AfterFunc(s.delay, func() {
		records, err := s.backend.Search(reqCtx, query)

		s.mu.Lock()
		defer s.mu.Unlock()
		if seq != s.seq {
			// A newer query superseded this one while it was in flight.
			return
		}
		s.deliver(SearchResult{Query: query, Records: records, Err: err})
	})
}

// Close cancels any pending dispatch. Late responses are discarded.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersedeLocked()
}

// supersedeLocked invalidates the pending query: bumps the sequence,
// stops the debounce timer, and cancels the in-flight request.
func (s *Searcher) supersedeLocked() {
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// FilterLocal returns the subsequence of records whose name-like or
// phone-like field contains the lowercased query as a substring. It is
// synchronous and allocation-light; the location drill-down recomputes
// it on every keystroke.
func FilterLocal(records []types.Record, query string) []types.Record {
	query = strings.ToLower(strings.TrimSpace(query))
	if query == "" {
		return records
	}

	var out []types.Record
	for _, r := range records {
		name := firstField(r, types.FieldBusinessName, "Business Name")
		phone := firstField(r, types.FieldPhone, "Phone")
		if strings.Contains(strings.ToLower(name), query) ||
			strings.Contains(strings.ToLower(phone), query) {
			out = append(out, r)
		}
	}
	return out
}

// firstField returns the first non-empty value among the given keys.
// Records ingested before column normalization may carry the spreadsheet
// header instead of the canonical key.
func firstField(r types.Record, keys ...string) string {
	for _, k := range keys {
		if v := r.StringField(k); v != "" {
			return v
		}
	}
	return ""
}
