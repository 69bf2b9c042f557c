// Package feed implements the in-memory feed aggregation engine.
//
// The engine owns the ordered, de-duplicated, append-only item sequence for
// the current login session. Fetching is asynchronous: a Begin call reserves
// the single in-flight slot and hands out a generation token, and the paired
// Complete call delivers the provider's result. A completion whose token no
// longer matches the current generation is stale and is discarded without
// touching state, so a batch resolving after a logout or a feed reset can
// never repopulate cleared state.
package feed

import (
	"sync"

	"github.com/vynorlabs/vynornews/internal/logging"
	"github.com/vynorlabs/vynornews/internal/model"
)

// Session is the slice of the session store the engine needs to gate
// fetches. Satisfied by *session.Store.
type Session interface {
	LoggedIn() bool
	Interests() []string
}

// Engine holds the feed sequence and its loading flags.
// Thread-safety: all methods are safe for concurrent use via internal mutex.
type Engine struct {
	mu          sync.Mutex
	session     Session
	items       []model.NewsItem
	loading     bool
	loadingMore bool
	generation  uint64
}

// New creates an empty engine gated on the given session.
func New(session Session) *Engine {
	return &Engine{session: session}
}

// BeginInitial reserves the loading slot for a full refresh and returns the
// generation token the eventual completion must carry. It refuses while any
// load is in flight, when the session is not logged in, or when no
// interests are selected.
func (e *Engine) BeginInitial() (gen uint64, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.loading || e.loadingMore {
		return 0, false
	}
	if !e.session.LoggedIn() || len(e.session.Interests()) == 0 {
		return 0, false
	}

	e.loading = true
	return e.generation, true
}

// CompleteInitial delivers the result of an initial fetch. On success the
// whole sequence is replaced; on failure the feed degrades to empty. A
// stale token is discarded outright and ok=false is returned.
func (e *Engine) CompleteInitial(gen uint64, items []model.NewsItem, err error) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation {
		logging.Debug("stale initial batch discarded", "gen", gen, "current", e.generation)
		return false
	}

	e.loading = false
	if err != nil {
		logging.Warn("initial feed load failed", "error", err)
		e.items = nil
		return true
	}

	e.items = mergeNew(nil, items)
	logging.Info("feed loaded", "items", len(e.items))
	return true
}

// BeginMore reserves the loading slot for a pagination fetch and reports
// the offset, which is always the current sequence length. Refused under
// the same conditions as BeginInitial.
func (e *Engine) BeginMore() (offset int, gen uint64, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.loading || e.loadingMore {
		return 0, 0, false
	}
	if !e.session.LoggedIn() || len(e.session.Interests()) == 0 {
		return 0, 0, false
	}

	e.loadingMore = true
	return len(e.items), e.generation, true
}

// CompleteMore delivers the result of a pagination fetch. Items whose id is
// already present are dropped; the remainder is appended in provider order.
// Existing items are never re-ranked or touched. On failure the sequence is
// left unchanged.
func (e *Engine) CompleteMore(gen uint64, items []model.NewsItem, err error) (added int, ok bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if gen != e.generation {
		logging.Debug("stale pagination batch discarded", "gen", gen, "current", e.generation)
		return 0, false
	}

	e.loadingMore = false
	if err != nil {
		logging.Warn("feed pagination failed", "error", err)
		return 0, true
	}

	before := len(e.items)
	e.items = mergeNew(e.items, items)
	added = len(e.items) - before
	logging.Debug("feed extended", "added", added, "total", len(e.items))
	return added, true
}

// Reset clears the sequence and both flags and invalidates any in-flight
// fetch by bumping the generation. Called on logout and when preferences
// change in a way that restarts the feed.
func (e *Engine) Reset() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.items = nil
	e.loading = false
	e.loadingMore = false
	e.generation++
}

// Items returns a copy of the current sequence.
func (e *Engine) Items() []model.NewsItem {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]model.NewsItem, len(e.items))
	copy(out, e.items)
	return out
}

// Len returns the current sequence length.
func (e *Engine) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.items)
}

// Loading reports the initial-load and load-more flags.
func (e *Engine) Loading() (initial, more bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.loading, e.loadingMore
}

// AlertItems returns the items with high or critical impact, in feed order.
func (e *Engine) AlertItems() []model.NewsItem {
	e.mu.Lock()
	defer e.mu.Unlock()

	var out []model.NewsItem
	for _, item := range e.items {
		if item.Impact.AtLeast(model.ImpactHigh) {
			out = append(out, item)
		}
	}
	return out
}

// CriticalCount returns the number of critical items, shown as the alerts
// tab badge.
func (e *Engine) CriticalCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for _, item := range e.items {
		if item.Impact == model.ImpactCritical {
			n++
		}
	}
	return n
}

// mergeNew appends batch items not already present in existing, preserving
// provider order. Items with an empty id or an unknown impact level are
// skipped. The id set is rebuilt per merge; sequences stay small enough
// that an incremental index isn't worth carrying.
func mergeNew(existing, batch []model.NewsItem) []model.NewsItem {
	seen := make(map[string]struct{}, len(existing)+len(batch))
	for _, item := range existing {
		seen[item.ID] = struct{}{}
	}

	out := existing
	for _, item := range batch {
		if item.ID == "" || !item.Impact.Valid() {
			logging.Debug("dropping malformed feed item", "id", item.ID, "impact", item.Impact)
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		out = append(out, item)
	}
	return out
}
