// Package saved implements the persisted bookmark collection. Saved items
// survive feed refreshes and process restarts; the whole collection is
// written through on every mutation.
package saved

import (
	"sync"

	"github.com/vynorlabs/vynornews/internal/logging"
	"github.com/vynorlabs/vynornews/internal/model"
	"github.com/vynorlabs/vynornews/internal/storage"
)

// Store holds the bookmark collection in insertion order.
// Thread-safe via internal mutex.
type Store struct {
	mu    sync.Mutex
	items []model.NewsItem
	db    *storage.Store
}

// New hydrates the collection from the saved-items slot. A missing or
// corrupt payload yields an empty collection.
func New(db *storage.Store) *Store {
	s := &Store{db: db}
	if items, ok := db.LoadSavedItems(); ok {
		s.items = items
		logging.Debug("saved items hydrated", "count", len(items))
	}
	return s
}

// Toggle saves the item if absent and removes it if present, returning the
// resulting saved state. On save the item is copied with the saved flag
// set; the caller's copy is never mutated.
func (s *Store) Toggle(item model.NewsItem) (saved bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.items {
		if existing.ID == item.ID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.persistLocked()
			return false
		}
	}

	copied := item
	copied.Saved = true
	s.items = append(s.items, copied)
	s.persistLocked()
	return true
}

// IsSaved reports whether the item with the given id is in the collection.
func (s *Store) IsSaved(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, item := range s.items {
		if item.ID == id {
			return true
		}
	}
	return false
}

// Items returns a copy of the collection in insertion order.
func (s *Store) Items() []model.NewsItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.NewsItem, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the collection size.
func (s *Store) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Reset drops the in-memory collection without writing. Used at logout,
// where storage has already been cleared wholesale.
func (s *Store) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
}

// persistLocked writes the whole collection through. Caller must hold s.mu.
func (s *Store) persistLocked() {
	s.db.SaveSavedItems(s.items)
}
