package storage

import (
	"encoding/json"

	"github.com/vynorlabs/vynornews/internal/logging"
	"github.com/vynorlabs/vynornews/internal/model"
)

// LoadSession returns the persisted user profile, or ok=false when the
// session slot is absent or its payload does not decode.
func (s *Store) LoadSession() (model.UserProfile, bool) {
	raw, ok := s.load(SlotSession)
	if !ok {
		return model.UserProfile{}, false
	}

	var profile model.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		logging.Warn("session payload corrupt, treating as absent", "error", err)
		return model.UserProfile{}, false
	}
	return profile, true
}

// SaveSession persists the full profile. Failures are swallowed; the
// in-memory profile stays authoritative for the rest of the session.
func (s *Store) SaveSession(profile model.UserProfile) {
	data, err := json.Marshal(profile)
	if err != nil {
		logging.Warn("session encode failed", "error", err)
		return
	}
	s.save(SlotSession, string(data))
}

// LoadSavedItems returns the persisted bookmark collection, or ok=false
// when the slot is absent or corrupt.
func (s *Store) LoadSavedItems() ([]model.NewsItem, bool) {
	raw, ok := s.load(SlotSavedItems)
	if !ok {
		return nil, false
	}

	var items []model.NewsItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		logging.Warn("saved-items payload corrupt, treating as absent", "error", err)
		return nil, false
	}
	return items, true
}

// SaveSavedItems persists the whole collection in one write.
func (s *Store) SaveSavedItems(items []model.NewsItem) {
	if items == nil {
		items = []model.NewsItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		logging.Warn("saved-items encode failed", "error", err)
		return
	}
	s.save(SlotSavedItems, string(data))
}
