// Package session owns the user profile and its lifecycle: hydration at
// startup, the signup/onboarding handoff, preference edits and logout.
package session

import (
	"strings"
	"sync"

	"github.com/vynorlabs/vynornews/internal/logging"
	"github.com/vynorlabs/vynornews/internal/model"
	"github.com/vynorlabs/vynornews/internal/storage"
)

// StartView is the hydration hint for the UI: which screen to open on.
type StartView int

const (
	StartAuth StartView = iota
	StartHome
)

// Store holds the authoritative in-memory profile and writes it through to
// the session slot. Thread-safe via internal mutex.
type Store struct {
	mu      sync.Mutex
	profile model.UserProfile
	db      *storage.Store
}

// New creates a session store backed by the given slot store. The profile
// starts logged out; call Hydrate before first use.
func New(db *storage.Store) *Store {
	return &Store{profile: model.EmptyProfile(), db: db}
}

// Hydrate loads the persisted session once at startup. A missing or corrupt
// payload yields the logged-out default, never an error.
func (s *Store) Hydrate() StartView {
	s.mu.Lock()
	defer s.mu.Unlock()

	profile, ok := s.db.LoadSession()
	if !ok {
		s.profile = model.EmptyProfile()
		return StartAuth
	}

	s.profile = profile
	if profile.LoggedIn {
		logging.Info("session restored", "email", profile.Email)
		return StartHome
	}
	return StartAuth
}

// Profile returns a copy of the current profile.
func (s *Store) Profile() model.UserProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile
}

// LoggedIn reports whether a login session is active.
func (s *Store) LoggedIn() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.profile.LoggedIn
}

// Interests returns a copy of the current interest tags.
func (s *Store) Interests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.profile.Preferences.Interests))
	copy(out, s.profile.Preferences.Interests)
	return out
}

// CompleteAuth records identity after the credential step. It does NOT flip
// the login flag: login happens only when onboarding completes, so a killed
// mid-signup session restarts clean. Name falls back to the email local part.
func (s *Store) CompleteAuth(name, email, role, company string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if name == "" {
		if at := strings.IndexByte(email, '@'); at > 0 {
			name = email[:at]
		}
	}

	s.profile.Name = name
	s.profile.Email = email
	s.profile.Role = role
	s.profile.Company = company
	s.persistLocked()
}

// CompleteOnboarding applies the chosen preferences and activates the login
// session. This is the only place the login flag flips to true.
func (s *Store) CompleteOnboarding(prefs model.UserPreferences) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.profile.Preferences = prefs
	s.profile.LoggedIn = true
	s.persistLocked()
	logging.Info("onboarding complete", "interests", len(prefs.Interests))
}

// PreferencesUpdate is a partial preference edit. A nil slice or empty
// alert level leaves the corresponding field unchanged.
type PreferencesUpdate struct {
	Interests    []string
	AlertLevel   model.AlertLevel
	CompanyTypes []string
}

// UpdatePreferences merges the given fields into the current preferences.
func (s *Store) UpdatePreferences(update PreferencesUpdate) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if update.Interests != nil {
		s.profile.Preferences.Interests = update.Interests
	}
	if update.AlertLevel != "" {
		s.profile.Preferences.AlertLevel = update.AlertLevel
	}
	if update.CompanyTypes != nil {
		s.profile.Preferences.CompanyTypes = update.CompanyTypes
	}
	s.persistLocked()
}

// Logout wipes both persistence slots in full and resets the profile to the
// logged-out default.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.db.ClearAll()
	s.profile = model.EmptyProfile()
	logging.Info("logged out")
}

// persistLocked writes the full profile through to storage. Mid-signup
// state (login flag still false) is intentionally not persisted.
// Caller must hold s.mu.
func (s *Store) persistLocked() {
	if s.profile.LoggedIn {
		s.db.SaveSession(s.profile)
	}
}
