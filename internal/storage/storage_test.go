package storage

import (
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vynorlabs/vynornews/internal/model"
)

// openTestStore uses a file-backed database per test; :memory: runs in
// shared-cache mode, which would leak state between tests in one process.
func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestSessionRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, ok := s.LoadSession(); ok {
		t.Fatal("LoadSession on empty store reported a session")
	}

	profile := model.UserProfile{
		Name:     "Ada",
		Email:    "ada@example.com",
		Role:     "Analyst",
		LoggedIn: true,
		Preferences: model.UserPreferences{
			Interests:  []string{"AI", "Finance"},
			AlertLevel: model.AlertHigh,
		},
	}
	s.SaveSession(profile)

	got, ok := s.LoadSession()
	if !ok {
		t.Fatal("LoadSession after SaveSession reported absent")
	}
	if diff := cmp.Diff(profile, got); diff != "" {
		t.Errorf("session mismatch (-want +got):\n%s", diff)
	}
}

func TestSavedItemsRoundTrip(t *testing.T) {
	s := openTestStore(t)

	if _, ok := s.LoadSavedItems(); ok {
		t.Fatal("LoadSavedItems on empty store reported items")
	}

	items := []model.NewsItem{
		{ID: "n-1", Title: "First", Summary: "one", Impact: model.ImpactHigh, Category: "AI", Saved: true},
		{ID: "n-2", Title: "Second", Summary: "two", Impact: model.ImpactLow, Category: "Markets", Saved: true,
			Sources: []model.NewsSource{{Title: "Wire", URI: "https://example.com/wire"}}},
	}
	s.SaveSavedItems(items)

	got, ok := s.LoadSavedItems()
	if !ok {
		t.Fatal("LoadSavedItems after save reported absent")
	}
	if diff := cmp.Diff(items, got); diff != "" {
		t.Errorf("saved items mismatch (-want +got):\n%s", diff)
	}
}

func TestCorruptPayloadTreatedAsAbsent(t *testing.T) {
	s := openTestStore(t)

	s.save(SlotSession, "{not json")
	if _, ok := s.LoadSession(); ok {
		t.Error("corrupt session payload was not treated as absent")
	}

	// Valid JSON of the wrong shape is equally absent.
	s.save(SlotSavedItems, `{"id":"n-1"}`)
	if _, ok := s.LoadSavedItems(); ok {
		t.Error("wrong-shape saved-items payload was not treated as absent")
	}
}

func TestClearAndClearAll(t *testing.T) {
	s := openTestStore(t)

	s.SaveSession(model.UserProfile{Name: "Ada", LoggedIn: true})
	s.SaveSavedItems([]model.NewsItem{{ID: "n-1", Impact: model.ImpactLow}})

	s.Clear(SlotSession)
	if _, ok := s.LoadSession(); ok {
		t.Error("session survived Clear")
	}
	if _, ok := s.LoadSavedItems(); !ok {
		t.Error("Clear(session) removed the saved-items slot too")
	}

	s.ClearAll()
	if _, ok := s.LoadSavedItems(); ok {
		t.Error("saved items survived ClearAll")
	}
}

func TestSaveOverwrites(t *testing.T) {
	s := openTestStore(t)

	s.SaveSession(model.UserProfile{Name: "Ada", LoggedIn: true})
	s.SaveSession(model.UserProfile{Name: "Grace", LoggedIn: true})

	got, ok := s.LoadSession()
	if !ok || got.Name != "Grace" {
		t.Errorf("LoadSession = %+v, %v; want latest write", got, ok)
	}
}
