package ui

import (
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vynorlabs/vynornews/internal/feed"
	"github.com/vynorlabs/vynornews/internal/model"
	"github.com/vynorlabs/vynornews/internal/provider"
	"github.com/vynorlabs/vynornews/internal/saved"
	"github.com/vynorlabs/vynornews/internal/session"
	"github.com/vynorlabs/vynornews/internal/storage"
)

// env bundles the stores behind a test app.
type env struct {
	db      *storage.Store
	session *session.Store
	feed    *feed.Engine
	saved   *saved.Store
}

func newTestApp(t *testing.T) (App, *env) {
	t.Helper()

	db, err := storage.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("storage.Open failed: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	sess := session.New(db)
	start := sess.Hydrate()
	engine := feed.New(sess)
	sv := saved.New(db)

	a := New(sess, engine, sv, provider.NewSample(5), start)
	a.ready = true
	a.width = 80
	a.height = 24
	return a, &env{db: db, session: sess, feed: engine, saved: sv}
}

func keyMsg(k string) tea.KeyMsg {
	switch k {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace}
	case "ctrl+t":
		return tea.KeyMsg{Type: tea.KeyCtrlT}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
	}
}

// press sends one key and returns the updated app and command.
func press(t *testing.T, a App, k string) (App, tea.Cmd) {
	t.Helper()
	m, cmd := a.Update(keyMsg(k))
	return m.(App), cmd
}

// run executes a command and feeds its message back, like the event loop.
func run(t *testing.T, a App, cmd tea.Cmd) App {
	t.Helper()
	if cmd == nil {
		t.Fatal("expected a command, got nil")
	}
	m, _ := a.Update(cmd())
	return m.(App)
}

// login walks a fresh app through auth and onboarding with the defaults
// and resolves the activation fetch.
func login(t *testing.T, a App) App {
	t.Helper()

	a.auth.inputs[authFieldEmail].SetValue("ada@example.com")
	a.auth.inputs[authFieldPassword].SetValue("password")
	a, _ = press(t, a, "enter")
	if a.view != ViewOnboarding {
		t.Fatalf("after auth submit view = %v, want onboarding", a.view)
	}

	a, cmd := press(t, a, "enter") // accept default interests
	if a.view != ViewHome {
		t.Fatalf("after onboarding view = %v, want home", a.view)
	}
	return run(t, a, cmd)
}

func TestStartsOnAuthWhenLoggedOut(t *testing.T) {
	a, _ := newTestApp(t)
	if a.view != ViewAuth {
		t.Errorf("start view = %v, want auth", a.view)
	}
	if a.auth.mode != authLogin {
		t.Error("auth does not start in login sub-mode")
	}
}

func TestStartsOnHomeWhenSessionRestored(t *testing.T) {
	dir := t.TempDir()
	db, err := storage.Open(filepath.Join(dir, "test.db"))
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })

	db.SaveSession(model.UserProfile{
		Email:    "ada@example.com",
		LoggedIn: true,
		Preferences: model.UserPreferences{
			Interests:  []string{"AI"},
			AlertLevel: model.AlertMedium,
		},
	})

	sess := session.New(db)
	start := sess.Hydrate()
	a := New(sess, feed.New(sess), saved.New(db), provider.NewSample(5), start)

	if a.view != ViewHome {
		t.Errorf("restored start view = %v, want home", a.view)
	}
	if cmd := a.Init(); cmd == nil {
		t.Error("Init returned no activation command for a restored session")
	}
}

func TestLoginFlowPopulatesFeed(t *testing.T) {
	a, e := newTestApp(t)
	a = login(t, a)

	if !e.session.LoggedIn() {
		t.Fatal("session not logged in after onboarding")
	}
	if got := e.feed.Len(); got != 5 {
		t.Errorf("feed length after activation = %d, want 5", got)
	}
}

func TestAuthRejectsInvalidEmail(t *testing.T) {
	a, e := newTestApp(t)

	a.auth.inputs[authFieldEmail].SetValue("not-an-email")
	a.auth.inputs[authFieldPassword].SetValue("password")
	a, _ = press(t, a, "enter")

	if a.view != ViewAuth {
		t.Errorf("view = %v after invalid email, want auth", a.view)
	}
	if a.auth.errMsg == "" {
		t.Error("no field message for invalid email")
	}
	if e.session.Profile().Email != "" {
		t.Error("invalid credentials reached the session store")
	}
}

func TestSignupValidation(t *testing.T) {
	a, _ := newTestApp(t)
	a, _ = press(t, a, "ctrl+t")
	if a.auth.mode != authSignup {
		t.Fatal("ctrl+t did not switch to signup")
	}

	a.auth.inputs[authFieldEmail].SetValue("ada@example.com")
	a.auth.inputs[authFieldPassword].SetValue("abc") // too weak
	a.auth.inputs[authFieldConfirm].SetValue("abc")
	a, _ = press(t, a, "enter")
	if a.view != ViewAuth || a.auth.errMsg == "" {
		t.Error("weak password accepted at signup")
	}

	a.auth.inputs[authFieldPassword].SetValue("Str0ng!pass")
	a.auth.inputs[authFieldConfirm].SetValue("different")
	a, _ = press(t, a, "enter")
	if a.view != ViewAuth || a.auth.errMsg == "" {
		t.Error("mismatched confirmation accepted at signup")
	}

	a.auth.inputs[authFieldConfirm].SetValue("Str0ng!pass")
	a, _ = press(t, a, "enter")
	if a.view != ViewOnboarding {
		t.Errorf("view = %v after valid signup, want onboarding", a.view)
	}
}

func TestOnboardingRequiresAnInterest(t *testing.T) {
	a, e := newTestApp(t)
	a.auth.inputs[authFieldEmail].SetValue("ada@example.com")
	a.auth.inputs[authFieldPassword].SetValue("password")
	a, _ = press(t, a, "enter")

	// Deselect both defaults: AI is under the cursor, Finance is next.
	a, _ = press(t, a, "space")
	a, _ = press(t, a, "j")
	a, _ = press(t, a, "space")
	a, _ = press(t, a, "enter")

	if a.view != ViewOnboarding {
		t.Errorf("view = %v with zero interests, want onboarding", a.view)
	}
	if e.session.LoggedIn() {
		t.Error("logged in with zero interests")
	}
}

func TestPaginationFromEndOfList(t *testing.T) {
	a, e := newTestApp(t)
	a = login(t, a)

	a, _ = press(t, a, "G") // jump to last item
	a, cmd := press(t, a, "j")
	a = run(t, a, cmd)

	if got := e.feed.Len(); got != 10 {
		t.Errorf("feed length after load-more = %d, want 10", got)
	}
}

func TestSingleFetchInFlight(t *testing.T) {
	a, _ := newTestApp(t)
	a = login(t, a)

	a, cmd := press(t, a, "r")
	if cmd == nil {
		t.Fatal("refresh produced no command")
	}
	// A second refresh while the first is in flight must be refused.
	if _, second := press(t, a, "r"); second != nil {
		t.Error("second refresh started while one was in flight")
	}
	if _, more := press(t, a, "m"); more != nil {
		t.Error("load-more started while a refresh was in flight")
	}
}

func TestDetailAlwaysReturnsHome(t *testing.T) {
	a, _ := newTestApp(t)
	a = login(t, a)

	a, _ = press(t, a, "2") // alerts
	if a.view != ViewAlerts {
		t.Fatalf("view = %v, want alerts", a.view)
	}
	a, _ = press(t, a, "enter")
	if a.view != ViewDetail {
		t.Fatalf("view = %v, want detail", a.view)
	}
	a, _ = press(t, a, "esc")
	if a.view != ViewHome {
		t.Errorf("detail closed to %v, want home", a.view)
	}
}

func TestSaveToggleFromHome(t *testing.T) {
	a, e := newTestApp(t)
	a = login(t, a)

	a, _ = press(t, a, "s")
	if got := e.saved.Count(); got != 1 {
		t.Fatalf("saved count = %d after toggle, want 1", got)
	}
	a, _ = press(t, a, "s")
	if got := e.saved.Count(); got != 0 {
		t.Errorf("saved count = %d after second toggle, want 0", got)
	}
}

func TestImageEditorReturnsToPreviousView(t *testing.T) {
	a, _ := newTestApp(t)
	a = login(t, a)

	a, _ = press(t, a, "3") // profile
	a, _ = press(t, a, "e")
	if a.view != ViewImageEditor {
		t.Fatalf("view = %v, want image editor", a.view)
	}
	a, _ = press(t, a, "esc")
	if a.view != ViewProfile {
		t.Errorf("editor closed to %v, want profile", a.view)
	}
}

func TestLogoutResetsEverything(t *testing.T) {
	a, e := newTestApp(t)
	a = login(t, a)
	a, _ = press(t, a, "s") // save something first

	a, _ = press(t, a, "3")
	a, _ = press(t, a, "x")

	if a.view != ViewAuth {
		t.Errorf("view after logout = %v, want auth", a.view)
	}
	if a.auth.mode != authLogin {
		t.Error("auth not in login sub-mode after logout")
	}
	if e.session.LoggedIn() {
		t.Error("still logged in")
	}
	if e.feed.Len() != 0 {
		t.Error("feed survived logout")
	}
	if e.saved.Count() != 0 {
		t.Error("saved items survived logout")
	}
	if _, ok := e.db.LoadSession(); ok {
		t.Error("session slot survived logout")
	}
	if _, ok := e.db.LoadSavedItems(); ok {
		t.Error("saved-items slot survived logout")
	}
}

func TestStaleFetchAfterLogoutDiscarded(t *testing.T) {
	a, e := newTestApp(t)
	a = login(t, a)

	a, cmd := press(t, a, "r")
	if cmd == nil {
		t.Fatal("refresh produced no command")
	}

	a, _ = press(t, a, "3")
	a, _ = press(t, a, "x") // logout while the fetch is in flight

	m, _ := a.Update(cmd())
	a = m.(App)

	if got := e.feed.Len(); got != 0 {
		t.Errorf("stale fetch repopulated the feed: len = %d", got)
	}
	if a.view != ViewAuth {
		t.Errorf("view = %v, want auth", a.view)
	}
}

func TestTabKeysInactiveWhileLoggedOut(t *testing.T) {
	a, _ := newTestApp(t)

	a, _ = press(t, a, "2")
	if a.view != ViewAuth {
		t.Errorf("tab shortcut left auth while logged out: view = %v", a.view)
	}
}

func TestCriticalBadgeCount(t *testing.T) {
	a, e := newTestApp(t)
	a = login(t, a)

	// Sample's first page (offset 0, size 5) carries no critical items; the
	// second page does.
	if got := e.feed.CriticalCount(); got != 0 {
		t.Fatalf("unexpected critical count on first page: %d", got)
	}

	a, cmd := press(t, a, "m")
	if cmd == nil {
		t.Fatal("load-more refused")
	}
	a = run(t, a, cmd)
	if got := e.feed.CriticalCount(); got == 0 {
		t.Error("no critical items after second page; badge untestable")
	}
}
