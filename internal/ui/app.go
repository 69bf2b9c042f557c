// Package ui implements the terminal client: the view state machine and
// one sub-model per screen. The stores (session, feed, saved items) are
// shared by pointer; rendering is a pure function of their state, and all
// provider IO runs as commands resolved back into the single event loop.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vynorlabs/vynornews/internal/feed"
	"github.com/vynorlabs/vynornews/internal/provider"
	"github.com/vynorlabs/vynornews/internal/saved"
	"github.com/vynorlabs/vynornews/internal/session"
)

// fetchTimeout bounds one provider call. Slightly above the provider's own
// HTTP timeout so its error is the one reported.
const fetchTimeout = 150 * time.Second

// App is the root Bubble Tea model.
type App struct {
	session *session.Store
	feed    *feed.Engine
	saved   *saved.Store
	prov    provider.Provider

	view     View
	prevView View // return target for the image editor

	auth       authModel
	onboarding onboardingModel
	home       homeModel
	alerts     alertsModel
	profile    profileModel
	detail     detailModel
	editor     editorModel

	width  int
	height int
	ready  bool
}

// New creates the app positioned on the hydration start view.
func New(sess *session.Store, engine *feed.Engine, savedStore *saved.Store, prov provider.Provider, start session.StartView) App {
	a := App{
		session:    sess,
		feed:       engine,
		saved:      savedStore,
		prov:       prov,
		auth:       newAuthModel(),
		onboarding: newOnboardingModel(),
		home:       newHomeModel(),
		editor:     newEditorModel(),
	}
	if start == session.StartHome {
		a.view = ViewHome
	}
	return a
}

// Init starts the spinner and, for a restored session, the initial load.
func (a App) Init() tea.Cmd {
	cmds := []tea.Cmd{a.home.spinner.Tick}
	if a.view == ViewHome {
		if cmd := a.activateFeed(); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return tea.Batch(cmds...)
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		if a.view == ViewDetail {
			a.detail = a.detail.layout(a.width, a.height, a.detailBody(a.detail.item))
		}
		return a, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		a.home.spinner, cmd = a.home.spinner.Update(msg)
		return a, cmd

	case feedLoadedMsg:
		a.feed.CompleteInitial(msg.gen, msg.items, msg.err)
		a.home.cursor = 0
		return a, nil

	case feedMoreMsg:
		a.feed.CompleteMore(msg.gen, msg.items, msg.err)
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleKey routes keys: globals first, then tab navigation on the chrome
// views, then the active view's own bindings.
func (a App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.session.LoggedIn() && chromeVisible(a.view) {
		switch msg.String() {
		case "q":
			return a, tea.Quit
		case "1":
			a.view = ViewHome
			return a, nil
		case "2":
			a.view = ViewAlerts
			return a, nil
		case "3":
			a.view = ViewProfile
			return a, nil
		case "tab":
			a.view = nextTab(a.view)
			return a, nil
		case "e":
			a.prevView = a.view
			a.editor = newEditorModel()
			a.view = ViewImageEditor
			return a, nil
		}
	}

	switch a.view {
	case ViewAuth:
		return a.updateAuth(msg)
	case ViewOnboarding:
		return a.updateOnboarding(msg)
	case ViewHome:
		return a.updateHome(msg)
	case ViewAlerts:
		return a.updateAlerts(msg)
	case ViewDetail:
		return a.updateDetail(msg)
	case ViewProfile:
		return a.updateProfile(msg)
	case ViewImageEditor:
		return a.updateEditor(msg)
	}
	return a, nil
}

// View renders the active screen, with header and tab bar on chrome views.
func (a App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var body string
	switch a.view {
	case ViewAuth:
		body = a.viewAuth()
	case ViewOnboarding:
		body = a.viewOnboarding()
	case ViewHome:
		body = a.viewHome()
	case ViewAlerts:
		body = a.viewAlerts()
	case ViewDetail:
		body = a.viewDetail()
	case ViewProfile:
		body = a.viewProfile()
	case ViewImageEditor:
		body = a.viewEditor()
	}

	if !chromeVisible(a.view) {
		return body
	}
	return a.renderHeader() + "\n" + body + "\n" + a.renderTabs()
}

// renderHeader draws the title bar.
func (a App) renderHeader() string {
	title := headerStyle.Render("VynorNews")
	name := a.session.Profile().Name
	if name == "" {
		return title
	}
	return title + " " + metaStyle.Render(name)
}

// renderTabs draws the bottom navigation with the critical-count badge.
func (a App) renderTabs() string {
	var parts []string
	render := func(v View, label string) {
		if a.view == v {
			parts = append(parts, tabActiveStyle.Render(label))
		} else {
			parts = append(parts, tabStyle.Render(label))
		}
	}

	render(ViewHome, "1 Feed")

	alertsLabel := "2 Alerts"
	render(ViewAlerts, alertsLabel)
	if n := a.feed.CriticalCount(); n > 0 {
		parts = append(parts, badgeStyle.Render(fmt.Sprintf("%d", n)))
	}

	render(ViewProfile, "3 Profile")
	return strings.Join(parts, " ")
}

// nextTab cycles home -> alerts -> profile -> home.
func nextTab(v View) View {
	switch v {
	case ViewHome:
		return ViewAlerts
	case ViewAlerts:
		return ViewProfile
	default:
		return ViewHome
	}
}

// activateFeed triggers the initial load for a fresh login session. The
// empty-feed check keeps it from refiring when a populated session merely
// revisits home.
func (a App) activateFeed() tea.Cmd {
	if a.feed.Len() > 0 {
		return nil
	}
	return a.loadInitialCmd()
}

// loadInitialCmd reserves the in-flight slot and returns the fetch command,
// or nil when the engine refuses.
func (a App) loadInitialCmd() tea.Cmd {
	gen, ok := a.feed.BeginInitial()
	if !ok {
		return nil
	}

	interests := a.session.Interests()
	prov := a.prov
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		items, err := prov.FetchFeedPage(ctx, interests, 0)
		return feedLoadedMsg{gen: gen, items: items, err: err}
	}
}

// loadMoreCmd is the pagination counterpart of loadInitialCmd.
func (a App) loadMoreCmd() tea.Cmd {
	offset, gen, ok := a.feed.BeginMore()
	if !ok {
		return nil
	}

	interests := a.session.Interests()
	prov := a.prov
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
		defer cancel()
		items, err := prov.FetchFeedPage(ctx, interests, offset)
		return feedMoreMsg{gen: gen, items: items, err: err}
	}
}
