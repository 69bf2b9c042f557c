package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vynorlabs/vynornews/internal/session"
)

// profileModel lets the user review their account and edit preferences in
// place. Edits apply immediately; the feed keeps its current items.
type profileModel struct {
	cursor int
}

// updateProfile handles key input while the profile view is active.
func (a App) updateProfile(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.profile.cursor < len(interestChoices)-1 {
			a.profile.cursor++
		}
		return a, nil

	case "k", "up":
		if a.profile.cursor > 0 {
			a.profile.cursor--
		}
		return a, nil

	case " ":
		choice := interestChoices[a.profile.cursor]
		current := a.session.Interests()

		selected := make(map[string]bool, len(current))
		for _, tag := range current {
			selected[tag] = true
		}
		selected[choice] = !selected[choice]

		updated := make([]string, 0, len(selected))
		for _, tag := range interestChoices {
			if selected[tag] {
				updated = append(updated, tag)
			}
		}
		a.session.UpdatePreferences(session.PreferencesUpdate{Interests: updated})
		return a, nil

	case "a":
		next := cycleAlertLevel(a.session.Profile().Preferences.AlertLevel)
		a.session.UpdatePreferences(session.PreferencesUpdate{AlertLevel: next})
		return a, nil

	case "x":
		return a.logout()
	}

	return a, nil
}

// logout tears the whole session down and returns to the login form.
func (a App) logout() (tea.Model, tea.Cmd) {
	a.session.Logout()
	a.feed.Reset()
	a.saved.Reset()

	a.auth = newAuthModel() // back to the login sub-mode
	a.onboarding = newOnboardingModel()
	a.home = newHomeModel()
	a.alerts = alertsModel{}
	a.profile = profileModel{}
	a.view = ViewAuth
	return a, nil
}

// viewProfile renders account details and the preference editor.
func (a App) viewProfile() string {
	p := a.session.Profile()
	var b strings.Builder

	b.WriteString(labelStyle.Render(" Account") + "\n")
	b.WriteString(fmt.Sprintf("  %s <%s>\n", p.Name, p.Email))
	if p.Role != "" || p.Company != "" {
		b.WriteString("  " + metaStyle.Render(strings.TrimSpace(p.Role+" "+p.Company)) + "\n")
	}
	b.WriteString(fmt.Sprintf("  saved items: %d\n", a.saved.Count()))
	b.WriteString("\n")

	b.WriteString(labelStyle.Render(" Interests") + "\n")
	selected := make(map[string]bool, len(p.Preferences.Interests))
	for _, tag := range p.Preferences.Interests {
		selected[tag] = true
	}
	for i, choice := range interestChoices {
		mark := "[ ]"
		if selected[choice] {
			mark = "[x]"
		}
		line := mark + " " + choice
		if i == a.profile.cursor {
			b.WriteString(selectedChoiceStyle.Render(line))
		} else {
			b.WriteString(choiceStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(metaStyle.Render(" alert level: " + string(p.Preferences.AlertLevel)))
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("space: toggle interest • a: alert level • e: image editor • x: log out"))
	return b.String()
}
