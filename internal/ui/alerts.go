package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// alertsModel is the high/critical filter over the feed.
type alertsModel struct {
	cursor int
}

// updateAlerts handles key input while the alerts view is active.
func (a App) updateAlerts(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := a.feed.AlertItems()

	switch msg.String() {
	case "j", "down":
		if a.alerts.cursor < len(items)-1 {
			a.alerts.cursor++
		}
		return a, nil

	case "k", "up":
		if a.alerts.cursor > 0 {
			a.alerts.cursor--
		}
		return a, nil

	case "s":
		if a.alerts.cursor < len(items) {
			a.saved.Toggle(items[a.alerts.cursor])
		}
		return a, nil

	case "enter":
		if a.alerts.cursor < len(items) {
			return a.openDetail(items[a.alerts.cursor]), nil
		}
		return a, nil
	}

	return a, nil
}

// viewAlerts renders the filtered list.
func (a App) viewAlerts() string {
	items := a.feed.AlertItems()
	if len(items) == 0 {
		return "\n" + metaStyle.Render(" No high-impact items right now.") + "\n"
	}

	// Keep the cursor in range as the underlying feed changes.
	cursor := a.alerts.cursor
	if cursor >= len(items) {
		cursor = len(items) - 1
	}

	var b strings.Builder
	for i, item := range items {
		b.WriteString(a.renderCard(item, i == cursor))
		b.WriteString("\n")
	}
	b.WriteString(hintStyle.Render("j/k: move • enter: open • s: save"))
	return b.String()
}
