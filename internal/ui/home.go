package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vynorlabs/vynornews/internal/model"
)

// homeModel is the main feed list.
type homeModel struct {
	cursor  int
	spinner spinner.Model
}

func newHomeModel() homeModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorHighlight)
	return homeModel{spinner: sp}
}

// updateHome handles key input while the feed view is active.
func (a App) updateHome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	items := a.feed.Items()

	switch msg.String() {
	case "j", "down":
		if a.home.cursor < len(items)-1 {
			a.home.cursor++
			return a, nil
		}
		// Moving past the end is the infinite-scroll trigger.
		return a, a.loadMoreCmd()

	case "k", "up":
		if a.home.cursor > 0 {
			a.home.cursor--
		}
		return a, nil

	case "g", "home":
		a.home.cursor = 0
		return a, nil

	case "G", "end":
		if len(items) > 0 {
			a.home.cursor = len(items) - 1
		}
		return a, nil

	case "m":
		return a, a.loadMoreCmd()

	case "r":
		return a, a.loadInitialCmd()

	case "s":
		if a.home.cursor < len(items) {
			a.saved.Toggle(items[a.home.cursor])
		}
		return a, nil

	case "enter":
		if a.home.cursor < len(items) {
			return a.openDetail(items[a.home.cursor]), nil
		}
		return a, nil
	}

	return a, nil
}

// viewHome renders the feed list with its loading states.
func (a App) viewHome() string {
	var b strings.Builder

	loading, loadingMore := a.feed.Loading()
	items := a.feed.Items()

	if loading {
		b.WriteString("\n " + a.home.spinner.View() + " fetching your briefing...\n")
		return b.String()
	}

	if len(items) == 0 {
		b.WriteString("\n" + metaStyle.Render(" Nothing here yet. Press r to refresh.") + "\n")
		return b.String()
	}

	for i, item := range items {
		b.WriteString(a.renderCard(item, i == a.home.cursor))
		b.WriteString("\n")
	}

	if loadingMore {
		b.WriteString(" " + a.home.spinner.View() + " loading more...\n")
	}

	b.WriteString(hintStyle.Render("j/k: move • enter: open • s: save • r: refresh • m: more"))
	return b.String()
}

// renderCard draws one feed card. Shared by the home and alerts lists.
func (a App) renderCard(item model.NewsItem, selected bool) string {
	mark := " "
	if a.saved.IsSaved(item.ID) {
		mark = savedMarkStyle.Render("*")
	}

	meta := impactBadge(item.Impact) + " " + metaStyle.Render(item.Category+" • "+item.Timestamp)
	title := titleStyle.Render(item.Title) + " " + mark
	body := meta + "\n" + title + "\n" + metaStyle.Render(truncate(item.Summary, 100))

	style := cardStyle
	if selected {
		style = cardSelectedStyle
	}
	if a.width > 4 {
		style = style.Width(min(a.width-2, 78))
	}
	return style.Render(body)
}

// truncate shortens a string to maxLen runes, adding "..." if truncated.
// Rune-aware to avoid breaking UTF-8 sequences.
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}
	if maxLen <= 3 {
		return string(runes[:maxLen])
	}
	return string(runes[:maxLen-3]) + "..."
}
