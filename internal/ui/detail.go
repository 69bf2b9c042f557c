package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vynorlabs/vynornews/internal/model"
)

// detailModel shows one item full-screen. Closing it always lands on home,
// regardless of which list opened it.
type detailModel struct {
	item     model.NewsItem
	viewport viewport.Model
	ready    bool
}

// openDetail switches to the detail view for the given item.
func (a App) openDetail(item model.NewsItem) App {
	a.detail = detailModel{item: item}
	a.detail = a.detail.layout(a.width, a.height, a.detailBody(item))
	a.view = ViewDetail
	return a
}

// layout (re)builds the viewport for the current terminal size.
func (m detailModel) layout(width, height int, body string) detailModel {
	if width <= 0 || height <= 4 {
		return m
	}
	vp := viewport.New(width, height-4)
	vp.SetContent(body)
	m.viewport = vp
	m.ready = true
	return m
}

// detailBody assembles the scrollable article body.
func (a App) detailBody(item model.NewsItem) string {
	var b strings.Builder

	b.WriteString(impactBadge(item.Impact) + " " + metaStyle.Render(item.Category+" • "+item.Timestamp))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(item.Title))
	b.WriteString("\n\n")
	b.WriteString(quoteStyle.Render(item.Summary))
	b.WriteString("\n\n")

	if item.Content != "" {
		b.WriteString(item.Content)
	} else {
		b.WriteString(metaStyle.Render("Full analysis is still being compiled for this story."))
	}
	b.WriteString("\n")

	if len(item.Sources) > 0 {
		b.WriteString("\n" + labelStyle.Render("Verified sources") + "\n")
		for _, src := range item.Sources {
			b.WriteString("  • " + src.Title + " " + metaStyle.Render(src.URI) + "\n")
		}
	}

	return b.String()
}

// updateDetail handles key input while the detail view is active.
func (a App) updateDetail(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "backspace", "q":
		a.view = ViewHome
		return a, nil

	case "s":
		saved := a.saved.Toggle(a.detail.item)
		a.detail.item.Saved = saved
		return a, nil
	}

	var cmd tea.Cmd
	a.detail.viewport, cmd = a.detail.viewport.Update(msg)
	return a, cmd
}

// viewDetail renders the article with a footer.
func (a App) viewDetail() string {
	if !a.detail.ready {
		return a.detailBody(a.detail.item)
	}

	savedHint := "s: save"
	if a.saved.IsSaved(a.detail.item.ID) {
		savedHint = "s: unsave " + savedMarkStyle.Render("*")
	}

	return a.detail.viewport.View() + "\n" +
		hintStyle.Render("esc: back to feed • "+savedHint+" • ↑/↓: scroll")
}
