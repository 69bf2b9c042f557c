package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// editorModel is the avatar image editor. Generation needs the hosted
// image model, so offline builds only collect the prompt; the view still
// has to exist because it is reachable from every logged-in screen.
type editorModel struct {
	prompt textinput.Model
	status string
}

func newEditorModel() editorModel {
	prompt := textinput.New()
	prompt.Placeholder = "describe the avatar edit..."
	prompt.CharLimit = 200
	prompt.Width = 48
	prompt.Focus()
	return editorModel{prompt: prompt}
}

// updateEditor handles key input while the editor is active. Esc returns
// to the single remembered previous view.
func (a App) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.view = a.prevView
		return a, nil

	case "enter":
		if strings.TrimSpace(a.editor.prompt.Value()) == "" {
			a.editor.status = "enter a prompt first"
			return a, nil
		}
		a.editor.status = "image generation is unavailable in this build"
		return a, nil
	}

	var cmd tea.Cmd
	a.editor.prompt, cmd = a.editor.prompt.Update(msg)
	return a, cmd
}

// viewEditor renders the prompt form.
func (a App) viewEditor() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("Avatar editor"))
	b.WriteString("\n\n")
	b.WriteString(a.editor.prompt.View())
	b.WriteString("\n")

	if a.editor.status != "" {
		b.WriteString("\n" + metaStyle.Render(a.editor.status) + "\n")
	}

	b.WriteString(hintStyle.Render("esc: back"))
	return b.String()
}
