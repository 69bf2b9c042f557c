package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/vynorlabs/vynornews/internal/model"
)

// Colors used in the application.
var (
	colorPrimary   = lipgloss.Color("62")  // Purple
	colorSecondary = lipgloss.Color("241") // Gray
	colorMuted     = lipgloss.Color("240") // Darker gray
	colorHighlight = lipgloss.Color("212") // Pink
	colorDanger    = lipgloss.Color("196") // Red
	colorWarning   = lipgloss.Color("214") // Orange
	colorSuccess   = lipgloss.Color("78")  // Green
)

// headerStyle for the app title bar.
var headerStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// tabStyle for inactive tab labels.
var tabStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Padding(0, 1)

// tabActiveStyle for the selected tab.
var tabActiveStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// badgeStyle for the critical-count badge on the alerts tab.
var badgeStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorDanger).
	Padding(0, 1)

// cardSelectedStyle for the highlighted feed card.
var cardSelectedStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorHighlight).
	Padding(0, 1)

// cardStyle for unselected feed cards.
var cardStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorMuted).
	Padding(0, 1)

// titleStyle for item titles.
var titleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255"))

// metaStyle for category and timestamp lines.
var metaStyle = lipgloss.NewStyle().
	Foreground(colorSecondary)

// savedMarkStyle for the bookmark marker.
var savedMarkStyle = lipgloss.NewStyle().
	Foreground(colorSuccess).
	Bold(true)

// errorStyle for field-level validation messages.
var errorStyle = lipgloss.NewStyle().
	Foreground(colorDanger).
	Bold(true)

// hintStyle for key hints at the bottom of a view.
var hintStyle = lipgloss.NewStyle().
	Foreground(colorMuted).
	Padding(1, 1)

// labelStyle for form field labels.
var labelStyle = lipgloss.NewStyle().
	Foreground(colorSecondary).
	Bold(true)

// selectedChoiceStyle for the highlighted onboarding choice.
var selectedChoiceStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("255")).
	Background(colorPrimary).
	Padding(0, 1)

// choiceStyle for unselected onboarding choices.
var choiceStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("255")).
	Padding(0, 1)

// quoteStyle for the detail-view summary pull quote.
var quoteStyle = lipgloss.NewStyle().
	Italic(true).
	Foreground(lipgloss.Color("252")).
	Border(lipgloss.NormalBorder(), false, false, false, true).
	BorderForeground(colorPrimary).
	PaddingLeft(1)

// impactStyles maps each impact level to its badge style.
var impactStyles = map[model.Impact]lipgloss.Style{
	model.ImpactLow:      lipgloss.NewStyle().Foreground(colorSecondary),
	model.ImpactMedium:   lipgloss.NewStyle().Foreground(colorSuccess),
	model.ImpactHigh:     lipgloss.NewStyle().Foreground(colorWarning).Bold(true),
	model.ImpactCritical: lipgloss.NewStyle().Foreground(colorDanger).Bold(true),
}

// impactBadge renders the impact label for a card or the detail header.
func impactBadge(impact model.Impact) string {
	style, ok := impactStyles[impact]
	if !ok {
		style = impactStyles[model.ImpactLow]
	}
	return style.Render("[" + string(impact) + "]")
}
