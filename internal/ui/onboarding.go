package ui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vynorlabs/vynornews/internal/model"
)

// interestChoices is the fixed onboarding catalog.
var interestChoices = []string{
	"AI", "Finance", "Technology", "Markets", "Energy", "Healthcare", "Policy", "Crypto",
}

// alertLevels in cycle order for the onboarding and profile pickers.
var alertLevels = []model.AlertLevel{model.AlertLow, model.AlertMedium, model.AlertHigh}

// onboardingModel is the preference picker shown once after signup.
type onboardingModel struct {
	cursor     int
	selected   map[string]bool
	alertLevel model.AlertLevel
	errMsg     string
}

func newOnboardingModel() onboardingModel {
	// AI and Finance are preselected; accepting the defaults as-is is the
	// expected fast path.
	return onboardingModel{
		selected:   map[string]bool{"AI": true, "Finance": true},
		alertLevel: model.AlertMedium,
	}
}

// interests returns the chosen tags in catalog order.
func (m onboardingModel) interests() []string {
	out := make([]string, 0, len(m.selected))
	for _, choice := range interestChoices {
		if m.selected[choice] {
			out = append(out, choice)
		}
	}
	return out
}

// cycleAlertLevel advances to the next alert level.
func cycleAlertLevel(current model.AlertLevel) model.AlertLevel {
	for i, level := range alertLevels {
		if level == current {
			return alertLevels[(i+1)%len(alertLevels)]
		}
	}
	return model.AlertMedium
}

// updateOnboarding handles key input while onboarding is active.
func (a App) updateOnboarding(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "j", "down":
		if a.onboarding.cursor < len(interestChoices)-1 {
			a.onboarding.cursor++
		}
		return a, nil

	case "k", "up":
		if a.onboarding.cursor > 0 {
			a.onboarding.cursor--
		}
		return a, nil

	case " ":
		choice := interestChoices[a.onboarding.cursor]
		a.onboarding.selected[choice] = !a.onboarding.selected[choice]
		a.onboarding.errMsg = ""
		return a, nil

	case "a":
		a.onboarding.alertLevel = cycleAlertLevel(a.onboarding.alertLevel)
		return a, nil

	case "enter":
		interests := a.onboarding.interests()
		if len(interests) == 0 {
			a.onboarding.errMsg = "select at least one interest"
			return a, nil
		}

		a.session.CompleteOnboarding(model.UserPreferences{
			Interests:  interests,
			AlertLevel: a.onboarding.alertLevel,
		})
		// Any feed content predating this login is stale now.
		a.feed.Reset()
		a.view = ViewHome
		return a, a.activateFeed()
	}

	return a, nil
}

// viewOnboarding renders the preference picker.
func (a App) viewOnboarding() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("VynorNews"))
	b.WriteString("\n\n")
	b.WriteString(labelStyle.Render("What should we track for you?"))
	b.WriteString("\n\n")

	for i, choice := range interestChoices {
		mark := "[ ]"
		if a.onboarding.selected[choice] {
			mark = "[x]"
		}
		line := mark + " " + choice
		if i == a.onboarding.cursor {
			b.WriteString(selectedChoiceStyle.Render(line))
		} else {
			b.WriteString(choiceStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(metaStyle.Render("alert level: " + string(a.onboarding.alertLevel)))
	b.WriteString("\n")

	if a.onboarding.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(a.onboarding.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("space: toggle • a: alert level • enter: finish"))
	return b.String()
}
