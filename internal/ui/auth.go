package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vynorlabs/vynornews/internal/validate"
)

// authMode selects between the two auth sub-modes. Login is the default,
// including after a logout.
type authMode int

const (
	authLogin authMode = iota
	authSignup
)

// Input indices within authModel.inputs.
const (
	authFieldEmail = iota
	authFieldPassword
	authFieldConfirm
	authFieldRole
	authFieldCompany
	authFieldCount
)

// minSignupStrength is the lowest password score accepted at signup.
const minSignupStrength = 2

// authModel is the credential form. Login shows email+password; signup adds
// confirmation and the optional role/company fields.
type authModel struct {
	mode   authMode
	inputs []textinput.Model
	focus  int
	errMsg string
}

func newAuthModel() authModel {
	inputs := make([]textinput.Model, authFieldCount)

	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 128
	email.Width = 36
	email.Focus()
	inputs[authFieldEmail] = email

	password := textinput.New()
	password.Placeholder = "password"
	password.EchoMode = textinput.EchoPassword
	password.CharLimit = 128
	password.Width = 36
	inputs[authFieldPassword] = password

	confirm := textinput.New()
	confirm.Placeholder = "confirm password"
	confirm.EchoMode = textinput.EchoPassword
	confirm.CharLimit = 128
	confirm.Width = 36
	inputs[authFieldConfirm] = confirm

	role := textinput.New()
	role.Placeholder = "role (optional)"
	role.CharLimit = 64
	role.Width = 36
	inputs[authFieldRole] = role

	company := textinput.New()
	company.Placeholder = "company (optional)"
	company.CharLimit = 64
	company.Width = 36
	inputs[authFieldCompany] = company

	return authModel{mode: authLogin, inputs: inputs}
}

// fieldCount returns how many inputs the current mode shows.
func (m authModel) fieldCount() int {
	if m.mode == authSignup {
		return authFieldCount
	}
	return 2 // email + password
}

// toggleMode switches between login and signup, clearing transient state.
func (m authModel) toggleMode() authModel {
	if m.mode == authLogin {
		m.mode = authSignup
	} else {
		m.mode = authLogin
	}
	m.errMsg = ""
	if m.focus >= m.fieldCount() {
		m.focus = 0
	}
	return m.setFocus(m.focus)
}

// cycleFocus moves focus by delta, wrapping within the visible fields.
func (m authModel) cycleFocus(delta int) authModel {
	n := m.fieldCount()
	m.focus = (m.focus + delta + n) % n
	return m.setFocus(m.focus)
}

func (m authModel) setFocus(focus int) authModel {
	for i := range m.inputs {
		if i == focus {
			m.inputs[i].Focus()
		} else {
			m.inputs[i].Blur()
		}
	}
	return m
}

// authResult is the successful outcome of a submit.
type authResult struct {
	email   string
	role    string
	company string
}

// submit validates the form. On failure the message lands in errMsg and
// ok=false; nothing is logged or persisted.
func (m authModel) submit() (authModel, authResult, bool) {
	email := strings.TrimSpace(m.inputs[authFieldEmail].Value())
	password := m.inputs[authFieldPassword].Value()

	if err := validate.Email(email); err != nil {
		m.errMsg = err.Error()
		return m, authResult{}, false
	}
	if password == "" {
		m.errMsg = "enter your password"
		return m, authResult{}, false
	}

	if m.mode == authSignup {
		if validate.PasswordStrength(password) < minSignupStrength {
			m.errMsg = "password too weak: add length, a capital, a digit or a symbol"
			return m, authResult{}, false
		}
		if password != m.inputs[authFieldConfirm].Value() {
			m.errMsg = "passwords do not match"
			return m, authResult{}, false
		}
	}

	m.errMsg = ""
	return m, authResult{
		email:   email,
		role:    strings.TrimSpace(m.inputs[authFieldRole].Value()),
		company: strings.TrimSpace(m.inputs[authFieldCompany].Value()),
	}, true
}

// updateAuth handles key input while the auth view is active.
func (a App) updateAuth(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "tab", "down":
		a.auth = a.auth.cycleFocus(1)
		return a, nil

	case "shift+tab", "up":
		a.auth = a.auth.cycleFocus(-1)
		return a, nil

	case "ctrl+t":
		a.auth = a.auth.toggleMode()
		return a, nil

	case "enter":
		var result authResult
		var ok bool
		a.auth, result, ok = a.auth.submit()
		if !ok {
			return a, nil
		}
		a.session.CompleteAuth("", result.email, result.role, result.company)
		a.onboarding = newOnboardingModel()
		a.view = ViewOnboarding
		return a, nil
	}

	// Everything else is text entry for the focused field.
	var cmd tea.Cmd
	i := a.auth.focus
	a.auth.inputs[i], cmd = a.auth.inputs[i].Update(msg)
	return a, cmd
}

// viewAuth renders the credential form.
func (a App) viewAuth() string {
	var b strings.Builder

	b.WriteString(headerStyle.Render("VynorNews"))
	b.WriteString("\n\n")

	if a.auth.mode == authLogin {
		b.WriteString(labelStyle.Render("Sign in"))
		b.WriteString(metaStyle.Render("  (ctrl+t to create an account)"))
	} else {
		b.WriteString(labelStyle.Render("Create account"))
		b.WriteString(metaStyle.Render("  (ctrl+t to sign in)"))
	}
	b.WriteString("\n\n")

	for i := 0; i < a.auth.fieldCount(); i++ {
		b.WriteString(a.auth.inputs[i].View())
		b.WriteString("\n")
	}

	if a.auth.mode == authSignup {
		score := validate.PasswordStrength(a.auth.inputs[authFieldPassword].Value())
		b.WriteString(metaStyle.Render("strength: " + validate.StrengthLabel(score)))
		b.WriteString("\n")
	}

	if a.auth.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render(a.auth.errMsg))
		b.WriteString("\n")
	}

	b.WriteString(hintStyle.Render("tab: next field • enter: submit • ctrl+c: quit"))
	return b.String()
}
