package ui

// View identifies one screen of the client.
type View int

const (
	ViewAuth View = iota
	ViewOnboarding
	ViewHome
	ViewAlerts
	ViewDetail
	ViewProfile
	ViewImageEditor
)

func (v View) String() string {
	switch v {
	case ViewAuth:
		return "auth"
	case ViewOnboarding:
		return "onboarding"
	case ViewHome:
		return "home"
	case ViewAlerts:
		return "alerts"
	case ViewDetail:
		return "detail"
	case ViewProfile:
		return "profile"
	case ViewImageEditor:
		return "image-editor"
	default:
		return "unknown"
	}
}

// chromeVisible reports whether the header and tab bar are drawn for a
// view. Auth, onboarding, detail and the editor render full-bleed.
func chromeVisible(v View) bool {
	switch v {
	case ViewHome, ViewAlerts, ViewProfile:
		return true
	default:
		return false
	}
}
