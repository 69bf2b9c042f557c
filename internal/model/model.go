// Package model defines the core data types shared across VynorNews:
// news items, their impact classification, and the user profile.
package model

// Impact classifies how consequential a news item is. Values outside the
// four literals are rejected at the feed merge boundary.
type Impact string

const (
	ImpactLow      Impact = "low"
	ImpactMedium   Impact = "medium"
	ImpactHigh     Impact = "high"
	ImpactCritical Impact = "critical"
)

// impactRank orders impacts from low to critical.
var impactRank = map[Impact]int{
	ImpactLow:      0,
	ImpactMedium:   1,
	ImpactHigh:     2,
	ImpactCritical: 3,
}

// Valid reports whether i is one of the four known impact levels.
func (i Impact) Valid() bool {
	_, ok := impactRank[i]
	return ok
}

// AtLeast reports whether i ranks at or above other. Unknown impacts rank
// below low.
func (i Impact) AtLeast(other Impact) bool {
	return impactRank[i] >= impactRank[other]
}

// AlertLevel is the user's alert sensitivity preference.
type AlertLevel string

const (
	AlertLow    AlertLevel = "low"
	AlertMedium AlertLevel = "medium"
	AlertHigh   AlertLevel = "high"
)

// NewsSource is a verified attribution link for a news item.
type NewsSource struct {
	Title string `json:"title"`
	URI   string `json:"uri"`
}

// NewsItem is one entry in the feed. Timestamp is a display label
// ("2h ago"); PublishedAt is the machine-readable instant.
type NewsItem struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Summary     string       `json:"summary"`
	Content     string       `json:"content,omitempty"`
	Impact      Impact       `json:"impact"`
	Category    string       `json:"category"`
	Timestamp   string       `json:"timestamp"`
	PublishedAt string       `json:"publishedAt,omitempty"`
	ImageURL    string       `json:"imageUrl,omitempty"`
	Sources     []NewsSource `json:"sources,omitempty"`
	Saved       bool         `json:"isSaved,omitempty"`
}

// UserPreferences drives feed generation and alert filtering.
type UserPreferences struct {
	Interests    []string   `json:"interests"`
	AlertLevel   AlertLevel `json:"alertLevel"`
	CompanyTypes []string   `json:"companyTypes"`
}

// UserProfile is the full session state for one user.
type UserProfile struct {
	Name        string          `json:"name"`
	Email       string          `json:"email"`
	Role        string          `json:"role,omitempty"`
	Company     string          `json:"company,omitempty"`
	LoggedIn    bool            `json:"isLoggedIn"`
	Preferences UserPreferences `json:"preferences"`
}

// EmptyProfile returns the logged-out profile used before any session
// exists and after logout.
func EmptyProfile() UserProfile {
	return UserProfile{
		Preferences: UserPreferences{
			Interests:    []string{},
			AlertLevel:   AlertMedium,
			CompanyTypes: []string{},
		},
	}
}
