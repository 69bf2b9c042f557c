// Package validate implements the synchronous credential checks for the
// auth view. Results surface as field-level messages and are never
// persisted or logged.
package validate

import (
	"errors"
	"regexp"
	"strings"
	"unicode"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// disposableDomains are throwaway email providers rejected at signup.
var disposableDomains = map[string]struct{}{
	"tempmail.com":      {},
	"10minutemail.com":  {},
	"mailinator.com":    {},
	"guerrillamail.com": {},
	"yopmail.com":       {},
	"getnada.com":       {},
	"dispostable.com":   {},
	"temp-mail.org":     {},
}

var (
	ErrEmailFormat     = errors.New("enter a valid email address")
	ErrEmailDisposable = errors.New("disposable email addresses are not accepted")
)

// Email checks the address shape and rejects known disposable domains.
func Email(addr string) error {
	addr = strings.TrimSpace(addr)
	if !emailPattern.MatchString(addr) {
		return ErrEmailFormat
	}

	at := strings.LastIndexByte(addr, '@')
	domain := strings.ToLower(addr[at+1:])
	if _, blocked := disposableDomains[domain]; blocked {
		return ErrEmailDisposable
	}
	return nil
}

// PasswordStrength scores a password 0-4: one point each for length over
// seven characters, an uppercase letter, a digit, and a symbol.
func PasswordStrength(password string) int {
	score := 0
	if len(password) > 7 {
		score++
	}

	var hasUpper, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsDigit(r):
			hasDigit = true
		case !unicode.IsLetter(r) && !unicode.IsNumber(r) && !unicode.IsSpace(r):
			hasSymbol = true
		}
	}
	if hasUpper {
		score++
	}
	if hasDigit {
		score++
	}
	if hasSymbol {
		score++
	}
	return score
}

// StrengthLabel names a strength score for display.
func StrengthLabel(score int) string {
	switch {
	case score <= 1:
		return "Weak"
	case score == 2:
		return "Fair"
	case score == 3:
		return "Good"
	default:
		return "Strong"
	}
}
