package validate

import (
	"errors"
	"testing"
)

func TestEmail(t *testing.T) {
	tests := []struct {
		addr    string
		wantErr error
	}{
		{"ada@example.com", nil},
		{"first.last+tag@sub.example.co", nil},
		{"  ada@example.com  ", nil}, // surrounding whitespace tolerated
		{"", ErrEmailFormat},
		{"not-an-email", ErrEmailFormat},
		{"missing@tld", ErrEmailFormat},
		{"@example.com", ErrEmailFormat},
		{"spaces in@example.com", ErrEmailFormat},
		{"user@mailinator.com", ErrEmailDisposable},
		{"user@MAILINATOR.com", ErrEmailDisposable},
		{"user@temp-mail.org", ErrEmailDisposable},
		{"user@tempmail.com", ErrEmailDisposable},
	}

	for _, tt := range tests {
		if err := Email(tt.addr); !errors.Is(err, tt.wantErr) {
			t.Errorf("Email(%q) = %v, want %v", tt.addr, err, tt.wantErr)
		}
	}
}

func TestPasswordStrength(t *testing.T) {
	tests := []struct {
		password string
		want     int
	}{
		{"", 0},
		{"abc", 0},
		{"abcdefgh", 1},       // length only
		{"Abc", 1},            // uppercase only
		{"abc1", 1},           // digit only
		{"Abc1", 2},           // uppercase + digit
		{"Abcdefg1", 3},       // length + uppercase + digit
		{"Abcdefg1!", 4},      // all four
		{"p@ssW0rd!", 4},      // all four
		{"!@#$%^&*", 2},       // length + symbol
	}

	for _, tt := range tests {
		if got := PasswordStrength(tt.password); got != tt.want {
			t.Errorf("PasswordStrength(%q) = %d, want %d", tt.password, got, tt.want)
		}
	}
}

func TestStrengthLabel(t *testing.T) {
	labels := map[int]string{0: "Weak", 1: "Weak", 2: "Fair", 3: "Good", 4: "Strong"}
	for score, want := range labels {
		if got := StrengthLabel(score); got != want {
			t.Errorf("StrengthLabel(%d) = %q, want %q", score, got, want)
		}
	}
}
