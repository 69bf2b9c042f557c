package model

import "testing"

func TestImpactValid(t *testing.T) {
	valid := []Impact{ImpactLow, ImpactMedium, ImpactHigh, ImpactCritical}
	for _, i := range valid {
		if !i.Valid() {
			t.Errorf("Impact(%q).Valid() = false, want true", i)
		}
	}

	invalid := []Impact{"", "urgent", "LOW", "Critical", "severe"}
	for _, i := range invalid {
		if i.Valid() {
			t.Errorf("Impact(%q).Valid() = true, want false", i)
		}
	}
}

func TestImpactAtLeast(t *testing.T) {
	tests := []struct {
		i, other Impact
		want     bool
	}{
		{ImpactLow, ImpactLow, true},
		{ImpactLow, ImpactMedium, false},
		{ImpactMedium, ImpactLow, true},
		{ImpactHigh, ImpactCritical, false},
		{ImpactCritical, ImpactHigh, true},
		{ImpactCritical, ImpactCritical, true},
		{"bogus", ImpactLow, true}, // unknown ranks as low
		{"bogus", ImpactMedium, false},
	}

	for _, tt := range tests {
		if got := tt.i.AtLeast(tt.other); got != tt.want {
			t.Errorf("Impact(%q).AtLeast(%q) = %v, want %v", tt.i, tt.other, got, tt.want)
		}
	}
}

func TestEmptyProfile(t *testing.T) {
	p := EmptyProfile()

	if p.LoggedIn {
		t.Error("empty profile should not be logged in")
	}
	if p.Preferences.Interests == nil || len(p.Preferences.Interests) != 0 {
		t.Errorf("interests = %v, want empty non-nil slice", p.Preferences.Interests)
	}
	if p.Preferences.AlertLevel != AlertMedium {
		t.Errorf("alert level = %q, want %q", p.Preferences.AlertLevel, AlertMedium)
	}
}
