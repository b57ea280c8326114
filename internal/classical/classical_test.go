package classical

import "testing"

func TestLetter(t *testing.T) {
	tests := []struct {
		letter string
		want   string
	}{
		{"A", "kulliyah mujibah"},
		{"E", "kulliyah salibah"},
		{"I", "juziyyah mujibah"},
		{"O", "juziyyah salibah"},
		{"U", ""},
	}

	for _, tt := range tests {
		if got := Letter(tt.letter); got != tt.want {
			t.Errorf("Letter(%q) = %q, want %q", tt.letter, got, tt.want)
		}
	}
}

func TestFigure(t *testing.T) {
	tests := []struct {
		n    int
		want string
	}{
		{1, "al-shakl al-awwal"},
		{2, "al-shakl al-thani"},
		{3, "al-shakl al-thalith"},
		{4, "al-shakl al-rabi"},
		{0, ""},
		{5, ""},
	}

	for _, tt := range tests {
		if got := Figure(tt.n); got != tt.want {
			t.Errorf("Figure(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}

func TestRole(t *testing.T) {
	tests := []struct {
		role string
		want string
	}{
		{"syllogism", "qiyas"},
		{"minor premise", "sughra"},
		{"major premise", "kubra"},
		{"conclusion", "natija"},
		{"minor term", "hadd-e-asghar"},
		{"major term", "hadd-e-akbar"},
		{"middle term", "hadd-e-awsat"},
		{"term", "hadd"},
		{"corollary", ""},
	}

	for _, tt := range tests {
		if got := Role(tt.role); got != tt.want {
			t.Errorf("Role(%q) = %q, want %q", tt.role, got, tt.want)
		}
	}
}

func TestQuantityQuality(t *testing.T) {
	if got := Quantity("universal"); got != "kulliyah" {
		t.Errorf("Quantity(universal) = %q, want kulliyah", got)
	}
	if got := Quantity("particular"); got != "juziyyah" {
		t.Errorf("Quantity(particular) = %q, want juziyyah", got)
	}
	if got := Quantity("singular"); got != "" {
		t.Errorf("Quantity(singular) = %q, want empty", got)
	}
	if got := Quality("affirmative"); got != "mujibah" {
		t.Errorf("Quality(affirmative) = %q, want mujibah", got)
	}
	if got := Quality("negative"); got != "salibah" {
		t.Errorf("Quality(negative) = %q, want salibah", got)
	}
	if got := Quality("privative"); got != "" {
		t.Errorf("Quality(privative) = %q, want empty", got)
	}
}

func TestCondition(t *testing.T) {
	// Every rule the engine applies has a classical reading.
	rules := []string{
		"undistributed-middle",
		"illicit-major",
		"illicit-minor",
		"exclusive-premises",
		"quality-mismatch",
		"no-universal-premise",
		"illicit-universal-conclusion",
		"existential-fallacy",
	}

	for _, rule := range rules {
		if Condition(rule) == "" {
			t.Errorf("Condition(%q) is empty", rule)
		}
	}

	if got := Condition("four-terms"); got != "" {
		t.Errorf("Condition(four-terms) = %q, want empty", got)
	}
}

func TestProductive(t *testing.T) {
	if got := Productive(true); got != "muntij" {
		t.Errorf("Productive(true) = %q, want muntij", got)
	}
	if got := Productive(false); got != "'aqim" {
		t.Errorf("Productive(false) = %q, want 'aqim", got)
	}
}
