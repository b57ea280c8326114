package mantiq

import "testing"

func TestTermEquality(t *testing.T) {
	tests := []struct {
		a, b  string
		equal bool
	}{
		{"humans", "humans", true},
		{"Humans", "humans", true},
		{"HUMANS", "humans", true},
		{"  humans  ", "humans", true},
		{" Mortal Beings ", "mortal beings", true},
		{"humans", "mortals", false},
		{"human", "humans", false},
		{"", "", true},
	}

	for _, tt := range tests {
		got := NewTerm(tt.a).Equal(NewTerm(tt.b))
		if got != tt.equal {
			t.Errorf("NewTerm(%q).Equal(NewTerm(%q)) = %v, want %v", tt.a, tt.b, got, tt.equal)
		}
	}
}

func TestTermNorm(t *testing.T) {
	term := NewTerm("  Mortal Beings ")

	if term.Name() != "  Mortal Beings " {
		t.Errorf("Name should keep the term as written, got %q", term.Name())
	}
	if term.Norm() != "mortal beings" {
		t.Errorf("Norm should trim and fold case, got %q", term.Norm())
	}
	if term.String() != "Mortal Beings" {
		t.Errorf("String should trim but keep case, got %q", term.String())
	}

	// Norm is idempotent: normalizing a normalized name changes nothing.
	if NewTerm(term.Norm()).Norm() != term.Norm() {
		t.Errorf("Norm is not idempotent for %q", term.Name())
	}
}

func TestTermIsZero(t *testing.T) {
	if !NewTerm("").IsZero() {
		t.Error("empty term should be zero")
	}
	if NewTerm("humans").IsZero() {
		t.Error("named term should not be zero")
	}
	var zero Term
	if !zero.IsZero() {
		t.Error("zero value should be zero")
	}
}
