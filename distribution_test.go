package mantiq

import "testing"

func TestLetterDistribution(t *testing.T) {
	tests := []struct {
		letter    Letter
		subject   bool
		predicate bool
	}{
		{LetterA, true, false},
		{LetterE, true, true},
		{LetterI, false, false},
		{LetterO, false, true},
	}

	for _, tt := range tests {
		if got := tt.letter.DistributesSubject(); got != tt.subject {
			t.Errorf("%s.DistributesSubject() = %v, want %v", tt.letter, got, tt.subject)
		}
		if got := tt.letter.DistributesPredicate(); got != tt.predicate {
			t.Errorf("%s.DistributesPredicate() = %v, want %v", tt.letter, got, tt.predicate)
		}
	}
}

func TestPropositionDistributes(t *testing.T) {
	subject := NewTerm("cats")
	predicate := NewTerm("animals")

	tests := []struct {
		p         Proposition
		subject   bool
		predicate bool
	}{
		{All("cats", "animals"), true, false},
		{No("cats", "animals"), true, true},
		{Some("cats", "animals"), false, false},
		{SomeNot("cats", "animals"), false, true},
	}

	for _, tt := range tests {
		if got := tt.p.Distributes(subject); got != tt.subject {
			t.Errorf("%s.Distributes(%s) = %v, want %v", tt.p, subject, got, tt.subject)
		}
		if got := tt.p.Distributes(predicate); got != tt.predicate {
			t.Errorf("%s.Distributes(%s) = %v, want %v", tt.p, predicate, got, tt.predicate)
		}
	}
}

func TestDistributesAbsentTerm(t *testing.T) {
	p := No("cats", "animals")

	// E distributes both of its terms, but never one it does not mention.
	if p.Distributes(NewTerm("dogs")) {
		t.Error("a proposition should not distribute a term it does not mention")
	}
}

func TestDistributesCaseInsensitive(t *testing.T) {
	p := All("Cats", "Animals")

	if !p.Distributes(NewTerm("cats")) {
		t.Error("distribution should match terms case-insensitively")
	}
}
