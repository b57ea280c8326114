package mantiq

import "fmt"

// Quantity is the quantity axis of a proposition: whether it speaks about
// the entire subject class or only part of it.
type Quantity int

const (
	_ Quantity = iota
	// Universal quantifies over the whole subject class ("all", "no").
	Universal
	// Particular quantifies over part of the subject class ("some").
	Particular
)

func (q Quantity) String() string {
	switch q {
	case Universal:
		return "universal"
	case Particular:
		return "particular"
	default:
		return "?"
	}
}

// Quality is the quality axis of a proposition: whether it affirms or
// denies the predicate of the subject.
type Quality int

const (
	_ Quality = iota
	// Affirmative affirms the predicate of the subject.
	Affirmative
	// Negative denies the predicate of the subject.
	Negative
)

func (q Quality) String() string {
	switch q {
	case Affirmative:
		return "affirmative"
	case Negative:
		return "negative"
	default:
		return "?"
	}
}

// Letter is the classical letter type of a proposition, the 2x2 product of
// quantity and quality.
type Letter int

const (
	_ Letter = iota
	// LetterA is the universal affirmative: "All S is P".
	LetterA
	// LetterE is the universal negative: "No S is P".
	LetterE
	// LetterI is the particular affirmative: "Some S is P".
	LetterI
	// LetterO is the particular negative: "Some S is not P".
	LetterO
)

func (l Letter) String() string {
	switch l {
	case LetterA:
		return "A"
	case LetterE:
		return "E"
	case LetterI:
		return "I"
	case LetterO:
		return "O"
	default:
		return "?"
	}
}

// Quantity returns the quantity axis of the letter.
func (l Letter) Quantity() Quantity {
	if l == LetterA || l == LetterE {
		return Universal
	}
	return Particular
}

// Quality returns the quality axis of the letter.
func (l Letter) Quality() Quality {
	if l == LetterA || l == LetterI {
		return Affirmative
	}
	return Negative
}

// ParseLetter converts a one-character letter name ("A", "E", "I", "O")
// into a Letter.
func ParseLetter(s string) (Letter, error) {
	switch s {
	case "A", "a":
		return LetterA, nil
	case "E", "e":
		return LetterE, nil
	case "I", "i":
		return LetterI, nil
	case "O", "o":
		return LetterO, nil
	default:
		return 0, fmt.Errorf("unknown letter type %q", s)
	}
}

// Proposition binds a subject term and a predicate term with a quantity
// and a quality. It is an immutable value; its letter type is always
// derived from the two axes, never stored.
type Proposition struct {
	subject   Term
	predicate Term
	quantity  Quantity
	quality   Quality
}

// NewProposition creates a proposition with explicit quantity and quality.
func NewProposition(subject, predicate Term, quantity Quantity, quality Quality) Proposition {
	return Proposition{
		subject:   subject,
		predicate: predicate,
		quantity:  quantity,
		quality:   quality,
	}
}

// All creates the universal affirmative "All subject is predicate" (A).
func All(subject, predicate string) Proposition {
	return NewProposition(NewTerm(subject), NewTerm(predicate), Universal, Affirmative)
}

// No creates the universal negative "No subject is predicate" (E).
func No(subject, predicate string) Proposition {
	return NewProposition(NewTerm(subject), NewTerm(predicate), Universal, Negative)
}

// Some creates the particular affirmative "Some subject is predicate" (I).
func Some(subject, predicate string) Proposition {
	return NewProposition(NewTerm(subject), NewTerm(predicate), Particular, Affirmative)
}

// SomeNot creates the particular negative "Some subject is not predicate" (O).
func SomeNot(subject, predicate string) Proposition {
	return NewProposition(NewTerm(subject), NewTerm(predicate), Particular, Negative)
}

// FromLetter creates a proposition of the given letter type.
func FromLetter(l Letter, subject, predicate Term) Proposition {
	return NewProposition(subject, predicate, l.Quantity(), l.Quality())
}

// Subject returns the subject term.
func (p Proposition) Subject() Term { return p.subject }

// Predicate returns the predicate term.
func (p Proposition) Predicate() Term { return p.predicate }

// Quantity returns the quantity axis.
func (p Proposition) Quantity() Quantity { return p.quantity }

// Quality returns the quality axis.
func (p Proposition) Quality() Quality { return p.quality }

// Letter returns the classical letter type derived from quantity and
// quality.
func (p Proposition) Letter() Letter {
	switch {
	case p.quantity == Universal && p.quality == Affirmative:
		return LetterA
	case p.quantity == Universal && p.quality == Negative:
		return LetterE
	case p.quantity == Particular && p.quality == Affirmative:
		return LetterI
	default:
		return LetterO
	}
}

// Contains reports whether the proposition mentions the term, either as
// subject or as predicate.
func (p Proposition) Contains(t Term) bool {
	return p.subject.Equal(t) || p.predicate.Equal(t)
}

// String returns the canonical reading of the proposition.
func (p Proposition) String() string {
	switch p.Letter() {
	case LetterA:
		return fmt.Sprintf("All %s is %s", p.subject, p.predicate)
	case LetterE:
		return fmt.Sprintf("No %s is %s", p.subject, p.predicate)
	case LetterI:
		return fmt.Sprintf("Some %s is %s", p.subject, p.predicate)
	case LetterO:
		return fmt.Sprintf("Some %s is not %s", p.subject, p.predicate)
	default:
		return "?"
	}
}
