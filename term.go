package mantiq

import "strings"

// Term is an atomic named concept, such as "humans" or "mortal beings".
// Two terms denote the same concept iff their normalized names match:
// surrounding whitespace is trimmed and case is folded, so
// NewTerm("Humans"), NewTerm(" humans "), and NewTerm("HUMANS") are all
// equal. A Term is immutable once constructed.
type Term struct {
	name string
}

// NewTerm creates a term with the given name. The name is kept as written;
// normalization applies only to comparison.
func NewTerm(name string) Term {
	return Term{name: name}
}

// Name returns the term's name as it was constructed.
func (t Term) Name() string {
	return t.name
}

// Norm returns the normalized form used for equality and map keys:
// surrounding whitespace trimmed, case folded.
func (t Term) Norm() string {
	return strings.ToLower(strings.TrimSpace(t.name))
}

// Equal reports whether two terms denote the same concept.
func (t Term) Equal(other Term) bool {
	return t.Norm() == other.Norm()
}

// IsZero reports whether the term is the zero value, i.e. has no name.
func (t Term) IsZero() bool {
	return t.name == ""
}

func (t Term) String() string {
	return strings.TrimSpace(t.name)
}
