package mantiq

import (
	"fmt"
	"strings"
)

// PropositionRole names one of the three propositions of a syllogism.
type PropositionRole int

const (
	_ PropositionRole = iota
	RoleMinorPremise
	RoleMajorPremise
	RoleConclusion
)

func (r PropositionRole) String() string {
	switch r {
	case RoleMinorPremise:
		return "minor premise"
	case RoleMajorPremise:
		return "major premise"
	case RoleConclusion:
		return "conclusion"
	default:
		return "?"
	}
}

// TermRef points at one occurrence of a term inside the argument, by
// proposition role. Violations carry these so presentation layers can mark
// the exact offending spots.
type TermRef struct {
	Role PropositionRole
	Term Term
}

// Violation reports one broken validity rule.
type Violation struct {
	Rule       RuleID   // machine-stable rule identifier
	Fallacy    string   // stable fallacy name, e.g. "Undistributed Middle"
	Category   string   // rule family: distribution, quality, quantity, existential
	Severity   Severity // presentation severity, overridable per rule
	Message    string   // technical explanation naming roles and terms
	Note       string   // classical (transliterated) reading of the condition
	Suggestion string   // corrective conclusion when the premises support one
	Where      []TermRef
}

// Argument is the role-oriented view of a syllogism: premises keyed by
// their resolved roles rather than by the caller's slot order.
type Argument struct {
	MajorPremise Proposition
	MinorPremise Proposition
	Conclusion   Proposition
}

// Verdict is the result of verifying a structurally well-formed syllogism.
// Valid is true iff Violations is empty.
type Verdict struct {
	Valid      bool
	Figure     Figure
	Mood       Mood
	Form       string // mnemonic name when (figure, mood) is a recognized valid form
	Roles      TermRoles
	Argument   Argument
	Convention ImportConvention
	Violations []Violation
}

// StructuralCode identifies why three propositions fail to form a
// syllogism.
type StructuralCode int

const (
	_ StructuralCode = iota
	// NoMiddleTerm means no term occurs in both premises and not in the
	// conclusion.
	NoMiddleTerm
	// AmbiguousMiddleTerm means more than one term qualifies as the middle.
	AmbiguousMiddleTerm
	// TermMismatch means the conclusion's subject or predicate does not
	// occur in exactly one premise each.
	TermMismatch
	// UnrecognizedFigure means the middle term's premise positions match
	// no figure. Role resolution leaves no path to it; figure determination
	// still reports it rather than misclassifying.
	UnrecognizedFigure
)

func (c StructuralCode) String() string {
	switch c {
	case NoMiddleTerm:
		return "no-middle-term"
	case AmbiguousMiddleTerm:
		return "ambiguous-middle-term"
	case TermMismatch:
		return "term-mismatch"
	case UnrecognizedFigure:
		return "unrecognized-figure"
	default:
		return "?"
	}
}

// StructuralError reports that the input does not constitute a syllogism.
// It is a distinct result tier from logical invalidity: the engine refuses
// to run validity rules on it, and it is never folded into an invalid
// verdict.
type StructuralError struct {
	Code   StructuralCode
	Detail string
	Terms  []Term // offending terms, when identifiable
}

func (e *StructuralError) Error() string {
	if len(e.Terms) == 0 {
		return fmt.Sprintf("%s: %s", e.Code, e.Detail)
	}
	names := make([]string, len(e.Terms))
	for i, t := range e.Terms {
		names[i] = fmt.Sprintf("%q", t)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Detail, strings.Join(names, ", "))
}
