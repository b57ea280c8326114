package mantiq

import "fmt"

// Syllogism is an ordered triple of propositions: minor premise, major
// premise, conclusion. The triple is immutable; middle term, figure, and
// mood are always recomputed from the three propositions, never cached.
//
// The premise slots express the caller's labeling. Role resolution derives
// the true minor premise as the one containing the conclusion's subject
// (the classical definition), so a syllogism handed over with its premises
// swapped is analyzed, not rejected.
type Syllogism struct {
	minorPremise Proposition
	majorPremise Proposition
	conclusion   Proposition
}

// NewSyllogism creates a syllogism from its minor premise, major premise,
// and conclusion.
func NewSyllogism(minorPremise, majorPremise, conclusion Proposition) Syllogism {
	return Syllogism{
		minorPremise: minorPremise,
		majorPremise: majorPremise,
		conclusion:   conclusion,
	}
}

// MinorPremise returns the premise in the minor slot, as labeled by the
// caller.
func (s Syllogism) MinorPremise() Proposition { return s.minorPremise }

// MajorPremise returns the premise in the major slot, as labeled by the
// caller.
func (s Syllogism) MajorPremise() Proposition { return s.majorPremise }

// Conclusion returns the conclusion.
func (s Syllogism) Conclusion() Proposition { return s.conclusion }

// TermRoles names the three terms of a syllogism by role.
type TermRoles struct {
	Minor  Term // the conclusion's subject
	Major  Term // the conclusion's predicate
	Middle Term // occurs in both premises, absent from the conclusion
}

// ResolveRoles computes the minor, major, and middle terms of the
// syllogism.
//
// The middle term is the unique term occurring in both premises and not in
// the conclusion; a term occurring in only one premise is never a middle
// term candidate even if the conclusion omits it. The minor term is the
// conclusion's subject and the major term its predicate; each must occur
// in exactly one premise, and not both in the same one. Any failure is a
// *StructuralError: the triple does not form a syllogism, and no validity
// rule runs.
func ResolveRoles(s Syllogism) (TermRoles, error) {
	roles, serr := resolveRoles(s)
	if serr != nil {
		return TermRoles{}, serr
	}
	return roles, nil
}

func resolveRoles(s Syllogism) (TermRoles, *StructuralError) {
	var candidates []Term
	seen := make(map[string]bool)
	for _, t := range []Term{s.minorPremise.Subject(), s.minorPremise.Predicate()} {
		if seen[t.Norm()] {
			continue
		}
		seen[t.Norm()] = true
		if s.majorPremise.Contains(t) && !s.conclusion.Contains(t) {
			candidates = append(candidates, t)
		}
	}

	switch {
	case len(candidates) == 0:
		return TermRoles{}, &StructuralError{
			Code:   NoMiddleTerm,
			Detail: "no term occurs in both premises and is absent from the conclusion",
		}
	case len(candidates) > 1:
		return TermRoles{}, &StructuralError{
			Code:   AmbiguousMiddleTerm,
			Detail: fmt.Sprintf("%d terms occur in both premises and are absent from the conclusion", len(candidates)),
			Terms:  candidates,
		}
	}
	middle := candidates[0]

	minor := s.conclusion.Subject()
	major := s.conclusion.Predicate()

	minorAt, minorCount := premiseOf(s, minor)
	if minorCount != 1 {
		return TermRoles{}, &StructuralError{
			Code:   TermMismatch,
			Detail: fmt.Sprintf("minor term %q (the conclusion's subject) occurs in %d premises, want exactly 1", minor, minorCount),
			Terms:  []Term{minor},
		}
	}
	majorAt, majorCount := premiseOf(s, major)
	if majorCount != 1 {
		return TermRoles{}, &StructuralError{
			Code:   TermMismatch,
			Detail: fmt.Sprintf("major term %q (the conclusion's predicate) occurs in %d premises, want exactly 1", major, majorCount),
			Terms:  []Term{major},
		}
	}
	if minorAt == majorAt {
		return TermRoles{}, &StructuralError{
			Code:   TermMismatch,
			Detail: fmt.Sprintf("minor term %q and major term %q occupy the same premise", minor, major),
			Terms:  []Term{minor, major},
		}
	}

	return TermRoles{Minor: minor, Major: major, Middle: middle}, nil
}

// premiseOf locates the premise slot holding the term: 0 for the minor
// slot, 1 for the major slot, along with how many slots hold it.
func premiseOf(s Syllogism, t Term) (at, count int) {
	if s.minorPremise.Contains(t) {
		at = 0
		count++
	}
	if s.majorPremise.Contains(t) {
		at = 1
		count++
	}
	return at, count
}
