package mantiq

// Conclude computes every conclusion that closes the two premises into a
// valid syllogism under the verifier's convention, strongest first: a
// universal conclusion precedes its particular subaltern. The conclusion's
// subject comes from the minor premise and its predicate from the major
// premise. An empty result means the premise pair is sterile.
//
// A *StructuralError is returned when the premises share no term or more
// than one, leaving no usable middle.
func (v *Verifier) Conclude(minorPremise, majorPremise Proposition) ([]Proposition, error) {
	middle, serr := sharedMiddle(minorPremise, majorPremise)
	if serr != nil {
		return nil, serr
	}
	roles := TermRoles{
		Minor:  otherTerm(minorPremise, middle),
		Major:  otherTerm(majorPremise, middle),
		Middle: middle,
	}
	return v.concludeFrom(minorPremise, majorPremise, roles), nil
}

// Conclude computes the valid conclusions for a premise pair with the
// default configuration.
func Conclude(minorPremise, majorPremise Proposition) ([]Proposition, error) {
	return New().Conclude(minorPremise, majorPremise)
}

// concludeFrom tries each letter type as a conclusion over the resolved
// extremes and keeps the ones that pass every rule. Candidates that do not
// even form a syllogism (degenerate premises) are skipped.
func (v *Verifier) concludeFrom(minorPremise, majorPremise Proposition, roles TermRoles) []Proposition {
	var out []Proposition
	for _, l := range []Letter{LetterA, LetterE, LetterI, LetterO} {
		conclusion := FromLetter(l, roles.Minor, roles.Major)
		a, serr := resolve(NewSyllogism(minorPremise, majorPremise, conclusion), v.config.Convention)
		if serr != nil {
			continue
		}
		if len(v.check(a)) == 0 {
			out = append(out, conclusion)
		}
	}
	return out
}

// sharedMiddle finds the unique term common to both premises.
func sharedMiddle(minorPremise, majorPremise Proposition) (Term, *StructuralError) {
	var shared []Term
	seen := make(map[string]bool)
	for _, t := range []Term{minorPremise.Subject(), minorPremise.Predicate()} {
		if seen[t.Norm()] {
			continue
		}
		seen[t.Norm()] = true
		if majorPremise.Contains(t) {
			shared = append(shared, t)
		}
	}

	switch {
	case len(shared) == 0:
		return Term{}, &StructuralError{
			Code:   NoMiddleTerm,
			Detail: "the premises share no term",
		}
	case len(shared) > 1:
		return Term{}, &StructuralError{
			Code:   AmbiguousMiddleTerm,
			Detail: "the premises share more than one term",
			Terms:  shared,
		}
	}
	return shared[0], nil
}

// otherTerm returns the premise's non-middle slot.
func otherTerm(p Proposition, middle Term) Term {
	if p.Subject().Equal(middle) {
		return p.Predicate()
	}
	return p.Subject()
}
