package mantiq

// Distribution of a term is whether its proposition makes a claim about
// every member of the term's class. The classical table per letter type:
//
//	A distributes its subject only.
//	E distributes both subject and predicate.
//	I distributes neither.
//	O distributes its predicate only.

// DistributesSubject reports whether the letter type distributes the
// subject term.
func (l Letter) DistributesSubject() bool {
	return l == LetterA || l == LetterE
}

// DistributesPredicate reports whether the letter type distributes the
// predicate term.
func (l Letter) DistributesPredicate() bool {
	return l == LetterE || l == LetterO
}

// Distributes reports whether the proposition distributes the given term.
// A term the proposition does not mention is never distributed.
func (p Proposition) Distributes(t Term) bool {
	if p.subject.Equal(t) {
		return p.Letter().DistributesSubject()
	}
	if p.predicate.Equal(t) {
		return p.Letter().DistributesPredicate()
	}
	return false
}
