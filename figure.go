package mantiq

import "strconv"

// Figure is one of the four canonical arrangements of the middle term's
// position across the two premises:
//
//	Figure | middle in minor premise | middle in major premise
//	   1   | predicate               | subject
//	   2   | predicate               | predicate
//	   3   | subject                 | subject
//	   4   | subject                 | predicate
//
// Figure is always derived from the syllogism, never stored.
type Figure int

const (
	_ Figure = iota
	Figure1
	Figure2
	Figure3
	Figure4
)

func (f Figure) String() string {
	switch f {
	case Figure1, Figure2, Figure3, Figure4:
		return strconv.Itoa(int(f))
	default:
		return "?"
	}
}

// DetermineFigure classifies the syllogism's figure from where the middle
// term sits in each premise. The roles must come from ResolveRoles on the
// same syllogism; premises are reoriented by the conclusion's subject
// exactly as the resolver orients them.
func DetermineFigure(s Syllogism, roles TermRoles) (Figure, error) {
	minor, major := orient(s, roles)
	fig, serr := determineFigure(minor, major, roles.Middle)
	if serr != nil {
		return 0, serr
	}
	return fig, nil
}

// determineFigure reads the middle term's slot in the already oriented
// premises. The resolver's invariants make every case below reachable only
// with the middle in exactly one slot per premise; anything else is
// reported as an unrecognized figure rather than misclassified.
func determineFigure(minorPremise, majorPremise Proposition, middle Term) (Figure, *StructuralError) {
	minorSubj := minorPremise.Subject().Equal(middle)
	minorPred := minorPremise.Predicate().Equal(middle)
	majorSubj := majorPremise.Subject().Equal(middle)
	majorPred := majorPremise.Predicate().Equal(middle)

	if minorSubj == minorPred || majorSubj == majorPred {
		return 0, &StructuralError{
			Code:   UnrecognizedFigure,
			Detail: "middle term does not occupy exactly one slot in each premise",
			Terms:  []Term{middle},
		}
	}

	switch {
	case minorPred && majorSubj:
		return Figure1, nil
	case minorPred && majorPred:
		return Figure2, nil
	case minorSubj && majorSubj:
		return Figure3, nil
	default: // minorSubj && majorPred
		return Figure4, nil
	}
}

// orient returns the premises in (minor, major) order: the minor premise
// is the one containing the minor term (the conclusion's subject),
// regardless of which slot the caller put it in.
func orient(s Syllogism, roles TermRoles) (minor, major Proposition) {
	if s.minorPremise.Contains(roles.Minor) && !s.minorPremise.Contains(roles.Major) {
		return s.minorPremise, s.majorPremise
	}
	return s.majorPremise, s.minorPremise
}
