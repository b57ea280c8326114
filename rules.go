package mantiq

import (
	"fmt"

	"github.com/mantiq-labs/mantiq/internal/classical"
)

// RuleID identifies a validity rule with a stable, machine-checkable name.
type RuleID string

const (
	UndistributedMiddle        RuleID = "undistributed-middle"
	IllicitMajor               RuleID = "illicit-major"
	IllicitMinor               RuleID = "illicit-minor"
	ExclusivePremises          RuleID = "exclusive-premises"
	QualityMismatch            RuleID = "quality-mismatch"
	NoUniversalPremise         RuleID = "no-universal-premise"
	IllicitUniversalConclusion RuleID = "illicit-universal-conclusion"
	ExistentialFallacy         RuleID = "existential-fallacy"
)

// validityRule is the interface each of the general validity laws
// implements.
type validityRule interface {
	// ID returns the machine-stable rule identifier.
	ID() RuleID

	// Fallacy returns the stable fallacy name reported on violation.
	Fallacy() string

	// Category returns the rule family.
	Category() string

	Severity() Severity
	SetSeverity(Severity)

	// Check examines a resolved syllogism and returns the violation;
	// ok is false when the rule holds.
	Check(a *analysis) (v Violation, ok bool)
}

// ruleConstructor builds a fresh rule instance at its default severity.
type ruleConstructor func() validityRule

// allRuleConstructors lists the rules in the order the laws are applied.
// Verdicts report violations in this order, so it is part of the engine's
// contract.
var allRuleConstructors = []ruleConstructor{
	newUndistributedMiddleRule,
	newIllicitMajorRule,
	newIllicitMinorRule,
	newExclusivePremisesRule,
	newQualityMismatchRule,
	newNoUniversalPremiseRule,
	newIllicitUniversalConclusionRule,
	newExistentialFallacyRule,
}

// baseRule carries the identity and severity shared by every rule.
type baseRule struct {
	id       RuleID
	fallacy  string
	category string
	severity Severity
}

func (r *baseRule) ID() RuleID             { return r.id }
func (r *baseRule) Fallacy() string        { return r.fallacy }
func (r *baseRule) Category() string       { return r.category }
func (r *baseRule) Severity() Severity     { return r.severity }
func (r *baseRule) SetSeverity(s Severity) { r.severity = s }

// violation assembles a Violation for the rule with the classical
// condition reading attached as the note.
func (r *baseRule) violation(message string, where ...TermRef) Violation {
	return Violation{
		Rule:     r.id,
		Fallacy:  r.fallacy,
		Category: r.category,
		Severity: r.severity,
		Message:  message,
		Note:     classical.Condition(string(r.id)),
		Where:    where,
	}
}

// undistributedMiddleRule checks that the middle term is distributed in at
// least one premise.
type undistributedMiddleRule struct{ baseRule }

func newUndistributedMiddleRule() validityRule {
	return &undistributedMiddleRule{baseRule{
		id:       UndistributedMiddle,
		fallacy:  "Undistributed Middle",
		category: "distribution",
		severity: SeverityError,
	}}
}

func (r *undistributedMiddleRule) Check(a *analysis) (Violation, bool) {
	mid := a.roles.Middle
	if a.minor.Distributes(mid) || a.major.Distributes(mid) {
		return Violation{}, false
	}
	msg := fmt.Sprintf("middle term %q is distributed in neither premise; at least one premise must distribute it", mid)
	return r.violation(msg,
		TermRef{Role: RoleMinorPremise, Term: mid},
		TermRef{Role: RoleMajorPremise, Term: mid},
	), true
}

// illicitMajorRule checks that a major term distributed in the conclusion
// is distributed in the major premise.
type illicitMajorRule struct{ baseRule }

func newIllicitMajorRule() validityRule {
	return &illicitMajorRule{baseRule{
		id:       IllicitMajor,
		fallacy:  "Illicit Major",
		category: "distribution",
		severity: SeverityError,
	}}
}

func (r *illicitMajorRule) Check(a *analysis) (Violation, bool) {
	maj := a.roles.Major
	if !a.conclusion.Distributes(maj) || a.major.Distributes(maj) {
		return Violation{}, false
	}
	msg := fmt.Sprintf("major term %q is distributed in the conclusion but not in the major premise", maj)
	return r.violation(msg,
		TermRef{Role: RoleConclusion, Term: maj},
		TermRef{Role: RoleMajorPremise, Term: maj},
	), true
}

// illicitMinorRule checks that a minor term distributed in the conclusion
// is distributed in the minor premise.
type illicitMinorRule struct{ baseRule }

func newIllicitMinorRule() validityRule {
	return &illicitMinorRule{baseRule{
		id:       IllicitMinor,
		fallacy:  "Illicit Minor",
		category: "distribution",
		severity: SeverityError,
	}}
}

func (r *illicitMinorRule) Check(a *analysis) (Violation, bool) {
	min := a.roles.Minor
	if !a.conclusion.Distributes(min) || a.minor.Distributes(min) {
		return Violation{}, false
	}
	msg := fmt.Sprintf("minor term %q is distributed in the conclusion but not in the minor premise", min)
	return r.violation(msg,
		TermRef{Role: RoleConclusion, Term: min},
		TermRef{Role: RoleMinorPremise, Term: min},
	), true
}

// exclusivePremisesRule checks that the premises are not both negative.
type exclusivePremisesRule struct{ baseRule }

func newExclusivePremisesRule() validityRule {
	return &exclusivePremisesRule{baseRule{
		id:       ExclusivePremises,
		fallacy:  "Exclusive Premises",
		category: "quality",
		severity: SeverityError,
	}}
}

func (r *exclusivePremisesRule) Check(a *analysis) (Violation, bool) {
	if a.minor.Quality() != Negative || a.major.Quality() != Negative {
		return Violation{}, false
	}
	return r.violation("both premises are negative; two negative premises yield no conclusion"), true
}

// qualityMismatchRule checks both directions of the quality law: exactly
// one negative premise demands a negative conclusion, and a negative
// conclusion demands a negative premise.
type qualityMismatchRule struct{ baseRule }

func newQualityMismatchRule() validityRule {
	return &qualityMismatchRule{baseRule{
		id:       QualityMismatch,
		fallacy:  "Illicit Quality",
		category: "quality",
		severity: SeverityError,
	}}
}

func (r *qualityMismatchRule) Check(a *analysis) (Violation, bool) {
	negatives := 0
	if a.minor.Quality() == Negative {
		negatives++
	}
	if a.major.Quality() == Negative {
		negatives++
	}

	if negatives == 1 && a.conclusion.Quality() == Affirmative {
		return r.violation("exactly one premise is negative, so the conclusion must be negative; it is affirmative"), true
	}
	if negatives == 0 && a.conclusion.Quality() == Negative {
		return r.violation("the conclusion is negative but both premises are affirmative; a negative conclusion requires a negative premise"), true
	}
	return Violation{}, false
}

// noUniversalPremiseRule checks that at least one premise is universal.
type noUniversalPremiseRule struct{ baseRule }

func newNoUniversalPremiseRule() validityRule {
	return &noUniversalPremiseRule{baseRule{
		id:       NoUniversalPremise,
		fallacy:  "Particular Premises",
		category: "quantity",
		severity: SeverityError,
	}}
}

func (r *noUniversalPremiseRule) Check(a *analysis) (Violation, bool) {
	if a.minor.Quantity() == Universal || a.major.Quantity() == Universal {
		return Violation{}, false
	}
	return r.violation("both premises are particular; at least one premise must be universal"), true
}

// illicitUniversalConclusionRule checks that a particular premise never
// yields a universal conclusion.
type illicitUniversalConclusionRule struct{ baseRule }

func newIllicitUniversalConclusionRule() validityRule {
	return &illicitUniversalConclusionRule{baseRule{
		id:       IllicitUniversalConclusion,
		fallacy:  "Illicit Universal",
		category: "quantity",
		severity: SeverityError,
	}}
}

func (r *illicitUniversalConclusionRule) Check(a *analysis) (Violation, bool) {
	if a.conclusion.Quantity() != Universal {
		return Violation{}, false
	}

	switch {
	case a.minor.Quantity() == Particular && a.major.Quantity() == Particular:
		return r.violation("the conclusion is universal but both premises are particular"), true
	case a.minor.Quantity() == Particular:
		return r.violation("the conclusion is universal but the minor premise is particular"), true
	case a.major.Quantity() == Particular:
		return r.violation("the conclusion is universal but the major premise is particular"), true
	default:
		return Violation{}, false
	}
}

// existentialFallacyRule gates particular conclusions drawn from two
// universal premises on the configured import convention.
type existentialFallacyRule struct{ baseRule }

func newExistentialFallacyRule() validityRule {
	return &existentialFallacyRule{baseRule{
		id:       ExistentialFallacy,
		fallacy:  "Existential Fallacy",
		category: "existential",
		severity: SeverityError,
	}}
}

func (r *existentialFallacyRule) Check(a *analysis) (Violation, bool) {
	if a.conclusion.Quantity() != Particular ||
		a.minor.Quantity() != Universal || a.major.Quantity() != Universal {
		return Violation{}, false
	}

	switch a.convention {
	case ConventionUnrestricted:
		return Violation{}, false
	case ConventionClassical:
		// The "All M is S" bridge: the minor premise places the middle
		// class inside the conclusion's subject class, which the classical
		// tables treat as enough occupancy for a particular conclusion.
		if a.minor.Letter() == LetterA && a.minor.Subject().Equal(a.roles.Middle) {
			return Violation{}, false
		}
		msg := fmt.Sprintf("a particular conclusion from two universal premises requires the minor premise to be a universal affirmative with the middle term %q as its subject", a.roles.Middle)
		return r.violation(msg, TermRef{Role: RoleConclusion, Term: a.roles.Minor}), true
	default: // ConventionBoolean
		return r.violation("a particular conclusion cannot follow from two universal premises when universals carry no existential import",
			TermRef{Role: RoleConclusion, Term: a.roles.Minor}), true
	}
}
