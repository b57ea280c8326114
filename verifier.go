package mantiq

import (
	"fmt"

	"github.com/mantiq-labs/mantiq/internal/classical"
)

// analysis is the fully resolved view of a syllogism that the rules read:
// premises oriented by role, term roles, figure, mood, and the convention
// in force.
type analysis struct {
	minor      Proposition // premise containing the minor term
	major      Proposition // premise containing the major term
	conclusion Proposition
	roles      TermRoles
	figure     Figure
	mood       Mood
	convention ImportConvention
}

// resolve runs role resolution, premise orientation, and figure
// determination, the structural half of verification.
func resolve(s Syllogism, convention ImportConvention) (*analysis, *StructuralError) {
	roles, serr := resolveRoles(s)
	if serr != nil {
		return nil, serr
	}
	minor, major := orient(s, roles)
	figure, serr := determineFigure(minor, major, roles.Middle)
	if serr != nil {
		return nil, serr
	}
	return &analysis{
		minor:      minor,
		major:      major,
		conclusion: s.conclusion,
		roles:      roles,
		figure:     figure,
		mood: Mood{
			Major:      major.Letter(),
			Minor:      minor.Letter(),
			Conclusion: s.conclusion.Letter(),
		},
		convention: convention,
	}, nil
}

// Verifier applies the validity laws to syllogisms. A Verifier is
// immutable after construction and safe for concurrent use.
type Verifier struct {
	config VerifyConfig
	rules  []validityRule
}

// New creates a verifier with the default configuration: classical import
// convention, dual-language diagnostics, every rule enabled.
func New() *Verifier {
	return NewVerifier(DefaultConfig())
}

// NewVerifier creates a verifier with the given engine configuration.
// Zero-valued convention and language fields fall back to the defaults.
// Rules configured with SeverityOff are disabled entirely.
func NewVerifier(config VerifyConfig) *Verifier {
	if config.Convention == 0 {
		config.Convention = ConventionClassical
	}
	if config.Language == 0 {
		config.Language = LanguageBoth
	}

	v := &Verifier{config: config}
	for _, ctor := range allRuleConstructors {
		rule := ctor()
		if cfg, ok := config.Rules[string(rule.ID())]; ok {
			if cfg.Severity == SeverityOff {
				continue
			}
			rule.SetSeverity(cfg.Severity)
		}
		v.rules = append(v.rules, rule)
	}
	return v
}

// NewWithConfig creates a verifier from a file-shaped Config, validating
// the convention and language names.
func NewWithConfig(config Config) (*Verifier, error) {
	vc, err := config.VerifyConfig()
	if err != nil {
		return nil, err
	}
	return NewVerifier(vc), nil
}

// Config returns the verifier's engine configuration.
func (v *Verifier) Config() VerifyConfig {
	return v.config
}

// Verify checks the syllogism and returns its verdict.
//
// A *StructuralError is returned when the triple does not form a syllogism
// (no or ambiguous middle term, mismatched extremes); no validity rule
// runs in that case. Logical invalidity is not an error: the verdict lists
// every broken law in rule order, and Valid is true iff none is.
func (v *Verifier) Verify(s Syllogism) (Verdict, error) {
	a, serr := resolve(s, v.config.Convention)
	if serr != nil {
		return Verdict{}, serr
	}

	verdict := Verdict{
		Figure: a.figure,
		Mood:   a.mood,
		Roles:  a.roles,
		Argument: Argument{
			MajorPremise: a.major,
			MinorPremise: a.minor,
			Conclusion:   a.conclusion,
		},
		Convention: a.convention,
		Violations: v.check(a),
	}
	verdict.Valid = len(verdict.Violations) == 0

	if form, ok := LookupForm(a.figure, a.mood); ok {
		verdict.Form = form.Name
	}
	if !verdict.Valid {
		v.attachSuggestions(a, verdict.Violations)
	}
	v.applyLanguage(verdict.Violations)

	return verdict, nil
}

// check runs every enabled rule in order and collects the violations.
func (v *Verifier) check(a *analysis) []Violation {
	var violations []Violation
	for _, rule := range v.rules {
		if violation, broken := rule.Check(a); broken {
			violations = append(violations, violation)
		}
	}
	return violations
}

// attachSuggestions sets the corrective suggestion on every violation when
// the premises are productive: the strongest conclusion they support.
// Sterile premise pairs get no suggestion.
func (v *Verifier) attachSuggestions(a *analysis, violations []Violation) {
	conclusions := v.concludeFrom(a.minor, a.major, a.roles)
	if len(conclusions) == 0 {
		return
	}
	suggestion := fmt.Sprintf("the premises support: %s", conclusions[0])
	for i := range violations {
		violations[i].Suggestion = suggestion
	}
}

// applyLanguage reduces dual-language violations to the configured
// vocabulary. LanguageBoth keeps the technical message and the classical
// note side by side. Classical-only messages keep the term specificity of
// the technical ones by naming the first offending occurrence with its
// classical role.
func (v *Verifier) applyLanguage(violations []Violation) {
	switch v.config.Language {
	case LanguageTechnical:
		for i := range violations {
			violations[i].Note = ""
		}
	case LanguageClassical:
		for i := range violations {
			if violations[i].Note == "" {
				continue
			}
			msg := violations[i].Note
			if refs := violations[i].Where; len(refs) > 0 {
				if name := classical.Role(refs[0].Role.String()); name != "" {
					msg = fmt.Sprintf("%s (%s: %q)", msg, name, refs[0].Term)
				}
			}
			violations[i].Message = msg
			violations[i].Note = ""
		}
	}
}

// Verify checks a syllogism with the default configuration.
func Verify(s Syllogism) (Verdict, error) {
	return New().Verify(s)
}
