package mantiq

import "fmt"

// Chain is an ordered sorites: a list of premises meant to link through
// shared middle terms into one final conclusion. Verification decomposes
// it into simple syllogisms, synthesizing each intermediate conclusion
// from the running argument and the next premise.
type Chain struct {
	premises   []Proposition
	conclusion Proposition
}

// NewChain creates a chain from its premises, in linking order, and the
// final conclusion.
func NewChain(premises []Proposition, conclusion Proposition) Chain {
	copied := make([]Proposition, len(premises))
	copy(copied, premises)
	return Chain{premises: copied, conclusion: conclusion}
}

// Premises returns a copy of the chain's premises.
func (c Chain) Premises() []Proposition {
	out := make([]Proposition, len(c.premises))
	copy(out, c.premises)
	return out
}

// Conclusion returns the chain's stated conclusion.
func (c Chain) Conclusion() Proposition {
	return c.conclusion
}

// LinkVerdict is the verdict of one step of a chain.
type LinkVerdict struct {
	MinorPremise Proposition // the running argument carried into the step
	MajorPremise Proposition // the chain premise consumed by the step
	Conclusion   Proposition // synthesized, or the stated conclusion at the last step

	// Sterile marks a step whose premise pair supports no conclusion at
	// all; the verdict then diagnoses the strongest attempted candidate.
	Sterile bool

	Verdict Verdict
}

// ChainVerdict aggregates the per-link verdicts of a chain. Valid is true
// iff every link is valid.
type ChainVerdict struct {
	Valid bool
	Links []LinkVerdict
}

// Summary returns a one-line summary of the chain verification.
func (cv ChainVerdict) Summary() string {
	if cv.Valid {
		return fmt.Sprintf("chain of %d links: valid", len(cv.Links))
	}
	for i, link := range cv.Links {
		if link.Sterile || !link.Verdict.Valid {
			return fmt.Sprintf("chain of %d links: invalid at link %d", len(cv.Links), i+1)
		}
	}
	return fmt.Sprintf("chain of %d links: invalid", len(cv.Links))
}

// VerifyChain verifies a sorites by folding it into n-1 linked syllogisms.
//
// Each step takes the running argument as its minor premise and the next
// chain premise as its major premise; the strongest synthesized conclusion
// becomes the next running argument. The final step is verified against
// the chain's stated conclusion. A step whose premises share no usable
// middle term is a structural break and returns a *StructuralError;
// a sterile step (premises support nothing) ends verification early with
// the chain marked invalid, since later links would have no subject.
func (v *Verifier) VerifyChain(c Chain) (ChainVerdict, error) {
	if len(c.premises) < 2 {
		return ChainVerdict{}, fmt.Errorf("chain needs at least two premises, got %d", len(c.premises))
	}

	out := ChainVerdict{Valid: true}
	current := c.premises[0]
	for i := 1; i < len(c.premises); i++ {
		next := c.premises[i]

		if i == len(c.premises)-1 {
			verdict, err := v.Verify(NewSyllogism(current, next, c.conclusion))
			if err != nil {
				return ChainVerdict{}, fmt.Errorf("link %d: %w", i, err)
			}
			out.Links = append(out.Links, LinkVerdict{
				MinorPremise: current,
				MajorPremise: next,
				Conclusion:   c.conclusion,
				Verdict:      verdict,
			})
			out.Valid = out.Valid && verdict.Valid
			continue
		}

		conclusions, err := v.Conclude(current, next)
		if err != nil {
			return ChainVerdict{}, fmt.Errorf("link %d: %w", i, err)
		}
		if len(conclusions) == 0 {
			link, err := v.sterileLink(current, next)
			if err != nil {
				return ChainVerdict{}, fmt.Errorf("link %d: %w", i, err)
			}
			out.Links = append(out.Links, link)
			out.Valid = false
			return out, nil
		}

		intermediate := conclusions[0]
		verdict, err := v.Verify(NewSyllogism(current, next, intermediate))
		if err != nil {
			return ChainVerdict{}, fmt.Errorf("link %d: %w", i, err)
		}
		out.Links = append(out.Links, LinkVerdict{
			MinorPremise: current,
			MajorPremise: next,
			Conclusion:   intermediate,
			Verdict:      verdict,
		})
		current = intermediate
	}

	return out, nil
}

// VerifyChain verifies a sorites with the default configuration.
func VerifyChain(c Chain) (ChainVerdict, error) {
	return New().VerifyChain(c)
}

// sterileLink diagnoses a premise pair that supports no conclusion by
// verifying the strongest candidate it could have produced.
func (v *Verifier) sterileLink(current, next Proposition) (LinkVerdict, error) {
	middle, serr := sharedMiddle(current, next)
	if serr != nil {
		return LinkVerdict{}, serr
	}
	candidate := FromLetter(LetterA, otherTerm(current, middle), otherTerm(next, middle))
	verdict, err := v.Verify(NewSyllogism(current, next, candidate))
	if err != nil {
		return LinkVerdict{}, err
	}
	return LinkVerdict{
		MinorPremise: current,
		MajorPremise: next,
		Conclusion:   candidate,
		Sterile:      true,
		Verdict:      verdict,
	}, nil
}
