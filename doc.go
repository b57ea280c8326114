// Package mantiq is a deterministic verifier for categorical syllogisms.
//
// A categorical syllogism is a three-proposition argument: two premises
// and a conclusion, each a quantified subject-predicate statement such as
// "All humans are mortal". The package models terms, propositions, and
// syllogisms as immutable values, derives the argument's figure and mood,
// and applies the classical laws of term distribution and quality/quantity
// propagation to decide validity across all four figures.
//
// Verification never short-circuits: every broken law is reported, each as
// a Violation carrying a machine-stable rule identifier, a technical
// explanation, the classical (transliterated) reading of the condition, and
// a corrective suggestion when the premises support one.
//
// Basic usage:
//
//	s := mantiq.NewSyllogism(
//		mantiq.All("humans", "mortal beings"),   // minor premise
//		mantiq.All("mortal beings", "things that die"), // major premise
//		mantiq.All("humans", "things that die"), // conclusion
//	)
//	verdict, err := mantiq.Verify(s)
//	if err != nil {
//		// structurally malformed: not a syllogism at all
//	}
//	fmt.Println(verdict.Valid, verdict.Form) // true Barbara
//
// Malformed input (no middle term, ambiguous middle term, extremes missing
// from the premises) is a *StructuralError returned from Verify, distinct
// from logical invalidity: an invalid argument is still a syllogism, and
// its verdict lists the violations instead.
//
// Whether universal propositions carry existential import is a convention,
// not a bug. The engine exposes it as a three-valued flag: the Boolean
// reading accepts 15 forms, the classical reading (the default) the
// traditional 19, and the unrestricted reading all 24 named forms.
package mantiq
