package mantiq

// Form is one named valid mood/figure combination from the classical
// catalog. The mnemonic names (Barbara, Celarent, ...) encode the mood in
// their vowels.
type Form struct {
	Name   string
	Figure Figure
	Mood   Mood

	// RequiresImport marks forms valid only when universal premises are
	// read with existential import: the ones drawing a particular
	// conclusion from two universal premises.
	RequiresImport bool

	// Subaltern marks the five weakened moods that draw a particular
	// conclusion where a universal one would already follow. Rejected
	// under the classical convention, accepted under the unrestricted one.
	Subaltern bool
}

// ValidUnder reports whether the form is accepted under the given import
// convention.
func (f Form) ValidUnder(convention ImportConvention) bool {
	switch convention {
	case ConventionBoolean:
		return !f.RequiresImport
	case ConventionClassical:
		return !f.Subaltern
	case ConventionUnrestricted:
		return true
	default:
		return false
	}
}

func (f Form) String() string {
	return f.Name + " (" + f.Mood.String() + "-" + f.Figure.String() + ")"
}

// canon is the full catalog of the 24 named valid forms: the 15
// unconditional ones, the 4 import-dependent ones the classical tables
// keep (Darapti, Felapton, Bramantip, Fesapo), and the 5 subaltern moods.
var canon = []Form{
	{Name: "Barbara", Figure: Figure1, Mood: MoodOf(LetterA, LetterA, LetterA)},
	{Name: "Celarent", Figure: Figure1, Mood: MoodOf(LetterE, LetterA, LetterE)},
	{Name: "Darii", Figure: Figure1, Mood: MoodOf(LetterA, LetterI, LetterI)},
	{Name: "Ferio", Figure: Figure1, Mood: MoodOf(LetterE, LetterI, LetterO)},
	{Name: "Barbari", Figure: Figure1, Mood: MoodOf(LetterA, LetterA, LetterI), RequiresImport: true, Subaltern: true},
	{Name: "Celaront", Figure: Figure1, Mood: MoodOf(LetterE, LetterA, LetterO), RequiresImport: true, Subaltern: true},

	{Name: "Cesare", Figure: Figure2, Mood: MoodOf(LetterE, LetterA, LetterE)},
	{Name: "Camestres", Figure: Figure2, Mood: MoodOf(LetterA, LetterE, LetterE)},
	{Name: "Festino", Figure: Figure2, Mood: MoodOf(LetterE, LetterI, LetterO)},
	{Name: "Baroco", Figure: Figure2, Mood: MoodOf(LetterA, LetterO, LetterO)},
	{Name: "Cesaro", Figure: Figure2, Mood: MoodOf(LetterE, LetterA, LetterO), RequiresImport: true, Subaltern: true},
	{Name: "Camestros", Figure: Figure2, Mood: MoodOf(LetterA, LetterE, LetterO), RequiresImport: true, Subaltern: true},

	{Name: "Darapti", Figure: Figure3, Mood: MoodOf(LetterA, LetterA, LetterI), RequiresImport: true},
	{Name: "Disamis", Figure: Figure3, Mood: MoodOf(LetterI, LetterA, LetterI)},
	{Name: "Datisi", Figure: Figure3, Mood: MoodOf(LetterA, LetterI, LetterI)},
	{Name: "Felapton", Figure: Figure3, Mood: MoodOf(LetterE, LetterA, LetterO), RequiresImport: true},
	{Name: "Bocardo", Figure: Figure3, Mood: MoodOf(LetterO, LetterA, LetterO)},
	{Name: "Ferison", Figure: Figure3, Mood: MoodOf(LetterE, LetterI, LetterO)},

	{Name: "Bramantip", Figure: Figure4, Mood: MoodOf(LetterA, LetterA, LetterI), RequiresImport: true},
	{Name: "Camenes", Figure: Figure4, Mood: MoodOf(LetterA, LetterE, LetterE)},
	{Name: "Dimaris", Figure: Figure4, Mood: MoodOf(LetterI, LetterA, LetterI)},
	{Name: "Fesapo", Figure: Figure4, Mood: MoodOf(LetterE, LetterA, LetterO), RequiresImport: true},
	{Name: "Fresison", Figure: Figure4, Mood: MoodOf(LetterE, LetterI, LetterO)},
	{Name: "Camenos", Figure: Figure4, Mood: MoodOf(LetterA, LetterE, LetterO), RequiresImport: true, Subaltern: true},
}

// LookupForm finds the named form for a (figure, mood) pair. The second
// return is false when the pair matches no form in the catalog, i.e. the
// combination is invalid under every convention.
func LookupForm(figure Figure, mood Mood) (Form, bool) {
	for _, f := range canon {
		if f.Figure == figure && f.Mood == mood {
			return f, true
		}
	}
	return Form{}, false
}

// Forms returns a copy of the full catalog in figure order.
func Forms() []Form {
	out := make([]Form, len(canon))
	copy(out, canon)
	return out
}
