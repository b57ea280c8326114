package mantiq

import "fmt"

// Mood is the ordered triple of letter types of a syllogism, in the
// standard notation order: major premise, minor premise, conclusion. The
// mood of Barbara is "AAA", of Baroco "AOO".
type Mood struct {
	Major      Letter
	Minor      Letter
	Conclusion Letter
}

// MoodOf builds a mood from its three letters in major, minor, conclusion
// order.
func MoodOf(major, minor, conclusion Letter) Mood {
	return Mood{Major: major, Minor: minor, Conclusion: conclusion}
}

// ParseMood converts a three-letter mood string such as "AAA" or "EIO"
// into a Mood.
func ParseMood(s string) (Mood, error) {
	if len(s) != 3 {
		return Mood{}, fmt.Errorf("mood must be exactly three letters, got %q", s)
	}
	var letters [3]Letter
	for i := 0; i < 3; i++ {
		l, err := ParseLetter(s[i : i+1])
		if err != nil {
			return Mood{}, err
		}
		letters[i] = l
	}
	return Mood{Major: letters[0], Minor: letters[1], Conclusion: letters[2]}, nil
}

func (m Mood) String() string {
	return m.Major.String() + m.Minor.String() + m.Conclusion.String()
}

// DeriveMood reduces the syllogism to its mood. When the premises can be
// oriented (role resolution succeeds), the mood reads the true major and
// minor premises regardless of the caller's slot order; otherwise it falls
// back to the slots as labeled. Always total.
func DeriveMood(s Syllogism) Mood {
	minor, major := s.minorPremise, s.majorPremise
	if roles, err := ResolveRoles(s); err == nil {
		minor, major = orient(s, roles)
	}
	return Mood{
		Major:      major.Letter(),
		Minor:      minor.Letter(),
		Conclusion: s.conclusion.Letter(),
	}
}
