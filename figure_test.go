package mantiq

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetermineFigure(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		minor  Proposition
		major  Proposition
		figure Figure
	}{
		{
			name:   "figure 1: middle is minor predicate and major subject",
			minor:  All("S", "M"),
			major:  All("M", "P"),
			figure: Figure1,
		},
		{
			name:   "figure 2: middle is predicate of both premises",
			minor:  All("S", "M"),
			major:  All("P", "M"),
			figure: Figure2,
		},
		{
			name:   "figure 3: middle is subject of both premises",
			minor:  All("M", "S"),
			major:  All("M", "P"),
			figure: Figure3,
		},
		{
			name:   "figure 4: middle is minor subject and major predicate",
			minor:  All("M", "S"),
			major:  All("P", "M"),
			figure: Figure4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSyllogism(tt.minor, tt.major, All("S", "P"))
			roles, err := ResolveRoles(s)
			require.NoError(t, err)

			figure, err := DetermineFigure(s, roles)
			require.NoError(t, err)
			assert.Equal(t, tt.figure, figure)
		})
	}
}

// The figure depends on the resolved premise roles, not on the slots the
// caller chose, so swapping the slots never changes it.
func TestDetermineFigureSwappedSlots(t *testing.T) {
	t.Parallel()
	s := NewSyllogism(
		All("M", "P"),
		All("S", "M"),
		All("S", "P"),
	)

	roles, err := ResolveRoles(s)
	require.NoError(t, err)

	figure, err := DetermineFigure(s, roles)
	require.NoError(t, err)
	assert.Equal(t, Figure1, figure)
}

// Figures classify structure, not validity: an invalid combination still
// has a well-defined figure.
func TestDetermineFigureOfInvalidSyllogism(t *testing.T) {
	t.Parallel()
	s := NewSyllogism(
		Some("S", "M"),
		Some("M", "P"),
		Some("S", "P"),
	)

	roles, err := ResolveRoles(s)
	require.NoError(t, err)

	figure, err := DetermineFigure(s, roles)
	require.NoError(t, err)
	assert.Equal(t, Figure1, figure)
}

func TestFigureString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "1", Figure1.String())
	assert.Equal(t, "4", Figure4.String())
	assert.Equal(t, "?", Figure(0).String())
	assert.Equal(t, "?", Figure(9).String())
}
