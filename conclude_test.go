package mantiq

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConcludeBarbaraPremises(t *testing.T) {
	t.Parallel()
	conclusions, err := Conclude(
		All("greeks", "men"),
		All("men", "mortal"),
	)
	require.NoError(t, err)

	// Under the classical convention only the universal conclusion
	// survives; its subaltern is a weakened mood.
	require.Len(t, conclusions, 1)
	assert.Equal(t, "All greeks is mortal", conclusions[0].String())
}

// Under the unrestricted convention the same premises also yield the
// subaltern conclusion, strongest first.
func TestConcludeUnrestricted(t *testing.T) {
	t.Parallel()
	v := NewVerifier(VerifyConfig{Convention: ConventionUnrestricted})

	conclusions, err := v.Conclude(
		All("greeks", "men"),
		All("men", "mortal"),
	)
	require.NoError(t, err)

	require.Len(t, conclusions, 2)
	assert.Equal(t, "All greeks is mortal", conclusions[0].String())
	assert.Equal(t, "Some greeks is mortal", conclusions[1].String())
}

// Darapti premises: nothing follows under the boolean convention, the
// particular conclusion follows under the classical one.
func TestConcludeConventionDependence(t *testing.T) {
	t.Parallel()
	minor := All("humans", "fallible")
	major := All("humans", "mortal")

	conclusions, err := New().Conclude(minor, major)
	require.NoError(t, err)
	require.Len(t, conclusions, 1)
	assert.Equal(t, "Some fallible is mortal", conclusions[0].String())

	v := NewVerifier(VerifyConfig{Convention: ConventionBoolean})
	conclusions, err = v.Conclude(minor, major)
	require.NoError(t, err)
	assert.Empty(t, conclusions)
}

func TestConcludeSterilePremises(t *testing.T) {
	t.Parallel()
	conclusions, err := Conclude(
		All("dogs", "animals"),
		All("cats", "animals"),
	)
	require.NoError(t, err)
	assert.Empty(t, conclusions)
}

func TestConcludeNegativePremises(t *testing.T) {
	t.Parallel()
	conclusions, err := Conclude(
		No("dogs", "plants"),
		No("plants", "animals"),
	)
	require.NoError(t, err)

	// Two negative premises are sterile.
	assert.Empty(t, conclusions)
}

func TestConcludeNoSharedTerm(t *testing.T) {
	t.Parallel()
	_, err := Conclude(
		All("dogs", "mammals"),
		All("birds", "animals"),
	)
	require.Error(t, err)

	var serr *StructuralError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, NoMiddleTerm, serr.Code)
}

func TestConcludeAmbiguousSharedTerms(t *testing.T) {
	t.Parallel()
	_, err := Conclude(
		All("a", "b"),
		Some("a", "b"),
	)
	require.Error(t, err)

	var serr *StructuralError
	require.True(t, errors.As(err, &serr))
	assert.Equal(t, AmbiguousMiddleTerm, serr.Code)
}

// The synthesized conclusion always takes its subject from the minor
// premise and its predicate from the major premise.
func TestConcludeOrientation(t *testing.T) {
	t.Parallel()
	conclusions, err := Conclude(
		All("dogs", "mammals"),
		No("mammals", "plants"),
	)
	require.NoError(t, err)

	require.Len(t, conclusions, 1)
	assert.Equal(t, "No dogs is plants", conclusions[0].String())
}
