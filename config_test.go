package mantiq

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const configYAML = `name: strict
convention: boolean
language: technical
rules:
  undistributed-middle:
    severity: warning
  existential-fallacy:
    severity: "off"
`

func TestParseConfigBytes(t *testing.T) {
	t.Parallel()
	config, err := ParseConfigBytes([]byte(configYAML))
	require.NoError(t, err)

	assert.Equal(t, "strict", config.Name)
	assert.Equal(t, "boolean", config.Convention)
	assert.Equal(t, "technical", config.Language)

	require.Contains(t, config.Rules, "undistributed-middle")
	assert.Equal(t, SeverityWarning, config.Rules["undistributed-middle"].Severity)
	assert.Equal(t, SeverityOff, config.Rules["existential-fallacy"].Severity)
}

func TestParseConfigFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), "mantiq.yaml")
	require.NoError(t, os.WriteFile(path, []byte(configYAML), 0o644))

	config, err := ParseConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "strict", config.Name)

	_, err = ParseConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParseConfigBadSeverity(t *testing.T) {
	t.Parallel()
	_, err := ParseConfigBytes([]byte("rules:\n  illicit-major:\n    severity: loud\n"))
	assert.Error(t, err)
}

func TestConfigToVerifyConfig(t *testing.T) {
	t.Parallel()

	t.Run("explicit values", func(t *testing.T) {
		config, err := ParseConfigBytes([]byte(configYAML))
		require.NoError(t, err)

		vc, err := config.VerifyConfig()
		require.NoError(t, err)
		assert.Equal(t, ConventionBoolean, vc.Convention)
		assert.Equal(t, LanguageTechnical, vc.Language)
	})

	t.Run("empty values default", func(t *testing.T) {
		vc, err := Config{}.VerifyConfig()
		require.NoError(t, err)
		assert.Equal(t, ConventionClassical, vc.Convention)
		assert.Equal(t, LanguageBoth, vc.Language)
	})

	t.Run("unknown convention", func(t *testing.T) {
		_, err := Config{Convention: "medieval"}.VerifyConfig()
		assert.Error(t, err)
	})

	t.Run("unknown language", func(t *testing.T) {
		_, err := Config{Language: "latin"}.VerifyConfig()
		assert.Error(t, err)
	})
}

func TestNewWithConfig(t *testing.T) {
	t.Parallel()
	config, err := ParseConfigBytes([]byte(configYAML))
	require.NoError(t, err)

	v, err := NewWithConfig(config)
	require.NoError(t, err)
	assert.Equal(t, ConventionBoolean, v.Config().Convention)

	_, err = NewWithConfig(Config{Convention: "medieval"})
	assert.Error(t, err)
}

// A rule switched off in configuration reaches the verifier as a disabled
// rule end to end.
func TestNewWithConfigDisablesRules(t *testing.T) {
	t.Parallel()
	config, err := ParseConfigBytes([]byte(configYAML))
	require.NoError(t, err)

	v, err := NewWithConfig(config)
	require.NoError(t, err)

	// Barbari under the boolean convention would be an existential
	// fallacy, but the configuration switched that rule off.
	verdict, err := v.Verify(NewSyllogism(
		All("whales", "mammals"),
		All("mammals", "animals"),
		Some("whales", "animals"),
	))
	require.NoError(t, err)
	assert.True(t, verdict.Valid)
}

func TestParseConvention(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    ImportConvention
		wantErr bool
	}{
		{input: "", want: ConventionClassical},
		{input: "classical", want: ConventionClassical},
		{input: "Boolean", want: ConventionBoolean},
		{input: " unrestricted ", want: ConventionUnrestricted},
		{input: "medieval", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseConvention(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestParseLanguage(t *testing.T) {
	t.Parallel()
	tests := []struct {
		input   string
		want    Language
		wantErr bool
	}{
		{input: "", want: LanguageBoth},
		{input: "both", want: LanguageBoth},
		{input: "Technical", want: LanguageTechnical},
		{input: "classical", want: LanguageClassical},
		{input: "latin", wantErr: true},
	}

	for _, tt := range tests {
		got, err := ParseLanguage(tt.input)
		if tt.wantErr {
			assert.Error(t, err, "input %q", tt.input)
			continue
		}
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.want, got, "input %q", tt.input)
	}
}

func TestSeverityString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "OFF", SeverityOff.String())
	assert.Equal(t, "INFO", SeverityInfo.String())
	assert.Equal(t, "WARNING", SeverityWarning.String())
	assert.Equal(t, "ERROR", SeverityError.String())
}
