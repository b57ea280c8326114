package mantiq

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ImportConvention selects the existential-import reading of universal
// propositions. It decides the fate of arguments that draw a particular
// conclusion from two universal premises, and nothing else.
type ImportConvention int

const (
	_ ImportConvention = iota
	// ConventionBoolean reads universals with no existential import: a
	// particular conclusion never follows from two universal premises.
	// Accepts the 15 unconditionally valid forms.
	ConventionBoolean
	// ConventionClassical accepts a particular conclusion from universal
	// premises only when the minor premise is a universal affirmative with
	// the middle term as its subject, which ties the conclusion's subject
	// to a class the premises treat as occupied. Accepts the traditional
	// 19 forms. This is the default.
	ConventionClassical
	// ConventionUnrestricted reads every universal with existential
	// import. Accepts all 24 named forms, subaltern moods included.
	ConventionUnrestricted
)

func (c ImportConvention) String() string {
	switch c {
	case ConventionBoolean:
		return "boolean"
	case ConventionClassical:
		return "classical"
	case ConventionUnrestricted:
		return "unrestricted"
	default:
		return "?"
	}
}

// ParseConvention converts a convention name from configuration into an
// ImportConvention. The empty string selects the classical default.
func ParseConvention(s string) (ImportConvention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "classical":
		return ConventionClassical, nil
	case "boolean":
		return ConventionBoolean, nil
	case "unrestricted":
		return ConventionUnrestricted, nil
	default:
		return 0, fmt.Errorf("unknown import convention %q", s)
	}
}

// Language selects how diagnostics are worded: the technical vocabulary,
// the transliterated classical one, or both.
type Language int

const (
	_ Language = iota
	LanguageTechnical
	LanguageClassical
	LanguageBoth
)

func (l Language) String() string {
	switch l {
	case LanguageTechnical:
		return "technical"
	case LanguageClassical:
		return "classical"
	case LanguageBoth:
		return "both"
	default:
		return "?"
	}
}

// ParseLanguage converts a language name from configuration into a
// Language. The empty string selects both vocabularies.
func ParseLanguage(s string) (Language, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "both":
		return LanguageBoth, nil
	case "technical":
		return LanguageTechnical, nil
	case "classical":
		return LanguageClassical, nil
	default:
		return 0, fmt.Errorf("unknown diagnostic language %q", s)
	}
}

// Severity is the presentation severity of a violation. SeverityOff
// disables a rule entirely.
type Severity int

const (
	SeverityOff Severity = iota
	SeverityInfo
	SeverityWarning
	SeverityError
)

func (s Severity) String() string {
	switch s {
	case SeverityOff:
		return "OFF"
	case SeverityInfo:
		return "INFO"
	case SeverityWarning:
		return "WARNING"
	case SeverityError:
		return "ERROR"
	default:
		return "?"
	}
}

// UnmarshalYAML decodes a severity from its lowercase configuration name.
func (s *Severity) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "off":
		*s = SeverityOff
	case "info":
		*s = SeverityInfo
	case "warning":
		*s = SeverityWarning
	case "error":
		*s = SeverityError
	default:
		return fmt.Errorf("unknown severity %q", name)
	}
	return nil
}

// ConfigRule configures a single validity rule.
type ConfigRule struct {
	Severity Severity `yaml:"severity"`
}

// Config represents the overall configuration with a name, an import
// convention, a diagnostic language, and per-rule settings.
type Config struct {
	Name       string                `yaml:"name"`
	Convention string                `yaml:"convention"`
	Language   string                `yaml:"language"`
	Rules      map[string]ConfigRule `yaml:"rules"`
}

// ParseConfig reads a YAML configuration file.
func ParseConfig(path string) (Config, error) {
	var config Config

	f, err := os.Open(path)
	if err != nil {
		return config, err
	}
	defer f.Close()

	decoder := yaml.NewDecoder(f)
	if err := decoder.Decode(&config); err != nil {
		return config, fmt.Errorf("parsing configuration %s: %w", path, err)
	}

	return config, nil
}

// ParseConfigBytes decodes a YAML configuration from memory.
func ParseConfigBytes(data []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return config, fmt.Errorf("parsing configuration: %w", err)
	}
	return config, nil
}

// VerifyConfig is the engine-level configuration derived from Config.
type VerifyConfig struct {
	Convention ImportConvention
	Language   Language
	Rules      map[string]ConfigRule
}

// DefaultConfig returns the default engine configuration: the classical
// import convention with dual-language diagnostics and every rule at its
// default severity.
func DefaultConfig() VerifyConfig {
	return VerifyConfig{
		Convention: ConventionClassical,
		Language:   LanguageBoth,
	}
}

// VerifyConfig resolves the file-shaped configuration into the
// engine-level one, validating the convention and language names.
func (c Config) VerifyConfig() (VerifyConfig, error) {
	convention, err := ParseConvention(c.Convention)
	if err != nil {
		return VerifyConfig{}, err
	}
	language, err := ParseLanguage(c.Language)
	if err != nil {
		return VerifyConfig{}, err
	}
	return VerifyConfig{
		Convention: convention,
		Language:   language,
		Rules:      c.Rules,
	}, nil
}
