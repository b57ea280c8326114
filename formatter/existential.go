package formatter

import "fmt"

// ExistentialFallacyFormatter renders existential-fallacy violations with
// an extra line naming the import convention in force, since the rule only
// exists relative to a convention.
type ExistentialFallacyFormatter struct{}

func (f *ExistentialFallacyFormatter) ViolationTemplate() string {
	return `{{header .Severity .Rule .Figure .Mood -}}
{{argument .Lines -}}
{{message .Message -}}
{{conventionInfo .Convention -}}
{{suggestion .Suggestion -}}
{{note .Note}}
`
}

func conventionInfo(convention string) string {
	var reading string
	switch convention {
	case "boolean":
		reading = "universal propositions carry no existential import"
	case "classical":
		reading = "only the traditional forms may draw a particular conclusion from universals"
	case "unrestricted":
		reading = "every term is presumed non-empty"
	default:
		reading = "unknown convention"
	}

	endString := lineStyle.Sprint("  | ")
	endString += messageStyle.Sprintf("%s\n", fmt.Sprintf("Convention: %s (%s)", convention, reading))

	return endString
}
