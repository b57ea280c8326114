package formatter

type GeneralViolationFormatter struct{}

func (f *GeneralViolationFormatter) ViolationTemplate() string {
	return `{{header .Severity .Rule .Figure .Mood -}}
{{argument .Lines -}}
{{message .Message -}}
{{suggestion .Suggestion -}}
{{note .Note}}
`
}
