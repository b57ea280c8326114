package formatter

import (
	"bytes"
	"fmt"
	"strings"
	"text/template"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/mantiq-labs/mantiq"
)

var (
	errorStyle      = color.New(color.FgRed, color.Bold)
	warningStyle    = color.New(color.FgHiYellow, color.Bold)
	ruleStyle       = color.New(color.FgYellow, color.Bold)
	headlineStyle   = color.New(color.FgCyan, color.Bold)
	lineStyle       = color.New(color.FgHiBlue, color.Bold)
	messageStyle    = color.New(color.FgRed, color.Bold)
	suggestionStyle = color.New(color.FgGreen, color.Bold)
	noStyle         = color.New(color.FgWhite)
)

// verdictFormatter is the interface that wraps the ViolationTemplate method.
// Implementations format one class of violation; most share the general
// layout, while rules with extra context carry their own template.
type verdictFormatter interface {
	ViolationTemplate() string
}

// getViolationFormatter is a factory function that returns the appropriate
// formatter for the given rule. Rules without a specific formatter fall
// back to the GeneralViolationFormatter.
func getViolationFormatter(rule mantiq.RuleID) verdictFormatter {
	switch rule {
	case mantiq.ExistentialFallacy:
		return &ExistentialFallacyFormatter{}
	default:
		return &GeneralViolationFormatter{}
	}
}

// FormatVerdict renders a verdict as a human-readable report. A valid
// verdict produces a single block naming the recognized form; an invalid
// one produces one block per violation, each marking the offending terms
// inside the argument.
func FormatVerdict(v mantiq.Verdict) string {
	if v.Valid {
		return buildValid(v)
	}
	var builder strings.Builder
	for _, violation := range v.Violations {
		formatter := getViolationFormatter(violation.Rule)
		builder.WriteString(buildViolation(v, violation, formatter))
	}
	return builder.String()
}

/***** Verdict Formatter Builder *****/

// VerdictData is the flattened view of one verdict (or one violation of
// it) that the report templates consume.
type VerdictData struct {
	Severity   string
	Category   string
	Rule       string
	Fallacy    string
	Figure     string
	Mood       string
	Form       string
	Convention string
	Message    string
	Suggestion string
	Note       string
	Lines      []argumentLine
}

// argumentLine is one rendered proposition of the argument with its line
// number and, when the violation points at terms on it, an underline row.
type argumentLine struct {
	Num       int
	Text      string
	Underline string
}

func buildViolation(v mantiq.Verdict, violation mantiq.Violation, formatter verdictFormatter) string {
	data := VerdictData{
		Severity:   violation.Severity.String(),
		Category:   violation.Category,
		Rule:       string(violation.Rule),
		Fallacy:    violation.Fallacy,
		Figure:     v.Figure.String(),
		Mood:       v.Mood.String(),
		Form:       v.Form,
		Convention: v.Convention.String(),
		Message:    violation.Message,
		Suggestion: violation.Suggestion,
		Note:       violation.Note,
		Lines:      argumentLines(v.Argument, violation.Where),
	}
	return execute("violation", formatter.ViolationTemplate(), data)
}

func buildValid(v mantiq.Verdict) string {
	data := VerdictData{
		Figure:  v.Figure.String(),
		Mood:    v.Mood.String(),
		Form:    v.Form,
		Message: "the conclusion follows; no rule of validity is broken",
		Lines:   argumentLines(v.Argument, nil),
	}
	return execute("valid", validTemplate, data)
}

const validTemplate = `{{validHeader .Form .Figure .Mood -}}
{{argument .Lines -}}
{{message .Message}}
`

func execute(name, text string, data VerdictData) string {
	funcMap := template.FuncMap{
		"header":           header,
		"validHeader":      validHeader,
		"structuralHeader": structuralHeader,
		"argument":         argument,
		"message":          message,
		"suggestion":       suggestion,
		"note":             note,
		"conventionInfo":   conventionInfo,
	}

	tmpl := template.Must(template.New(name).Funcs(funcMap).Parse(text))

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Sprintf("Error formatting verdict: %v", err)
	}
	return buf.String()
}

// utils functions used in the text templates

func header(severity string, rule string, figure string, mood string) string {
	var endString string
	switch severity {
	case "ERROR":
		endString = errorStyle.Sprintf("error: ")
	case "WARNING":
		endString = warningStyle.Sprintf("warning: ")
	case "INFO":
		endString = messageStyle.Sprintf("info: ")
	}

	endString += ruleStyle.Sprintf("%s\n", rule)
	endString += lineStyle.Sprintf(" --> ")
	endString += headlineStyle.Sprintf("figure %s, mood %s\n", figure, mood)

	return endString
}

func validHeader(form string, figure string, mood string) string {
	if form == "" {
		form = "valid syllogism"
	}

	endString := suggestionStyle.Sprintf("valid: ")
	endString += ruleStyle.Sprintf("%s\n", form)
	endString += lineStyle.Sprintf(" --> ")
	endString += headlineStyle.Sprintf("figure %s, mood %s\n", figure, mood)

	return endString
}

func structuralHeader(code string) string {
	endString := errorStyle.Sprintf("structural error: ")
	endString += ruleStyle.Sprintf("%s\n", code)
	endString += lineStyle.Sprintf(" --> ")
	endString += headlineStyle.Sprintf("not a syllogism\n")

	return endString
}

func argument(lines []argumentLine) string {
	endString := lineStyle.Sprint("  |\n")

	for _, line := range lines {
		endString += lineStyle.Sprintf("%d | ", line.Num)
		endString += noStyle.Sprintf("%s\n", line.Text)
		if line.Underline != "" {
			endString += lineStyle.Sprint("  | ")
			endString += messageStyle.Sprintf("%s\n", line.Underline)
		}
	}

	return endString
}

func message(message string) string {
	endString := lineStyle.Sprint("  = ")
	endString += messageStyle.Sprintf("%s\n", message)

	return endString
}

func suggestion(suggestion string) string {
	if suggestion == "" {
		return ""
	}

	endString := suggestionStyle.Sprint("Suggestion: ")
	endString += lineStyle.Sprintf("%s\n", suggestion)

	return endString
}

func note(note string) string {
	if note == "" {
		return ""
	}

	endString := suggestionStyle.Sprint("Note: ")
	endString += lineStyle.Sprintf("%s\n", note)

	return endString
}

/***** Argument rendering *****/

// span is a half-open range of rune columns inside a rendered line.
type span struct {
	start, end int
}

// renderedProposition is a proposition's display text plus the rune spans
// of its two term slots, so underlines can point at terms without
// searching the text (a term may be a substring of another term).
type renderedProposition struct {
	text      string
	subject   span
	predicate span
}

func renderProposition(p mantiq.Proposition) renderedProposition {
	var qualifier, copula string
	switch p.Letter() {
	case mantiq.LetterA:
		qualifier, copula = "All ", " is "
	case mantiq.LetterE:
		qualifier, copula = "No ", " is "
	case mantiq.LetterI:
		qualifier, copula = "Some ", " is "
	default:
		qualifier, copula = "Some ", " is not "
	}

	subject := p.Subject().String()
	predicate := p.Predicate().String()

	subjectStart := utf8.RuneCountInString(qualifier)
	subjectEnd := subjectStart + utf8.RuneCountInString(subject)
	predicateStart := subjectEnd + utf8.RuneCountInString(copula)
	predicateEnd := predicateStart + utf8.RuneCountInString(predicate)

	return renderedProposition{
		text:      qualifier + subject + copula + predicate,
		subject:   span{start: subjectStart, end: subjectEnd},
		predicate: span{start: predicateStart, end: predicateEnd},
	}
}

// argumentLines renders the argument in standard order, major premise
// first, with underlines under the term occurrences the violation points
// at.
func argumentLines(arg mantiq.Argument, refs []mantiq.TermRef) []argumentLine {
	rows := []struct {
		role mantiq.PropositionRole
		prop mantiq.Proposition
	}{
		{mantiq.RoleMajorPremise, arg.MajorPremise},
		{mantiq.RoleMinorPremise, arg.MinorPremise},
		{mantiq.RoleConclusion, arg.Conclusion},
	}

	lines := make([]argumentLine, 0, len(rows))
	for i, row := range rows {
		var terms []mantiq.Term
		for _, ref := range refs {
			if ref.Role == row.role {
				terms = append(terms, ref.Term)
			}
		}

		rendered := renderProposition(row.prop)
		lines = append(lines, argumentLine{
			Num:       i + 1,
			Text:      rendered.text,
			Underline: underline(rendered, row.prop, terms),
		})
	}
	return lines
}

// underline builds the tilde row marking every slot of the proposition
// occupied by one of the given terms. Empty when no slot matches.
func underline(rendered renderedProposition, p mantiq.Proposition, terms []mantiq.Term) string {
	var spans []span
	for _, t := range terms {
		if p.Subject().Equal(t) {
			spans = append(spans, rendered.subject)
		}
		if p.Predicate().Equal(t) {
			spans = append(spans, rendered.predicate)
		}
	}
	if len(spans) == 0 {
		return ""
	}

	canvas := make([]rune, utf8.RuneCountInString(rendered.text))
	for i := range canvas {
		canvas[i] = ' '
	}
	for _, s := range spans {
		for i := s.start; i < s.end && i < len(canvas); i++ {
			canvas[i] = '~'
		}
	}
	return strings.TrimRight(string(canvas), " ")
}
