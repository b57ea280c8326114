package formatter

import "github.com/mantiq-labs/mantiq"

const structuralTemplate = `{{structuralHeader .Rule -}}
{{argument .Lines -}}
{{message .Message}}
`

// FormatStructuralError renders a structural error against the syllogism
// that produced it. The lines keep the caller's slot labels, major premise
// first, since role resolution failed and no reorientation is available.
// Terms the error identifies are underlined wherever they occur.
func FormatStructuralError(s mantiq.Syllogism, serr *mantiq.StructuralError) string {
	if serr == nil {
		return ""
	}

	rows := []mantiq.Proposition{s.MajorPremise(), s.MinorPremise(), s.Conclusion()}
	lines := make([]argumentLine, 0, len(rows))
	for i, p := range rows {
		rendered := renderProposition(p)
		lines = append(lines, argumentLine{
			Num:       i + 1,
			Text:      rendered.text,
			Underline: underline(rendered, p, serr.Terms),
		})
	}

	data := VerdictData{
		Rule:    serr.Code.String(),
		Message: serr.Detail,
		Lines:   lines,
	}
	return execute("structural", structuralTemplate, data)
}
