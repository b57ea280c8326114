package formatter

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mantiq-labs/mantiq"
	"github.com/mantiq-labs/mantiq/internal/classical"
)

// FormatBatchReport renders every result of a batch in input order,
// followed by the batch summary line.
func FormatBatchReport(r mantiq.BatchReport) string {
	var builder strings.Builder
	for _, res := range r.Results {
		builder.WriteString(headlineStyle.Sprintf("syllogism %d (id %s)\n", res.Index+1, res.ID))

		if res.Err != nil {
			var serr *mantiq.StructuralError
			if errors.As(res.Err, &serr) {
				builder.WriteString(FormatStructuralError(res.Syllogism, serr))
			} else {
				builder.WriteString(errorStyle.Sprint("error: "))
				builder.WriteString(lineStyle.Sprintf("%v\n\n", res.Err))
			}
			continue
		}
		builder.WriteString(FormatVerdict(res.Verdict))
	}

	builder.WriteString(headlineStyle.Sprintf("%s\n", r.Summary()))
	return builder.String()
}

// FormatChainVerdict renders a sorites verification link by link, followed
// by the chain summary line. A sterile link is prefixed with a note; its
// block then diagnoses the strongest candidate conclusion the premise
// pair failed to support.
func FormatChainVerdict(cv mantiq.ChainVerdict) string {
	var builder strings.Builder
	for i, link := range cv.Links {
		builder.WriteString(headlineStyle.Sprintf("link %d\n", i+1))
		if link.Sterile {
			builder.WriteString(note(fmt.Sprintf(
				"no conclusion follows from this pair: the premises are %s (sterile); the strongest candidate %q is diagnosed below",
				classical.Productive(false), link.Conclusion,
			)))
		}
		builder.WriteString(FormatVerdict(link.Verdict))
	}

	builder.WriteString(headlineStyle.Sprintf("%s\n", cv.Summary()))
	return builder.String()
}
