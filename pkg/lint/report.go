package lint

import (
	"strings"

	"github.com/benharvie/commitcheck/pkg/config"
)

// Report collects the diagnostics produced for one message. It is created
// once per validated message and read-only afterwards; the caller owns its
// lifetime.
type Report struct {
	// Message is the original raw message text.
	Message string

	// Diagnostics holds every diagnostic in rule-evaluation order.
	Diagnostics []Diagnostic
}

// HasErrors reports whether any diagnostic has error severity.
func (r *Report) HasErrors() bool {
	return r.countSeverity(config.SeverityError) > 0
}

// HasWarnings reports whether any diagnostic has warning severity.
func (r *Report) HasWarnings() bool {
	return r.countSeverity(config.SeverityWarning) > 0
}

// Valid reports whether the message passed validation. Warnings do not
// fail validation.
func (r *Report) Valid() bool {
	return !r.HasErrors()
}

func (r *Report) countSeverity(severity config.Severity) int {
	count := 0

	for _, diag := range r.Diagnostics {
		if diag.Severity == severity {
			count++
		}
	}

	return count
}

// Format renders the report with errors first, then warnings, preserving
// rule-evaluation order within each severity. The output is byte-stable
// for identical inputs; downstream automation greps it.
func (r *Report) Format() string {
	var builder strings.Builder

	for _, severity := range []config.Severity{config.SeverityError, config.SeverityWarning} {
		for _, diag := range r.Diagnostics {
			if diag.Severity != severity {
				continue
			}

			builder.WriteString(diag.String())
			builder.WriteString("\n")
		}
	}

	return builder.String()
}
