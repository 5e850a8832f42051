// Package render formats validation reports for terminal output.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/benharvie/commitcheck/pkg/config"
	"github.com/benharvie/commitcheck/pkg/lint"
)

// maxQuotedLineWidth truncates quoted message lines in output so one
// runaway body line does not flood the terminal.
const maxQuotedLineWidth = 72

// Profile reports whether color output should be enabled.
//
// Color is disabled when any of:
//   - NO_COLOR env is set (any value, per https://no-color.org)
//   - CLICOLOR=0
//   - TERM=dumb
//   - noColorFlag is true (--no-color CLI flag)
//   - stdout is not a terminal
func Profile(noColorFlag bool) bool {
	if noColorFlag {
		return false
	}

	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}

	if os.Getenv("CLICOLOR") == "0" {
		return false
	}

	if os.Getenv("TERM") == "dumb" {
		return false
	}

	return term.IsTerminal(int(os.Stdout.Fd()))
}

// Theme holds lipgloss styles for report output.
type Theme struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Valid   lipgloss.Style
	Rule    lipgloss.Style
	Muted   lipgloss.Style
}

// NewTheme creates a Theme. When color is false, all styles are empty (no
// ANSI codes), which keeps the output byte-stable for automation.
func NewTheme(color bool) Theme {
	if !color {
		return Theme{}
	}

	return Theme{
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
		Valid:   lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
		Rule:    lipgloss.NewStyle().Bold(true),
		Muted:   lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Renderer writes formatted reports to an output writer.
type Renderer struct {
	out   io.Writer
	theme Theme
}

// NewRenderer creates a Renderer.
func NewRenderer(out io.Writer, theme Theme) *Renderer {
	return &Renderer{out: out, theme: theme}
}

// Report renders one validation report. Errors come first, then warnings,
// in rule-evaluation order within each severity; a valid report with no
// warnings prints nothing.
func (r *Renderer) Report(report *lint.Report) {
	for _, severity := range []config.Severity{config.SeverityError, config.SeverityWarning} {
		for _, diag := range report.Diagnostics {
			if diag.Severity != severity {
				continue
			}

			r.diagnostic(diag)
		}
	}
}

// ReportWithHeader renders a report preceded by a one-line per-message
// verdict, used by the batch drivers.
func (r *Renderer) ReportWithHeader(label string, report *lint.Report) {
	title, _, _ := strings.Cut(report.Message, "\n")
	title = runewidth.Truncate(strings.TrimSpace(title), maxQuotedLineWidth, "...")

	switch {
	case report.HasErrors():
		fmt.Fprintf(r.out, "%s %s %s\n", r.theme.Error.Render("✗"), label, title)
	case report.HasWarnings():
		fmt.Fprintf(r.out, "%s %s %s\n", r.theme.Warning.Render("!"), label, title)
	default:
		fmt.Fprintf(r.out, "%s %s %s\n", r.theme.Valid.Render("✓"), label, title)
	}

	r.Report(report)
}

func (r *Renderer) diagnostic(diag lint.Diagnostic) {
	severity := diag.Severity.String()

	switch diag.Severity {
	case config.SeverityError:
		severity = r.theme.Error.Render(severity)
	case config.SeverityWarning:
		severity = r.theme.Warning.Render(severity)
	}

	rule := diag.Rule
	if diag.Location != nil {
		rule += " [" + diag.Location.String() + "]"
	}

	fmt.Fprintf(r.out, "  %s %s: %s\n", severity, r.theme.Rule.Render(rule), diag.Message)
}
