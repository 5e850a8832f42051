package render

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/benharvie/commitcheck/pkg/lint"
)

// Summary accumulates cross-message statistics for a batch run. Batch
// drivers that validate concurrently must serialize calls to Add.
type Summary struct {
	Total   int
	Valid   int
	Warned  int
	Invalid int
}

// Add records one report in the summary. Warned counts messages that are
// valid but carry warnings.
func (s *Summary) Add(report *lint.Report) {
	s.Total++

	switch {
	case report.HasErrors():
		s.Invalid++
	case report.HasWarnings():
		s.Valid++
		s.Warned++
	default:
		s.Valid++
	}
}

// AllValid reports whether every message passed.
func (s *Summary) AllValid() bool {
	return s.Invalid == 0
}

// NoneValid reports whether no message passed.
func (s *Summary) NoneValid() bool {
	return s.Valid == 0
}

// Summary renders the batch totals as a table.
func (r *Renderer) Summary(summary *Summary) {
	var buf bytes.Buffer

	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewBlueprint(tw.Rendition{
			Symbols: tw.NewSymbols(tw.StyleRounded),
		})),
		tablewriter.WithPadding(tw.Padding{Left: " ", Right: " "}),
	)

	table.Header([]string{"Total", "Valid", "With warnings", "Invalid"})
	_ = table.Append([]string{
		strconv.Itoa(summary.Total),
		r.styledCount(summary.Valid, r.theme.Valid),
		r.styledCount(summary.Warned, r.theme.Warning),
		r.styledCount(summary.Invalid, r.theme.Error),
	})

	_ = table.Render()

	fmt.Fprintln(r.out, strings.TrimRight(buf.String(), "\n"))
}

func (*Renderer) styledCount(count int, style interface{ Render(...string) string }) string {
	text := strconv.Itoa(count)
	if count == 0 {
		return text
	}

	return style.Render(text)
}
