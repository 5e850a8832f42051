package lint

import (
	"fmt"

	"github.com/benharvie/commitcheck/pkg/config"
)

// Part identifies the portion of the message a diagnostic refers to.
type Part string

const (
	// PartTitle locates a diagnostic in the message title.
	PartTitle Part = "title"

	// PartBody locates a diagnostic in the message body.
	PartBody Part = "body"
)

// Location pinpoints a diagnostic within the message. Line is 1-based
// within the raw message text and zero when not applicable.
type Location struct {
	Part Part
	Line int
}

// String renders the location as "title" or "body:7".
func (l Location) String() string {
	if l.Line > 0 {
		return fmt.Sprintf("%s:%d", l.Part, l.Line)
	}

	return string(l.Part)
}

// Diagnostic is a single structural complaint about a message. Exactly one
// rule creates it and it is never mutated afterwards.
type Diagnostic struct {
	// Rule is the name of the rule that produced the diagnostic.
	Rule string

	// Severity classifies the diagnostic.
	Severity config.Severity

	// Message is the human-readable complaint.
	Message string

	// Location is the affected part of the message, when known.
	Location *Location
}

// String renders one diagnostic line: "error capitalized [title]: ...".
func (d Diagnostic) String() string {
	if d.Location != nil {
		return fmt.Sprintf("%-7s %s [%s]: %s", d.Severity, d.Rule, d.Location, d.Message)
	}

	return fmt.Sprintf("%-7s %s: %s", d.Severity, d.Rule, d.Message)
}
