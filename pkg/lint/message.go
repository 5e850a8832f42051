// Package lint implements the commit message parser and rule engine.
package lint

import (
	"regexp"
	"strings"

	"github.com/cockroachdb/errors"

	"github.com/benharvie/commitcheck/pkg/config"
)

// ErrStructure is returned by Parse when the raw text does not match the
// splitting pattern. It is recovered by the engine as a single diagnostic,
// never surfaced as a process failure.
var ErrStructure = errors.New("message does not match the structural pattern")

// chainedScopeRegex strips secondary scope prefixes that follow a
// recognized type, e.g. the "i18n: " in "fix: i18n: Update locales".
var chainedScopeRegex = regexp.MustCompile(`^[a-z][\w-]*: `)

// Message is one parsed commit message, immutable once created.
type Message struct {
	// Title is the first logical line, with any recognized type prefix
	// removed.
	Title string

	// Body is the remaining paragraphs, empty when the message has none.
	Body string

	// HasBody reports whether a body was present.
	HasBody bool

	// StrippedType is the removed type prefix (including chained scope
	// prefixes), kept for diagnostics only.
	StrippedType string

	// bodyLine is the 1-based line number of the first body line within
	// the raw message, used for diagnostic locations.
	bodyLine int
}

// Parse splits raw text into title and body using the configured pattern
// and strips a recognized type prefix from the title.
//
// Parse is total: when the pattern does not match it returns ErrStructure
// together with a best-effort Message (first line as title, text after the
// first blank run as body) so that the remaining checks can still run.
func Parse(raw string, cfg *config.Config) (*Message, error) {
	pattern := cfg.Pattern.Regexp()
	if pattern == nil {
		return bestEffortSplit(raw, cfg), errors.Wrap(ErrStructure, "no splitting pattern configured")
	}

	groups := pattern.FindStringSubmatch(raw)
	if len(groups) < 2 {
		return bestEffortSplit(raw, cfg), ErrStructure
	}

	body := ""
	if len(groups) > 2 {
		body = groups[2]
	}

	msg := &Message{
		Body:     body,
		HasBody:  body != "",
		bodyLine: 3, // title, blank separator, body
	}
	msg.Title, msg.StrippedType = stripType(groups[1], cfg)

	return msg, nil
}

// stripType removes a recognized type prefix and any chained scope
// prefixes from the title. Returns the stripped title and the removed
// prefix, which is empty when allowed_types did not match.
func stripType(title string, cfg *config.Config) (string, string) {
	allowed := cfg.AllowedTypes.Regexp()
	if allowed == nil {
		return title, ""
	}

	loc := allowed.FindStringIndex(title)
	if loc == nil || loc[0] != 0 {
		return title, ""
	}

	stripped := title[:loc[1]]
	rest := title[loc[1]:]

	// Chained scope prefixes are only consumed after a valid type; a bare
	// "i18n: " title without one is left for strict-types to judge.
	for {
		scope := chainedScopeRegex.FindString(rest)
		if scope == "" {
			break
		}

		stripped += scope
		rest = rest[len(scope):]
	}

	return rest, stripped
}

// bestEffortSplit produces a usable Message from structurally malformed
// text: first line becomes the title, everything after the first blank run
// becomes the body.
func bestEffortSplit(raw string, cfg *config.Config) *Message {
	trimmed := strings.TrimLeft(raw, "\n")
	leadingBlanks := strings.Count(raw[:len(raw)-len(trimmed)], "\n")

	title, rest, _ := strings.Cut(trimmed, "\n")

	msg := &Message{}
	msg.Title, msg.StrippedType = stripType(title, cfg)

	body := strings.Trim(rest, "\n")
	if body != "" {
		separatorLines := len(rest) - len(strings.TrimLeft(rest, "\n"))

		msg.Body = body
		msg.HasBody = true
		msg.bodyLine = leadingBlanks + 2 + separatorLines
	}

	return msg
}

// BodyLines returns the physical lines of the body along with the line
// number of the first one within the raw message.
func (m *Message) BodyLines() ([]string, int) {
	if !m.HasBody {
		return nil, 0
	}

	return strings.Split(m.Body, "\n"), m.bodyLine
}

// blankLineRegex splits paragraphs on runs of blank lines, tolerating
// trailing whitespace on the separator lines.
var blankLineRegex = regexp.MustCompile(`\n[ \t]*\n+`)

// Paragraphs returns the body split on blank-line runs. An empty body
// yields no paragraphs.
func (m *Message) Paragraphs() []string {
	if !m.HasBody {
		return nil
	}

	return blankLineRegex.Split(m.Body, -1)
}
