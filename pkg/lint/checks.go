package lint

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/benharvie/commitcheck/pkg/config"
)

// Rule names as they appear in diagnostics.
const (
	RulePattern              = "pattern"
	RuleCapitalized          = "capitalized"
	RuleInvalidChars         = "invalid-chars-in-title"
	RuleTitlePreferredLength = "title-preferred-max-line-length"
	RuleTitleMaxLength       = "title-max-line-length"
	RuleBodyMaxLineLength    = "body-max-line-length"
	RuleStrictTypes          = "strict-types"
	RuleReferences           = "references"
	RuleImperativeVerbs      = "imperative-verbs-in-title"
)

// Check is one independently toggle-able validation over a parsed message.
// Checks are pure: they read the message and their own config slice and
// return zero or more diagnostics without side effects.
type Check interface {
	// Name returns the rule name used in diagnostics.
	Name() string

	// Check runs the rule against the parsed message.
	Check(msg *Message) []Diagnostic
}

// CapitalizedCheck requires the title's first letter to be uppercase.
type CapitalizedCheck struct {
	Severity config.Severity
}

// Name returns the rule name.
func (*CapitalizedCheck) Name() string {
	return RuleCapitalized
}

// Check flags a title whose first rune is a lowercase letter. Titles
// starting with a digit or symbol are left alone.
func (c *CapitalizedCheck) Check(msg *Message) []Diagnostic {
	first, _ := utf8.DecodeRuneInString(msg.Title)
	if first == utf8.RuneError || !unicode.IsLower(first) {
		return nil
	}

	return []Diagnostic{{
		Rule:     c.Name(),
		Severity: c.Severity,
		Message:  fmt.Sprintf("title must start with a capital letter: %q", msg.Title),
		Location: &Location{Part: PartTitle},
	}}
}

// InvalidCharsCheck flags title characters outside the allowed set.
type InvalidCharsCheck struct {
	Severity config.Severity

	// Invalid is a negated character class matching characters NOT in
	// the allowed set.
	Invalid *regexp.Regexp
}

// Name returns the rule name.
func (*InvalidCharsCheck) Name() string {
	return RuleInvalidChars
}

// Check emits one diagnostic summarizing every offending character.
func (c *InvalidCharsCheck) Check(msg *Message) []Diagnostic {
	if c.Invalid == nil {
		return nil
	}

	matches := c.Invalid.FindAllString(msg.Title, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool, len(matches))
	offending := make([]string, 0, len(matches))

	for _, match := range matches {
		if seen[match] {
			continue
		}

		seen[match] = true

		offending = append(offending, fmt.Sprintf("%q", match))
	}

	return []Diagnostic{{
		Rule:     c.Name(),
		Severity: c.Severity,
		Message:  "invalid characters in title: " + strings.Join(offending, ", "),
		Location: &Location{Part: PartTitle},
	}}
}

// TitleLengthCheck compares the title length in characters against a
// limit. The same implementation backs both the preferred (soft) and the
// hard limit; hosting UIs truncate long titles with an ellipsis, so the
// hard limit is typically an error.
type TitleLengthCheck struct {
	RuleName string
	Severity config.Severity
	Length   int
}

// Name returns the rule name.
func (c *TitleLengthCheck) Name() string {
	return c.RuleName
}

// Check flags titles strictly longer than the limit. Length counts
// characters, not bytes, so multi-byte titles are not over-penalized.
func (c *TitleLengthCheck) Check(msg *Message) []Diagnostic {
	length := utf8.RuneCountInString(msg.Title)
	if length <= c.Length {
		return nil
	}

	return []Diagnostic{{
		Rule:     c.Name(),
		Severity: c.Severity,
		Message:  fmt.Sprintf("title is longer than %d characters (%d)", c.Length, length),
		Location: &Location{Part: PartTitle},
	}}
}

// BodyLineLengthCheck validates each physical body line independently.
type BodyLineLengthCheck struct {
	Severity config.Severity
	Length   int
}

// Name returns the rule name.
func (*BodyLineLengthCheck) Name() string {
	return RuleBodyMaxLineLength
}

// Check emits one diagnostic per offending line, with the line number
// within the raw message.
func (c *BodyLineLengthCheck) Check(msg *Message) []Diagnostic {
	lines, firstLine := msg.BodyLines()

	var diags []Diagnostic

	for i, line := range lines {
		length := utf8.RuneCountInString(line)
		if length <= c.Length {
			continue
		}

		diags = append(diags, Diagnostic{
			Rule:     c.Name(),
			Severity: c.Severity,
			Message:  fmt.Sprintf("line is longer than %d characters (%d)", c.Length, length),
			Location: &Location{Part: PartBody, Line: firstLine + i},
		})
	}

	return diags
}

// StrictTypesCheck flags an unrecognized type tag left at the start of the
// title after allowed-types stripping failed to consume one. It catches
// typos ("typofix:") and unsanctioned tags distinct from the allowed set.
type StrictTypesCheck struct {
	Severity config.Severity

	// InvalidTypes matches any leftover "word-chars: " prefix, optionally
	// chained.
	InvalidTypes *regexp.Regexp
}

// Name returns the rule name.
func (*StrictTypesCheck) Name() string {
	return RuleStrictTypes
}

// Check runs only on titles whose recognized prefix was not consumed; a
// stripped type means the prefix was valid.
func (c *StrictTypesCheck) Check(msg *Message) []Diagnostic {
	if c.InvalidTypes == nil || msg.StrippedType != "" {
		return nil
	}

	tag := c.InvalidTypes.FindString(msg.Title)
	if tag == "" || !strings.HasPrefix(msg.Title, tag) {
		return nil
	}

	return []Diagnostic{{
		Rule:     c.Name(),
		Severity: c.Severity,
		Message:  fmt.Sprintf("unrecognized type tag %q in title", strings.TrimSpace(tag)),
		Location: &Location{Part: PartTitle},
	}}
}

// ReferencesCheck enforces the issue-reference placement policy: a
// reference must be present, and only in the final paragraph of the body.
// The reference grammar itself is configurable; the placement invariant is
// not.
type ReferencesCheck struct {
	Severity config.Severity
	Keywords *regexp.Regexp
}

// Name returns the rule name.
func (*ReferencesCheck) Name() string {
	return RuleReferences
}

// Check scans the title and every body paragraph. A match anywhere
// outside the last paragraph is flagged, as is the absence of any match.
func (c *ReferencesCheck) Check(msg *Message) []Diagnostic {
	if c.Keywords == nil {
		return nil
	}

	paragraphs := msg.Paragraphs()

	var diags []Diagnostic

	if c.Keywords.MatchString(msg.Title) {
		diags = append(diags, Diagnostic{
			Rule:     c.Name(),
			Severity: c.Severity,
			Message:  "issue reference must appear in the final paragraph of the body, not the title",
			Location: &Location{Part: PartTitle},
		})
	}

	for i, paragraph := range paragraphs {
		if i == len(paragraphs)-1 {
			continue
		}

		if c.Keywords.MatchString(paragraph) {
			diags = append(diags, Diagnostic{
				Rule:     c.Name(),
				Severity: c.Severity,
				Message:  "issue reference must appear only in the final paragraph of the body",
				Location: &Location{Part: PartBody},
			})
		}
	}

	inLast := len(paragraphs) > 0 && c.Keywords.MatchString(paragraphs[len(paragraphs)-1])
	if !inLast && len(diags) == 0 {
		diags = append(diags, Diagnostic{
			Rule:     c.Name(),
			Severity: c.Severity,
			Message:  "no issue reference found in the final paragraph of the body",
		})
	}

	return diags
}

// ImperativeCheck is a lexical heuristic: the first word of the stripped
// title is looked up against a closed list of common non-imperative verb
// forms. It is a best-effort lint, not a grammar checker.
type ImperativeCheck struct {
	Severity config.Severity
}

// Name returns the rule name.
func (*ImperativeCheck) Name() string {
	return RuleImperativeVerbs
}

// Check flags first words matching a known past-tense, gerund, or
// third-person form.
func (c *ImperativeCheck) Check(msg *Message) []Diagnostic {
	first, _, _ := strings.Cut(msg.Title, " ")

	form, found := nonImperativeForms[strings.ToLower(first)]
	if !found {
		return nil
	}

	return []Diagnostic{{
		Rule:     c.Name(),
		Severity: c.Severity,
		Message:  fmt.Sprintf("title should use the imperative mood; %q is %s", first, form),
		Location: &Location{Part: PartTitle},
	}}
}
