package config

import (
	"regexp"

	"github.com/cockroachdb/errors"
)

// ErrInvalidPattern is returned when a pattern source cannot be compiled.
var ErrInvalidPattern = errors.New("invalid pattern")

// Pattern is a regex-valued option. Config files supply it as a plain
// string; it is compiled exactly once during config finalization so that a
// malformed source surfaces as a config error up front rather than at
// match time.
type Pattern struct {
	source   string
	compiled *regexp.Regexp
}

// NewPattern creates an uncompiled Pattern from a source string.
func NewPattern(source string) Pattern {
	return Pattern{source: source}
}

// MustPattern creates a compiled Pattern and panics on a bad source.
// Intended for built-in defaults only.
func MustPattern(source string) Pattern {
	return Pattern{source: source, compiled: regexp.MustCompile(source)}
}

// Source returns the pattern source string.
func (p Pattern) Source() string {
	return p.source
}

// IsZero returns true when no source has been set.
func (p Pattern) IsZero() bool {
	return p.source == ""
}

// Compile resolves the pattern source into a compiled regexp.
// Calling Compile again after a successful resolve is a no-op.
func (p *Pattern) Compile() error {
	if p.compiled != nil || p.source == "" {
		return nil
	}

	compiled, err := regexp.Compile(p.source)
	if err != nil {
		return errors.Wrapf(ErrInvalidPattern, "%q: %v", p.source, err)
	}

	p.compiled = compiled

	return nil
}

// Regexp returns the compiled regexp, or nil if the pattern is empty or
// not yet compiled.
func (p Pattern) Regexp() *regexp.Regexp {
	return p.compiled
}

// MarshalText implements encoding.TextMarshaler.
func (p Pattern) MarshalText() ([]byte, error) {
	return []byte(p.source), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Compilation is
// deferred to Config.Finalize so that load-time merging never fails.
func (p *Pattern) UnmarshalText(text []byte) error {
	p.source = string(text)
	p.compiled = nil

	return nil
}
