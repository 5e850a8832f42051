package config

import (
	"github.com/cockroachdb/errors"
)

// ErrInvalidSeverity is returned when an invalid severity value is provided.
var ErrInvalidSeverity = errors.New("invalid severity")

// Severity classifies a diagnostic produced by a rule.
type Severity int

const (
	// SeverityUnknown represents an unknown severity level.
	SeverityUnknown Severity = iota

	// SeverityError indicates a violation that fails validation.
	SeverityError

	// SeverityWarning indicates a violation that is reported but does not
	// fail validation.
	SeverityWarning
)

// String returns the lowercase name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityError:
		return "error"
	case SeverityWarning:
		return "warning"
	default:
		return "unknown"
	}
}

// IsError returns true if the severity fails validation.
func (s Severity) IsError() bool {
	return s == SeverityError
}

// ParseSeverity parses a string into a Severity value.
func ParseSeverity(s string) (Severity, error) {
	switch s {
	case "error":
		return SeverityError, nil
	case "warning":
		return SeverityWarning, nil
	default:
		return SeverityUnknown,
			errors.Wrapf(
				ErrInvalidSeverity,
				"%q, must be %q or %q",
				s,
				SeverityError.String(),
				SeverityWarning.String(),
			)
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s Severity) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler for TOML/JSON parsing.
func (s *Severity) UnmarshalText(text []byte) error {
	parsed, err := ParseSeverity(string(text))
	if err != nil {
		return err
	}

	*s = parsed

	return nil
}
