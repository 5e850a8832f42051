// Package config provides the configuration schema for commitcheck rules.
package config

import (
	"github.com/cockroachdb/errors"
)

// RuleConfig holds the fields shared by every toggle-able rule.
type RuleConfig struct {
	// Enabled controls whether the rule runs.
	// Default: true
	Enabled *bool `json:"enabled,omitempty" koanf:"enabled" toml:"enabled"`

	// Severity is the severity of diagnostics emitted by the rule.
	Severity Severity `json:"severity,omitempty" koanf:"severity" toml:"severity"`
}

// IsEnabled reports whether the rule should run. A nil receiver or an
// unset Enabled field means enabled.
func (r *RuleConfig) IsEnabled() bool {
	if r == nil || r.Enabled == nil {
		return true
	}

	return *r.Enabled
}

// CapitalizedConfig configures the capitalized-title rule.
type CapitalizedConfig struct {
	RuleConfig
}

// InvalidCharsConfig configures the invalid-chars-in-title rule.
type InvalidCharsConfig struct {
	RuleConfig

	// AllowedChars is a negated character class: any title character it
	// matches is NOT in the allowed set.
	AllowedChars Pattern `json:"allowed_chars,omitempty" koanf:"allowed_chars" toml:"allowed_chars"`
}

// LineLengthConfig configures a line-length rule.
type LineLengthConfig struct {
	RuleConfig

	// Length is the maximum allowed length in characters.
	Length int `json:"length,omitempty" koanf:"length" toml:"length"`
}

// StrictTypesConfig configures the strict-types rule.
type StrictTypesConfig struct {
	RuleConfig

	// InvalidTypes matches a leftover type tag at the start of the title
	// after allowed_types stripping failed to consume it.
	InvalidTypes Pattern `json:"invalid_types,omitempty" koanf:"invalid_types" toml:"invalid_types"`
}

// ReferencesConfig configures the issue-references rule.
type ReferencesConfig struct {
	RuleConfig

	// Keywords matches an issue reference (closing keyword plus
	// identifier). The reference must appear in the final paragraph of
	// the body regardless of the grammar configured here.
	Keywords Pattern `json:"keywords,omitempty" koanf:"keywords" toml:"keywords"`
}

// ImperativeConfig configures the imperative-verbs-in-title rule.
type ImperativeConfig struct {
	RuleConfig

	// AlwaysCheck runs the heuristic even when another rule has already
	// produced an error for the same message.
	// Default: false
	AlwaysCheck bool `json:"always_check,omitempty" koanf:"always_check" toml:"always_check"`
}

// Config is one resolved rule-set snapshot. It is produced once per
// invocation by the loader, finalized, and treated as read-only by the
// engine so that concurrent validations can share it safely.
type Config struct {
	// Pattern is the title/body splitting regex. It cannot be disabled.
	Pattern Pattern `json:"pattern,omitempty" koanf:"pattern" toml:"pattern"`

	// AllowedTypes matches a recognized type prefix at the start of the
	// title. It cannot be disabled.
	AllowedTypes Pattern `json:"allowed_types,omitempty" koanf:"allowed_types" toml:"allowed_types"`

	Capitalized                 *CapitalizedConfig  `json:"capitalized,omitempty"                     koanf:"capitalized"                     toml:"capitalized"`
	InvalidCharsInTitle         *InvalidCharsConfig `json:"invalid_chars_in_title,omitempty"          koanf:"invalid_chars_in_title"          toml:"invalid_chars_in_title"`
	TitlePreferredMaxLineLength *LineLengthConfig   `json:"title_preferred_max_line_length,omitempty" koanf:"title_preferred_max_line_length" toml:"title_preferred_max_line_length"`
	TitleMaxLineLength          *LineLengthConfig   `json:"title_max_line_length,omitempty"           koanf:"title_max_line_length"           toml:"title_max_line_length"`
	BodyMaxLineLength           *LineLengthConfig   `json:"body_max_line_length,omitempty"            koanf:"body_max_line_length"            toml:"body_max_line_length"`
	StrictTypes                 *StrictTypesConfig  `json:"strict_types,omitempty"                    koanf:"strict_types"                    toml:"strict_types"`
	References                  *ReferencesConfig   `json:"references,omitempty"                      koanf:"references"                      toml:"references"`
	ImperativeVerbsInTitle      *ImperativeConfig   `json:"imperative_verbs_in_title,omitempty"       koanf:"imperative_verbs_in_title"       toml:"imperative_verbs_in_title"`
}

// Finalize compiles every pattern-valued option in the config. It must be
// called once after loading and before the config is handed to the engine.
func (c *Config) Finalize() error {
	patterns := make(map[string]*Pattern)
	patterns["pattern"] = &c.Pattern
	patterns["allowed_types"] = &c.AllowedTypes

	if c.InvalidCharsInTitle != nil {
		patterns["invalid_chars_in_title.allowed_chars"] = &c.InvalidCharsInTitle.AllowedChars
	}

	if c.StrictTypes != nil {
		patterns["strict_types.invalid_types"] = &c.StrictTypes.InvalidTypes
	}

	if c.References != nil {
		patterns["references.keywords"] = &c.References.Keywords
	}

	for key, pattern := range patterns {
		if err := pattern.Compile(); err != nil {
			return errors.Wrapf(err, "compiling %s", key)
		}
	}

	return nil
}
