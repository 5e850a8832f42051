// Package config loads and resolves the commitcheck rule configuration.
package config

import (
	"github.com/benharvie/commitcheck/pkg/config"
)

// defaultsToMap converts the built-in defaults into a map for koanf
// loading. Pattern values stay strings here; they are compiled once during
// finalization.
func defaultsToMap() map[string]any {
	return map[string]any{
		"pattern":       config.DefaultPatternSource,
		"allowed_types": config.DefaultAllowedTypesSource,
		"capitalized": map[string]any{
			"enabled":  true,
			"severity": "error",
		},
		"invalid_chars_in_title": map[string]any{
			"enabled":       true,
			"severity":      "error",
			"allowed_chars": config.DefaultAllowedCharsSource,
		},
		"title_preferred_max_line_length": map[string]any{
			"enabled":  true,
			"severity": "warning",
			"length":   config.DefaultTitlePreferredLength,
		},
		"title_max_line_length": map[string]any{
			"enabled":  true,
			"severity": "error",
			"length":   config.DefaultTitleMaxLength,
		},
		"body_max_line_length": map[string]any{
			"enabled":  true,
			"severity": "warning",
			"length":   config.DefaultBodyMaxLineLength,
		},
		"strict_types": map[string]any{
			"enabled":       true,
			"severity":      "error",
			"invalid_types": config.DefaultInvalidTypesSource,
		},
		"references": map[string]any{
			"enabled":  false,
			"severity": "error",
			"keywords": config.DefaultReferenceKeywordsSource,
		},
		"imperative_verbs_in_title": map[string]any{
			"enabled":      true,
			"severity":     "warning",
			"always_check": false,
		},
	}
}

// ruleKeys lists the top-level config keys that accept the boolean
// disable shorthand ("capitalized": false).
var ruleKeys = []string{
	"capitalized",
	"invalid_chars_in_title",
	"title_preferred_max_line_length",
	"title_max_line_length",
	"body_max_line_length",
	"strict_types",
	"references",
	"imperative_verbs_in_title",
}
