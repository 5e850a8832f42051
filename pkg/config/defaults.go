package config

// Built-in default values for the rule set.
const (
	// DefaultTitlePreferredLength is the soft title limit.
	DefaultTitlePreferredLength = 50

	// DefaultTitleMaxLength is the hard title limit. Hosting UIs
	// truncate longer titles with an ellipsis.
	DefaultTitleMaxLength = 70

	// DefaultBodyMaxLineLength is the per-line body limit.
	DefaultBodyMaxLineLength = 72
)

// Default pattern sources. They are compiled at package init; the loader
// re-exposes them as plain strings in its defaults map.
const (
	// DefaultPatternSource splits a message into title and body: no
	// leading blank lines, exactly one blank line before the body, and a
	// trailing blank run stripped.
	DefaultPatternSource = `(?s)\A([^\n]+)(?:\n\n([^\n].*?))?\s*\z`

	// DefaultAllowedTypesSource matches a recognized type prefix with an
	// optional scope, e.g. "fix: " or "feat(parser): ".
	DefaultAllowedTypesSource = `^(build|chore|ci|docs|feat|fix|perf|refactor|revert|style|test)(\([\w./-]+\))?!?: `

	// DefaultAllowedCharsSource is a negated class: anything it matches
	// is not allowed in a title.
	DefaultAllowedCharsSource = "[^\\w(), '\"`\\-:./~\\[\\]*$={}&;#@!?%^+<>]"

	// DefaultInvalidTypesSource matches a leftover "word-chars: " tag,
	// optionally chained, at the start of the title.
	DefaultInvalidTypesSource = `^(?:[\w-]+: )+`

	// DefaultReferenceKeywordsSource matches hosting-service closing
	// keywords followed by an issue identifier.
	DefaultReferenceKeywordsSource = `(?i)\b(?:close[sd]?|fix(?:e[sd])?|resolve[sd]?)\s+(?:[\w.-]+/[\w.-]+)?#\d+`
)

// Default returns the built-in rule configuration: every rule enabled
// except references, severities and limits matching the documented
// defaults. The result is fully compiled.
func Default() *Config {
	disabled := false

	return &Config{
		Pattern:      MustPattern(DefaultPatternSource),
		AllowedTypes: MustPattern(DefaultAllowedTypesSource),
		Capitalized: &CapitalizedConfig{
			RuleConfig: RuleConfig{Severity: SeverityError},
		},
		InvalidCharsInTitle: &InvalidCharsConfig{
			RuleConfig:   RuleConfig{Severity: SeverityError},
			AllowedChars: MustPattern(DefaultAllowedCharsSource),
		},
		TitlePreferredMaxLineLength: &LineLengthConfig{
			RuleConfig: RuleConfig{Severity: SeverityWarning},
			Length:     DefaultTitlePreferredLength,
		},
		TitleMaxLineLength: &LineLengthConfig{
			RuleConfig: RuleConfig{Severity: SeverityError},
			Length:     DefaultTitleMaxLength,
		},
		BodyMaxLineLength: &LineLengthConfig{
			RuleConfig: RuleConfig{Severity: SeverityWarning},
			Length:     DefaultBodyMaxLineLength,
		},
		StrictTypes: &StrictTypesConfig{
			RuleConfig:   RuleConfig{Severity: SeverityError},
			InvalidTypes: MustPattern(DefaultInvalidTypesSource),
		},
		References: &ReferencesConfig{
			// Requiring an issue reference on every commit is a
			// per-project policy, so the rule ships disabled.
			RuleConfig: RuleConfig{Enabled: &disabled, Severity: SeverityError},
			Keywords:   MustPattern(DefaultReferenceKeywordsSource),
		},
		ImperativeVerbsInTitle: &ImperativeConfig{
			RuleConfig: RuleConfig{Severity: SeverityWarning},
		},
	}
}

// WithDefaults returns a copy of the config with every unset section and
// field filled from Default. The receiver is never mutated, so a shared
// snapshot stays safe across concurrent validations.
func (c *Config) WithDefaults() *Config {
	defaults := Default()
	if c == nil {
		return defaults
	}

	out := *c

	if out.Pattern.IsZero() {
		out.Pattern = defaults.Pattern
	}

	if out.AllowedTypes.IsZero() {
		out.AllowedTypes = defaults.AllowedTypes
	}

	out.Capitalized = mergeCapitalized(out.Capitalized, defaults.Capitalized)
	out.InvalidCharsInTitle = mergeInvalidChars(out.InvalidCharsInTitle, defaults.InvalidCharsInTitle)
	out.TitlePreferredMaxLineLength = mergeLineLength(
		out.TitlePreferredMaxLineLength, defaults.TitlePreferredMaxLineLength)
	out.TitleMaxLineLength = mergeLineLength(out.TitleMaxLineLength, defaults.TitleMaxLineLength)
	out.BodyMaxLineLength = mergeLineLength(out.BodyMaxLineLength, defaults.BodyMaxLineLength)
	out.StrictTypes = mergeStrictTypes(out.StrictTypes, defaults.StrictTypes)
	out.References = mergeReferences(out.References, defaults.References)
	out.ImperativeVerbsInTitle = mergeImperative(out.ImperativeVerbsInTitle, defaults.ImperativeVerbsInTitle)

	return &out
}

func mergeRule(rule, fallback RuleConfig) RuleConfig {
	if rule.Enabled == nil {
		rule.Enabled = fallback.Enabled
	}

	if rule.Severity == SeverityUnknown {
		rule.Severity = fallback.Severity
	}

	return rule
}

func mergeCapitalized(rule, fallback *CapitalizedConfig) *CapitalizedConfig {
	if rule == nil {
		return fallback
	}

	out := *rule
	out.RuleConfig = mergeRule(out.RuleConfig, fallback.RuleConfig)

	return &out
}

func mergeInvalidChars(rule, fallback *InvalidCharsConfig) *InvalidCharsConfig {
	if rule == nil {
		return fallback
	}

	out := *rule
	out.RuleConfig = mergeRule(out.RuleConfig, fallback.RuleConfig)

	if out.AllowedChars.IsZero() {
		out.AllowedChars = fallback.AllowedChars
	}

	return &out
}

func mergeLineLength(rule, fallback *LineLengthConfig) *LineLengthConfig {
	if rule == nil {
		return fallback
	}

	out := *rule
	out.RuleConfig = mergeRule(out.RuleConfig, fallback.RuleConfig)

	if out.Length == 0 {
		out.Length = fallback.Length
	}

	return &out
}

func mergeStrictTypes(rule, fallback *StrictTypesConfig) *StrictTypesConfig {
	if rule == nil {
		return fallback
	}

	out := *rule
	out.RuleConfig = mergeRule(out.RuleConfig, fallback.RuleConfig)

	if out.InvalidTypes.IsZero() {
		out.InvalidTypes = fallback.InvalidTypes
	}

	return &out
}

func mergeReferences(rule, fallback *ReferencesConfig) *ReferencesConfig {
	if rule == nil {
		return fallback
	}

	out := *rule
	out.RuleConfig = mergeRule(out.RuleConfig, fallback.RuleConfig)

	if out.Keywords.IsZero() {
		out.Keywords = fallback.Keywords
	}

	return &out
}

func mergeImperative(rule, fallback *ImperativeConfig) *ImperativeConfig {
	if rule == nil {
		return fallback
	}

	out := *rule
	out.RuleConfig = mergeRule(out.RuleConfig, fallback.RuleConfig)

	return &out
}
