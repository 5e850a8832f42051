package lint

import (
	"github.com/benharvie/commitcheck/pkg/config"
)

// Engine runs the ordered rule battery over parsed messages. It is built
// once from a finalized config snapshot and is safe for concurrent use
// across independent messages.
type Engine struct {
	cfg *config.Config

	// checks holds the enabled rules in their fixed evaluation order so
	// that diagnostic rendering is reproducible across runs.
	checks []Check

	// imperative is kept out of the main battery: unless alwaysCheck is
	// set it only runs when no earlier rule produced an error, to avoid
	// compounding noise on already-broken titles.
	imperative  Check
	alwaysCheck bool
}

// NewEngine builds an Engine from a config. Unset sections fall back to
// the built-in defaults; disabled rules are excluded up front and can
// never emit a diagnostic.
func NewEngine(cfg *config.Config) *Engine {
	cfg = cfg.WithDefaults()
	engine := &Engine{cfg: cfg}

	if rule := cfg.Capitalized; rule.IsEnabled() {
		engine.checks = append(engine.checks, &CapitalizedCheck{
			Severity: rule.Severity,
		})
	}

	if rule := cfg.InvalidCharsInTitle; rule.IsEnabled() {
		engine.checks = append(engine.checks, &InvalidCharsCheck{
			Severity: rule.Severity,
			Invalid:  rule.AllowedChars.Regexp(),
		})
	}

	if rule := cfg.TitlePreferredMaxLineLength; rule.IsEnabled() {
		engine.checks = append(engine.checks, &TitleLengthCheck{
			RuleName: RuleTitlePreferredLength,
			Severity: rule.Severity,
			Length:   rule.Length,
		})
	}

	if rule := cfg.TitleMaxLineLength; rule.IsEnabled() {
		engine.checks = append(engine.checks, &TitleLengthCheck{
			RuleName: RuleTitleMaxLength,
			Severity: rule.Severity,
			Length:   rule.Length,
		})
	}

	if rule := cfg.BodyMaxLineLength; rule.IsEnabled() {
		engine.checks = append(engine.checks, &BodyLineLengthCheck{
			Severity: rule.Severity,
			Length:   rule.Length,
		})
	}

	if rule := cfg.StrictTypes; rule.IsEnabled() {
		engine.checks = append(engine.checks, &StrictTypesCheck{
			Severity:     rule.Severity,
			InvalidTypes: rule.InvalidTypes.Regexp(),
		})
	}

	if rule := cfg.References; rule.IsEnabled() {
		engine.checks = append(engine.checks, &ReferencesCheck{
			Severity: rule.Severity,
			Keywords: rule.Keywords.Regexp(),
		})
	}

	if rule := cfg.ImperativeVerbsInTitle; rule.IsEnabled() {
		engine.imperative = &ImperativeCheck{Severity: rule.Severity}
		engine.alwaysCheck = rule.AlwaysCheck
	}

	return engine
}

// Validate parses the raw message and runs every enabled check against it.
// It is a total function: malformed text yields a report carrying a
// structural diagnostic, never an error, so batch drivers can keep going.
func (e *Engine) Validate(raw string) *Report {
	report := &Report{Message: raw}

	msg, err := Parse(raw, e.cfg)
	if err != nil {
		report.Diagnostics = append(report.Diagnostics, Diagnostic{
			Rule:     RulePattern,
			Severity: config.SeverityError,
			Message:  "message does not match the expected title/body structure",
			Location: &Location{Part: PartTitle},
		})
	}

	for _, check := range e.checks {
		report.Diagnostics = append(report.Diagnostics, check.Check(msg)...)
	}

	if e.imperative != nil && (e.alwaysCheck || !report.HasErrors()) {
		report.Diagnostics = append(report.Diagnostics, e.imperative.Check(msg)...)
	}

	return report
}

// Validate is a convenience wrapper for one-off validations.
func Validate(raw string, cfg *config.Config) *Report {
	return NewEngine(cfg).Validate(raw)
}
