package config_test

import (
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/benharvie/commitcheck/pkg/config"
)

var _ = Describe("Pattern", func() {
	It("compiles a valid source", func() {
		pattern := config.NewPattern(`^\w+$`)
		Expect(pattern.Compile()).To(Succeed())
		Expect(pattern.Regexp()).NotTo(BeNil())
		Expect(pattern.Regexp().MatchString("hello")).To(BeTrue())
	})

	It("rejects an invalid source", func() {
		pattern := config.NewPattern(`(unclosed`)
		err := pattern.Compile()
		Expect(err).To(MatchError(config.ErrInvalidPattern))
	})

	It("treats an empty pattern as zero", func() {
		var pattern config.Pattern
		Expect(pattern.IsZero()).To(BeTrue())
		Expect(pattern.Compile()).To(Succeed())
		Expect(pattern.Regexp()).To(BeNil())
	})

	It("defers compilation when unmarshaled from text", func() {
		var pattern config.Pattern
		Expect(pattern.UnmarshalText([]byte(`^abc`))).To(Succeed())
		Expect(pattern.Source()).To(Equal(`^abc`))
		Expect(pattern.Regexp()).To(BeNil(), "compile happens in Finalize, not at load time")
	})
})

var _ = Describe("Severity", func() {
	DescribeTable(
		"round-trips through text",
		func(severity config.Severity, text string) {
			marshaled, err := severity.MarshalText()
			Expect(err).NotTo(HaveOccurred())
			Expect(string(marshaled)).To(Equal(text))

			var parsed config.Severity
			Expect(parsed.UnmarshalText(marshaled)).To(Succeed())
			Expect(parsed).To(Equal(severity))
		},
		Entry("error", config.SeverityError, "error"),
		Entry("warning", config.SeverityWarning, "warning"),
	)

	It("rejects unknown severities", func() {
		_, err := config.ParseSeverity("fatal")
		Expect(err).To(MatchError(config.ErrInvalidSeverity))
	})

	It("only errors fail validation", func() {
		Expect(config.SeverityError.IsError()).To(BeTrue())
		Expect(config.SeverityWarning.IsError()).To(BeFalse())
	})
})

var _ = Describe("Config", func() {
	Describe("Finalize", func() {
		It("compiles every pattern field", func() {
			cfg := &config.Config{
				Pattern: config.NewPattern(config.DefaultPatternSource),
				InvalidCharsInTitle: &config.InvalidCharsConfig{
					AllowedChars: config.NewPattern(`[^a-z]`),
				},
			}

			Expect(cfg.Finalize()).To(Succeed())
			Expect(cfg.Pattern.Regexp()).NotTo(BeNil())
			Expect(cfg.InvalidCharsInTitle.AllowedChars.Regexp()).NotTo(BeNil())
		})

		It("surfaces a bad rule pattern as an error", func() {
			cfg := &config.Config{
				StrictTypes: &config.StrictTypesConfig{
					InvalidTypes: config.NewPattern(`(bad`),
				},
			}

			Expect(cfg.Finalize()).To(MatchError(config.ErrInvalidPattern))
		})
	})

	Describe("IsEnabled", func() {
		It("defaults to enabled when unset", func() {
			var rule config.RuleConfig
			Expect(rule.IsEnabled()).To(BeTrue())
		})

		It("is nil-safe", func() {
			var rule *config.RuleConfig
			Expect(rule.IsEnabled()).To(BeFalse())
		})
	})

	Describe("WithDefaults", func() {
		It("fills a nil config entirely", func() {
			var cfg *config.Config

			merged := cfg.WithDefaults()
			Expect(merged).NotTo(BeNil())
			Expect(merged.Pattern.Regexp()).NotTo(BeNil())
			Expect(merged.TitleMaxLineLength.Length).To(Equal(config.DefaultTitleMaxLength))
		})

		It("keeps explicit values and fills the rest", func() {
			cfg := &config.Config{
				TitleMaxLineLength: &config.LineLengthConfig{Length: 60},
			}

			merged := cfg.WithDefaults()
			Expect(merged.TitleMaxLineLength.Length).To(Equal(60))
			Expect(merged.TitleMaxLineLength.Severity).To(Equal(config.SeverityError))
			Expect(merged.BodyMaxLineLength.Length).To(Equal(config.DefaultBodyMaxLineLength))
		})

		It("never mutates the receiver", func() {
			cfg := &config.Config{
				TitleMaxLineLength: &config.LineLengthConfig{Length: 60},
			}

			_ = cfg.WithDefaults()
			Expect(cfg.Capitalized).To(BeNil())
			Expect(cfg.Pattern.IsZero()).To(BeTrue())
			Expect(cfg.TitleMaxLineLength.Severity).To(Equal(config.SeverityUnknown))
		})

		It("preserves an explicit disable", func() {
			off := false
			cfg := &config.Config{
				Capitalized: &config.CapitalizedConfig{
					RuleConfig: config.RuleConfig{Enabled: &off},
				},
			}

			merged := cfg.WithDefaults()
			Expect(merged.Capitalized.IsEnabled()).To(BeFalse())
		})

		It("ships references disabled by default", func() {
			merged := (&config.Config{}).WithDefaults()
			Expect(merged.References.IsEnabled()).To(BeFalse())
		})
	})
})
