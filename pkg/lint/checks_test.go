package lint_test

import (
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/benharvie/commitcheck/pkg/config"
	"github.com/benharvie/commitcheck/pkg/lint"
)

// rulesOf collects the rule names present in a report, in order.
func rulesOf(report *lint.Report) []string {
	names := make([]string, 0, len(report.Diagnostics))
	for _, diag := range report.Diagnostics {
		names = append(names, diag.Rule)
	}

	return names
}

func enabled() *bool {
	value := true

	return &value
}

func disabled() *bool {
	value := false

	return &value
}

var _ = Describe("Rule battery", func() {
	var cfg *config.Config

	BeforeEach(func() {
		cfg = config.Default()
	})

	Describe("capitalized", func() {
		It("flags a lowercase first letter as an error", func() {
			report := lint.Validate("fix bug", cfg)
			Expect(report.Valid()).To(BeFalse())
			Expect(rulesOf(report)).To(ContainElement(lint.RuleCapitalized))
		})

		It("checks the title after type stripping", func() {
			report := lint.Validate("fix: Fix bug", cfg)
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleCapitalized))
		})

		DescribeTable(
			"leaves non-letter starts alone",
			func(raw string) {
				report := lint.Validate(raw, cfg)
				Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleCapitalized))
			},
			Entry("digit", "2x speedup for the parser"),
			Entry("uppercase", "Fix bug"),
		)
	})

	Describe("invalid-chars-in-title", func() {
		It("reports each offending character once", func() {
			report := lint.Validate("Fix\tbug\twith\ttabs", cfg)

			var found []lint.Diagnostic

			for _, diag := range report.Diagnostics {
				if diag.Rule == lint.RuleInvalidChars {
					found = append(found, diag)
				}
			}

			Expect(found).To(HaveLen(1))
			Expect(found[0].Message).To(ContainSubstring(`"\t"`))
		})

		It("accepts ordinary punctuation", func() {
			report := lint.Validate(`Fix the "odd" case (again), v2.1 & more: see ~user/repo`, cfg)
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleInvalidChars))
		})
	})

	Describe("title length limits", func() {
		It("treats the hard limit as inclusive", func() {
			title := "F" + strings.Repeat("x", 69)
			Expect(title).To(HaveLen(70))

			report := lint.Validate(title, cfg)
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleTitleMaxLength))
			Expect(rulesOf(report)).To(ContainElement(lint.RuleTitlePreferredLength))
		})

		It("flags one character over the hard limit as an error", func() {
			title := "F" + strings.Repeat("x", 70)

			report := lint.Validate(title, cfg)
			Expect(rulesOf(report)).To(ContainElement(lint.RuleTitleMaxLength))
			Expect(report.Valid()).To(BeFalse())
		})

		It("warns between the preferred and hard limits", func() {
			title := "F" + strings.Repeat("x", 50)

			report := lint.Validate(title, cfg)
			Expect(rulesOf(report)).To(ContainElement(lint.RuleTitlePreferredLength))
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleTitleMaxLength))
			Expect(report.Valid()).To(BeTrue(), "preferred limit is a warning")
		})

		It("counts characters, not bytes", func() {
			title := "F" + strings.Repeat("é", 69)

			report := lint.Validate(title, cfg)
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleTitleMaxLength))
		})

		It("measures the stripped title", func() {
			title := "fix: F" + strings.Repeat("x", 64)

			report := lint.Validate(title, cfg)
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleTitleMaxLength))
		})
	})

	Describe("body-max-line-length", func() {
		It("flags each long line with its line number", func() {
			long := strings.Repeat("y", 73)
			raw := "Fix bug\n\nshort line\n" + long + "\nshort\n" + long

			report := lint.Validate(raw, cfg)

			var lines []int

			for _, diag := range report.Diagnostics {
				if diag.Rule == lint.RuleBodyMaxLineLength {
					Expect(diag.Location).NotTo(BeNil())
					lines = append(lines, diag.Location.Line)
				}
			}

			Expect(lines).To(Equal([]int{4, 6}))
		})

		It("accepts lines at exactly the limit", func() {
			raw := "Fix bug\n\n" + strings.Repeat("y", 72)

			report := lint.Validate(raw, cfg)
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleBodyMaxLineLength))
		})
	})

	Describe("strict-types", func() {
		It("flags an unrecognized type tag", func() {
			report := lint.Validate("typofix: Fix bug", cfg)
			Expect(rulesOf(report)).To(ContainElement(lint.RuleStrictTypes))
		})

		It("stays quiet when the tag was recognized and stripped", func() {
			report := lint.Validate("fix: Fix bug", cfg)
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleStrictTypes))
		})

		It("stays quiet on a plain title", func() {
			report := lint.Validate("Fix bug without any tag", cfg)
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleStrictTypes))
		})
	})

	Describe("references", func() {
		BeforeEach(func() {
			cfg.References.Enabled = enabled()
		})

		It("is disabled by default", func() {
			report := lint.Validate("Fix bug", config.Default())
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleReferences))
		})

		It("accepts a reference in the final paragraph", func() {
			raw := "Fix crash\n\nThe session was dropped.\n\nCloses #12"

			report := lint.Validate(raw, cfg)
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleReferences))
		})

		It("flags a reference outside the final paragraph", func() {
			raw := "Fix crash\n\nCloses #12\n\nMore details."

			report := lint.Validate(raw, cfg)
			Expect(rulesOf(report)).To(ContainElement(lint.RuleReferences))
		})

		It("flags a reference in the title", func() {
			raw := "Fix crash, closes #12\n\nDetails.\n\nFixes #12"

			report := lint.Validate(raw, cfg)

			for _, diag := range report.Diagnostics {
				if diag.Rule == lint.RuleReferences {
					Expect(diag.Location).NotTo(BeNil())
					Expect(diag.Location.Part).To(Equal(lint.PartTitle))
				}
			}
		})

		It("flags a missing reference", func() {
			raw := "Fix crash\n\nNo issue is mentioned."

			report := lint.Validate(raw, cfg)
			Expect(rulesOf(report)).To(ContainElement(lint.RuleReferences))
		})

		DescribeTable(
			"recognizes closing keyword variants",
			func(last string) {
				raw := "Fix crash\n\nDetails.\n\n" + last

				report := lint.Validate(raw, cfg)
				Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleReferences))
			},
			Entry("closes", "Closes #12"),
			Entry("fixed", "Fixed #12"),
			Entry("resolves", "Resolves #12"),
			Entry("cross-repo", "Fixes benharvie/commitcheck#12"),
		)
	})

	Describe("imperative-verbs-in-title", func() {
		DescribeTable(
			"flags non-imperative first words",
			func(raw, form string) {
				report := lint.Validate(raw, cfg)

				var found *lint.Diagnostic

				for i, diag := range report.Diagnostics {
					if diag.Rule == lint.RuleImperativeVerbs {
						found = &report.Diagnostics[i]
					}
				}

				Expect(found).NotTo(BeNil())
				Expect(found.Message).To(ContainSubstring(form))
			},
			Entry("past tense", "Fixed the login crash", "past tense"),
			Entry("gerund", "Fixing the login crash", "a gerund"),
			Entry("third person", "Fixes the login crash", "third person"),
		)

		It("accepts imperative titles", func() {
			report := lint.Validate("Fix the login crash", cfg)
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleImperativeVerbs))
		})

		It("skips the check when an earlier rule errored", func() {
			report := lint.Validate("fixed the login crash", cfg)
			Expect(rulesOf(report)).To(ContainElement(lint.RuleCapitalized))
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleImperativeVerbs))
		})

		It("runs despite earlier errors with always_check", func() {
			cfg.ImperativeVerbsInTitle.AlwaysCheck = true

			report := lint.Validate("fixed the login crash", cfg)
			Expect(rulesOf(report)).To(ContainElement(lint.RuleCapitalized))
			Expect(rulesOf(report)).To(ContainElement(lint.RuleImperativeVerbs))
		})

		It("runs when earlier diagnostics are only warnings", func() {
			title := "Fixed " + strings.Repeat("x", 60)

			report := lint.Validate(title, cfg)
			Expect(rulesOf(report)).To(ContainElement(lint.RuleTitlePreferredLength))
			Expect(rulesOf(report)).To(ContainElement(lint.RuleImperativeVerbs))
		})
	})

	Describe("disabling rules", func() {
		It("produces no diagnostics from a disabled rule", func() {
			cfg.Capitalized.Enabled = disabled()

			report := lint.Validate("fix bug", cfg)
			Expect(rulesOf(report)).NotTo(ContainElement(lint.RuleCapitalized))
		})

		It("yields an empty report when every rule is disabled", func() {
			off := disabled()
			cfg.Capitalized.Enabled = off
			cfg.InvalidCharsInTitle.Enabled = off
			cfg.TitlePreferredMaxLineLength.Enabled = off
			cfg.TitleMaxLineLength.Enabled = off
			cfg.BodyMaxLineLength.Enabled = off
			cfg.StrictTypes.Enabled = off
			cfg.ImperativeVerbsInTitle.Enabled = off

			raw := "fixed\tbug " + strings.Repeat("x", 100)

			report := lint.Validate(raw, cfg)
			Expect(report.Diagnostics).To(BeEmpty())
			Expect(report.Valid()).To(BeTrue())
		})
	})
})
