package lint_test

import (
	"strings"
	"sync"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/benharvie/commitcheck/pkg/config"
	"github.com/benharvie/commitcheck/pkg/lint"
)

var _ = Describe("Engine", func() {
	var cfg *config.Config

	BeforeEach(func() {
		cfg = config.Default()
	})

	It("never fails on malformed input", func() {
		report := lint.Validate("\n\nnot a message\nat all", cfg)
		Expect(report).NotTo(BeNil())
		Expect(rulesOf(report)).To(ContainElement(lint.RulePattern))
		Expect(report.Valid()).To(BeFalse())
	})

	It("keeps checking the best-effort parts of a malformed message", func() {
		long := strings.Repeat("x", 80)
		report := lint.Validate("fix bug\n"+long, cfg)

		Expect(rulesOf(report)).To(ContainElement(lint.RulePattern))
		Expect(rulesOf(report)).To(ContainElement(lint.RuleCapitalized))
		Expect(rulesOf(report)).To(ContainElement(lint.RuleBodyMaxLineLength))
	})

	It("produces no diagnostics for a clean message", func() {
		report := lint.Validate("Fix the login crash\n\nThe session was dropped on retry.", cfg)
		Expect(report.Diagnostics).To(BeEmpty())
		Expect(report.Valid()).To(BeTrue())
	})

	It("is deterministic across runs", func() {
		raw := "fixed\tstuff " + strings.Repeat("x", 80) + "\n\n" + strings.Repeat("y", 90)

		first := lint.Validate(raw, cfg).Format()

		for range 5 {
			Expect(lint.Validate(raw, cfg).Format()).To(Equal(first))
		}
	})

	It("falls back to full defaults on a nil config", func() {
		report := lint.Validate("fix bug", nil)
		Expect(rulesOf(report)).To(ContainElement(lint.RuleCapitalized))
	})

	It("does not mutate the caller's config", func() {
		partial := &config.Config{}

		lint.Validate("Fix bug", partial)
		Expect(partial.Capitalized).To(BeNil())
		Expect(partial.Pattern.IsZero()).To(BeTrue())
	})

	It("is safe for concurrent use", func() {
		engine := lint.NewEngine(cfg)
		raw := "fixed the thing\n\n" + strings.Repeat("z", 80)
		want := engine.Validate(raw).Format()

		var wg sync.WaitGroup

		results := make([]string, 16)

		for i := range results {
			wg.Add(1)

			go func() {
				defer wg.Done()

				results[i] = engine.Validate(raw).Format()
			}()
		}

		wg.Wait()

		for _, got := range results {
			Expect(got).To(Equal(want))
		}
	})
})

var _ = Describe("Report", func() {
	It("orders errors before warnings in formatted output", func() {
		cfg := config.Default()
		raw := "F" + strings.Repeat("x", 51) + "\tend"

		report := lint.Validate(raw, cfg)
		Expect(report.HasErrors()).To(BeTrue(), "tab should be an invalid character")
		Expect(report.HasWarnings()).To(BeTrue(), "title should exceed the preferred length")

		output := report.Format()
		errorIdx := strings.Index(output, "error")
		warningIdx := strings.Index(output, "warning")
		Expect(errorIdx).To(BeNumerically(">=", 0))
		Expect(warningIdx).To(BeNumerically(">", errorIdx))
	})

	It("treats a warnings-only report as valid", func() {
		report := lint.Validate("F"+strings.Repeat("x", 55), config.Default())
		Expect(report.HasWarnings()).To(BeTrue())
		Expect(report.Valid()).To(BeTrue())
	})
})
