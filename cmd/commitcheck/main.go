// Package main provides the CLI entry point for commitcheck.
package main

import (
	"fmt"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	internalconfig "github.com/benharvie/commitcheck/internal/config"
	"github.com/benharvie/commitcheck/internal/render"
	"github.com/benharvie/commitcheck/pkg/config"
	"github.com/benharvie/commitcheck/pkg/logger"
)

// Exit codes for batch commands. A single-message command (check, hook)
// only uses ExitCodeValid and ExitCodeInvalid.
const (
	// ExitCodeValid indicates every validated message passed.
	ExitCodeValid = 0

	// ExitCodeInvalid indicates no validated message passed.
	ExitCodeInvalid = 1

	// ExitCodePartial indicates a mixed batch: some passed, some failed.
	ExitCodePartial = 2

	// ExitCodeFailure indicates an internal failure (bad config, IO
	// error, panic) unrelated to message validity.
	ExitCodeFailure = 3
)

var (
	configPath  string
	debugMode   bool
	traceMode   bool
	disableList []string
	noColorFlag bool
)

// ruleConfigKeys maps the rule names accepted by --disable to their
// configuration keys.
var ruleConfigKeys = map[string]string{
	"capitalized":                     "capitalized",
	"invalid-chars-in-title":          "invalid_chars_in_title",
	"title-preferred-max-line-length": "title_preferred_max_line_length",
	"title-max-line-length":           "title_max_line_length",
	"body-max-line-length":            "body_max_line_length",
	"strict-types":                    "strict_types",
	"references":                      "references",
	"imperative-verbs-in-title":       "imperative_verbs_in_title",
}

// exitError carries a validation exit code through cobra's error return.
type exitError struct {
	code int
}

func (e *exitError) Error() string {
	return fmt.Sprintf("exit code %d", e.code)
}

func main() {
	os.Exit(mainWithExitCode())
}

func mainWithExitCode() (exitCode int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n", r)

			exitCode = ExitCodeFailure
		}
	}()

	if err := rootCmd.Execute(); err != nil {
		var exit *exitError
		if errors.As(err, &exit) {
			return exit.code
		}

		fmt.Fprintf(os.Stderr, "Error: %v\n", err)

		return ExitCodeFailure
	}

	return ExitCodeValid
}

var rootCmd = &cobra.Command{
	Use:   "commitcheck",
	Short: "Commit message structure validator",
	Long: `commitcheck validates commit messages against a configurable set of
structural rules: title/body separation, capitalization, line lengths,
type prefixes, issue references, and imperative mood.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	CompletionOptions: cobra.CompletionOptions{DisableDefaultCmd: true},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(
		&configPath,
		"config",
		"c",
		"",
		"Path to configuration file (default: .commitcheck/config.toml, commitcheck.toml, or commitcheck.json)",
	)
	rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&traceMode, "trace", false, "Enable trace logging")
	rootCmd.PersistentFlags().StringSliceVar(
		&disableList,
		"disable",
		[]string{},
		"Comma-separated list of rules to disable (e.g., capitalized,references)",
	)
	rootCmd.PersistentFlags().BoolVar(
		&noColorFlag,
		"no-color",
		false,
		"Disable colored output",
	)
}

// newLogger creates the process logger on stderr so diagnostics on stdout
// stay clean for piping.
func newLogger() logger.Logger {
	return logger.New(os.Stderr, debugMode, traceMode)
}

// loadConfig resolves the effective configuration for this invocation.
func loadConfig(log logger.Logger) (*config.Config, error) {
	loader, err := internalconfig.NewLoader(log)
	if err != nil {
		return nil, err
	}

	if configPath != "" {
		loader.SetConfigPath(configPath)
	}

	overrides, err := buildOverrides()
	if err != nil {
		return nil, err
	}

	cfg, err := loader.Load(overrides)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}

	return cfg, nil
}

// buildOverrides converts CLI flags into a config override map.
func buildOverrides() (map[string]any, error) {
	overrides := make(map[string]any)

	for _, name := range disableList {
		key, ok := ruleConfigKeys[name]
		if !ok {
			return nil, errors.Newf("unknown rule %q", name)
		}

		overrides[key+".enabled"] = false
	}

	return overrides, nil
}

// newRenderer creates a stdout renderer honoring the color environment.
func newRenderer() *render.Renderer {
	theme := render.NewTheme(render.Profile(noColorFlag))

	return render.NewRenderer(os.Stdout, theme)
}

// batchExitCode maps batch summary totals to the process exit code.
func batchExitCode(summary *render.Summary) error {
	switch {
	case summary.AllValid():
		return nil
	case summary.NoneValid():
		return &exitError{code: ExitCodeInvalid}
	default:
		return &exitError{code: ExitCodePartial}
	}
}
