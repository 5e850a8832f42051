package main

import (
	"io"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/benharvie/commitcheck/pkg/lint"
)

var checkMessage string

var checkCmd = &cobra.Command{
	Use:   "check [file]",
	Short: "Validate a single commit message",
	Long: `Validate a single commit message against the configured rules.

The message is read from the given file, from --message, or from stdin
when no file is given (or the file is "-").

Examples:
  commitcheck check .git/COMMIT_EDITMSG
  commitcheck check --message "fix: Resolve login crash"
  git log -1 --format=%B | commitcheck check`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)

	checkCmd.Flags().StringVarP(
		&checkMessage,
		"message",
		"m",
		"",
		"Commit message to validate (instead of a file or stdin)",
	)
}

func runCheck(_ *cobra.Command, args []string) error {
	log := newLogger()

	raw, err := readMessage(args)
	if err != nil {
		return err
	}

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	report := lint.Validate(raw, cfg)

	renderer := newRenderer()
	renderer.Report(report)

	if report.HasErrors() {
		return &exitError{code: ExitCodeInvalid}
	}

	return nil
}

// readMessage resolves the message source: --message, a file argument, or
// stdin.
func readMessage(args []string) (string, error) {
	if checkMessage != "" {
		return checkMessage, nil
	}

	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", errors.Wrapf(err, "reading %s", args[0])
		}

		return string(data), nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", errors.Wrap(err, "reading stdin")
	}

	return string(data), nil
}
