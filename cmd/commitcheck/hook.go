package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/benharvie/commitcheck/internal/hook"
	"github.com/benharvie/commitcheck/internal/render"
	"github.com/benharvie/commitcheck/pkg/lint"
)

// scissorsMarker starts the diff section git appends in verbose commit
// mode. Everything from it on is not part of the message.
const scissorsMarker = "# ------------------------ >8 ------------------------"

var hookInstallForce bool

var hookCmd = &cobra.Command{
	Use:   "hook <message-file>",
	Short: "Run as the commit-msg git hook",
	Long: `Validate the commit message file git passes to the commit-msg hook.

Git comment lines and the verbose-mode diff section are stripped before
validation. Diagnostics go to stderr so git shows them next to the
aborted commit.`,
	Args: cobra.ExactArgs(1),
	RunE: runHook,
}

var hookInstallCmd = &cobra.Command{
	Use:   "install",
	Short: "Install the commit-msg hook into the current repository",
	RunE:  runHookInstall,
}

var hookUninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove the commit-msg hook from the current repository",
	RunE:  runHookUninstall,
}

func init() {
	rootCmd.AddCommand(hookCmd)
	hookCmd.AddCommand(hookInstallCmd)
	hookCmd.AddCommand(hookUninstallCmd)

	hookInstallCmd.Flags().BoolVar(
		&hookInstallForce,
		"force",
		false,
		"Overwrite an existing commit-msg hook",
	)
}

func runHook(_ *cobra.Command, args []string) error {
	log := newLogger()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "reading %s", args[0])
	}

	raw := stripGitComments(string(data))

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	report := lint.Validate(raw, cfg)

	theme := render.NewTheme(render.Profile(noColorFlag))
	renderer := render.NewRenderer(os.Stderr, theme)
	renderer.Report(report)

	if report.HasErrors() {
		fmt.Fprintln(os.Stderr, "commit message rejected, message kept in", args[0])

		return &exitError{code: ExitCodeInvalid}
	}

	return nil
}

func runHookInstall(_ *cobra.Command, _ []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}

	installer, err := hook.NewInstaller(workDir)
	if err != nil {
		return err
	}

	if err := installer.Install(hookInstallForce); err != nil {
		if errors.Is(err, hook.ErrHookExists) {
			return errors.WithHint(err, "rerun with --force to overwrite")
		}

		return err
	}

	fmt.Fprintln(os.Stdout, "installed", installer.HookPath())

	return nil
}

func runHookUninstall(_ *cobra.Command, _ []string) error {
	workDir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}

	installer, err := hook.NewInstaller(workDir)
	if err != nil {
		return err
	}

	if err := installer.Uninstall(); err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, "removed", installer.HookPath())

	return nil
}

// stripGitComments removes git comment lines and the verbose-mode diff
// section from a commit message file.
func stripGitComments(raw string) string {
	lines := strings.Split(raw, "\n")
	kept := make([]string, 0, len(lines))

	for _, line := range lines {
		if line == scissorsMarker {
			break
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		kept = append(kept, line)
	}

	return strings.Join(kept, "\n")
}
