package main

import (
	"os"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	"github.com/benharvie/commitcheck/internal/history"
	"github.com/benharvie/commitcheck/internal/render"
	"github.com/benharvie/commitcheck/pkg/lint"
)

// shortHashLength is how many hash characters the audit output shows.
const shortHashLength = 8

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [revision]",
	Short: "Validate commit messages from local history",
	Long: `Validate the messages of commits reachable from a revision, newest
first. The revision defaults to HEAD.

Examples:
  commitcheck history                 # audit everything reachable from HEAD
  commitcheck history --limit 20      # last 20 commits
  commitcheck history release/v2      # audit a branch`,
	Args: cobra.MaximumNArgs(1),
	RunE: runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)

	historyCmd.Flags().IntVar(
		&historyLimit,
		"limit",
		0,
		"Limit number of commits to audit (0 = all)",
	)
}

func runHistory(_ *cobra.Command, args []string) error {
	log := newLogger()

	workDir, err := os.Getwd()
	if err != nil {
		return errors.Wrap(err, "failed to get working directory")
	}

	reader, err := history.Open(workDir)
	if err != nil {
		return err
	}

	rev := ""
	if len(args) == 1 {
		rev = args[0]
	}

	commits, err := reader.Commits(rev, historyLimit)
	if err != nil {
		return err
	}

	log.Debug("auditing history", "commits", len(commits), "rev", rev)

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	engine := lint.NewEngine(cfg)
	renderer := newRenderer()
	summary := &render.Summary{}

	for _, commit := range commits {
		report := engine.Validate(commit.Message)
		summary.Add(report)
		renderer.ReportWithHeader(commit.Hash[:shortHashLength], report)
	}

	renderer.Summary(summary)

	return batchExitCode(summary)
}
