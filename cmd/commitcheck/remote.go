package main

import (
	"runtime"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/benharvie/commitcheck/internal/github"
	"github.com/benharvie/commitcheck/internal/render"
	"github.com/benharvie/commitcheck/pkg/lint"
)

var (
	remoteLimit int
	remoteRev   string
)

var remoteCmd = &cobra.Command{
	Use:   "remote <owner>/<repo>",
	Short: "Validate commit messages from a GitHub repository",
	Long: `Fetch commits from a GitHub repository and validate their messages.

Authentication uses GH_TOKEN or GITHUB_TOKEN when set; unauthenticated
requests work for public repositories within the API rate limit.

Examples:
  commitcheck remote golang/go --limit 50
  commitcheck remote myorg/service --rev release-2.4`,
	Args: cobra.ExactArgs(1),
	RunE: runRemote,
}

func init() {
	rootCmd.AddCommand(remoteCmd)

	remoteCmd.Flags().IntVar(
		&remoteLimit,
		"limit",
		0,
		"Limit number of commits to audit (0 = one API page)",
	)
	remoteCmd.Flags().StringVar(
		&remoteRev,
		"rev",
		"",
		"Branch or SHA to walk from (default: the repository default branch)",
	)
}

func runRemote(cmd *cobra.Command, args []string) error {
	log := newLogger()

	owner, repo, ok := strings.Cut(args[0], "/")
	if !ok || owner == "" || repo == "" {
		return errors.Newf("repository must be in owner/repo form, got %q", args[0])
	}

	client := github.NewClient()
	if !client.IsAuthenticated() {
		log.Debug("no GitHub token found, using unauthenticated requests")
	}

	commits, err := client.ListCommits(cmd.Context(), owner, repo, remoteRev, remoteLimit)
	if err != nil {
		if errors.Is(err, github.ErrRateLimitExceeded) {
			return errors.WithHint(err, "set GH_TOKEN or GITHUB_TOKEN to raise the limit")
		}

		return err
	}

	log.Debug("auditing remote commits", "commits", len(commits), "repo", args[0])

	cfg, err := loadConfig(log)
	if err != nil {
		return err
	}

	engine := lint.NewEngine(cfg)
	reports := make([]*lint.Report, len(commits))

	// Validation is pure CPU work on immutable config, so commits are
	// checked in parallel and rendered in fetch order afterwards.
	var group errgroup.Group

	group.SetLimit(runtime.NumCPU())

	for i, commit := range commits {
		group.Go(func() error {
			reports[i] = engine.Validate(commit.Message)

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	renderer := newRenderer()
	summary := &render.Summary{}

	for i, commit := range commits {
		summary.Add(reports[i])
		renderer.ReportWithHeader(commit.SHA[:shortHashLength], reports[i])
	}

	renderer.Summary(summary)

	return batchExitCode(summary)
}
