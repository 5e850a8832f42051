// Package github fetches commit messages from the GitHub API.
package github

import (
	"context"
	"net/http"
	"os"

	"github.com/cockroachdb/errors"
	"github.com/google/go-github/v84/github"
)

// perPageLimit is the per-page limit for GitHub API requests.
const perPageLimit = 100

var (
	// ErrRateLimitExceeded is returned when the GitHub API rate limit is exceeded.
	ErrRateLimitExceeded = errors.New("github API rate limit exceeded")
	// ErrRepositoryNotFound is returned when the repository is not found.
	ErrRepositoryNotFound = errors.New("repository not found")
	// ErrNoCommits is returned when the repository has no commits.
	ErrNoCommits = errors.New("no commits found")
)

// Commit is one remote commit to be audited.
type Commit struct {
	SHA     string
	Message string
}

// Client defines the GitHub API operations used by the audit commands.
type Client interface {
	// ListCommits retrieves up to limit commits for a repository, newest
	// first. rev optionally names the branch or SHA to walk from; limit <= 0
	// means the API default page.
	ListCommits(ctx context.Context, owner, repo, rev string, limit int) ([]Commit, error)
	// IsAuthenticated returns whether the client sends a token.
	IsAuthenticated() bool
}

// SDKClient implements Client using the go-github SDK.
type SDKClient struct {
	client        *github.Client
	authenticated bool
}

// getToken retrieves the GitHub token from the environment.
func getToken() string {
	if token := os.Getenv("GH_TOKEN"); token != "" {
		return token
	}

	return os.Getenv("GITHUB_TOKEN")
}

// NewClient creates a GitHub client, authenticated when a token is
// available in GH_TOKEN or GITHUB_TOKEN.
func NewClient() *SDKClient {
	client := github.NewClient(nil)

	token := getToken()
	if token != "" {
		client = client.WithAuthToken(token)
	}

	return &SDKClient{
		client:        client,
		authenticated: token != "",
	}
}

// IsAuthenticated returns whether the client sends a token.
func (c *SDKClient) IsAuthenticated() bool {
	return c.authenticated
}

// ListCommits retrieves up to limit commits for a repository, newest first.
func (c *SDKClient) ListCommits(
	ctx context.Context,
	owner, repo, rev string,
	limit int,
) ([]Commit, error) {
	opts := &github.CommitsListOptions{
		SHA:         rev,
		ListOptions: github.ListOptions{PerPage: perPageLimit},
	}

	var commits []Commit

	for {
		page, resp, err := c.client.Repositories.ListCommits(ctx, owner, repo, opts)
		if err != nil {
			return nil, c.handleError(resp, err)
		}

		for _, ghCommit := range page {
			commits = append(commits, Commit{
				SHA:     ghCommit.GetSHA(),
				Message: ghCommit.GetCommit().GetMessage(),
			})

			if limit > 0 && len(commits) >= limit {
				return commits, nil
			}
		}

		if resp.NextPage == 0 || limit <= 0 {
			break
		}

		opts.Page = resp.NextPage
	}

	if len(commits) == 0 {
		return nil, ErrNoCommits
	}

	return commits, nil
}

// handleError converts GitHub API errors to our error types.
func (*SDKClient) handleError(resp *github.Response, err error) error {
	if resp == nil {
		return err
	}

	switch resp.StatusCode {
	case http.StatusNotFound:
		return ErrRepositoryNotFound
	case http.StatusForbidden:
		if resp.Rate.Remaining == 0 {
			return ErrRateLimitExceeded
		}

		return err
	default:
		return err
	}
}
