// Package history reads commit messages from a local repository.
package history

import (
	"github.com/cockroachdb/errors"
	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"github.com/go-git/go-git/v6/plumbing/object"
	"github.com/go-git/go-git/v6/plumbing/storer"
)

// ErrNotARepository is returned when no git repository is found at or
// above the given directory.
var ErrNotARepository = errors.New("not a git repository")

// Commit is one historical commit to be audited.
type Commit struct {
	// Hash is the full commit hash.
	Hash string

	// Message is the raw commit message.
	Message string
}

// Reader iterates commit messages from a repository's history.
type Reader struct {
	repo *git.Repository
}

// Open discovers the repository containing dir, walking up to the
// enclosing .git directory.
func Open(dir string) (*Reader, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, errors.Wrap(ErrNotARepository, dir)
		}

		return nil, errors.Wrap(err, "opening repository")
	}

	return &Reader{repo: repo}, nil
}

// NewReader wraps an already-open repository.
func NewReader(repo *git.Repository) *Reader {
	return &Reader{repo: repo}
}

// Commits returns up to limit commits reachable from rev, newest first.
// rev defaults to HEAD; limit <= 0 means no limit.
func (r *Reader) Commits(rev string, limit int) ([]Commit, error) {
	if rev == "" {
		rev = "HEAD"
	}

	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, errors.Wrapf(err, "resolving revision %q", rev)
	}

	iter, err := r.repo.Log(&git.LogOptions{From: *hash})
	if err != nil {
		return nil, errors.Wrap(err, "reading log")
	}
	defer iter.Close()

	var commits []Commit

	err = iter.ForEach(func(commit *object.Commit) error {
		commits = append(commits, Commit{
			Hash:    commit.Hash.String(),
			Message: commit.Message,
		})

		if limit > 0 && len(commits) >= limit {
			return storer.ErrStop
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "iterating log")
	}

	return commits, nil
}

// Lookup resolves single revisions (hashes, refs) to their commits. Used
// when the caller names specific commits instead of walking history.
func (r *Reader) Lookup(revs []string) ([]Commit, error) {
	commits := make([]Commit, 0, len(revs))

	for _, rev := range revs {
		hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
		if err != nil {
			return nil, errors.Wrapf(err, "resolving revision %q", rev)
		}

		commit, err := r.repo.CommitObject(*hash)
		if err != nil {
			return nil, errors.Wrapf(err, "reading commit %s", hash)
		}

		commits = append(commits, Commit{
			Hash:    commit.Hash.String(),
			Message: commit.Message,
		})
	}

	return commits, nil
}
