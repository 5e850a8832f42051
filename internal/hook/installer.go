// Package hook installs the commit-msg hook script into a repository.
package hook

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/go-git/go-git/v6"
)

const (
	// HookName is the git hook this tool drives.
	HookName = "commit-msg"

	// marker identifies hook scripts written by this tool. Uninstall
	// refuses to touch scripts without it.
	marker = "commitcheck"

	hookScript = "#!/bin/sh\nexec commitcheck hook \"$1\"\n"

	hookFileMode = 0o755
)

var (
	// ErrNotARepository is returned when no git repository is found at or
	// above the given directory.
	ErrNotARepository = errors.New("not a git repository")

	// ErrHookExists is returned when a foreign commit-msg hook is already
	// installed and force was not given.
	ErrHookExists = errors.New("a commit-msg hook already exists")

	// ErrHookNotInstalled is returned when uninstall finds no hook of ours.
	ErrHookNotInstalled = errors.New("commit-msg hook is not installed")
)

// Installer manages the commit-msg hook of one repository.
type Installer struct {
	gitDir string
}

// NewInstaller locates the repository containing dir and returns an
// installer bound to its hooks directory.
func NewInstaller(dir string) (*Installer, error) {
	if _, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true}); err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return nil, errors.Wrap(ErrNotARepository, dir)
		}

		return nil, errors.Wrap(err, "opening repository")
	}

	gitDir, err := findGitDir(dir)
	if err != nil {
		return nil, err
	}

	return &Installer{gitDir: gitDir}, nil
}

// HookPath returns the path of the commit-msg hook file.
func (i *Installer) HookPath() string {
	return filepath.Join(i.gitDir, "hooks", HookName)
}

// Install writes the hook script. An existing foreign hook is preserved
// unless force is set; our own hook is overwritten in place.
func (i *Installer) Install(force bool) error {
	path := i.HookPath()

	existing, err := os.ReadFile(path)
	switch {
	case err == nil:
		if !force && !isOurs(existing) {
			return errors.Wrap(ErrHookExists, path)
		}
	case !os.IsNotExist(err):
		return errors.Wrap(err, "reading existing hook")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating hooks directory")
	}

	if err := os.WriteFile(path, []byte(hookScript), hookFileMode); err != nil {
		return errors.Wrap(err, "writing hook")
	}

	return nil
}

// Uninstall removes the hook script if it is ours. Foreign hooks are
// left untouched.
func (i *Installer) Uninstall() error {
	path := i.HookPath()

	existing, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return ErrHookNotInstalled
		}

		return errors.Wrap(err, "reading hook")
	}

	if !isOurs(existing) {
		return errors.Wrap(ErrHookExists, "refusing to remove foreign hook")
	}

	if err := os.Remove(path); err != nil {
		return errors.Wrap(err, "removing hook")
	}

	return nil
}

// isOurs reports whether the script was written by this tool.
func isOurs(script []byte) bool {
	return strings.Contains(string(script), marker)
}

// findGitDir walks up from dir to the enclosing .git directory,
// following gitdir pointer files used by worktrees and submodules.
func findGitDir(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", errors.Wrap(err, "resolving directory")
	}

	for {
		candidate := filepath.Join(abs, ".git")

		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return candidate, nil
			}

			return readGitDirPointer(candidate)
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			return "", errors.Wrap(ErrNotARepository, dir)
		}

		abs = parent
	}
}

// readGitDirPointer resolves a .git file of the form "gitdir: <path>".
func readGitDirPointer(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "reading .git file")
	}

	content := strings.TrimSpace(string(data))

	target, ok := strings.CutPrefix(content, "gitdir: ")
	if !ok {
		return "", errors.Newf("malformed .git file %s", path)
	}

	if !filepath.IsAbs(target) {
		target = filepath.Join(filepath.Dir(path), target)
	}

	return filepath.Clean(target), nil
}
