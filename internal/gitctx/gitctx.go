package gitctx

import (
	"fmt"
	"os/exec"
	"strings"

	git "github.com/go-git/go-git/v5"
)

// Repo wraps an opened git repository.
type Repo struct {
	repo *git.Repository
	root string
}

// Meta contains repository metadata.
type Meta struct {
	Root   string `json:"root"`
	Head   string `json:"head"`
	Branch string `json:"branch"`
}

// Open locates and opens the repository containing path, walking up parent
// directories the way git itself does.
func Open(path string) (*Repo, error) {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("not a git repository: %w", err)
	}
	root := path
	if wt, err := repo.Worktree(); err == nil {
		root = wt.Filesystem.Root()
	}
	return &Repo{repo: repo, root: root}, nil
}

// Root returns the worktree root directory.
func (r *Repo) Root() string {
	return r.root
}

// Meta collects root, HEAD sha, and branch name. HEAD and branch are empty
// on a repository with no commits yet.
func (r *Repo) Meta() Meta {
	m := Meta{Root: r.root}
	head, err := r.repo.Head()
	if err != nil {
		return m
	}
	m.Head = head.Hash().String()
	if head.Name().IsBranch() {
		m.Branch = head.Name().Short()
	}
	return m
}

// HasStagedChanges reports whether anything is staged in the index.
func (r *Repo) HasStagedChanges() (bool, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return false, fmt.Errorf("opening worktree: %w", err)
	}
	status, err := wt.Status()
	if err != nil {
		return false, fmt.Errorf("reading status: %w", err)
	}
	for _, fs := range status {
		if fs.Staging != git.Unmodified && fs.Staging != git.Untracked {
			return true, nil
		}
	}
	return false, nil
}

// StagedDiff returns the unified diff of the index against HEAD. go-git has
// no unified-diff renderer for the index, so this one command shells out.
// An empty string means nothing is staged.
func (r *Repo) StagedDiff() (string, error) {
	out, err := gitOutput(r.root, "diff", "--cached")
	if err != nil {
		return "", fmt.Errorf("git diff --cached: %w", err)
	}
	return out, nil
}

// CommitStaged commits the index with the given message and returns the new
// commit sha. Author identity comes from git configuration.
func (r *Repo) CommitStaged(message string) (string, error) {
	wt, err := r.repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("opening worktree: %w", err)
	}
	hash, err := wt.Commit(message, &git.CommitOptions{})
	if err != nil {
		return "", fmt.Errorf("committing: %w", err)
	}
	return hash.String(), nil
}

// GitDir returns the repository's .git directory, for hook installation.
func GitDir(dir string) (string, error) {
	out, err := gitOutput(dir, "rev-parse", "--absolute-git-dir")
	if err != nil {
		return "", fmt.Errorf("not a git repository: %w", err)
	}
	return strings.TrimSpace(out), nil
}

func gitOutput(dir string, args ...string) (string, error) {
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}
