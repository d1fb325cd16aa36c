package git

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Init initializes a new git repository at dir, creating the directory
// if needed.
func Init(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create %s: %w", dir, err)
	}
	if err := runGit(ctx, dir, "init"); err != nil {
		return fmt.Errorf("git init %s: %w", dir, err)
	}
	return nil
}

// Add stages the given paths in the repository at dir.
func Add(ctx context.Context, dir string, paths ...string) error {
	args := append([]string{"add"}, paths...)
	return runGit(ctx, dir, args...)
}

// Commit records a commit with the given message in the repository at dir.
func Commit(ctx context.Context, dir, message string) error {
	return runGit(ctx, dir, "commit", "-m", message)
}

// CreateBranch creates and checks out a new branch in the repository at dir.
func CreateBranch(ctx context.Context, dir, name string) error {
	return runGit(ctx, dir, "checkout", "-b", name)
}

// CheckoutBranch checks out an existing branch in the repository at dir.
func CheckoutBranch(ctx context.Context, dir, name string) error {
	return runGit(ctx, dir, "checkout", name)
}

// BranchExists reports whether a local branch with the given name exists.
func BranchExists(ctx context.Context, dir, name string) bool {
	out, err := outputGit(ctx, dir, "branch", "--list", name)
	return err == nil && strings.TrimSpace(string(out)) != ""
}

// CurrentBranch returns the checked-out branch name, or an empty string
// for a detached HEAD.
func CurrentBranch(ctx context.Context, dir string) (string, error) {
	out, err := outputGit(ctx, dir, "branch", "--show-current")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// StatusPorcelain returns the porcelain status lines for the working tree
// at dir. An empty slice means the tree is clean.
func StatusPorcelain(ctx context.Context, dir string) ([]string, error) {
	out, err := outputGit(ctx, dir, "status", "--porcelain")
	if err != nil {
		return nil, err
	}
	return splitLines(out), nil
}

// IsDirty returns true if the working tree at dir has uncommitted changes.
// Errors are treated as clean, so a missing or broken repo never blocks
// a read-only scan.
func IsDirty(ctx context.Context, dir string) bool {
	lines, err := StatusPorcelain(ctx, dir)
	return err == nil && len(lines) > 0
}

// AheadCount returns the number of commits dir's branch is ahead of its
// upstream. Returns 0 (no error) when no upstream is configured.
func AheadCount(ctx context.Context, dir string) (int, error) {
	out, err := outputGit(ctx, dir, "rev-list", "--count", "@{upstream}..HEAD")
	if err != nil {
		if strings.Contains(err.Error(), "no upstream") {
			return 0, nil
		}
		return 0, err
	}
	n, convErr := strconv.Atoi(strings.TrimSpace(string(out)))
	if convErr != nil {
		return 0, fmt.Errorf("parse rev-list count %q: %w", strings.TrimSpace(string(out)), convErr)
	}
	return n, nil
}

// Fetch updates remote-tracking branches for the repository at dir.
func Fetch(ctx context.Context, dir string) error {
	return runGit(ctx, dir, "fetch", "origin")
}

// Rebase rebases the current branch onto the given upstream ref.
func Rebase(ctx context.Context, dir, upstream string) error {
	return runGit(ctx, dir, "rebase", upstream)
}

// Push pushes the current branch, setting upstream on first push.
func Push(ctx context.Context, dir, branch string) error {
	return runGit(ctx, dir, "push", "--set-upstream", "origin", branch)
}

// DefaultRemoteBranch returns origin's HEAD branch name (e.g. "master"
// or "main"), falling back to "master" when it cannot be determined.
func DefaultRemoteBranch(ctx context.Context, dir string) string {
	out, err := outputGit(ctx, dir, "symbolic-ref", "--short", "refs/remotes/origin/HEAD")
	if err != nil {
		return "master"
	}
	ref := strings.TrimSpace(string(out))
	if name, ok := strings.CutPrefix(ref, "origin/"); ok && name != "" {
		return name
	}
	return "master"
}

func splitLines(out []byte) []string {
	trimmed := strings.TrimSpace(string(out))
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "\n")
}
