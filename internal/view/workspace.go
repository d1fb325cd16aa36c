package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dheater/viewyard/internal/git"
)

// eachRepo runs fn for every repository present in the view, collecting
// per-repo failures instead of aborting the loop.
func eachRepo(ctx context.Context, viewPath string, fn func(name, path string) error) ([]string, []RepoFailure, error) {
	repos, err := ActiveRepos(ctx, viewPath)
	if err != nil {
		return nil, nil, err
	}

	var done []string
	var failed []RepoFailure
	for _, r := range repos {
		path := filepath.Join(viewPath, r)
		if _, err := os.Stat(path); err != nil {
			failed = append(failed, RepoFailure{Repo: r, Err: fmt.Errorf("not present on disk")})
			continue
		}
		if err := fn(r, path); err != nil {
			failed = append(failed, RepoFailure{Repo: r, Err: err})
			continue
		}
		done = append(done, r)
	}
	return done, failed, nil
}

// Rebase fetches and rebases every repository in the view onto its
// upstream default branch.
func Rebase(ctx context.Context, viewPath string) ([]string, []RepoFailure, error) {
	return eachRepo(ctx, viewPath, func(name, path string) error {
		if err := git.Fetch(ctx, path); err != nil {
			return err
		}
		base := git.DefaultRemoteBranch(ctx, path)
		return git.Rebase(ctx, path, "origin/"+base)
	})
}

// CommitAll commits outstanding changes in every dirty repository with
// a shared message. Clean repositories are skipped, not failures.
func CommitAll(ctx context.Context, viewPath, message string) ([]string, []RepoFailure, error) {
	var committed []string
	_, failed, err := eachRepo(ctx, viewPath, func(name, path string) error {
		if !git.IsDirty(ctx, path) {
			return nil
		}
		if err := git.Add(ctx, path, "-A"); err != nil {
			return err
		}
		if err := git.Commit(ctx, path, message); err != nil {
			return err
		}
		committed = append(committed, name)
		return nil
	})
	return committed, failed, err
}

// PushAll pushes the view branch of every repository, setting upstream
// on first push.
func PushAll(ctx context.Context, viewPath string) ([]string, []RepoFailure, error) {
	return eachRepo(ctx, viewPath, func(name, path string) error {
		branch, err := git.CurrentBranch(ctx, path)
		if err != nil {
			return err
		}
		if branch == "" {
			return fmt.Errorf("detached HEAD")
		}
		return git.Push(ctx, path, branch)
	})
}
