package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dheater/viewyard/internal/config"
	"github.com/dheater/viewyard/internal/git"
)

// AddRepo attaches one more repository to an existing view and puts it
// on the view's branch. Submodule views get a proper submodule;
// legacy-manifest views get a shallow clone, with the manifest append
// rolled back if the clone fails so manifest and disk never diverge.
func AddRepo(ctx context.Context, viewPath, viewName string, repo config.Repository) error {
	repoPath := filepath.Join(viewPath, repo.Name)
	if _, err := os.Stat(repoPath); err == nil {
		return fmt.Errorf("repo %q already exists in this view", repo.Name)
	}

	if UsesLegacyManifest(viewPath) {
		return addRepoLegacy(ctx, viewPath, viewName, repo)
	}

	if err := git.AddSubmodule(ctx, viewPath, repo.URL, repo.Name); err != nil {
		return err
	}
	if err := checkoutViewBranch(ctx, repoPath, viewName); err != nil {
		return err
	}
	if err := git.Add(ctx, viewPath, ".gitmodules", repo.Name); err != nil {
		return err
	}
	return git.Commit(ctx, viewPath, "Add submodule "+repo.Name)
}

func addRepoLegacy(ctx context.Context, viewPath, viewName string, repo config.Repository) error {
	undo, err := appendLegacyManifest(viewPath, repo.Name)
	if err != nil {
		return err
	}
	repoPath := filepath.Join(viewPath, repo.Name)
	if err := git.CloneShallow(ctx, repo.URL, repoPath); err != nil {
		undo()
		return err
	}
	return checkoutViewBranch(ctx, repoPath, viewName)
}

func checkoutViewBranch(ctx context.Context, repoPath, branch string) error {
	if git.BranchExists(ctx, repoPath, branch) {
		return git.CheckoutBranch(ctx, repoPath, branch)
	}
	return git.CreateBranch(ctx, repoPath, branch)
}
