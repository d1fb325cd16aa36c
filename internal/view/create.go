// Package view implements the view lifecycle: creating, inspecting,
// extending and deleting task-scoped view directories.
package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dheater/viewyard/internal/config"
	"github.com/dheater/viewyard/internal/git"
	"github.com/dheater/viewyard/internal/justfile"
	"github.com/dheater/viewyard/internal/log"
	"github.com/dheater/viewyard/internal/viewset"
)

// gitignore excludes viewyard's own metadata from the view repository.
const gitignore = "# Viewyard view repository\n.view-repos\n.viewyard-context\n"

// RepoFailure records a per-repository step that failed without
// aborting the rest of the operation.
type RepoFailure struct {
	Repo string
	Err  error
}

// CreateReport summarizes a create operation. Added and Failed
// together cover the selected repositories.
type CreateReport struct {
	Path    string
	Branch  string
	Added   []string
	Failed  []RepoFailure
	Warning string
}

// ValidateName rejects view names that would not work as a directory
// name and a branch name at the same time.
func ValidateName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("view name is empty")
	case strings.ContainsAny(name, "/\\ "):
		return fmt.Errorf("view name %q must not contain slashes or spaces", name)
	case strings.HasPrefix(name, ".") || strings.HasPrefix(name, "-"):
		return fmt.Errorf("view name %q must not start with %q", name, name[:1])
	}
	return nil
}

// Create builds a new view: a fresh git repository on a branch named
// after the view, with each selected repository attached as a submodule
// checked out on that same branch. Per-repository failures are
// collected, not fatal; only failing to initialize the view repository
// itself aborts.
func Create(ctx context.Context, vc viewset.Context, name string, repos []config.Repository) (*CreateReport, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}

	path := vc.ViewPath(name)
	if _, err := os.Stat(path); err == nil {
		return nil, fmt.Errorf("view %q already exists at %s", name, path)
	}

	report := &CreateReport{Path: path, Branch: name}

	analysis, err := viewset.Analyzer{}.Analyze(ctx, vc.Root)
	if err != nil {
		return nil, err
	}
	switch analysis.State {
	case viewset.StateHasRepos, viewset.StateHasOther:
		// Advisory only: stray content next to views/ does not block
		// creating a new view, but the user should know.
		report.Warning = analysis.Message
	}

	if err := os.MkdirAll(vc.ViewsDir, 0o755); err != nil {
		return nil, fmt.Errorf("create views directory: %w", err)
	}
	if err := justfile.Write(vc.Root, vc.Name); err != nil {
		// The launcher is a convenience; a foreign justfile must not
		// block view creation.
		log.FromContext(ctx).Printf("warning: %v\n", err)
	}

	if err := initViewRepo(ctx, path, name); err != nil {
		return nil, err
	}

	for _, repo := range repos {
		if err := attachRepo(ctx, path, repo, name); err != nil {
			report.Failed = append(report.Failed, RepoFailure{Repo: repo.Name, Err: err})
			continue
		}
		report.Added = append(report.Added, repo.Name)
	}

	if len(report.Added) > 0 {
		if err := commitSubmodules(ctx, path, report.Added); err != nil {
			return report, err
		}
	}

	if err := WriteDescriptor(path, name, report.Added); err != nil {
		return report, err
	}
	return report, nil
}

func initViewRepo(ctx context.Context, path, name string) error {
	if err := git.Init(ctx, path); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(path, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("write .gitignore: %w", err)
	}
	if err := git.Add(ctx, path, ".gitignore"); err != nil {
		return err
	}
	if err := git.Commit(ctx, path, "Initial commit for view "+name); err != nil {
		return err
	}
	return git.CreateBranch(ctx, path, name)
}

// attachRepo adds one repository as a submodule and puts it on the
// view's branch.
func attachRepo(ctx context.Context, viewPath string, repo config.Repository, branch string) error {
	if err := git.AddSubmodule(ctx, viewPath, repo.URL, repo.Name); err != nil {
		return err
	}
	sub := filepath.Join(viewPath, repo.Name)
	if git.BranchExists(ctx, sub, branch) {
		return git.CheckoutBranch(ctx, sub, branch)
	}
	return git.CreateBranch(ctx, sub, branch)
}

func commitSubmodules(ctx context.Context, viewPath string, names []string) error {
	paths := append([]string{".gitmodules"}, names...)
	if err := git.Add(ctx, viewPath, paths...); err != nil {
		return err
	}
	return git.Commit(ctx, viewPath, "Add submodules for "+strings.Join(names, ", "))
}
