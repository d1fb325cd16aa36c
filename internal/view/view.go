package view

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dheater/viewyard/internal/config"
	"github.com/dheater/viewyard/internal/env"
	"github.com/dheater/viewyard/internal/git"
	"github.com/dheater/viewyard/internal/viewset"
)

// Summary is one row of the list output.
type Summary struct {
	Viewset   string
	Name      string
	Path      string
	RepoCount int
	Legacy    bool
}

// List enumerates views. With a viewset context it lists that viewset;
// with a nil context it walks every configured viewset.
func List(ctx context.Context, e env.Environment, cfg *config.Config, only *viewset.Context) ([]Summary, error) {
	names := cfg.Names()
	if only != nil {
		names = []string{only.Name}
	}

	var out []Summary
	for _, vs := range names {
		vc := viewset.Context{Name: vs, ViewsDir: viewset.ViewsDir(e, vs)}
		views, err := viewset.ListViews(vc)
		if err != nil {
			return nil, err
		}
		for _, v := range views {
			path := vc.ViewPath(v)
			repos, err := ActiveRepos(ctx, path)
			if err != nil {
				return nil, fmt.Errorf("view %s: %w", v, err)
			}
			out = append(out, Summary{
				Viewset:   vs,
				Name:      v,
				Path:      path,
				RepoCount: len(repos),
				Legacy:    UsesLegacyManifest(path),
			})
		}
	}
	return out, nil
}

// RepoInfo is the per-repository detail reported by Info.
type RepoInfo struct {
	Name    string
	Present bool
	Branch  string
	Dirty   bool
	Ahead   int
}

// ViewInfo is the full report for one view.
type ViewInfo struct {
	Name    string
	Viewset string
	Path    string
	Branch  string
	Repos   []RepoInfo
}

// Info inspects a view and each of its repositories. Submodules can be
// absent on disk if never initialized; that is reported, not an error.
func Info(ctx context.Context, vc viewset.Context, path, name string) (*ViewInfo, error) {
	repos, err := ActiveRepos(ctx, path)
	if err != nil {
		return nil, err
	}

	info := &ViewInfo{Name: name, Viewset: vc.Name, Path: path}
	if branch, err := git.CurrentBranch(ctx, path); err == nil {
		info.Branch = branch
	}

	for _, r := range repos {
		repoPath := filepath.Join(path, r)
		ri := RepoInfo{Name: r}
		if info, err := os.Stat(repoPath); err == nil && info.IsDir() {
			ri.Present = true
			if branch, err := git.CurrentBranch(ctx, repoPath); err == nil {
				ri.Branch = branch
			}
			ri.Dirty = git.IsDirty(ctx, repoPath)
			if ahead, err := git.AheadCount(ctx, repoPath); err == nil {
				ri.Ahead = ahead
			}
		}
		info.Repos = append(info.Repos, ri)
	}
	return info, nil
}

// DeleteSafety lists work that would be lost by deleting the view.
func DeleteSafety(ctx context.Context, path string) []string {
	var warnings []string
	repos, err := ActiveRepos(ctx, path)
	if err != nil {
		return warnings
	}
	for _, r := range repos {
		repoPath := filepath.Join(path, r)
		if _, err := os.Stat(repoPath); err != nil {
			continue
		}
		if git.IsDirty(ctx, repoPath) {
			warnings = append(warnings, fmt.Sprintf("%s has uncommitted changes", r))
		}
		if ahead, err := git.AheadCount(ctx, repoPath); err == nil && ahead > 0 {
			warnings = append(warnings, fmt.Sprintf("%s has %d unpushed commit(s)", r, ahead))
		}
	}
	return warnings
}

// Delete removes a view directory recursively. Confirmation is the
// caller's job; no backup is taken because views are disposable task
// scratch space.
func Delete(path string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("view not found at %s", path)
	}
	if err := os.RemoveAll(path); err != nil {
		return fmt.Errorf("delete view: %w", err)
	}
	return nil
}
