package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dheater/viewyard/internal/config"
	"github.com/dheater/viewyard/internal/view"
	"github.com/dheater/viewyard/internal/viewset"
)

// loadConfig reads the viewsets config, turning the three failure
// kinds into actionable messages.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(envv)
	if err == nil {
		return cfg, nil
	}
	if errors.Is(err, config.ErrConfigMissing) {
		return nil, fmt.Errorf("%v\nRun 'viewyard validate-comprehensive --auto-fix' to create one", err)
	}
	var perr *config.ParseError
	if errors.As(err, &perr) {
		return nil, fmt.Errorf("%v\nFix the YAML and try again", err)
	}
	return nil, err
}

// resolveViewset resolves the viewset context once per invocation:
// explicit flag > working directory > first configured viewset.
func resolveViewset(cfg *config.Config, explicit string) (viewset.Context, error) {
	return viewset.Resolve(envv, cfg, explicit, workDir)
}

// findView locates a view by name, preferring the current viewset.
func findView(cfg *config.Config, name string) (viewset.Context, string, error) {
	vc, err := resolveViewset(cfg, "")
	if err != nil {
		return viewset.Context{}, "", err
	}
	return viewset.FindView(envv, cfg, vc, name)
}

// currentView resolves the view enclosing the working directory, for
// workspace commands that take no view argument. The expected layout
// is <root>/<viewset>/views/<view>/...
func currentView() (string, error) {
	rel, err := filepath.Rel(envv.SourceRoot, workDir)
	if err != nil || strings.HasPrefix(rel, "..") {
		return "", fmt.Errorf("not inside a view (working directory is outside %s)", envv.SourceRoot)
	}
	parts := strings.Split(rel, string(filepath.Separator))
	if len(parts) < 3 || parts[1] != "views" {
		return "", fmt.Errorf("not inside a view; run from <viewset>/views/<view> or pass a view name")
	}
	return filepath.Join(envv.SourceRoot, parts[0], "views", parts[2]), nil
}

// viewPathFromArgs picks the target view: an explicit argument wins,
// otherwise the enclosing view directory.
func viewPathFromArgs(cfg *config.Config, args []string) (string, error) {
	if len(args) > 0 {
		_, path, err := findView(cfg, args[0])
		return path, err
	}
	return currentView()
}

// reportFailures prints per-repo failures without affecting the exit
// code; per-item failures inside a loop are recoverable by contract.
func reportFailures(printf func(format string, a ...any), failed []view.RepoFailure) {
	for _, f := range failed {
		printf("  ✗ %s: %v\n", f.Repo, f.Err)
	}
}
