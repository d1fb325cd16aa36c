package view

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dheater/viewyard/internal/git"
)

// legacyManifest is the pre-submodule flat manifest. Still readable so
// old views keep working; new code never writes it.
const legacyManifest = ".view-repos"

// ActiveRepos lists the repositories attached to a view, preferring
// the submodule manifest and falling back to the legacy flat file.
func ActiveRepos(ctx context.Context, viewPath string) ([]string, error) {
	subs, err := git.SubmoduleStatus(ctx, viewPath)
	if err == nil && len(subs) > 0 {
		names := make([]string, len(subs))
		for i, s := range subs {
			names[i] = s.Path
		}
		return names, nil
	}

	names, lerr := readLegacyManifest(viewPath)
	if lerr == nil {
		return names, nil
	}
	if err != nil && !errors.Is(lerr, os.ErrNotExist) {
		return nil, err
	}
	return nil, nil
}

func readLegacyManifest(viewPath string) ([]string, error) {
	data, err := os.ReadFile(filepath.Join(viewPath, legacyManifest))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		names = append(names, line)
	}
	return names, nil
}

// UsesLegacyManifest reports whether a view still tracks repos through
// the flat manifest file instead of submodules.
func UsesLegacyManifest(viewPath string) bool {
	_, err := os.Stat(filepath.Join(viewPath, legacyManifest))
	return err == nil
}

// appendLegacyManifest adds a repo name to the flat manifest of a
// legacy view, returning an undo func for rollback.
func appendLegacyManifest(viewPath, name string) (func(), error) {
	path := filepath.Join(viewPath, legacyManifest)
	before, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read manifest: %w", err)
	}
	after := before
	if len(after) > 0 && after[len(after)-1] != '\n' {
		after = append(after, '\n')
	}
	after = append(after, []byte(name+"\n")...)
	if err := os.WriteFile(path, after, 0o644); err != nil {
		return nil, fmt.Errorf("update manifest: %w", err)
	}
	undo := func() { os.WriteFile(path, before, 0o644) }
	return undo, nil
}
