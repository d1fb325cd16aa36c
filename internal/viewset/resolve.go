// Package viewset resolves which viewset an invocation operates on and
// analyzes viewset directories before viewyard touches them.
package viewset

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dheater/viewyard/internal/config"
	"github.com/dheater/viewyard/internal/env"
)

// ErrNoViewsets indicates no viewset could be resolved because the
// configuration has none.
var ErrNoViewsets = errors.New("no viewsets configured")

// Context is the viewset an invocation operates on, resolved once at
// the start of the command and passed down explicitly.
type Context struct {
	Name     string
	Viewset  *config.Viewset
	Root     string
	ViewsDir string
}

// ViewPath returns the directory a view of this viewset lives in.
func (c Context) ViewPath(view string) string {
	return filepath.Join(c.ViewsDir, view)
}

// Root returns the top-level directory of a viewset.
func Root(e env.Environment, name string) string {
	return filepath.Join(e.SourceRoot, name)
}

// ViewsDir returns the directory holding a viewset's views.
func ViewsDir(e env.Environment, name string) string {
	return filepath.Join(Root(e, name), "views")
}

// Detect infers the viewset from the working directory: the first path
// component below the source root, when it names a configured viewset.
// Returns "" when no viewset can be inferred.
func Detect(e env.Environment, cfg *config.Config, cwd string) string {
	rel, err := filepath.Rel(e.SourceRoot, cwd)
	if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
		return ""
	}
	first := rel
	if i := strings.IndexRune(rel, filepath.Separator); i >= 0 {
		first = rel[:i]
	}
	if _, ok := cfg.Viewset(first); !ok {
		return ""
	}
	return first
}

// Resolve picks the viewset for this invocation. An explicit name wins
// and must exist; otherwise the working directory is consulted; the
// final fallback is the first configured viewset.
func Resolve(e env.Environment, cfg *config.Config, explicit, cwd string) (Context, error) {
	name := explicit
	if name != "" {
		if _, ok := cfg.Viewset(name); !ok {
			return Context{}, fmt.Errorf("unknown viewset %q (configured: %s)",
				name, strings.Join(cfg.Names(), ", "))
		}
	} else {
		name = Detect(e, cfg, cwd)
	}
	if name == "" {
		if len(cfg.Viewsets) == 0 {
			return Context{}, ErrNoViewsets
		}
		name = cfg.Viewsets[0].Name
	}

	vs, _ := cfg.Viewset(name)
	return Context{
		Name:     name,
		Viewset:  vs,
		Root:     Root(e, name),
		ViewsDir: ViewsDir(e, name),
	}, nil
}

// FindView locates an existing view by name across all configured
// viewsets, preferring the resolved one. Used by commands that accept a
// view name without a viewset flag.
func FindView(e env.Environment, cfg *config.Config, preferred Context, view string) (Context, string, error) {
	candidates := []string{preferred.Name}
	for _, name := range cfg.Names() {
		if name != preferred.Name {
			candidates = append(candidates, name)
		}
	}
	for _, name := range candidates {
		path := filepath.Join(ViewsDir(e, name), view)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			vs, _ := cfg.Viewset(name)
			return Context{
				Name:     name,
				Viewset:  vs,
				Root:     Root(e, name),
				ViewsDir: ViewsDir(e, name),
			}, path, nil
		}
	}
	return Context{}, "", fmt.Errorf("view %q not found in any viewset", view)
}

// ListViews returns the view names under a viewset, sorted by the
// filesystem's directory order.
func ListViews(c Context) ([]string, error) {
	entries, err := os.ReadDir(c.ViewsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read views directory: %w", err)
	}
	var views []string
	for _, e := range entries {
		if e.IsDir() {
			views = append(views, e.Name())
		}
	}
	return views, nil
}
