package viewset

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dheater/viewyard/internal/git"
)

// State classifies a viewset directory before viewyard acts on it. The
// values are ordered by priority: the analyzer reports the first state
// that matches.
type State int

const (
	// StateAbsent means the directory does not exist yet.
	StateAbsent State = iota
	// StateEmpty means the directory exists but has no entries.
	StateEmpty
	// StateManagedActive means viewyard manages the directory and at
	// least one view has uncommitted work.
	StateManagedActive
	// StateManagedClean means viewyard manages the directory and every
	// view is clean.
	StateManagedClean
	// StateManagedEmptyViews means viewyard manages the directory but
	// no views exist.
	StateManagedEmptyViews
	// StateHasRepos means the directory holds git repositories that
	// viewyard did not create.
	StateHasRepos
	// StateHasOther means the directory holds unrelated files.
	StateHasOther
)

func (s State) String() string {
	switch s {
	case StateAbsent:
		return "absent"
	case StateEmpty:
		return "empty"
	case StateManagedActive:
		return "managed, active views"
	case StateManagedClean:
		return "managed, all views clean"
	case StateManagedEmptyViews:
		return "managed, no views"
	case StateHasRepos:
		return "contains git repositories"
	case StateHasOther:
		return "contains unrelated files"
	}
	return "unknown"
}

// Safe reports whether viewyard may create content in a directory in
// this state without destroying anything. A managed directory with
// uncommitted work is not safe: the user must confirm explicitly
// before anything touches it.
func (s State) Safe() bool {
	switch s {
	case StateAbsent, StateEmpty, StateManagedClean, StateManagedEmptyViews:
		return true
	}
	return false
}

// Analysis is the analyzer's report for one directory.
type Analysis struct {
	State      State
	DirtyViews []string
	Message    string
}

// DirtyFunc reports whether the repository at path has uncommitted
// changes. Injected so classification is testable without real repos.
type DirtyFunc func(ctx context.Context, path string) bool

// Analyzer classifies viewset directories. The zero value uses real
// git status checks.
type Analyzer struct {
	Dirty DirtyFunc
}

func (a Analyzer) dirty(ctx context.Context, path string) bool {
	if a.Dirty != nil {
		return a.Dirty(ctx, path)
	}
	return git.IsDirty(ctx, path)
}

// Analyze inspects a viewset root directory and reports what is there.
// It never modifies anything.
func (a Analyzer) Analyze(ctx context.Context, root string) (Analysis, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Analysis{State: StateAbsent, Message: "directory does not exist"}, nil
		}
		return Analysis{}, fmt.Errorf("read %s: %w", root, err)
	}

	if len(entries) == 0 {
		return Analysis{State: StateEmpty, Message: "directory is empty"}, nil
	}

	hasViews := false
	for _, e := range entries {
		if e.IsDir() && e.Name() == "views" {
			hasViews = true
			break
		}
	}

	if hasViews {
		return a.analyzeManaged(ctx, filepath.Join(root, "views"))
	}

	for _, e := range entries {
		if e.IsDir() && git.IsRepo(filepath.Join(root, e.Name())) {
			return Analysis{
				State:   StateHasRepos,
				Message: fmt.Sprintf("%s contains git repositories not created by viewyard", root),
			}, nil
		}
	}

	return Analysis{
		State:   StateHasOther,
		Message: fmt.Sprintf("%s contains unrelated files", root),
	}, nil
}

func (a Analyzer) analyzeManaged(ctx context.Context, viewsDir string) (Analysis, error) {
	entries, err := os.ReadDir(viewsDir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Analysis{State: StateManagedEmptyViews, Message: "no views yet"}, nil
		}
		return Analysis{}, fmt.Errorf("read %s: %w", viewsDir, err)
	}

	var views, dirty []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		views = append(views, e.Name())
		if a.dirty(ctx, filepath.Join(viewsDir, e.Name())) {
			dirty = append(dirty, e.Name())
		}
	}

	switch {
	case len(views) == 0:
		return Analysis{State: StateManagedEmptyViews, Message: "no views yet"}, nil
	case len(dirty) > 0:
		return Analysis{
			State:      StateManagedActive,
			DirtyViews: dirty,
			Message:    fmt.Sprintf("views with uncommitted work: %s", strings.Join(dirty, ", ")),
		}, nil
	default:
		return Analysis{State: StateManagedClean, Message: "all views clean"}, nil
	}
}
