package viewset

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func neverDirty(context.Context, string) bool { return false }

func TestAnalyzeAbsent(t *testing.T) {
	a := Analyzer{Dirty: neverDirty}
	got, err := a.Analyze(context.Background(), filepath.Join(t.TempDir(), "missing"))
	if err != nil {
		t.Fatalf("Analyze() error = %v", err)
	}
	if got.State != StateAbsent {
		t.Errorf("State = %v, want absent", got.State)
	}
	if !got.State.Safe() {
		t.Error("absent should be safe")
	}
}

func TestAnalyzeEmpty(t *testing.T) {
	a := Analyzer{Dirty: neverDirty}
	got, err := a.Analyze(context.Background(), t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if got.State != StateEmpty {
		t.Errorf("State = %v, want empty", got.State)
	}
}

func TestAnalyzeManagedEmptyViews(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "views"), 0o755); err != nil {
		t.Fatal(err)
	}

	a := Analyzer{Dirty: neverDirty}
	got, err := a.Analyze(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if got.State != StateManagedEmptyViews {
		t.Errorf("State = %v, want managed with no views", got.State)
	}
}

func TestAnalyzeManagedClean(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "views", "fix-auth"), 0o755); err != nil {
		t.Fatal(err)
	}

	a := Analyzer{Dirty: neverDirty}
	got, err := a.Analyze(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if got.State != StateManagedClean {
		t.Errorf("State = %v, want managed clean", got.State)
	}
}

func TestAnalyzeManagedActiveNamesDirtyViews(t *testing.T) {
	root := t.TempDir()
	for _, v := range []string{"clean-one", "dirty-one"} {
		if err := os.MkdirAll(filepath.Join(root, "views", v), 0o755); err != nil {
			t.Fatal(err)
		}
	}

	a := Analyzer{Dirty: func(_ context.Context, path string) bool {
		return filepath.Base(path) == "dirty-one"
	}}
	got, err := a.Analyze(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if got.State != StateManagedActive {
		t.Fatalf("State = %v, want managed active", got.State)
	}
	if len(got.DirtyViews) != 1 || got.DirtyViews[0] != "dirty-one" {
		t.Errorf("DirtyViews = %v, want [dirty-one]", got.DirtyViews)
	}
	if !strings.Contains(got.Message, "dirty-one") {
		t.Errorf("Message = %q, should name the dirty view", got.Message)
	}
}

func TestManagedActiveIsNotSafe(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "views", "task"), 0o755); err != nil {
		t.Fatal(err)
	}

	a := Analyzer{Dirty: func(context.Context, string) bool { return true }}
	got, err := a.Analyze(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if got.State != StateManagedActive {
		t.Fatalf("State = %v, want managed active", got.State)
	}
	if got.State.Safe() {
		t.Error("uncommitted work in a view must not be safe to proceed over")
	}
}

func TestAnalyzeHasRepos(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "legacy-repo", ".git"), 0o755); err != nil {
		t.Fatal(err)
	}

	a := Analyzer{Dirty: neverDirty}
	got, err := a.Analyze(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if got.State != StateHasRepos {
		t.Errorf("State = %v, want has repos", got.State)
	}
	if got.State.Safe() {
		t.Error("existing repos should not be safe to overwrite")
	}
}

func TestAnalyzeHasOther(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "notes.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	a := Analyzer{Dirty: neverDirty}
	got, err := a.Analyze(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if got.State != StateHasOther {
		t.Errorf("State = %v, want has other", got.State)
	}
	if got.State.Safe() {
		t.Error("unrelated content should not be safe")
	}
}

func TestViewsSubdirWinsOverRepos(t *testing.T) {
	// A managed directory can also contain stray files; the views
	// marker takes priority.
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, "views"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "justfile"), []byte("# viewyard:work\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	a := Analyzer{Dirty: neverDirty}
	got, err := a.Analyze(context.Background(), root)
	if err != nil {
		t.Fatal(err)
	}
	if got.State != StateManagedEmptyViews {
		t.Errorf("State = %v, want managed", got.State)
	}
}
