package view

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidateName(t *testing.T) {
	tests := []struct {
		name    string
		wantErr bool
	}{
		{"fix-auth", false},
		{"JIRA-1234", false},
		{"", true},
		{"a/b", true},
		{"has space", true},
		{".hidden", true},
		{"-flag", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateName(tt.name)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateName(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
		})
	}
}

func TestDescriptorWriteOnce(t *testing.T) {
	dir := t.TempDir()

	if err := WriteDescriptor(dir, "fix-auth", []string{"api", "web"}); err != nil {
		t.Fatalf("WriteDescriptor() error = %v", err)
	}
	first, err := ReadDescriptor(dir)
	if err != nil {
		t.Fatalf("ReadDescriptor() error = %v", err)
	}

	// A second write must not replace the original snapshot.
	if err := WriteDescriptor(dir, "other-name", nil); err != nil {
		t.Fatalf("second WriteDescriptor() error = %v", err)
	}
	second, err := ReadDescriptor(dir)
	if err != nil {
		t.Fatal(err)
	}
	if second.ViewName != first.ViewName || second.Created != first.Created {
		t.Error("descriptor was overwritten")
	}
}

func TestDescriptorFields(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDescriptor(dir, filepath.Base(dir), []string{"api"}); err != nil {
		t.Fatal(err)
	}

	d, err := ReadDescriptor(dir)
	if err != nil {
		t.Fatal(err)
	}
	if !filepath.IsAbs(d.ViewRoot) {
		t.Errorf("ViewRoot = %q, want absolute", d.ViewRoot)
	}
	if len(d.Boundary.AllowedPaths) != 2 {
		t.Errorf("AllowedPaths = %v, want root and root/**", d.Boundary.AllowedPaths)
	}
	if len(d.Boundary.ForbiddenPaths) == 0 {
		t.Error("ForbiddenPaths should name sibling view globs")
	}
	if d.Created == "" {
		t.Error("Created timestamp missing")
	}
}

func TestValidateDescriptor(t *testing.T) {
	dir := t.TempDir()
	if err := WriteDescriptor(dir, filepath.Base(dir), []string{"api", "gone"}); err != nil {
		t.Fatal(err)
	}

	problems := ValidateDescriptor(dir, []string{"api"})
	if len(problems) != 1 || !strings.Contains(problems[0], "gone") {
		t.Errorf("problems = %v, want one about repo gone", problems)
	}

	if got := ValidateDescriptor(dir, []string{"api", "gone"}); len(got) != 0 {
		t.Errorf("consistent view should have no problems, got %v", got)
	}
}

func TestValidateDescriptorMissing(t *testing.T) {
	problems := ValidateDescriptor(t.TempDir(), nil)
	if len(problems) != 1 || !strings.Contains(problems[0], "descriptor") {
		t.Errorf("problems = %v, want a missing-descriptor note", problems)
	}
}

func TestLegacyManifestRead(t *testing.T) {
	dir := t.TempDir()
	content := "# comment\napi\n\nweb\n"
	if err := os.WriteFile(filepath.Join(dir, ".view-repos"), []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	repos, err := ActiveRepos(context.Background(), dir)
	if err != nil {
		t.Fatalf("ActiveRepos() error = %v", err)
	}
	if len(repos) != 2 || repos[0] != "api" || repos[1] != "web" {
		t.Errorf("repos = %v, want [api web]", repos)
	}
	if !UsesLegacyManifest(dir) {
		t.Error("UsesLegacyManifest should be true")
	}
}

func TestActiveReposEmptyView(t *testing.T) {
	repos, err := ActiveRepos(context.Background(), t.TempDir())
	if err != nil {
		t.Fatalf("ActiveRepos() error = %v", err)
	}
	if len(repos) != 0 {
		t.Errorf("repos = %v, want none", repos)
	}
}

func TestAppendLegacyManifestRollback(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".view-repos")
	if err := os.WriteFile(path, []byte("api\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	undo, err := appendLegacyManifest(dir, "web")
	if err != nil {
		t.Fatalf("appendLegacyManifest() error = %v", err)
	}
	data, _ := os.ReadFile(path)
	if string(data) != "api\nweb\n" {
		t.Fatalf("manifest = %q after append", data)
	}

	undo()
	data, _ = os.ReadFile(path)
	if string(data) != "api\n" {
		t.Errorf("manifest = %q after rollback, want original", data)
	}
}

func TestDeleteMissingView(t *testing.T) {
	if err := Delete(filepath.Join(t.TempDir(), "ghost")); err == nil {
		t.Fatal("Delete() of missing view should fail")
	}
}
