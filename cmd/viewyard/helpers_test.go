package main

import (
	"path/filepath"
	"testing"

	"github.com/dheater/viewyard/internal/env"
)

func TestCurrentView(t *testing.T) {
	root := t.TempDir()
	origEnv, origWD := envv, workDir
	t.Cleanup(func() { envv, workDir = origEnv, origWD })
	envv = env.Environment{SourceRoot: root}

	tests := []struct {
		name    string
		cwd     string
		want    string
		wantErr bool
	}{
		{
			name: "view root",
			cwd:  filepath.Join(root, "work", "views", "fix-auth"),
			want: filepath.Join(root, "work", "views", "fix-auth"),
		},
		{
			name: "inside a repo of the view",
			cwd:  filepath.Join(root, "work", "views", "fix-auth", "api", "cmd"),
			want: filepath.Join(root, "work", "views", "fix-auth"),
		},
		{
			name:    "viewset root",
			cwd:     filepath.Join(root, "work"),
			wantErr: true,
		},
		{
			name:    "outside source root",
			cwd:     t.TempDir(),
			wantErr: true,
		},
		{
			name:    "views dir itself",
			cwd:     filepath.Join(root, "work", "views"),
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			workDir = tt.cwd
			got, err := currentView()
			if (err != nil) != tt.wantErr {
				t.Fatalf("currentView() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("currentView() = %q, want %q", got, tt.want)
			}
		})
	}
}
