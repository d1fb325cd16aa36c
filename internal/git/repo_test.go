package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

func requireGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git not installed")
	}
}

func setupGitEnv(t *testing.T) {
	t.Helper()
	cfg := filepath.Join(t.TempDir(), "gitconfig")
	content := "[user]\n\tname = Test\n\temail = test@example.com\n"
	if err := os.WriteFile(cfg, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("GIT_CONFIG_GLOBAL", cfg)
	t.Setenv("GIT_CONFIG_SYSTEM", os.DevNull)
}

func TestInitAndCommitFlow(t *testing.T) {
	requireGit(t)
	setupGitEnv(t)
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "repo")

	if err := Init(ctx, dir); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if !IsRepo(dir) {
		t.Fatal("IsRepo() = false after init")
	}

	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if !IsDirty(ctx, dir) {
		t.Error("IsDirty() = false with untracked file")
	}

	if err := Add(ctx, dir, "a.txt"); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := Commit(ctx, dir, "initial"); err != nil {
		t.Fatalf("Commit() error = %v", err)
	}
	if IsDirty(ctx, dir) {
		t.Error("IsDirty() = true after commit")
	}
}

func TestBranchHelpers(t *testing.T) {
	requireGit(t)
	setupGitEnv(t)
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "repo")

	if err := Init(ctx, dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Add(ctx, dir, "a.txt"); err != nil {
		t.Fatal(err)
	}
	if err := Commit(ctx, dir, "initial"); err != nil {
		t.Fatal(err)
	}

	if BranchExists(ctx, dir, "fix-auth") {
		t.Error("BranchExists() = true before creation")
	}
	if err := CreateBranch(ctx, dir, "fix-auth"); err != nil {
		t.Fatalf("CreateBranch() error = %v", err)
	}
	if !BranchExists(ctx, dir, "fix-auth") {
		t.Error("BranchExists() = false after creation")
	}

	branch, err := CurrentBranch(ctx, dir)
	if err != nil {
		t.Fatalf("CurrentBranch() error = %v", err)
	}
	if branch != "fix-auth" {
		t.Errorf("CurrentBranch() = %q, want fix-auth", branch)
	}
}

func TestAheadCountNoUpstream(t *testing.T) {
	requireGit(t)
	setupGitEnv(t)
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "repo")

	if err := Init(ctx, dir); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := Add(ctx, dir, "a.txt"); err != nil {
		t.Fatal(err)
	}
	if err := Commit(ctx, dir, "initial"); err != nil {
		t.Fatal(err)
	}

	n, err := AheadCount(ctx, dir)
	if err != nil {
		t.Fatalf("AheadCount() error = %v", err)
	}
	if n != 0 {
		t.Errorf("AheadCount() = %d without upstream, want 0", n)
	}
}

func TestDefaultRemoteBranchFallback(t *testing.T) {
	requireGit(t)
	setupGitEnv(t)
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "repo")

	if err := Init(ctx, dir); err != nil {
		t.Fatal(err)
	}
	if got := DefaultRemoteBranch(ctx, dir); got != "master" {
		t.Errorf("DefaultRemoteBranch() = %q without origin, want master", got)
	}
}
