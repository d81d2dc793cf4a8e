package gitx

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestDiscover_FindsGitRootFromNestedDir(t *testing.T) {
	root := t.TempDir()
	if err := os.MkdirAll(filepath.Join(root, ".git"), 0755); err != nil {
		t.Fatalf("failed to create .git: %v", err)
	}
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatalf("failed to create nested dir: %v", err)
	}

	repo := NewRealGitRepo()
	got, err := repo.Discover(nested)
	if err != nil {
		t.Fatalf("Discover failed: %v", err)
	}

	// Resolve symlinks so temp dirs compare cleanly.
	wantResolved, _ := filepath.EvalSymlinks(root)
	gotResolved, _ := filepath.EvalSymlinks(got)
	if gotResolved != wantResolved {
		t.Fatalf("root = %q, want %q", got, root)
	}
}

func TestDiscover_GitFileCountsAsRoot(t *testing.T) {
	root := t.TempDir()
	if err := os.WriteFile(filepath.Join(root, ".git"), []byte("gitdir: ../elsewhere\n"), 0644); err != nil {
		t.Fatalf("failed to write .git file: %v", err)
	}

	repo := NewRealGitRepo()
	if _, err := repo.Discover(root); err != nil {
		t.Fatalf("Discover failed for worktree-style .git file: %v", err)
	}
}

func TestDiscover_NotARepo(t *testing.T) {
	repo := NewRealGitRepo()

	if _, err := repo.Discover(t.TempDir()); err == nil {
		t.Fatal("expected error outside a repository")
	}
}

func TestRun_FailureCarriesOutput(t *testing.T) {
	repo := NewRealGitRepo()

	// Not a repository, so git status fails with a message.
	_, err := repo.Run(context.Background(), t.TempDir(), "status")
	if err == nil {
		t.Fatal("expected error")
	}
}
