package tools

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeGrepFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir for %s: %v", name, err)
		}
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
}

func setupGrepTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	writeGrepFiles(t, dir, map[string]string{
		"a.txt":        "alpha\nBETA\ngamma\n",
		"sub/b.txt":    "beta match here\nnothing\n",
		".env":         "beta hidden\n",
		".git/objects": "beta in git\n",
	})
	return dir
}

func TestGrep_DirectoryWalk(t *testing.T) {
	dir := setupGrepTree(t)
	tool := NewGrepTool()

	out := callTool(t, tool, map[string]any{"pattern": "beta", "path": dir})

	if !strings.Contains(out, filepath.Join(dir, "sub", "b.txt")+":1: beta match here") {
		t.Fatalf("expected match line:\n%s", out)
	}
	if strings.Contains(out, "BETA") {
		t.Fatalf("case-sensitive search matched BETA:\n%s", out)
	}
	if strings.Contains(out, ".git") {
		t.Fatalf(".git contents should be skipped:\n%s", out)
	}
}

func TestGrep_IncludesHiddenFiles(t *testing.T) {
	dir := setupGrepTree(t)
	tool := NewGrepTool()

	out := callTool(t, tool, map[string]any{"pattern": "beta", "path": dir})

	if !strings.Contains(out, filepath.Join(dir, ".env")+":1: beta hidden") {
		t.Fatalf("hidden file should be searched:\n%s", out)
	}
}

func TestGrep_HonorsGitignore(t *testing.T) {
	dir := t.TempDir()
	writeGrepFiles(t, dir, map[string]string{
		".gitignore":    "ignored.log\nbuild/\n",
		"ignored.log":   "needle here\n",
		"kept.txt":      "needle kept\n",
		"build/out.txt": "needle in build\n",
		"src/nested.go": "needle nested\n",
	})
	tool := NewGrepTool()

	out := callTool(t, tool, map[string]any{"pattern": "needle", "path": dir})

	if strings.Contains(out, "ignored.log") {
		t.Fatalf("gitignored file searched:\n%s", out)
	}
	if strings.Contains(out, filepath.Join("build", "out.txt")) {
		t.Fatalf("gitignored directory searched:\n%s", out)
	}
	if !strings.Contains(out, filepath.Join(dir, "kept.txt")+":1: needle kept") {
		t.Fatalf("non-ignored file missing:\n%s", out)
	}
	if !strings.Contains(out, filepath.Join(dir, "src", "nested.go")+":1: needle nested") {
		t.Fatalf("nested file missing:\n%s", out)
	}
}

func TestGrep_CaseInsensitive(t *testing.T) {
	dir := setupGrepTree(t)
	tool := NewGrepTool()

	out := callTool(t, tool, map[string]any{
		"pattern":          "beta",
		"path":             dir,
		"case_insensitive": true,
	})

	if !strings.Contains(out, "BETA") {
		t.Fatalf("case-insensitive search missed BETA:\n%s", out)
	}
}

func TestGrep_SingleFile(t *testing.T) {
	path := writeTemp(t, "f.txt", "one\ntwo\nthree\n")
	tool := NewGrepTool()

	out := callTool(t, tool, map[string]any{"pattern": "two", "path": path})

	want := path + ":2: two"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestGrep_NoMatches(t *testing.T) {
	dir := setupGrepTree(t)
	tool := NewGrepTool()

	out := callTool(t, tool, map[string]any{"pattern": "zzzz", "path": dir})

	if out != "No matches found" {
		t.Fatalf("out = %q", out)
	}
}
