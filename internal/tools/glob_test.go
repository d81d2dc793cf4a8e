package tools

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupGlobTree(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	for _, name := range []string{
		"main.go",
		"README.md",
		"src/util.go",
		"src/deep/more.go",
		"src/deep/data.json",
	} {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatalf("failed to create dir: %v", err)
		}
		if err := os.WriteFile(path, []byte("x"), 0644); err != nil {
			t.Fatalf("failed to write %s: %v", name, err)
		}
	}
	return dir
}

func TestGlob_DoubleStar(t *testing.T) {
	dir := setupGlobTree(t)
	tool := NewGlobTool()

	out := callTool(t, tool, map[string]any{"pattern": "**/*.go", "path": dir})

	for _, want := range []string{"main.go", filepath.Join("src", "util.go"), filepath.Join("src", "deep", "more.go")} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "README.md") || strings.Contains(out, "data.json") {
		t.Fatalf("non-go files matched:\n%s", out)
	}
}

func TestGlob_DoubleStarWithPrefix(t *testing.T) {
	dir := setupGlobTree(t)
	tool := NewGlobTool()

	out := callTool(t, tool, map[string]any{"pattern": "src/**/*.go", "path": dir})

	if !strings.Contains(out, filepath.Join("src", "util.go")) {
		t.Fatalf("missing src/util.go:\n%s", out)
	}
	if strings.Contains(out, "main.go") {
		t.Fatalf("main.go should not match src/**:\n%s", out)
	}
}

func TestGlob_PlainPattern(t *testing.T) {
	dir := setupGlobTree(t)
	tool := NewGlobTool()

	out := callTool(t, tool, map[string]any{"pattern": "*.md", "path": dir})

	if out != "README.md" {
		t.Fatalf("out = %q, want README.md", out)
	}
}

func TestGlob_NoMatches(t *testing.T) {
	dir := setupGlobTree(t)
	tool := NewGlobTool()

	out := callTool(t, tool, map[string]any{"pattern": "**/*.rs", "path": dir})

	if out != "No files matched" {
		t.Fatalf("out = %q", out)
	}
}
