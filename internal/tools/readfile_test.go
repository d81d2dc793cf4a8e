package tools

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/danieljhkim/ada/internal/fsops"
)

func TestReadFile_NumbersLines(t *testing.T) {
	path := writeTemp(t, "f.txt", "first\nsecond\n")
	tool := NewReadFileTool(fsops.NewRealFS())

	out := callTool(t, tool, map[string]any{"file_path": path})

	want := "     1→first\n     2→second\n"
	if out != want {
		t.Fatalf("out = %q, want %q", out, want)
	}
}

func TestReadFile_EmptyFile(t *testing.T) {
	path := writeTemp(t, "f.txt", "")
	tool := NewReadFileTool(fsops.NewRealFS())

	out := callTool(t, tool, map[string]any{"file_path": path})

	if out != "(empty file)" {
		t.Fatalf("out = %q", out)
	}
}

func TestReadFile_MissingFile(t *testing.T) {
	tool := NewReadFileTool(fsops.NewRealFS())

	raw, _ := json.Marshal(map[string]any{"file_path": "/nonexistent/nope.txt"})
	if _, err := tool.Call(context.Background(), raw); err == nil {
		t.Fatal("expected error for missing file")
	}
}
