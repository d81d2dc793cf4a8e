package tools

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danieljhkim/ada/internal/fsops"
)

func TestFileOps_DeleteFile(t *testing.T) {
	path := writeTemp(t, "gone.txt", "x\n")
	tool := NewFileOpsTool(fsops.NewRealFS(), 2)

	out := callTool(t, tool, map[string]any{"operation": "delete", "source": path})

	if !strings.Contains(out, "Deleted file "+path) {
		t.Fatalf("details missing:\n%s", out)
	}
	if _, err := os.Lstat(path); !os.IsNotExist(err) {
		t.Fatal("file still exists")
	}
}

func TestFileOps_DeleteDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "sub")
	if err := os.MkdirAll(filepath.Join(dir, "inner"), 0755); err != nil {
		t.Fatalf("failed to create dir: %v", err)
	}
	tool := NewFileOpsTool(fsops.NewRealFS(), 2)

	out := callTool(t, tool, map[string]any{"operation": "delete", "source": dir})

	if !strings.Contains(out, "Deleted directory "+dir) {
		t.Fatalf("details missing:\n%s", out)
	}
	if _, err := os.Lstat(dir); !os.IsNotExist(err) {
		t.Fatal("directory still exists")
	}
}

func TestFileOps_Move(t *testing.T) {
	src := writeTemp(t, "src.txt", "payload\n")
	dst := filepath.Join(filepath.Dir(src), "dst.txt")
	tool := NewFileOpsTool(fsops.NewRealFS(), 2)

	out := callTool(t, tool, map[string]any{
		"operation":   "move",
		"source":      src,
		"destination": dst,
	})

	if !strings.Contains(out, "Moved "+src+" to "+dst) {
		t.Fatalf("details missing:\n%s", out)
	}
	if _, err := os.Lstat(src); !os.IsNotExist(err) {
		t.Fatal("source still exists")
	}
	data, _ := os.ReadFile(dst)
	if string(data) != "payload\n" {
		t.Fatalf("destination = %q", data)
	}
}

func TestFileOps_MoveMissingSource(t *testing.T) {
	dir := t.TempDir()
	tool := NewFileOpsTool(fsops.NewRealFS(), 2)

	raw, _ := json.Marshal(map[string]any{
		"operation":   "move",
		"source":      filepath.Join(dir, "absent.txt"),
		"destination": filepath.Join(dir, "dst.txt"),
	})
	_, err := tool.Call(context.Background(), raw)
	if err == nil {
		t.Fatal("expected error for missing source")
	}
	if !strings.Contains(err.Error(), "does not exist") {
		t.Fatalf("err = %v", err)
	}
}

func TestFileOps_CopyToNewDestinationUsesDetails(t *testing.T) {
	src := writeTemp(t, "src.txt", "payload\n")
	dst := filepath.Join(filepath.Dir(src), "dst.txt")
	tool := NewFileOpsTool(fsops.NewRealFS(), 2)

	out := callTool(t, tool, map[string]any{
		"operation":   "copy",
		"source":      src,
		"destination": dst,
	})

	if !strings.Contains(out, "Copied "+src+" to "+dst) {
		t.Fatalf("details missing:\n%s", out)
	}
	if strings.Contains(out, "Updated") {
		t.Fatalf("unexpected diff block for new destination:\n%s", out)
	}
}

func TestFileOps_CopyOverExistingRendersDiff(t *testing.T) {
	dir := t.TempDir()
	src := filepath.Join(dir, "src.txt")
	dst := filepath.Join(dir, "dst.txt")
	if err := os.WriteFile(src, []byte("new\n"), 0644); err != nil {
		t.Fatalf("failed to write src: %v", err)
	}
	if err := os.WriteFile(dst, []byte("old\n"), 0644); err != nil {
		t.Fatalf("failed to write dst: %v", err)
	}
	tool := NewFileOpsTool(fsops.NewRealFS(), 2)

	out := callTool(t, tool, map[string]any{
		"operation":   "copy",
		"source":      src,
		"destination": dst,
	})

	if !strings.Contains(out, "Updated "+dst+" with 1 addition and 1 removal") {
		t.Fatalf("diff summary missing:\n%s", out)
	}
}

func TestFileOps_CopyDirectoryRejected(t *testing.T) {
	dir := t.TempDir()
	tool := NewFileOpsTool(fsops.NewRealFS(), 2)

	raw, _ := json.Marshal(map[string]any{
		"operation":   "copy",
		"source":      dir,
		"destination": filepath.Join(dir, "copy"),
	})
	if _, err := tool.Call(context.Background(), raw); err == nil {
		t.Fatal("expected error copying a directory")
	}
}

func TestFileOps_UnknownOperation(t *testing.T) {
	tool := NewFileOpsTool(fsops.NewRealFS(), 2)

	raw, _ := json.Marshal(map[string]any{"operation": "truncate", "source": "x"})
	if _, err := tool.Call(context.Background(), raw); err == nil {
		t.Fatal("expected error for unknown operation")
	}
}
