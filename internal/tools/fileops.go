package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danieljhkim/ada/internal/diff"
	"github.com/danieljhkim/ada/internal/fsops"
	"github.com/danieljhkim/ada/internal/report"
)

// FileOpsTool deletes, moves, or copies files and directories.
type FileOpsTool struct {
	fs           fsops.FS
	contextLines int
}

// NewFileOpsTool creates a FileOpsTool.
func NewFileOpsTool(fs fsops.FS, contextLines int) *FileOpsTool {
	return &FileOpsTool{fs: fs, contextLines: contextLines}
}

func (t *FileOpsTool) Name() string { return "file_ops" }

func (t *FileOpsTool) Description() string {
	return "Delete, move, or copy a file or directory"
}

func (t *FileOpsTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"operation": map[string]any{
			"type":        "string",
			"enum":        []string{"delete", "move", "copy"},
			"description": "Operation to perform",
		},
		"source": map[string]any{
			"type":        "string",
			"description": "Path to operate on",
		},
		"destination": map[string]any{
			"type":        "string",
			"description": "Destination path for move and copy",
		},
	}, "operation", "source")
}

type fileOpsArgs struct {
	Operation   string `json:"operation"`
	Source      string `json:"source"`
	Destination string `json:"destination"`
}

func (t *FileOpsTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a fileOpsArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Source == "" {
		return "", fmt.Errorf("source is required")
	}

	switch a.Operation {
	case "delete":
		return t.delete(a.Source)
	case "move":
		return t.move(a.Source, a.Destination)
	case "copy":
		return t.copy(a.Source, a.Destination)
	default:
		return "", fmt.Errorf("unknown operation: %q", a.Operation)
	}
}

func (t *FileOpsTool) delete(source string) (string, error) {
	info, err := t.fs.Lstat(source)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", source, err)
	}

	kind := "file"
	if info.IsDir() {
		kind = "directory"
		err = t.fs.RemoveAll(source)
	} else {
		err = t.fs.Remove(source)
	}
	if err != nil {
		return "", fmt.Errorf("failed to delete %s: %w", source, err)
	}

	details := fmt.Sprintf("Deleted %s %s", kind, source)
	return report.New("Delete", source).WithDetails(details).Render(), nil
}

func (t *FileOpsTool) move(source, destination string) (string, error) {
	if destination == "" {
		return "", fmt.Errorf("destination is required for move")
	}

	exists, err := t.fs.Exists(source)
	if err != nil {
		return "", fmt.Errorf("failed to check %s: %w", source, err)
	}
	if !exists {
		return "", fmt.Errorf("source %s does not exist", source)
	}

	if err := t.fs.Rename(source, destination); err != nil {
		return "", fmt.Errorf("failed to move %s: %w", source, err)
	}

	details := fmt.Sprintf("Moved %s to %s", source, destination)
	return report.New("Move", source).WithDetails(details).Render(), nil
}

func (t *FileOpsTool) copy(source, destination string) (string, error) {
	if destination == "" {
		return "", fmt.Errorf("destination is required for copy")
	}

	info, err := t.fs.Stat(source)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", source, err)
	}
	if info.IsDir() {
		return "", fmt.Errorf("copy supports files only, %s is a directory", source)
	}

	// Diff against whatever the destination held before.
	var old string
	overwrote := false
	if data, err := t.fs.ReadFile(destination); err == nil && len(data) > 0 {
		old = string(data)
		overwrote = true
	}

	if err := t.fs.Copy(source, destination); err != nil {
		return "", fmt.Errorf("failed to copy %s: %w", source, err)
	}

	if !overwrote {
		details := fmt.Sprintf("Copied %s to %s", source, destination)
		return report.New("Copy", source).WithDetails(details).Render(), nil
	}

	data, err := t.fs.ReadFile(destination)
	if err != nil {
		return "", fmt.Errorf("failed to read copied file: %w", err)
	}

	summary := diff.Compute(destination, old, string(data), t.contextLines)
	return report.New("Copy", destination).WithDiff(summary).Render(), nil
}
