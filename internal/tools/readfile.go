package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danieljhkim/ada/internal/fsops"
)

// ReadFileTool returns a file's contents with numbered lines.
type ReadFileTool struct {
	fs fsops.FS
}

// NewReadFileTool creates a ReadFileTool backed by the given filesystem.
func NewReadFileTool(fs fsops.FS) *ReadFileTool {
	return &ReadFileTool{fs: fs}
}

func (t *ReadFileTool) Name() string { return "read_file" }

func (t *ReadFileTool) Description() string {
	return "Read a file and return its contents with line numbers"
}

func (t *ReadFileTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"file_path": map[string]any{
			"type":        "string",
			"description": "Path of the file to read",
		},
	}, "file_path")
}

type readFileArgs struct {
	FilePath string `json:"file_path"`
}

func (t *ReadFileTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a readFileArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if a.FilePath == "" {
		return "", fmt.Errorf("file_path is required")
	}

	data, err := t.fs.ReadFile(a.FilePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", a.FilePath, err)
	}

	content := strings.TrimSuffix(string(data), "\n")
	if content == "" {
		return "(empty file)", nil
	}

	var sb strings.Builder
	for i, line := range strings.Split(content, "\n") {
		fmt.Fprintf(&sb, "%6d→%s\n", i+1, line)
	}
	return sb.String(), nil
}
