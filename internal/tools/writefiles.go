package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danieljhkim/ada/internal/diff"
	"github.com/danieljhkim/ada/internal/fsops"
	"github.com/danieljhkim/ada/internal/report"
)

// WriteFilesTool writes one or more files atomically and renders a diff
// block per file.
type WriteFilesTool struct {
	fs           fsops.FS
	contextLines int
}

// NewWriteFilesTool creates a WriteFilesTool.
func NewWriteFilesTool(fs fsops.FS, contextLines int) *WriteFilesTool {
	return &WriteFilesTool{fs: fs, contextLines: contextLines}
}

func (t *WriteFilesTool) Name() string { return "write_files" }

func (t *WriteFilesTool) Description() string {
	return "Write full contents to one or more files, creating them if needed"
}

func (t *WriteFilesTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"files": map[string]any{
			"type":        "array",
			"description": "Files to write",
			"items": objectSchema(map[string]any{
				"path":    map[string]any{"type": "string"},
				"content": map[string]any{"type": "string"},
			}, "path", "content"),
		},
	}, "files")
}

type writeFilesArgs struct {
	Files []struct {
		Path    string `json:"path"`
		Content string `json:"content"`
	} `json:"files"`
}

func (t *WriteFilesTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a writeFilesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if len(a.Files) == 0 {
		return "", fmt.Errorf("files must not be empty")
	}

	var blocks []string
	for _, f := range a.Files {
		if f.Path == "" {
			return "", fmt.Errorf("file path must not be empty")
		}

		// Prior content is best effort; a missing file diffs against "".
		var old string
		if data, err := t.fs.ReadFile(f.Path); err == nil {
			old = string(data)
		}

		if err := t.fs.AtomicWrite(f.Path, []byte(f.Content), 0644); err != nil {
			return "", fmt.Errorf("failed to write %s: %w", f.Path, err)
		}

		summary := diff.Compute(f.Path, old, f.Content, t.contextLines)
		blocks = append(blocks, report.New("Write", f.Path).WithDiff(summary).Render())
	}

	return strings.Join(blocks, "\n"), nil
}
