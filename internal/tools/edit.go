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

// EditTool performs exact string replacement in a file and renders the
// resulting diff.
type EditTool struct {
	fs           fsops.FS
	contextLines int
}

// NewEditTool creates an EditTool. contextLines controls how many unchanged
// lines surround each change in the rendered diff.
func NewEditTool(fs fsops.FS, contextLines int) *EditTool {
	return &EditTool{fs: fs, contextLines: contextLines}
}

func (t *EditTool) Name() string { return "edit" }

func (t *EditTool) Description() string {
	return "Replace an exact string in a file with a new string"
}

func (t *EditTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"file_path": map[string]any{
			"type":        "string",
			"description": "Path of the file to edit",
		},
		"old_string": map[string]any{
			"type":        "string",
			"description": "Exact text to replace",
		},
		"new_string": map[string]any{
			"type":        "string",
			"description": "Replacement text",
		},
		"replace_all": map[string]any{
			"type":        "boolean",
			"description": "Replace every occurrence instead of only the first",
		},
	}, "file_path", "old_string", "new_string")
}

type editArgs struct {
	FilePath   string `json:"file_path"`
	OldString  string `json:"old_string"`
	NewString  string `json:"new_string"`
	ReplaceAll bool   `json:"replace_all"`
}

func (t *EditTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a editArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if a.FilePath == "" || a.OldString == "" {
		return "", fmt.Errorf("file_path and old_string are required")
	}

	data, err := t.fs.ReadFile(a.FilePath)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", a.FilePath, err)
	}
	old := string(data)

	if !strings.Contains(old, a.OldString) {
		return "", fmt.Errorf("old_string not found in %s", a.FilePath)
	}

	var updated string
	if a.ReplaceAll {
		updated = strings.ReplaceAll(old, a.OldString, a.NewString)
	} else {
		updated = strings.Replace(old, a.OldString, a.NewString, 1)
	}

	if err := t.fs.AtomicWrite(a.FilePath, []byte(updated), 0644); err != nil {
		return "", fmt.Errorf("failed to write %s: %w", a.FilePath, err)
	}

	summary := diff.Compute(a.FilePath, old, updated, t.contextLines)
	return report.New("Edit", a.FilePath).WithDiff(summary).Render(), nil
}
