package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"
)

// ListDirTool lists a directory's entries with their kinds.
type ListDirTool struct{}

// NewListDirTool creates a ListDirTool.
func NewListDirTool() *ListDirTool {
	return &ListDirTool{}
}

func (t *ListDirTool) Name() string { return "list_directory" }

func (t *ListDirTool) Description() string {
	return "List the entries of a directory"
}

func (t *ListDirTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"path": map[string]any{
			"type":        "string",
			"description": "Directory to list (default current directory)",
		},
		"show_hidden": map[string]any{
			"type":        "boolean",
			"description": "Include entries starting with a dot",
		},
	})
}

type listDirArgs struct {
	Path       string `json:"path"`
	ShowHidden bool   `json:"show_hidden"`
}

func (t *ListDirTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a listDirArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	path := a.Path
	if path == "" {
		path = "."
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	var rows []string
	for _, entry := range entries {
		name := entry.Name()
		if !a.ShowHidden && strings.HasPrefix(name, ".") {
			continue
		}

		kind := "FILE"
		if entry.IsDir() {
			kind = "DIR "
		} else if entry.Type()&os.ModeSymlink != 0 {
			kind = "LINK"
		}
		rows = append(rows, fmt.Sprintf("%s %s", kind, name))
	}

	if len(rows) == 0 {
		return "Empty directory", nil
	}

	sort.Strings(rows)
	return strings.Join(rows, "\n"), nil
}
