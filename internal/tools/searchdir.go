package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/danieljhkim/ada/internal/scanner"
)

// SearchDirTool lists files under a directory, optionally filtered by a
// filename substring.
type SearchDirTool struct{}

// NewSearchDirTool creates a SearchDirTool.
func NewSearchDirTool() *SearchDirTool {
	return &SearchDirTool{}
}

func (t *SearchDirTool) Name() string { return "search_directory" }

func (t *SearchDirTool) Description() string {
	return "List files under a directory whose names contain a substring"
}

func (t *SearchDirTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"directory": map[string]any{
			"type":        "string",
			"description": "Directory to search",
		},
		"pattern": map[string]any{
			"type":        "string",
			"description": "Filename substring filter (empty lists everything)",
		},
	}, "directory")
}

type searchDirArgs struct {
	Directory string `json:"directory"`
	Pattern   string `json:"pattern"`
}

func (t *SearchDirTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a searchDirArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Directory == "" {
		return "", fmt.Errorf("directory is required")
	}

	s := scanner.New(a.Directory)

	if a.Pattern == "" {
		entries, err := s.Scan()
		if err != nil {
			return "", err
		}
		var paths []string
		for _, entry := range entries {
			if !entry.IsDir {
				paths = append(paths, entry.Path)
			}
		}
		if len(paths) == 0 {
			return "No files found", nil
		}
		stats := scanner.Summarize(entries)
		return fmt.Sprintf("%s\n\n%d files, %d directories", strings.Join(paths, "\n"), stats.Files, stats.Dirs), nil
	}

	matches, err := s.FindFiles(a.Pattern)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "No files found", nil
	}
	return strings.Join(matches, "\n"), nil
}
