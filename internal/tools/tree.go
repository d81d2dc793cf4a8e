package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// defaultTreeDepth bounds tree output when the model asks for no limit.
const defaultTreeDepth = 3

// TreeTool renders a depth-limited directory tree.
type TreeTool struct{}

// NewTreeTool creates a TreeTool.
func NewTreeTool() *TreeTool {
	return &TreeTool{}
}

func (t *TreeTool) Name() string { return "tree" }

func (t *TreeTool) Description() string {
	return "Show a directory tree up to a maximum depth"
}

func (t *TreeTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"path": map[string]any{
			"type":        "string",
			"description": "Root directory (default current directory)",
		},
		"max_depth": map[string]any{
			"type":        "integer",
			"description": "Maximum depth to descend (default 3)",
		},
	})
}

type treeArgs struct {
	Path     string `json:"path"`
	MaxDepth int    `json:"max_depth"`
}

func (t *TreeTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a treeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}

	root := a.Path
	if root == "" {
		root = "."
	}
	depth := a.MaxDepth
	if depth <= 0 {
		depth = defaultTreeDepth
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "📁 %s\n", filepath.Base(root))
	if err := writeTree(&sb, root, 1, depth); err != nil {
		return "", err
	}
	return sb.String(), nil
}

func writeTree(sb *strings.Builder, dir string, depth, maxDepth int) error {
	if depth > maxDepth {
		return nil
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	indent := strings.Repeat("  ", depth)
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasPrefix(name, ".") {
			continue
		}

		if entry.IsDir() {
			fmt.Fprintf(sb, "%s├─ 📁 %s\n", indent, name)
			if err := writeTree(sb, filepath.Join(dir, name), depth+1, maxDepth); err != nil {
				return err
			}
		} else {
			fmt.Fprintf(sb, "%s├─ 📄 %s\n", indent, name)
		}
	}
	return nil
}
