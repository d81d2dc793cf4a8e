package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// GlobTool matches file paths against a glob pattern, with ** support.
type GlobTool struct{}

// NewGlobTool creates a GlobTool.
func NewGlobTool() *GlobTool {
	return &GlobTool{}
}

func (t *GlobTool) Name() string { return "glob" }

func (t *GlobTool) Description() string {
	return "Find files matching a glob pattern, ** matches any directory depth"
}

func (t *GlobTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"pattern": map[string]any{
			"type":        "string",
			"description": "Glob pattern, e.g. **/*.go",
		},
		"path": map[string]any{
			"type":        "string",
			"description": "Directory to search from (default current directory)",
		},
	}, "pattern")
}

type globArgs struct {
	Pattern string `json:"pattern"`
	Path    string `json:"path"`
}

func (t *GlobTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a globArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Pattern == "" {
		return "", fmt.Errorf("pattern is required")
	}

	root := a.Path
	if root == "" {
		root = "."
	}

	matches, err := globMatch(root, a.Pattern)
	if err != nil {
		return "", err
	}
	if len(matches) == 0 {
		return "No files matched", nil
	}

	sort.Strings(matches)
	return strings.Join(matches, "\n"), nil
}

// globMatch resolves a pattern relative to root. Patterns containing **
// are split on the first ** and matched by walking; plain patterns go
// through filepath.Glob.
func globMatch(root, pattern string) ([]string, error) {
	if !strings.Contains(pattern, "**") {
		matches, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, fmt.Errorf("invalid pattern: %w", err)
		}
		return relativize(root, matches), nil
	}

	parts := strings.SplitN(pattern, "**", 2)
	prefix := strings.TrimSuffix(parts[0], "/")
	suffix := strings.TrimPrefix(parts[1], "/")

	base := root
	if prefix != "" {
		base = filepath.Join(root, prefix)
	}

	var matches []string
	err := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if skipSearchDir(d.Name()) {
				return filepath.SkipDir
			}
			return nil
		}

		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}

		// The suffix matches against the tail of the relative path or
		// just the file name.
		ok, err := filepath.Match(suffix, rel)
		if err != nil {
			return fmt.Errorf("invalid pattern: %w", err)
		}
		if !ok {
			ok, err = filepath.Match(suffix, d.Name())
			if err != nil {
				return err
			}
		}
		if ok {
			relRoot, err := filepath.Rel(root, path)
			if err != nil {
				return err
			}
			matches = append(matches, relRoot)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", base, err)
	}
	return matches, nil
}

// skipSearchDir reports whether a directory should be excluded from glob
// walks.
func skipSearchDir(name string) bool {
	if name == ".git" || name == "node_modules" || name == "target" {
		return true
	}
	return strings.HasPrefix(name, ".") && name != "."
}

func relativize(root string, paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		if rel, err := filepath.Rel(root, p); err == nil {
			out = append(out, rel)
		} else {
			out = append(out, p)
		}
	}
	return out
}
