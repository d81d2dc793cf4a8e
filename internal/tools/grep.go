package tools

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"sync"

	gitignore "github.com/sabhiram/go-gitignore"
	"golang.org/x/sync/errgroup"
)

// grepWorkers bounds how many files are searched concurrently.
const grepWorkers = 8

// GrepTool searches file contents with a regular expression.
type GrepTool struct{}

// NewGrepTool creates a GrepTool.
func NewGrepTool() *GrepTool {
	return &GrepTool{}
}

func (t *GrepTool) Name() string { return "grep" }

func (t *GrepTool) Description() string {
	return "Search file contents with a regular expression"
}

func (t *GrepTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"pattern": map[string]any{
			"type":        "string",
			"description": "Regular expression to search for",
		},
		"path": map[string]any{
			"type":        "string",
			"description": "File or directory to search (default current directory)",
		},
		"case_insensitive": map[string]any{
			"type":        "boolean",
			"description": "Match case-insensitively",
		},
	}, "pattern")
}

type grepArgs struct {
	Pattern         string `json:"pattern"`
	Path            string `json:"path"`
	CaseInsensitive bool   `json:"case_insensitive"`
}

func (t *GrepTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a grepArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Pattern == "" {
		return "", fmt.Errorf("pattern is required")
	}

	pattern := a.Pattern
	if a.CaseInsensitive {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return "", fmt.Errorf("invalid pattern: %w", err)
	}

	root := a.Path
	if root == "" {
		root = "."
	}

	info, err := os.Stat(root)
	if err != nil {
		return "", fmt.Errorf("failed to stat %s: %w", root, err)
	}

	var matches []string
	if info.IsDir() {
		matches, err = grepDir(ctx, root, re)
	} else {
		matches, err = grepFile(root, re)
	}
	if err != nil {
		return "", err
	}

	if len(matches) == 0 {
		return "No matches found", nil
	}
	return strings.Join(matches, "\n"), nil
}

// grepDir walks root and searches every file git would see: .gitignore at
// the root is honored, hidden files are included, and .git itself is always
// skipped. A bounded number of files is searched at a time.
func grepDir(ctx context.Context, root string, re *regexp.Regexp) ([]string, error) {
	matcher := loadGitignore(root)

	var mu sync.Mutex
	var matches []string

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(grepWorkers)

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}

		if d.IsDir() {
			if d.Name() == ".git" {
				return filepath.SkipDir
			}
			if rel != "." && matcher != nil && matcher.MatchesPath(rel) {
				return filepath.SkipDir
			}
			return nil
		}

		if matcher != nil && matcher.MatchesPath(rel) {
			return nil
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}

		g.Go(func() error {
			found, err := grepFile(path, re)
			if err != nil {
				// Unreadable or binary-ish files are skipped, not fatal.
				return nil
			}
			if len(found) > 0 {
				mu.Lock()
				matches = append(matches, found...)
				mu.Unlock()
			}
			return nil
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to walk %s: %w", root, err)
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	sort.Strings(matches)
	return matches, nil
}

// loadGitignore compiles the .gitignore at root when one exists. Nested
// ignore files are not consulted.
func loadGitignore(root string) *gitignore.GitIgnore {
	matcher, err := gitignore.CompileIgnoreFile(filepath.Join(root, ".gitignore"))
	if err != nil {
		return nil
	}
	return matcher
}

// grepFile scans a single file and returns "path:line: text" matches.
func grepFile(path string, re *regexp.Regexp) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var matches []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		if re.MatchString(line) {
			matches = append(matches, fmt.Sprintf("%s:%d: %s", path, lineNo, line))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return matches, nil
}
