package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/danieljhkim/ada/internal/gitx"
)

// GitTool runs git subcommands and returns their output.
type GitTool struct {
	repo    gitx.GitRepo
	workDir string
}

// NewGitTool creates a GitTool that runs in workDir ("" means the current
// directory).
func NewGitTool(repo gitx.GitRepo, workDir string) *GitTool {
	return &GitTool{repo: repo, workDir: workDir}
}

func (t *GitTool) Name() string { return "git" }

func (t *GitTool) Description() string {
	return "Run a git subcommand, e.g. status, diff, log, add, commit"
}

func (t *GitTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"operation": map[string]any{
			"type":        "string",
			"description": "Git subcommand to run",
		},
		"args": map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": "Additional arguments",
		},
	}, "operation")
}

type gitArgs struct {
	Operation string   `json:"operation"`
	Args      []string `json:"args"`
}

func (t *GitTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a gitArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if a.Operation == "" {
		return "", fmt.Errorf("operation is required")
	}

	cmdArgs := append([]string{a.Operation}, a.Args...)
	output, err := t.repo.Run(ctx, t.workDir, cmdArgs...)
	if err != nil {
		return "", err
	}

	if output == "" {
		return fmt.Sprintf("git %s completed (no output)", a.Operation), nil
	}
	return output, nil
}
