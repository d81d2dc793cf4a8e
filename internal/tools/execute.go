package tools

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"
)

// ExecuteTool runs a shell command and captures stdout, stderr, and the
// exit code.
type ExecuteTool struct{}

// NewExecuteTool creates an ExecuteTool.
func NewExecuteTool() *ExecuteTool {
	return &ExecuteTool{}
}

func (t *ExecuteTool) Name() string { return "execute" }

func (t *ExecuteTool) Description() string {
	return "Run a shell command and return its output"
}

func (t *ExecuteTool) Parameters() map[string]any {
	return objectSchema(map[string]any{
		"command": map[string]any{
			"type":        "string",
			"description": "Shell command to run",
		},
		"working_dir": map[string]any{
			"type":        "string",
			"description": "Directory to run in (default current directory)",
		},
	}, "command")
}

type executeArgs struct {
	Command    string `json:"command"`
	WorkingDir string `json:"working_dir"`
}

func (t *ExecuteTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	var a executeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return "", fmt.Errorf("invalid arguments: %w", err)
	}
	if strings.TrimSpace(a.Command) == "" {
		return "", fmt.Errorf("command is required")
	}

	cmd := exec.CommandContext(ctx, "sh", "-c", a.Command)
	cmd.Dir = a.WorkingDir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	var sb strings.Builder
	if out := strings.TrimRight(stdout.String(), "\n"); out != "" {
		sb.WriteString(out)
		sb.WriteString("\n")
	}
	if errOut := strings.TrimRight(stderr.String(), "\n"); errOut != "" {
		sb.WriteString("STDERR:\n")
		sb.WriteString(errOut)
		sb.WriteString("\n")
	}

	if runErr != nil {
		if exitErr, ok := runErr.(*exec.ExitError); ok {
			fmt.Fprintf(&sb, "Exit code: %d\n", exitErr.ExitCode())
			return sb.String(), nil
		}
		return "", fmt.Errorf("failed to run command: %w", runErr)
	}

	if sb.Len() == 0 {
		return "Command executed successfully (no output)", nil
	}
	return sb.String(), nil
}
