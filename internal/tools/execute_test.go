package tools

import (
	"strings"
	"testing"
)

func TestExecute_CapturesStdout(t *testing.T) {
	tool := NewExecuteTool()

	out := callTool(t, tool, map[string]any{"command": "echo hello"})

	if !strings.Contains(out, "hello") {
		t.Fatalf("stdout missing:\n%s", out)
	}
}

func TestExecute_StderrAndExitCode(t *testing.T) {
	tool := NewExecuteTool()

	out := callTool(t, tool, map[string]any{"command": "echo oops >&2; exit 3"})

	if !strings.Contains(out, "STDERR:\noops") {
		t.Fatalf("stderr section missing:\n%s", out)
	}
	if !strings.Contains(out, "Exit code: 3") {
		t.Fatalf("exit code missing:\n%s", out)
	}
}

func TestExecute_NoOutputFallback(t *testing.T) {
	tool := NewExecuteTool()

	out := callTool(t, tool, map[string]any{"command": "true"})

	if out != "Command executed successfully (no output)" {
		t.Fatalf("output = %q", out)
	}
}

func TestExecute_WorkingDir(t *testing.T) {
	dir := t.TempDir()
	tool := NewExecuteTool()

	out := callTool(t, tool, map[string]any{"command": "pwd", "working_dir": dir})

	if !strings.Contains(out, dir) {
		t.Fatalf("pwd = %q, want it under %q", out, dir)
	}
}
