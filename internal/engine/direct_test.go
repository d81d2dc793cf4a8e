package engine

import "testing"

func TestIsDirectCommand(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"plain ls", "ls -la", true},
		{"git status", "git status", true},
		{"echo", "echo hello", true},
		{"question word first", "what does ls -la do", false},
		{"trailing question mark", "ls the directory?", false},
		{"unlisted binary", "rm -rf /tmp/x", false},
		{"natural language", "summarize this project", false},
		{"empty", "", false},
		{"is prefix", "is git installed", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := isDirectCommand(tt.input); got != tt.want {
				t.Fatalf("isDirectCommand(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}
