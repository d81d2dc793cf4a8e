package engine

import (
	"os/exec"
	"strings"
)

// questionWords mark input as natural language even when it starts with a
// word that is also a binary name.
var questionWords = map[string]bool{
	"what": true, "why": true, "how": true, "when": true, "where": true,
	"who": true, "which": true, "can": true, "could": true, "should": true,
	"would": true, "is": true, "are": true, "does": true, "do": true,
	"did": true, "please": true,
}

// directCommands is the whitelist of binaries that may run without going
// through the model.
var directCommands = map[string]bool{
	"ls": true, "pwd": true, "cat": true, "echo": true, "grep": true,
	"find": true, "git": true, "head": true, "tail": true, "wc": true,
	"which": true, "date": true, "whoami": true, "df": true, "du": true,
	"ps": true, "make": true, "go": true, "cargo": true, "python": true,
	"python3": true, "node": true, "npm": true,
}

// isDirectCommand reports whether input should run as a shell command
// instead of being sent to the model. The first token must be a
// whitelisted binary that actually resolves on PATH, and the input must
// not read like a question.
func isDirectCommand(input string) bool {
	fields := strings.Fields(input)
	if len(fields) == 0 {
		return false
	}

	first := strings.ToLower(fields[0])
	if questionWords[first] {
		return false
	}
	if strings.HasSuffix(input, "?") {
		return false
	}
	if !directCommands[first] {
		return false
	}

	_, err := exec.LookPath(fields[0])
	return err == nil
}
