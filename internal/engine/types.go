package engine

import "time"

// Request represents one user input to handle.
type Request struct {
	// SessionID identifies the chat session, for logging.
	SessionID string

	// Input is the raw user text.
	Input string
}

// Result represents the engine's answer to one request.
type Result struct {
	// Intent is the classified intent (empty for direct commands and help).
	Intent Intent

	// Agent is the display name of the agent that answered.
	Agent string

	// Text is the answer shown to the user.
	Text string

	// Direct is true when the input ran as a shell command without the model.
	Direct bool

	// Elapsed is how long handling took.
	Elapsed time.Duration
}
