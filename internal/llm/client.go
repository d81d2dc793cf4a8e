// Package llm abstracts the chat model behind a small conversation API so
// the engine and its tests never touch a provider SDK directly.
package llm

import (
	"context"
	"errors"
)

// ErrEmptyResponse indicates the model returned no choices.
var ErrEmptyResponse = errors.New("model returned an empty response")

// ToolDef describes a tool offered to the model. Parameters is a JSON
// Schema object describing the tool's arguments.
type ToolDef struct {
	Name        string
	Description string
	Parameters  map[string]any
}

// ToolCall is a single tool invocation requested by the model. Arguments
// is the raw JSON argument object.
type ToolCall struct {
	ID        string
	Name      string
	Arguments string
}

// ToolResult carries the output of an executed tool back to the model.
type ToolResult struct {
	CallID  string
	Content string
}

// Turn is one model response. When ToolCalls is non-empty the caller must
// execute them and reply via SendToolResults before the conversation can
// continue.
type Turn struct {
	Text      string
	ToolCalls []ToolCall
}

// Client creates conversations against a chat model.
type Client interface {
	// NewConversation starts a conversation seeded with a system prompt
	// and the set of tools the model may call.
	NewConversation(system string, tools []ToolDef) Conversation
}

// Conversation is a stateful exchange with the model. Implementations keep
// the full message history, including assistant tool-call turns.
type Conversation interface {
	// Send appends a user message and requests the next model turn.
	Send(ctx context.Context, text string) (*Turn, error)

	// SendToolResults appends tool outputs for the previous turn's calls
	// and requests the next model turn.
	SendToolResults(ctx context.Context, results []ToolResult) (*Turn, error)
}
