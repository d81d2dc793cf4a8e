// Package tools defines the tool interface exposed to the model and the
// registry the engine dispatches tool calls through.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/danieljhkim/ada/internal/llm"
)

// Tool is a single capability the model can invoke. Call receives the raw
// JSON argument object from the model and returns output as plain text.
type Tool interface {
	Name() string
	Description() string

	// Parameters returns the JSON Schema object describing Call's arguments.
	Parameters() map[string]any

	Call(ctx context.Context, args json.RawMessage) (string, error)
}

// Registry holds the available tools by name.
type Registry struct {
	tools map[string]Tool
}

// NewRegistry creates a Registry containing the given tools.
func NewRegistry(tools ...Tool) *Registry {
	r := &Registry{tools: make(map[string]Tool)}
	for _, t := range tools {
		r.Register(t)
	}
	return r
}

// Register adds a tool, replacing any previous tool with the same name.
func (r *Registry) Register(t Tool) {
	r.tools[t.Name()] = t
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	t, ok := r.tools[name]
	return t, ok
}

// Names returns the registered tool names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Defs returns declarations for the named tools, in the given order, for
// handing to the model. Unknown names are skipped.
func (r *Registry) Defs(names ...string) []llm.ToolDef {
	defs := make([]llm.ToolDef, 0, len(names))
	for _, name := range names {
		t, ok := r.tools[name]
		if !ok {
			continue
		}
		defs = append(defs, llm.ToolDef{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}
	return defs
}

// Call dispatches a tool call by name. Unknown tools return an error so the
// model sees the failure as a tool result.
func (r *Registry) Call(ctx context.Context, name string, args json.RawMessage) (string, error) {
	t, ok := r.tools[name]
	if !ok {
		return "", fmt.Errorf("unknown tool: %s", name)
	}
	return t.Call(ctx, args)
}

// objectSchema builds a JSON Schema object with the given properties and
// required field names.
func objectSchema(properties map[string]any, required ...string) map[string]any {
	schema := map[string]any{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
