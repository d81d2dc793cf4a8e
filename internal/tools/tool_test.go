package tools

import (
	"context"
	"encoding/json"
	"testing"
)

type stubTool struct {
	name   string
	output string
}

func (s *stubTool) Name() string               { return s.name }
func (s *stubTool) Description() string        { return "stub" }
func (s *stubTool) Parameters() map[string]any { return objectSchema(map[string]any{}) }
func (s *stubTool) Call(ctx context.Context, args json.RawMessage) (string, error) {
	return s.output, nil
}

func TestRegistry_Dispatch(t *testing.T) {
	r := NewRegistry(&stubTool{name: "alpha", output: "a"}, &stubTool{name: "beta", output: "b"})

	out, err := r.Call(context.Background(), "beta", json.RawMessage(`{}`))
	if err != nil {
		t.Fatalf("Call failed: %v", err)
	}
	if out != "b" {
		t.Fatalf("output = %q, want b", out)
	}
}

func TestRegistry_UnknownTool(t *testing.T) {
	r := NewRegistry()

	if _, err := r.Call(context.Background(), "missing", nil); err == nil {
		t.Fatal("expected error for unknown tool")
	}
}

func TestRegistry_NamesSorted(t *testing.T) {
	r := NewRegistry(&stubTool{name: "zeta"}, &stubTool{name: "alpha"})

	names := r.Names()
	if len(names) != 2 || names[0] != "alpha" || names[1] != "zeta" {
		t.Fatalf("names = %v", names)
	}
}

func TestRegistry_DefsPreservesOrderAndSkipsUnknown(t *testing.T) {
	r := NewRegistry(&stubTool{name: "alpha"}, &stubTool{name: "beta"})

	defs := r.Defs("beta", "missing", "alpha")
	if len(defs) != 2 {
		t.Fatalf("len = %d, want 2", len(defs))
	}
	if defs[0].Name != "beta" || defs[1].Name != "alpha" {
		t.Fatalf("defs = %+v", defs)
	}
}
