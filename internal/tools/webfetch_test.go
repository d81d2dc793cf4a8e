package tools

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWebFetch_ReturnsBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("User-Agent"); got != "ada/1.0" {
			t.Errorf("user agent = %q", got)
		}
		_, _ = w.Write([]byte("page body"))
	}))
	defer server.Close()

	tool := NewWebFetchTool()
	out := callTool(t, tool, map[string]any{"url": server.URL})

	if out != "page body" {
		t.Fatalf("out = %q", out)
	}
}

func TestWebFetch_TruncatesLargeBodies(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(strings.Repeat("x", webFetchMaxBytes+500)))
	}))
	defer server.Close()

	tool := NewWebFetchTool()
	out := callTool(t, tool, map[string]any{"url": server.URL})

	if !strings.HasSuffix(out, "[response truncated at 100000 bytes]") {
		t.Fatalf("missing truncation notice, len = %d", len(out))
	}
}

func TestWebFetch_Non2xxIsError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusNotFound)
	}))
	defer server.Close()

	tool := NewWebFetchTool()
	raw, _ := json.Marshal(map[string]any{"url": server.URL})
	if _, err := tool.Call(context.Background(), raw); err == nil {
		t.Fatal("expected error for 404")
	}
}

func TestWebFetch_RejectsNonHTTPSchemes(t *testing.T) {
	tool := NewWebFetchTool()

	raw, _ := json.Marshal(map[string]any{"url": "ftp://example.com"})
	if _, err := tool.Call(context.Background(), raw); err == nil {
		t.Fatal("expected error for non-http scheme")
	}
}
