package llm

import (
	"context"
	"fmt"
	"sync"
)

// MockClient implements Client with a scripted sequence of turns. Every
// model request, regardless of which conversation issued it, consumes the
// next scripted turn in order.
type MockClient struct {
	mu    sync.Mutex
	turns []*Turn
	errs  []error

	// Systems records the system prompt of each conversation created.
	Systems []string

	// Sent records every user message across all conversations.
	Sent []string

	// Results records every batch of tool results sent back.
	Results [][]ToolResult
}

// NewMockClient creates a MockClient that will replay the given turns.
func NewMockClient(turns ...*Turn) *MockClient {
	return &MockClient{turns: turns, errs: make([]error, len(turns))}
}

// QueueTurn appends a scripted turn.
func (m *MockClient) QueueTurn(turn *Turn) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, turn)
	m.errs = append(m.errs, nil)
}

// QueueError appends a scripted failure.
func (m *MockClient) QueueError(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.turns = append(m.turns, nil)
	m.errs = append(m.errs, err)
}

// NewConversation records the system prompt and returns a conversation that
// consumes the shared script.
func (m *MockClient) NewConversation(system string, tools []ToolDef) Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Systems = append(m.Systems, system)
	return &mockConversation{client: m}
}

func (m *MockClient) next() (*Turn, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if len(m.turns) == 0 {
		return nil, fmt.Errorf("mock script exhausted")
	}
	turn := m.turns[0]
	m.turns = m.turns[1:]
	var err error
	if len(m.errs) > 0 {
		err = m.errs[0]
		m.errs = m.errs[1:]
	}
	if err != nil {
		return nil, err
	}
	return turn, nil
}

type mockConversation struct {
	client *MockClient
}

func (c *mockConversation) Send(ctx context.Context, text string) (*Turn, error) {
	c.client.mu.Lock()
	c.client.Sent = append(c.client.Sent, text)
	c.client.mu.Unlock()
	return c.client.next()
}

func (c *mockConversation) SendToolResults(ctx context.Context, results []ToolResult) (*Turn, error) {
	c.client.mu.Lock()
	c.client.Results = append(c.client.Results, results)
	c.client.mu.Unlock()
	return c.client.next()
}
