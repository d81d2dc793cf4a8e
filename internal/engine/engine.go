// Package engine provides the core orchestration logic for ada.
//
// The engine package acts as the layer between CLI commands and the model.
// It classifies free-text input into an intent, routes it to the matching
// agent, and drives the multi-turn tool loop until the model produces an
// answer.
//
// Key components:
//   - Engine: Main orchestrator called by the CLI
//   - Intent classification: one-shot model call mapping input to an agent
//   - Agent table: per-intent system preamble, toolset, and turn budget
//   - Direct commands: shell passthrough for input that is clearly a command
package engine

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/danieljhkim/ada/internal/clock"
	"github.com/danieljhkim/ada/internal/config"
	"github.com/danieljhkim/ada/internal/llm"
	"github.com/danieljhkim/ada/internal/tools"
)

// Engine orchestrates all ada operations.
// It is the main API surface called by the CLI.
type Engine struct {
	client   llm.Client
	registry *tools.Registry
	clock    clock.Clock
	logger   *zap.Logger
	cfg      *config.Config
}

// New creates a new Engine with the given dependencies.
func New(client llm.Client, registry *tools.Registry, clk clock.Clock, logger *zap.Logger, cfg *config.Config) *Engine {
	return &Engine{
		client:   client,
		registry: registry,
		clock:    clk,
		logger:   logger,
		cfg:      cfg,
	}
}

// Handle processes one user input and returns the assistant's answer.
func (e *Engine) Handle(ctx context.Context, req Request) (*Result, error) {
	input := strings.TrimSpace(req.Input)
	if input == "" {
		return nil, ErrEmptyInput
	}

	start := e.clock.Now()

	if input == "/help" {
		return &Result{Text: helpText(e.registry), Elapsed: e.clock.Since(start)}, nil
	}

	if e.cfg.EnableDirectCommands && isDirectCommand(input) {
		e.logger.Debug("running direct command", zap.String("session", req.SessionID), zap.String("command", input))
		return e.runDirect(ctx, input, start)
	}

	intent := e.classify(ctx, input)
	ag := agentFor(intent)
	e.logger.Debug("classified input",
		zap.String("session", req.SessionID),
		zap.String("intent", string(intent)),
		zap.String("agent", ag.name),
	)

	text, err := e.runAgent(ctx, ag, input)
	if err != nil {
		return nil, err
	}

	e.logger.Info("handled request",
		zap.String("session", req.SessionID),
		zap.String("intent", string(intent)),
		zap.Duration("elapsed", e.clock.Since(start)),
	)

	return &Result{
		Intent:  intent,
		Agent:   ag.name,
		Text:    text,
		Elapsed: e.clock.Since(start),
	}, nil
}

// runDirect executes input as a shell command through the execute tool.
func (e *Engine) runDirect(ctx context.Context, input string, start time.Time) (*Result, error) {
	args, err := json.Marshal(map[string]string{"command": input})
	if err != nil {
		return nil, fmt.Errorf("failed to encode command: %w", err)
	}

	out, err := e.registry.Call(ctx, "execute", args)
	if err != nil {
		return nil, fmt.Errorf("direct command failed: %w", err)
	}

	return &Result{Direct: true, Text: out, Elapsed: e.clock.Since(start)}, nil
}

// runAgent drives the multi-turn tool loop for one agent until the model
// answers or the turn budget runs out.
func (e *Engine) runAgent(ctx context.Context, ag agent, input string) (string, error) {
	budget := ag.maxTurns
	if budget <= 0 {
		budget = e.cfg.MultiTurnDepth
	}

	conv := e.client.NewConversation(ag.preamble, e.registry.Defs(ag.tools...))

	turn, err := conv.Send(ctx, input)
	if err != nil {
		return "", fmt.Errorf("model request failed: %w", err)
	}

	for i := 0; i < budget; i++ {
		if len(turn.ToolCalls) == 0 {
			return turn.Text, nil
		}

		results := make([]llm.ToolResult, 0, len(turn.ToolCalls))
		for _, call := range turn.ToolCalls {
			out, callErr := e.registry.Call(ctx, call.Name, json.RawMessage(call.Arguments))
			if callErr != nil {
				// The model sees the failure and can recover.
				out = "Error: " + callErr.Error()
			}
			e.logger.Debug("tool call",
				zap.String("tool", call.Name),
				zap.Bool("failed", callErr != nil),
			)
			results = append(results, llm.ToolResult{CallID: call.ID, Content: out})
		}

		turn, err = conv.SendToolResults(ctx, results)
		if err != nil {
			return "", fmt.Errorf("model request failed: %w", err)
		}
	}

	if len(turn.ToolCalls) > 0 {
		return "", fmt.Errorf("%w after %d rounds", ErrTurnBudget, budget)
	}
	return turn.Text, nil
}
