package llm

import (
	"context"
	"fmt"

	"github.com/openai/openai-go/v3"
	"github.com/openai/openai-go/v3/option"
	"github.com/openai/openai-go/v3/shared"
)

// OpenAIClient implements Client against the OpenAI chat completions API.
type OpenAIClient struct {
	client    *openai.Client
	model     string
	maxTokens int64
}

// NewOpenAIClient creates a client for the given model. maxTokens caps the
// completion length per request.
func NewOpenAIClient(apiKey, model string, maxTokens int) *OpenAIClient {
	client := openai.NewClient(option.WithAPIKey(apiKey))
	return &OpenAIClient{
		client:    &client,
		model:     model,
		maxTokens: int64(maxTokens),
	}
}

// NewConversation starts a conversation seeded with a system prompt and the
// set of tools the model may call.
func (c *OpenAIClient) NewConversation(system string, tools []ToolDef) Conversation {
	conv := &openAIConversation{
		client:    c.client,
		model:     c.model,
		maxTokens: c.maxTokens,
	}
	conv.messages = append(conv.messages, openai.SystemMessage(system))
	for _, td := range tools {
		conv.tools = append(conv.tools, openai.ChatCompletionFunctionTool(shared.FunctionDefinitionParam{
			Name:        td.Name,
			Description: openai.String(td.Description),
			Parameters:  shared.FunctionParameters(td.Parameters),
		}))
	}
	return conv
}

type openAIConversation struct {
	client    *openai.Client
	model     string
	maxTokens int64
	messages  []openai.ChatCompletionMessageParamUnion
	tools     []openai.ChatCompletionToolUnionParam
}

// Send appends a user message and requests the next model turn.
func (conv *openAIConversation) Send(ctx context.Context, text string) (*Turn, error) {
	conv.messages = append(conv.messages, openai.UserMessage(text))
	return conv.complete(ctx)
}

// SendToolResults appends tool outputs and requests the next model turn.
func (conv *openAIConversation) SendToolResults(ctx context.Context, results []ToolResult) (*Turn, error) {
	for _, r := range results {
		conv.messages = append(conv.messages, openai.ToolMessage(r.Content, r.CallID))
	}
	return conv.complete(ctx)
}

func (conv *openAIConversation) complete(ctx context.Context) (*Turn, error) {
	request := openai.ChatCompletionNewParams{
		Model:     openai.ChatModel(conv.model),
		Messages:  conv.messages,
		MaxTokens: openai.Int(conv.maxTokens),
	}
	if len(conv.tools) > 0 {
		request.Tools = conv.tools
	}

	resp, err := conv.client.Chat.Completions.New(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("chat completion failed: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, ErrEmptyResponse
	}

	message := resp.Choices[0].Message
	// Keep the assistant turn, tool calls included, in the history.
	conv.messages = append(conv.messages, message.ToParam())

	turn := &Turn{Text: message.Content}
	for _, tc := range message.ToolCalls {
		turn.ToolCalls = append(turn.ToolCalls, ToolCall{
			ID:        tc.ID,
			Name:      tc.Function.Name,
			Arguments: tc.Function.Arguments,
		})
	}
	return turn, nil
}
