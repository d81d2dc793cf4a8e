package engine

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const classifierPrompt = "Classify the user's request into exactly one of these " +
	"categories: code_search, file_ops, git, execution, web, general. " +
	"code_search is for finding or understanding code. file_ops is for " +
	"creating, editing, moving, or deleting files. git is for version control. " +
	"execution is for running commands. web is for fetching URLs. general is " +
	"everything else. Respond with only the category name."

// classify asks the model for the input's intent. Any failure or
// unrecognized answer falls back to general.
func (e *Engine) classify(ctx context.Context, input string) Intent {
	conv := e.client.NewConversation(classifierPrompt, nil)

	turn, err := conv.Send(ctx, input)
	if err != nil {
		e.logger.Warn("intent classification failed", zap.Error(err))
		return IntentGeneral
	}

	return parseIntent(turn.Text)
}

// parseIntent extracts a known intent from the model's answer. The answer
// may carry extra words, so matching is by substring.
func parseIntent(text string) Intent {
	answer := strings.ToLower(strings.TrimSpace(text))

	for _, intent := range []Intent{
		IntentCodeSearch,
		IntentFileOps,
		IntentGit,
		IntentExecution,
		IntentWeb,
	} {
		if strings.Contains(answer, string(intent)) {
			return intent
		}
	}
	return IntentGeneral
}
