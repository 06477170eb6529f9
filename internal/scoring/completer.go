package scoring

import "context"

// Completer is the LLM collaborator every dimension judgment is
// delegated to. Implementations return the raw model reply or an error;
// they never interpret the reply themselves.
type Completer interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string, maxTokens int) (string, error)
	Configured() bool
}
