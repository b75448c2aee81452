package technique

import (
	"context"

	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
)

// zeroShot sends the prompt with no examples, testing the model's base
// knowledge.
type zeroShot struct {
	operation
}

func (t *zeroShot) Run(ctx context.Context, args Args) (models.Result, error) {
	if args.Prompt == "" {
		return models.Result{}, missingParam("prompt")
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: "You are a helpful assistant."},
		{Role: llm.RoleUser, Content: args.Prompt},
	}

	resp, err := t.complete(ctx, messages, t.temperature(args))
	if err != nil {
		return t.errorResult(err), nil
	}

	return t.result(resp), nil
}
