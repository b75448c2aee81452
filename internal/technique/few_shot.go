package technique

import (
	"context"

	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
)

// defaultExamples are used when the caller supplies none.
var defaultExamples = []Example{
	{Input: "Translate to French: Hello", Output: "Bonjour"},
	{Input: "Translate to French: Goodbye", Output: "Au revoir"},
}

// fewShot guides the model with example interactions sent as alternating
// user/assistant turns before the actual prompt.
type fewShot struct {
	operation
}

func (t *fewShot) Run(ctx context.Context, args Args) (models.Result, error) {
	if args.Prompt == "" {
		return models.Result{}, missingParam("prompt")
	}

	examples := args.Examples
	if len(examples) == 0 {
		examples = defaultExamples
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: "You are a helpful translation assistant."},
	}
	for _, example := range examples {
		messages = append(messages,
			llm.Message{Role: llm.RoleUser, Content: example.Input},
			llm.Message{Role: llm.RoleAssistant, Content: example.Output},
		)
	}
	messages = append(messages, llm.Message{Role: llm.RoleUser, Content: args.Prompt})

	resp, err := t.complete(ctx, messages, t.temperature(args))
	if err != nil {
		return t.errorResult(err), nil
	}

	return t.result(resp), nil
}
