package technique

import (
	"context"
	"fmt"

	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
)

// chainOfThought asks the model to break its reasoning into explicit steps.
type chainOfThought struct {
	operation
}

func (t *chainOfThought) Run(ctx context.Context, args Args) (models.Result, error) {
	if args.Problem == "" {
		return models.Result{}, missingParam("problem")
	}

	prompt := fmt.Sprintf(`Let's solve this problem step by step:
%s

Break down your reasoning into clear, logical steps:
1. First, identify the key components of the problem.
2. Then, outline the approach to solve it.
3. Show the detailed calculation or reasoning.
4. Provide the final solution.`, args.Problem)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: "You are an expert problem solver who explains reasoning clearly."},
		{Role: llm.RoleUser, Content: prompt},
	}

	resp, err := t.complete(ctx, messages, t.temperature(args))
	if err != nil {
		return t.errorResult(err), nil
	}

	return t.result(resp), nil
}
