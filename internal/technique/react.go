package technique

import (
	"context"
	"fmt"

	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
)

// react frames the task in the ReAct (Reasoning + Acting) loop of Thought,
// Action and Observation steps. It differs from zero-shot only in this
// fixed framing.
type react struct {
	operation
}

func (t *react) Run(ctx context.Context, args Args) (models.Result, error) {
	if args.Task == "" {
		return models.Result{}, missingParam("task")
	}

	prompt := fmt.Sprintf(`Task: %s

Use the ReAct framework to solve this task:
1. Thought: What do I need to think about?
2. Action: What action should I take?
3. Observation: What did I observe?
4. (Repeat as needed)
5. Answer: Final solution

Format your response with clear Thought, Action, and Observation steps.`, args.Task)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: "You are an AI assistant that uses the ReAct framework (Reasoning + Acting) to solve problems step by step."},
		{Role: llm.RoleUser, Content: prompt},
	}

	resp, err := t.complete(ctx, messages, t.temperature(args))
	if err != nil {
		return t.errorResult(err), nil
	}

	return t.result(resp), nil
}
