package technique

import (
	"context"
	"fmt"

	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
)

// rolePlaying assigns the model a specific role before handing it a task.
type rolePlaying struct {
	operation
}

func (t *rolePlaying) Run(ctx context.Context, args Args) (models.Result, error) {
	if args.Role == "" {
		return models.Result{}, missingParam("role")
	}
	if args.Task == "" {
		return models.Result{}, missingParam("task")
	}

	prompt := fmt.Sprintf(`You are a %s.
Task: %s

Please respond as if you were truly in this role, using appropriate language,
expertise, and perspective of the assigned persona.`, args.Role, args.Task)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: fmt.Sprintf("You are a %s.", args.Role)},
		{Role: llm.RoleUser, Content: prompt},
	}

	resp, err := t.complete(ctx, messages, t.temperature(args))
	if err != nil {
		return t.errorResult(err), nil
	}

	return t.result(resp), nil
}
