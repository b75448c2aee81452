package technique

import (
	"context"
	"fmt"

	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
)

// personaBased shapes responses through a described persona's background
// and communication style.
type personaBased struct {
	operation
}

func (t *personaBased) Run(ctx context.Context, args Args) (models.Result, error) {
	if args.Persona == "" {
		return models.Result{}, missingParam("persona")
	}
	if args.Query == "" {
		return models.Result{}, missingParam("query")
	}

	prompt := fmt.Sprintf(`You are a %s.
Consider your unique background, knowledge, and communication style.

Respond to the following query:
%s

Ensure your response reflects the specific perspective of this persona.`, args.Persona, args.Query)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: fmt.Sprintf("You are a %s", args.Persona)},
		{Role: llm.RoleUser, Content: prompt},
	}

	resp, err := t.complete(ctx, messages, t.temperature(args))
	if err != nil {
		return t.errorResult(err), nil
	}

	return t.result(resp), nil
}
