package technique

import (
	"context"
	"fmt"

	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
)

// treeOfThoughts asks the model to branch into several candidate
// approaches, evaluate them, and develop the most promising one. A single
// request; the branching happens inside the frame.
type treeOfThoughts struct {
	operation
}

func (t *treeOfThoughts) Run(ctx context.Context, args Args) (models.Result, error) {
	if args.Problem == "" {
		return models.Result{}, missingParam("problem")
	}

	prompt := fmt.Sprintf(`Problem: %s

Use Tree-of-Thoughts approach:
1. Generate 3 initial solution approaches
2. For each approach, evaluate its strengths and weaknesses
3. Select the most promising approach
4. Develop that approach with detailed steps
5. Provide the final solution

Format your response clearly showing:
- Initial Branches (3 approaches)
- Evaluation of each branch
- Selected branch with reasoning
- Detailed solution`, args.Problem)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: "You are an expert at exploring multiple solution paths and selecting the best approach."},
		{Role: llm.RoleUser, Content: prompt},
	}

	resp, err := t.complete(ctx, messages, t.temperature(args))
	if err != nil {
		return t.errorResult(err), nil
	}

	return t.result(resp), nil
}
