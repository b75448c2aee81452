package technique

import (
	"context"
	"fmt"
	"strings"

	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
	"github.com/povarna/prompt-playground/internal/pricing"
)

// selfConsistencyTemperature encourages diverse reasoning paths when no
// temperature is configured or supplied.
const selfConsistencyTemperature = 0.7

// selfConsistency samples several independent reasoning paths for the same
// problem and reports them side by side. The repetition is diversity
// sampling, not fault tolerance: requests run sequentially and any failure
// aborts the whole run into an error Result.
type selfConsistency struct {
	operation
}

func (t *selfConsistency) Run(ctx context.Context, args Args) (models.Result, error) {
	if args.Problem == "" {
		return models.Result{}, missingParam("problem")
	}

	numSamples := args.NumSamples
	if numSamples <= 0 {
		numSamples = t.settings.NumSamples
	}

	temperature := t.temperature(args)
	if temperature == 0 {
		temperature = selfConsistencyTemperature
	}

	prompt := fmt.Sprintf(`Solve this problem and explain your reasoning:
%s

Show your step-by-step thinking process.`, args.Problem)

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: "You are an expert problem solver. Think step by step and show your reasoning."},
		{Role: llm.RoleUser, Content: prompt},
	}

	responses := make([]string, 0, numSamples)
	totalTokens := 0

	for i := 0; i < numSamples; i++ {
		resp, err := t.complete(ctx, messages, temperature)
		if err != nil {
			return t.errorResult(err), nil
		}
		responses = append(responses, resp.Content)
		totalTokens += resp.TotalTokens
	}

	var report strings.Builder
	fmt.Fprintf(&report, "Self-Consistency Analysis (%d reasoning paths):\n\n", numSamples)
	for i, resp := range responses {
		fmt.Fprintf(&report, "--- Path %d ---\n%s\n\n", i+1, resp)
	}
	report.WriteString("\n--- Consensus ---\nMultiple reasoning paths generated. Review the different approaches above.")

	result := models.Result{
		Technique: t.name,
		Response:  report.String(),
		Tokens:    totalTokens,
		Cost:      pricing.Cost(totalTokens, t.model),
		NumPaths:  numSamples,
	}

	t.logger.Info().
		Str("technique", t.name).
		Int("paths", numSamples).
		Int("tokens", totalTokens).
		Float64("cost", result.Cost).
		Msg("technique completed")

	return result, nil
}
