package compare

import (
	"context"

	"github.com/povarna/prompt-playground/internal/models"
	"github.com/povarna/prompt-playground/internal/pricing"
	"github.com/povarna/prompt-playground/internal/technique"
	"github.com/rs/zerolog"
)

// DefaultTechniques is the subset compared when the caller names none.
var DefaultTechniques = []string{
	technique.ZeroShot,
	technique.FewShot,
	technique.ChainOfThought,
}

// Runner invokes a set of techniques with a shared prompt and aggregates
// their outputs and costs. A technique that fails or is unknown yields a
// per-technique error entry; it never aborts the rest of the comparison.
type Runner struct {
	registry *technique.Registry
	logger   *zerolog.Logger
}

func NewRunner(registry *technique.Registry, logger *zerolog.Logger) *Runner {
	return &Runner{
		registry: registry,
		logger:   logger,
	}
}

func (r *Runner) Compare(ctx context.Context, prompt string, names []string) models.ComparisonResult {
	if len(names) == 0 {
		names = DefaultTechniques
	}

	comparison := models.ComparisonResult{
		Prompt:             prompt,
		TechniquesCompared: len(names),
		Results:            make(map[string]models.Result, len(names)),
		Errors:             make(map[string]string),
	}

	for _, name := range names {
		result, err := r.registry.Invoke(ctx, name, adaptArgs(name, prompt))
		if err != nil {
			r.logger.Warn().
				Err(err).
				Str("technique", name).
				Msg("technique skipped in comparison")
			comparison.Errors[name] = err.Error()
			continue
		}

		comparison.Results[name] = result
		comparison.TotalTokens += result.Tokens
		comparison.TotalCost += result.Cost
	}

	comparison.TotalCost = pricing.Round6(comparison.TotalCost)

	r.logger.Info().
		Str("prompt", prompt).
		Int("techniques", len(names)).
		Int("total_tokens", comparison.TotalTokens).
		Float64("total_cost", comparison.TotalCost).
		Msg("comparison complete")

	return comparison
}

// adaptArgs maps the shared prompt onto each technique's required
// parameter shape.
func adaptArgs(name string, prompt string) technique.Args {
	switch name {
	case technique.FewShot:
		return technique.Args{Prompt: "Translate to French: " + prompt}
	case technique.ChainOfThought, technique.SelfConsistency, technique.TreeOfThoughts:
		return technique.Args{Problem: prompt}
	case technique.RolePlaying:
		return technique.Args{Role: "expert consultant", Task: prompt}
	case technique.PersonaBased:
		return technique.Args{Persona: "experienced professional", Query: prompt}
	case technique.ReAct:
		return technique.Args{Task: prompt}
	default:
		return technique.Args{Prompt: prompt}
	}
}
