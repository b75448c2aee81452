package technique

import (
	"context"
	"fmt"
	"sort"

	"github.com/povarna/prompt-playground/internal/config"
	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
	"github.com/rs/zerolog"
)

// catalog maps each technique to its config slug, the lower-case label
// used in error Results, and its constructor.
var catalog = []struct {
	name  string
	slug  string
	label string
	build func(op operation) Technique
}{
	{ZeroShot, "zero_shot", "zero-shot prompting", func(op operation) Technique { return &zeroShot{op} }},
	{FewShot, "few_shot", "few-shot prompting", func(op operation) Technique { return &fewShot{op} }},
	{ChainOfThought, "chain_of_thought", "chain-of-thought prompting", func(op operation) Technique { return &chainOfThought{op} }},
	{RolePlaying, "role_playing", "role-playing prompting", func(op operation) Technique { return &rolePlaying{op} }},
	{PersonaBased, "persona", "persona-based prompting", func(op operation) Technique { return &personaBased{op} }},
	{ReAct, "react", "ReAct prompting", func(op operation) Technique { return &react{op} }},
	{SelfConsistency, "self_consistency", "self-consistency prompting", func(op operation) Technique { return &selfConsistency{op} }},
	{TreeOfThoughts, "tree_of_thoughts", "Tree-of-Thoughts prompting", func(op operation) Technique { return &treeOfThoughts{op} }},
}

// Registry holds the fixed technique set, built once at construction.
// It is stateless after that and safe for concurrent use.
type Registry struct {
	techniques map[string]Technique
	logger     *zerolog.Logger
}

func NewRegistry(client llm.Client, cfg *config.TechniquesConfig, logger *zerolog.Logger) *Registry {
	if cfg == nil {
		cfg = config.Default()
	}

	techniques := make(map[string]Technique, len(catalog))
	for _, entry := range catalog {
		settings := cfg.Settings(entry.slug)
		if !settings.IsEnabled() {
			logger.Info().
				Str("technique", entry.name).
				Msg("technique disabled in config, skipping")
			continue
		}

		techniques[entry.name] = entry.build(operation{
			name:     entry.name,
			label:    entry.label,
			client:   client,
			model:    cfg.Model,
			settings: settings,
			logger:   logger,
		})
	}

	logger.Info().
		Int("total_techniques", len(techniques)).
		Str("model", cfg.Model).
		Msg("technique registry built")

	return &Registry{
		techniques: techniques,
		logger:     logger,
	}
}

// Get returns the named technique or ErrUnknownTechnique.
func (r *Registry) Get(name string) (Technique, error) {
	t, ok := r.techniques[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTechnique, name)
	}
	return t, nil
}

// Invoke dispatches to the named technique. An unknown name fails before
// any backend call is attempted.
func (r *Registry) Invoke(ctx context.Context, name string, args Args) (models.Result, error) {
	t, err := r.Get(name)
	if err != nil {
		return models.Result{}, err
	}
	return t.Run(ctx, args)
}

// Names returns the registered technique names, sorted for consistent
// ordering.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.techniques))
	for name := range r.techniques {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
