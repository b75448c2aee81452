package record

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/povarna/prompt-playground/internal/models"
	"github.com/povarna/prompt-playground/internal/technique"
	"github.com/rs/zerolog"
)

// Store persists one demonstration record per technique name. Writing the
// same technique again overwrites the prior record.
type Store interface {
	Save(ctx context.Context, techniqueName string, record models.DemonstrationRecord) error
}

// Slug derives the storage key from a technique name: lower-cased, spaces
// replaced with underscores.
func Slug(techniqueName string) string {
	return strings.ReplaceAll(strings.ToLower(techniqueName), " ", "_")
}

// Recorder runs a technique through the registry and persists the
// invocation as a demonstration record.
type Recorder struct {
	registry *technique.Registry
	store    Store
	logger   *zerolog.Logger
}

func NewRecorder(registry *technique.Registry, store Store, logger *zerolog.Logger) *Recorder {
	return &Recorder{
		registry: registry,
		store:    store,
		logger:   logger,
	}
}

func (r *Recorder) Record(ctx context.Context, techniqueName string, args technique.Args) (models.DemonstrationRecord, error) {
	result, err := r.registry.Invoke(ctx, techniqueName, args)
	if err != nil {
		return models.DemonstrationRecord{}, err
	}

	input, err := argsAsMap(args)
	if err != nil {
		return models.DemonstrationRecord{}, fmt.Errorf("failed to encode demonstration input: %w", err)
	}

	record := models.DemonstrationRecord{
		Technique: techniqueName,
		Input:     input,
		Output:    result,
	}

	if err := r.store.Save(ctx, techniqueName, record); err != nil {
		return models.DemonstrationRecord{}, fmt.Errorf("failed to save demonstration record: %w", err)
	}

	r.logger.Info().
		Str("technique", techniqueName).
		Int("tokens", result.Tokens).
		Msg("demonstration recorded")

	return record, nil
}

func argsAsMap(args technique.Args) (map[string]any, error) {
	data, err := json.Marshal(args)
	if err != nil {
		return nil, err
	}

	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return m, nil
}
