package technique

import (
	"context"
	"fmt"

	"github.com/povarna/prompt-playground/internal/config"
	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
	"github.com/povarna/prompt-playground/internal/pricing"
	"github.com/rs/zerolog"
)

// operation holds what every technique shares: the backend client, the
// model to charge against, and its configured generation parameters.
type operation struct {
	name     string
	label    string
	client   llm.Client
	model    string
	settings config.TechniqueSettings
	logger   *zerolog.Logger
}

func (o *operation) Name() string {
	return o.name
}

// temperature picks the caller override when present, otherwise the
// configured value.
func (o *operation) temperature(args Args) float64 {
	if args.Temperature > 0 {
		return args.Temperature
	}
	return o.settings.Temperature
}

// complete issues one completion request for the given message sequence.
func (o *operation) complete(ctx context.Context, messages []llm.Message, temperature float64) (*llm.ChatResponse, error) {
	request := llm.ChatRequest{
		Model:       o.model,
		Messages:    messages,
		MaxTokens:   o.settings.MaxTokens,
		Temperature: temperature,
	}

	if o.settings.Retry {
		return o.client.InvokeWithRetry(ctx, request)
	}
	return o.client.Invoke(ctx, request)
}

// result accounts cost for a successful response.
func (o *operation) result(resp *llm.ChatResponse) models.Result {
	result := models.Result{
		Technique: o.name,
		Response:  resp.Content,
		Tokens:    resp.TotalTokens,
		Cost:      pricing.Cost(resp.TotalTokens, o.model),
	}

	o.logger.Info().
		Str("technique", o.name).
		Int("tokens", result.Tokens).
		Float64("cost", result.Cost).
		Msg("technique completed")

	return result
}

// errorResult converts a backend failure into the always-valid Result
// shape: the message is prefixed with the technique label, tokens and
// cost are zero.
func (o *operation) errorResult(err error) models.Result {
	o.logger.Error().
		Err(err).
		Str("technique", o.name).
		Msg("backend call failed")

	return models.Result{
		Technique: o.name,
		Response:  fmt.Sprintf("Error in %s: %v", o.label, err),
	}
}
