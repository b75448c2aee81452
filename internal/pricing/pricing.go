package pricing

import (
	"math"
)

// Rates holds per-million-token pricing for a model.
type Rates struct {
	InputPerMillion  float64
	OutputPerMillion float64
}

// modelRates contains current pricing per million tokens (as of 2024).
var modelRates = map[string]Rates{
	"gpt-3.5-turbo": {InputPerMillion: 0.50, OutputPerMillion: 1.50},
	"gpt-4":         {InputPerMillion: 30.00, OutputPerMillion: 60.00},
	"gpt-4-turbo":   {InputPerMillion: 10.00, OutputPerMillion: 30.00},
}

// defaultPerMillion is the flat fallback rate for models missing from the table.
const defaultPerMillion = 1.00

// Cost estimates the USD cost of a request from its total token usage.
// Usage accounting does not split input from output tokens, so the average
// of the two rates is used. The result is rounded to 6 decimal places.
func Cost(tokens int, model string) float64 {
	rate := defaultPerMillion
	if r, ok := modelRates[model]; ok {
		rate = (r.InputPerMillion + r.OutputPerMillion) / 2
	}

	cost := float64(tokens) / 1_000_000 * rate
	return Round6(cost)
}

// Models returns the model identifiers present in the price table.
func Models() []string {
	names := make([]string, 0, len(modelRates))
	for name := range modelRates {
		names = append(names, name)
	}
	return names
}

// Round6 rounds a cost to 6 decimal places, the precision used everywhere
// costs are reported or accumulated.
func Round6(v float64) float64 {
	return math.Round(v*1e6) / 1e6
}
