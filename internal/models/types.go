package models

// Result is the uniform output of every technique invocation.
// Backend failures still produce a Result: the Response carries a
// human-readable error message and Tokens/Cost are zero.
type Result struct {
	Technique string  `json:"technique"`
	Response  string  `json:"response"`
	Tokens    int     `json:"tokens"`
	Cost      float64 `json:"cost"`
	NumPaths  int     `json:"num_paths,omitempty"`
}

// ComparisonResult aggregates the outputs of running several techniques
// against the same prompt.
type ComparisonResult struct {
	Prompt             string            `json:"prompt"`
	TechniquesCompared int               `json:"techniques_compared"`
	Results            map[string]Result `json:"results"`
	Errors             map[string]string `json:"errors,omitempty"`
	TotalTokens        int               `json:"total_tokens"`
	TotalCost          float64           `json:"total_cost"`
}

// DemonstrationRecord is the persisted snapshot of one technique run.
type DemonstrationRecord struct {
	Technique string         `json:"technique"`
	Input     map[string]any `json:"input"`
	Output    Result         `json:"output"`
}
