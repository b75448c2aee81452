package technique

import (
	"context"
	"errors"
	"fmt"

	"github.com/povarna/prompt-playground/internal/models"
)

// Canonical technique names. The set is fixed at process start; the
// registry is built over exactly these.
const (
	ZeroShot        = "Zero-Shot Prompting"
	FewShot         = "Few-Shot Prompting"
	ChainOfThought  = "Chain-of-Thought Prompting"
	RolePlaying     = "Role-Playing Prompting"
	PersonaBased    = "Persona-Based Prompting"
	ReAct           = "ReAct Prompting"
	SelfConsistency = "Self-Consistency Prompting"
	TreeOfThoughts  = "Tree-of-Thoughts Prompting"
)

var (
	ErrUnknownTechnique = errors.New("unknown technique")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Technique is a named strategy for framing caller input into a message
// sequence and invoking the completion backend.
//
// Run returns an error only for argument validation failures. Backend
// failures are converted into a Result carrying an error description with
// zero tokens and zero cost, so rendering code never needs to special-case
// them.
type Technique interface {
	Name() string
	Run(ctx context.Context, args Args) (models.Result, error)
}

// Example is one input/output pair supplied to few-shot prompting.
type Example struct {
	Input  string `json:"input"`
	Output string `json:"output"`
}

// Args carries the call parameters of all techniques. Each technique
// validates the fields it requires and ignores the rest.
type Args struct {
	Prompt      string    `json:"prompt,omitempty"`
	Problem     string    `json:"problem,omitempty"`
	Role        string    `json:"role,omitempty"`
	Task        string    `json:"task,omitempty"`
	Persona     string    `json:"persona,omitempty"`
	Query       string    `json:"query,omitempty"`
	Examples    []Example `json:"examples,omitempty"`
	NumSamples  int       `json:"num_samples,omitempty"`
	Temperature float64   `json:"temperature,omitempty"`
}

func missingParam(name string) error {
	return fmt.Errorf("%w: missing required parameter %q", ErrInvalidArguments, name)
}
