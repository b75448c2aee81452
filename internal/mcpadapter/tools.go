package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/prompt-playground/internal/compare"
	"github.com/povarna/prompt-playground/internal/models"
	"github.com/povarna/prompt-playground/internal/technique"
	"github.com/povarna/prompt-playground/internal/templates"
)

// RunTechniqueInput is the MCP tool input schema for one technique run.
type RunTechniqueInput struct {
	Technique   string              `json:"technique" jsonschema:"technique name, e.g. 'Zero-Shot Prompting'"`
	Prompt      string              `json:"prompt,omitempty" jsonschema:"input prompt (zero-shot, few-shot)"`
	Problem     string              `json:"problem,omitempty" jsonschema:"problem statement (chain-of-thought, self-consistency, tree-of-thoughts)"`
	Role        string              `json:"role,omitempty" jsonschema:"role to assume (role-playing)"`
	Task        string              `json:"task,omitempty" jsonschema:"task to complete (role-playing, ReAct)"`
	Persona     string              `json:"persona,omitempty" jsonschema:"persona description (persona-based)"`
	Query       string              `json:"query,omitempty" jsonschema:"query for the persona (persona-based)"`
	Examples    []technique.Example `json:"examples,omitempty" jsonschema:"example interactions (few-shot)"`
	NumSamples  int                 `json:"num_samples,omitempty" jsonschema:"number of reasoning paths (self-consistency)"`
	Temperature float64             `json:"temperature,omitempty" jsonschema:"sampling temperature override"`
}

// CompareInput is the MCP tool input schema for technique comparison.
type CompareInput struct {
	Prompt     string   `json:"prompt" jsonschema:"shared prompt to run across techniques"`
	Techniques []string `json:"techniques,omitempty" jsonschema:"technique names to compare; defaults to zero-shot, few-shot and chain-of-thought"`
}

// FillTemplateInput is the MCP tool input schema for template filling.
type FillTemplateInput struct {
	Category string            `json:"category" jsonschema:"template category, e.g. 'Translation'"`
	Name     string            `json:"name" jsonschema:"template name, e.g. 'Simple'"`
	Values   map[string]string `json:"values" jsonschema:"placeholder values"`
}

// FilledTemplate is the fill_template tool output.
type FilledTemplate struct {
	Prompt string `json:"prompt"`
}

// NewRunTechniqueHandler returns a tool handler backed by the given registry.
// Pass the returned function to mcp.AddTool.
func NewRunTechniqueHandler(registry *technique.Registry) func(context.Context, *mcp.CallToolRequest, RunTechniqueInput) (*mcp.CallToolResult, models.Result, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RunTechniqueInput) (*mcp.CallToolResult, models.Result, error) {
		result, err := registry.Invoke(ctx, input.Technique, technique.Args{
			Prompt:      input.Prompt,
			Problem:     input.Problem,
			Role:        input.Role,
			Task:        input.Task,
			Persona:     input.Persona,
			Query:       input.Query,
			Examples:    input.Examples,
			NumSamples:  input.NumSamples,
			Temperature: input.Temperature,
		})
		return nil, result, err
	}
}

// NewCompareHandler returns a tool handler backed by the comparison runner.
func NewCompareHandler(runner *compare.Runner) func(context.Context, *mcp.CallToolRequest, CompareInput) (*mcp.CallToolResult, models.ComparisonResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input CompareInput) (*mcp.CallToolResult, models.ComparisonResult, error) {
		result := runner.Compare(ctx, input.Prompt, input.Techniques)
		return nil, result, nil
	}
}

// NewFillTemplateHandler returns a tool handler over the template library.
func NewFillTemplateHandler() func(context.Context, *mcp.CallToolRequest, FillTemplateInput) (*mcp.CallToolResult, FilledTemplate, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FillTemplateInput) (*mcp.CallToolResult, FilledTemplate, error) {
		prompt, err := templates.Fill(input.Category, input.Name, input.Values)
		if err != nil {
			return nil, FilledTemplate{}, err
		}
		return nil, FilledTemplate{Prompt: prompt}, nil
	}
}
