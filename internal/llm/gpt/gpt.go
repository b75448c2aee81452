package gpt

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/povarna/prompt-playground/internal/llm"
)

func (c *Client) Invoke(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(request.Messages))
	for _, m := range request.Messages {
		switch m.Role {
		case llm.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content))
		case llm.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content))
		default:
			messages = append(messages, openai.UserMessage(m.Content))
		}
	}

	model := request.Model
	if model == "" {
		model = c.ModelID
	}

	params := openai.ChatCompletionNewParams{
		Messages: messages,
		Model:    openai.ChatModel(model),
	}
	if request.MaxTokens > 0 {
		params.MaxCompletionTokens = openai.Int(int64(request.MaxTokens))
	}
	if request.Temperature > 0 {
		params.Temperature = openai.Float(request.Temperature)
	}

	output, err := c.Client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke gpt model. Error: %w", err)
	}

	if len(output.Choices) == 0 {
		return nil, fmt.Errorf("no choices in response")
	}

	choice := output.Choices[0]
	return &llm.ChatResponse{
		Content:     choice.Message.Content,
		TotalTokens: int(output.Usage.TotalTokens),
		StopReason:  fmt.Sprint(choice.FinishReason),
	}, nil
}

func (c *Client) InvokeWithRetry(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	// The underlying SDK client already retries transient failures.
	return c.Invoke(ctx, request)
}
