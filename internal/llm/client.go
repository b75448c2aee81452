package llm

import (
	"context"
)

// Client is an interface for invoking chat completion models.
// This allows mocking in tests without making real API calls.
type Client interface {
	Invoke(ctx context.Context, request ChatRequest) (*ChatResponse, error)
	InvokeWithRetry(ctx context.Context, request ChatRequest) (*ChatResponse, error)
}
