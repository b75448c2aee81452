package technique

import (
	"context"

	"github.com/povarna/prompt-playground/internal/llm"
)

// mockClient is a fake completion backend for testing.
type mockClient struct {
	// What the mock should return when Invoke is called
	ResponseToReturn *llm.ChatResponse
	ErrorToReturn    error

	// Track calls for verification
	CallCount    int
	RetryCount   int
	LastRequest  *llm.ChatRequest
	AllResponses []*llm.ChatResponse // when set, returned in order per call
}

func (m *mockClient) Invoke(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	m.CallCount++
	m.LastRequest = &request

	if m.ErrorToReturn != nil {
		return nil, m.ErrorToReturn
	}
	if len(m.AllResponses) > 0 {
		resp := m.AllResponses[(m.CallCount-1)%len(m.AllResponses)]
		return resp, nil
	}
	return m.ResponseToReturn, nil
}

func (m *mockClient) InvokeWithRetry(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	m.RetryCount++
	return m.Invoke(ctx, request)
}
