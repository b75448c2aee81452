package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/prompt-playground/internal/api"
	"github.com/povarna/prompt-playground/internal/api/middleware"
	"github.com/povarna/prompt-playground/internal/compare"
	"github.com/povarna/prompt-playground/internal/config"
	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
	"github.com/povarna/prompt-playground/internal/record"
	"github.com/povarna/prompt-playground/internal/technique"
	"github.com/rs/zerolog"
)

// stubClient answers every completion request with a fixed response.
type stubClient struct {
	calls int
}

func (s *stubClient) Invoke(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	s.calls++
	return &llm.ChatResponse{Content: "stub answer", TotalTokens: 100, StopReason: "stop"}, nil
}

func (s *stubClient) InvokeWithRetry(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	return s.Invoke(ctx, request)
}

func setupTestAPI(t *testing.T) (*restful.Container, *stubClient) {
	t.Helper()

	logger := zerolog.Nop()
	client := &stubClient{}

	registry := technique.NewRegistry(client, config.Default(), &logger)
	comparer := compare.NewRunner(registry, &logger)
	recorder := record.NewRecorder(registry, record.NewFileStore(t.TempDir()), &logger)

	handler := api.NewHandler(registry, comparer, recorder, &logger)
	container := restful.NewContainer()
	container.Filter(middleware.RecoverPanic)
	api.RegisterRoutes(container, handler)

	return container, client
}

func TestAPI_Health(t *testing.T) {
	container, _ := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/health", nil)
	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", rec.Code)
	}

	var response api.HealthResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Status != "ok" {
		t.Errorf("Expected status 'ok', got %q", response.Status)
	}
}

func TestAPI_ListTechniques(t *testing.T) {
	container, _ := setupTestAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/techniques", nil)
	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var response api.TechniqueListResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if len(response.Techniques) != 8 {
		t.Errorf("Expected 8 techniques, got %d", len(response.Techniques))
	}
}

func TestAPI_RunTechnique(t *testing.T) {
	container, client := setupTestAPI(t)

	body, _ := json.Marshal(technique.Args{Prompt: "Explain DNS"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/techniques/Zero-Shot%20Prompting/run", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var result models.Result
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if result.Response != "stub answer" {
		t.Errorf("Unexpected response: %q", result.Response)
	}
	if result.Tokens != 100 {
		t.Errorf("Expected 100 tokens, got %d", result.Tokens)
	}
	if client.calls != 1 {
		t.Errorf("Expected 1 backend call, got %d", client.calls)
	}
}

func TestAPI_RunTechnique_Unknown(t *testing.T) {
	container, client := setupTestAPI(t)

	body, _ := json.Marshal(technique.Args{Prompt: "hi"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/techniques/NoSuchTechnique/run", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Errorf("Expected status 404, got %d", rec.Code)
	}
	if client.calls != 0 {
		t.Errorf("Expected no backend calls, got %d", client.calls)
	}
}

func TestAPI_RunTechnique_MissingArgument(t *testing.T) {
	container, _ := setupTestAPI(t)

	body, _ := json.Marshal(technique.Args{})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/techniques/Chain-of-Thought%20Prompting/run", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestAPI_Compare(t *testing.T) {
	container, _ := setupTestAPI(t)

	body, _ := json.Marshal(api.CompareRequest{
		Prompt:     "What is Go?",
		Techniques: []string{technique.ZeroShot, "NoSuchTechnique"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/compare", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d", rec.Code)
	}

	var result models.ComparisonResult
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if _, ok := result.Results[technique.ZeroShot]; !ok {
		t.Error("Expected successful entry for Zero-Shot Prompting")
	}
	if _, ok := result.Errors["NoSuchTechnique"]; !ok {
		t.Error("Expected error entry for unknown technique")
	}
}

func TestAPI_FillTemplate(t *testing.T) {
	container, _ := setupTestAPI(t)

	body, _ := json.Marshal(api.FillTemplateRequest{
		Category: "Translation",
		Name:     "Simple",
		Values:   map[string]string{"language": "French", "text": "Hello"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/templates/fill", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var response api.FilledTemplateResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if response.Prompt != "Translate the following text to French: Hello" {
		t.Errorf("Unexpected filled template: %q", response.Prompt)
	}
}

func TestAPI_FillTemplate_MissingVariable(t *testing.T) {
	container, _ := setupTestAPI(t)

	body, _ := json.Marshal(api.FillTemplateRequest{
		Category: "Translation",
		Name:     "Simple",
		Values:   map[string]string{"language": "French"},
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/templates/fill", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("Expected status 400, got %d", rec.Code)
	}
}

func TestAPI_RecordDemonstration(t *testing.T) {
	container, _ := setupTestAPI(t)

	body, _ := json.Marshal(technique.Args{Role: "historian", Task: "Describe the Roman Empire"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/demonstrations/Role-Playing%20Prompting", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	container.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var demo models.DemonstrationRecord
	if err := json.Unmarshal(rec.Body.Bytes(), &demo); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if demo.Technique != technique.RolePlaying {
		t.Errorf("Expected technique recorded, got %q", demo.Technique)
	}
}
