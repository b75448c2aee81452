package record

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/povarna/prompt-playground/internal/config"
	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/models"
	"github.com/povarna/prompt-playground/internal/technique"
	"github.com/rs/zerolog"
)

type fakeClient struct {
	calls int
}

func (f *fakeClient) Invoke(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	f.calls++
	return &llm.ChatResponse{Content: "generated text", TotalTokens: 42}, nil
}

func (f *fakeClient) InvokeWithRetry(ctx context.Context, request llm.ChatRequest) (*llm.ChatResponse, error) {
	return f.Invoke(ctx, request)
}

func newRecorder(t *testing.T, client llm.Client, dir string) *Recorder {
	t.Helper()
	logger := zerolog.Nop()
	registry := technique.NewRegistry(client, config.Default(), &logger)
	return NewRecorder(registry, NewFileStore(dir), &logger)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Zero-Shot Prompting", "zero-shot_prompting"},
		{"Chain-of-Thought Prompting", "chain-of-thought_prompting"},
		{"ReAct Prompting", "react_prompting"},
	}

	for _, tt := range tests {
		if got := Slug(tt.in); got != tt.want {
			t.Errorf("Slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestRecord_WritesFile(t *testing.T) {
	dir := t.TempDir()
	recorder := newRecorder(t, &fakeClient{}, dir)

	record, err := recorder.Record(context.Background(), technique.ZeroShot, technique.Args{
		Prompt: "Explain quantum computing to a 5-year-old",
	})
	if err != nil {
		t.Fatalf("Record returned error: %v", err)
	}

	if record.Technique != technique.ZeroShot {
		t.Errorf("Expected technique %q, got %q", technique.ZeroShot, record.Technique)
	}
	if record.Input["prompt"] != "Explain quantum computing to a 5-year-old" {
		t.Errorf("Input not captured: %v", record.Input)
	}
	if record.Output.Tokens != 42 {
		t.Errorf("Expected 42 tokens, got %d", record.Output.Tokens)
	}

	path := filepath.Join(dir, "zero-shot_prompting_demo.json")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected record file at %s: %v", path, err)
	}

	var persisted models.DemonstrationRecord
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatalf("Record file is not valid JSON: %v", err)
	}
	if persisted.Output.Response != "generated text" {
		t.Errorf("Persisted output mismatch: %q", persisted.Output.Response)
	}
}

func TestRecord_OverwritesPriorRecord(t *testing.T) {
	dir := t.TempDir()
	recorder := newRecorder(t, &fakeClient{}, dir)

	if _, err := recorder.Record(context.Background(), technique.ZeroShot, technique.Args{Prompt: "first"}); err != nil {
		t.Fatal(err)
	}
	if _, err := recorder.Record(context.Background(), technique.ZeroShot, technique.Args{Prompt: "second"}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Fatalf("Expected 1 record file, got %d", len(entries))
	}

	data, _ := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	var persisted models.DemonstrationRecord
	if err := json.Unmarshal(data, &persisted); err != nil {
		t.Fatal(err)
	}
	if persisted.Input["prompt"] != "second" {
		t.Errorf("Expected the later record to win, got input %v", persisted.Input)
	}
}

func TestRecord_UnknownTechniqueWritesNothing(t *testing.T) {
	dir := t.TempDir()
	client := &fakeClient{}
	recorder := newRecorder(t, client, dir)

	_, err := recorder.Record(context.Background(), "NoSuchTechnique", technique.Args{Prompt: "x"})
	if !errors.Is(err, technique.ErrUnknownTechnique) {
		t.Fatalf("Expected ErrUnknownTechnique, got %v", err)
	}

	if client.calls != 0 {
		t.Errorf("Expected no backend calls, got %d", client.calls)
	}

	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("Expected no record files, found %d", len(entries))
	}
}

func TestFileStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "outputs", "nested")
	store := NewFileStore(dir)

	err := store.Save(context.Background(), "Zero-Shot Prompting", models.DemonstrationRecord{
		Technique: "Zero-Shot Prompting",
		Input:     map[string]any{"prompt": "hi"},
	})
	if err != nil {
		t.Fatalf("Save returned error: %v", err)
	}

	if _, err := os.Stat(filepath.Join(dir, "zero-shot_prompting_demo.json")); err != nil {
		t.Errorf("Expected record file: %v", err)
	}
}
