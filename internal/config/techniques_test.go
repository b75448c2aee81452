package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadTechniquesConfig_MissingFileUsesDefaults(t *testing.T) {
	t.Setenv("TECHNIQUES_CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))

	cfg, err := LoadTechniquesConfig()
	if err != nil {
		t.Fatalf("LoadTechniquesConfig returned error: %v", err)
	}

	if cfg.Model != "gpt-3.5-turbo" {
		t.Errorf("Expected default model, got %q", cfg.Model)
	}

	s := cfg.Settings("self_consistency")
	if s.NumSamples != 3 {
		t.Errorf("Expected default num_samples=3, got %d", s.NumSamples)
	}
	if s.MaxTokens != 1024 {
		t.Errorf("Expected default max_tokens=1024, got %d", s.MaxTokens)
	}
	if !s.IsEnabled() {
		t.Error("Expected techniques enabled by default")
	}
}

func TestLoadTechniquesConfig_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "techniques.yaml")

	content := `model: gpt-4
techniques:
  zero_shot:
    enabled: false
  self_consistency:
    temperature: 0.9
    num_samples: 5
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TECHNIQUES_CONFIG_PATH", path)

	cfg, err := LoadTechniquesConfig()
	if err != nil {
		t.Fatalf("LoadTechniquesConfig returned error: %v", err)
	}

	if cfg.Model != "gpt-4" {
		t.Errorf("Expected model gpt-4, got %q", cfg.Model)
	}
	if cfg.Settings("zero_shot").IsEnabled() {
		t.Error("Expected zero_shot disabled")
	}

	sc := cfg.Settings("self_consistency")
	if sc.Temperature != 0.9 {
		t.Errorf("Expected temperature 0.9, got %v", sc.Temperature)
	}
	if sc.NumSamples != 5 {
		t.Errorf("Expected num_samples 5, got %d", sc.NumSamples)
	}
}

func TestLoadTechniquesConfig_InvalidYaml(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "techniques.yaml")
	if err := os.WriteFile(path, []byte(":\n  - not yaml"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("TECHNIQUES_CONFIG_PATH", path)

	if _, err := LoadTechniquesConfig(); err == nil {
		t.Error("Expected error for invalid yaml")
	}
}
