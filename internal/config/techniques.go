package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const defaultModel = "gpt-3.5-turbo"

// LoadTechniquesConfig reads the techniques configuration file. A missing
// file is not an error: the built-in defaults cover the full technique set.
func LoadTechniquesConfig() (*TechniquesConfig, error) {
	path := os.Getenv("TECHNIQUES_CONFIG_PATH")
	if path == "" {
		path = "configs/techniques.yaml"
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, err
	}

	var cfg TechniquesConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse techniques config %s: %w", path, err)
	}

	applyDefaults(&cfg)

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *TechniquesConfig {
	cfg := &TechniquesConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *TechniquesConfig) {
	if cfg.Model == "" {
		cfg.Model = defaultModel
	}
	if cfg.Techniques == nil {
		cfg.Techniques = map[string]TechniqueSettings{}
	}
}
