package config

// TechniquesConfig tunes the model parameters used by each prompting
// technique. The set of techniques itself is fixed in code; configuration
// can only disable one or adjust its generation parameters.
type TechniquesConfig struct {
	Model      string                       `yaml:"model"`
	Techniques map[string]TechniqueSettings `yaml:"techniques"`
}

type TechniqueSettings struct {
	Enabled     *bool   `yaml:"enabled"`
	MaxTokens   int     `yaml:"max_tokens"`
	Temperature float64 `yaml:"temperature"`
	Retry       bool    `yaml:"retry"`
	NumSamples  int     `yaml:"num_samples"`
}

// IsEnabled treats an absent enabled flag as true.
func (s TechniqueSettings) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Settings returns the configured settings for a technique slug, with
// defaults applied for anything not present in the file.
func (c *TechniquesConfig) Settings(slug string) TechniqueSettings {
	s := c.Techniques[slug]
	if s.MaxTokens == 0 {
		s.MaxTokens = 1024
	}
	if s.NumSamples == 0 {
		s.NumSamples = 3
	}
	return s
}
