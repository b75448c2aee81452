package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/povarna/prompt-playground/internal/compare"
	"github.com/povarna/prompt-playground/internal/config"
	"github.com/povarna/prompt-playground/internal/llm"
	"github.com/povarna/prompt-playground/internal/llm/bedrock"
	"github.com/povarna/prompt-playground/internal/llm/gpt"
	"github.com/povarna/prompt-playground/internal/record"
	"github.com/povarna/prompt-playground/internal/redis"
	"github.com/povarna/prompt-playground/internal/technique"
	"github.com/rs/zerolog"
)

type Config struct {
	Provider      string
	OpenAIKey     string
	OpenAIModelID string
	AWSRegion     string
	ClaudeModelID string
	RecordStore   string
	OutputDir     string
	RedisAddr     string
	RedisPassword string
}

type Dependencies struct {
	Registry *technique.Registry
	Comparer *compare.Runner
	Recorder *record.Recorder
	Logger   *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Provider:      getEnv("LLM_PROVIDER", "openai"),
		OpenAIKey:     getEnv("OPENAI_API_KEY", ""),
		OpenAIModelID: getEnv("OPENAI_MODEL_ID", "gpt-3.5-turbo"),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID: getEnv("CLAUDE_MODEL_ID", ""),
		RecordStore:   getEnv("RECORD_STORE", "file"),
		OutputDir:     getEnv("OUTPUT_DIR", "outputs"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}
}

func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	client, err := createLLMClient(ctx, cfg.Provider, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create LLM client: %w", err)
	}

	// Per-technique model parameters from YAML
	techniquesConfig, err := config.LoadTechniquesConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load techniques config: %w", err)
	}

	registry := technique.NewRegistry(client, techniquesConfig, logger)
	comparer := compare.NewRunner(registry, logger)

	store, err := createRecordStore(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create record store: %w", err)
	}
	recorder := record.NewRecorder(registry, store, logger)

	return &Dependencies{
		Registry: registry,
		Comparer: comparer,
		Recorder: recorder,
		Logger:   logger,
	}, nil
}

func createLLMClient(ctx context.Context, provider string, cfg *Config) (llm.Client, error) {
	switch provider {
	case "bedrock":
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	case "openai":
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	default:
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID)
	}
}

func createRecordStore(ctx context.Context, cfg *Config) (record.Store, error) {
	switch cfg.RecordStore {
	case "redis":
		client, err := redis.Connect(ctx, cfg.RedisAddr, cfg.RedisPassword, 5)
		if err != nil {
			return nil, err
		}
		return record.NewRedisStore(client), nil
	default:
		return record.NewFileStore(cfg.OutputDir), nil
	}
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}
