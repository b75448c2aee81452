package record

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/povarna/prompt-playground/internal/models"
	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "demo:"

// RedisStore keeps the latest demonstration per technique under the
// demo:<slug> key, so several playground instances can share records.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, techniqueName string, record models.DemonstrationRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to serialize record: %w", err)
	}

	key := redisKeyPrefix + Slug(techniqueName)
	if err := s.client.Set(ctx, key, data, 0).Err(); err != nil {
		return fmt.Errorf("failed to store record %s: %w", key, err)
	}

	return nil
}
