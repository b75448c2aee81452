package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// Connect dials Redis and verifies the connection with a ping, retrying
// with exponential backoff. Used by the demonstration record store.
func Connect(ctx context.Context, addr string, password string, maxAttempts int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:            addr,
		Password:        password,
		DB:              0,
		MaxRetries:      3,
		MinRetryBackoff: 8 * time.Millisecond,
		MaxRetryBackoff: 512 * time.Millisecond,
		DialTimeout:     5 * time.Second,
		ReadTimeout:     3 * time.Second,
		WriteTimeout:    3 * time.Second,
	})

	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if attempt > 1 {
			backoff := time.Duration(1<<uint(attempt-1)) * time.Second
			log.Info().Dur("backoff", backoff).Msg("Waiting before Redis retry")

			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoff):
			}
		}

		log.Info().Int("attempt", attempt).Int("max_attempts", maxAttempts).Msg("Connecting to Redis")

		err = client.Ping(ctx).Err()
		if err == nil {
			return client, nil
		}

		log.Warn().Err(err).Int("attempt", attempt).Msg("Redis ping failed")
	}

	return nil, fmt.Errorf("failed to connect to Redis after %d attempts: %w", maxAttempts, err)
}
