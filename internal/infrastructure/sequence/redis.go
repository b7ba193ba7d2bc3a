package sequence

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// Seeder reports the highest value already used for a counter, so a fresh
// Redis starts above existing data.
type Seeder func(ctx context.Context) (int64, error)

// RedisAllocator uses INCR on reqtrack:seq:<name>. The key is seeded once
// with SETNX and an existing key is never overwritten.
type RedisAllocator struct {
	client *redis.Client
	seed   Seeder
}

func NewRedisAllocator(client *redis.Client, seed Seeder) *RedisAllocator {
	return &RedisAllocator{client: client, seed: seed}
}

func (a *RedisAllocator) Next(ctx context.Context, name string) (int64, error) {
	key := "reqtrack:seq:" + name

	exists, err := a.client.Exists(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to check sequence %s: %w", name, err)
	}
	if exists == 0 && a.seed != nil {
		start, err := a.seed(ctx)
		if err != nil {
			return 0, fmt.Errorf("failed to seed sequence %s: %w", name, err)
		}
		if err := a.client.SetNX(ctx, key, start, 0).Err(); err != nil {
			return 0, fmt.Errorf("failed to seed sequence %s: %w", name, err)
		}
	}

	value, err := a.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to increment sequence %s: %w", name, err)
	}
	return value, nil
}
