package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"botanica/internal/conservation/models"
	"botanica/pkg/platform/sentinel"
)

const keyPrefix = "conservation:assessment:"

// Redis is a Redis-backed assessment cache shared across instances.
type Redis struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis constructs a cache whose entries expire after ttl.
func NewRedis(client *redis.Client, ttl time.Duration) *Redis {
	return &Redis{client: client, ttl: ttl}
}

func (c *Redis) Get(ctx context.Context, scientificName string) (*models.Assessment, error) {
	raw, err := c.client.Get(ctx, keyPrefix+Key(scientificName)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, sentinel.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get cached assessment: %w", err)
	}
	var a models.Assessment
	if err := json.Unmarshal(raw, &a); err != nil {
		return nil, fmt.Errorf("decode cached assessment: %w", err)
	}
	return &a, nil
}

// Set uses SET with expiry so the write and TTL are atomic.
func (c *Redis) Set(ctx context.Context, a models.Assessment) error {
	raw, err := json.Marshal(a)
	if err != nil {
		return fmt.Errorf("encode assessment: %w", err)
	}
	if err := c.client.Set(ctx, keyPrefix+Key(a.ScientificName), raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache assessment: %w", err)
	}
	return nil
}

func (c *Redis) Delete(ctx context.Context, scientificName string) error {
	return c.client.Del(ctx, keyPrefix+Key(scientificName)).Err()
}
