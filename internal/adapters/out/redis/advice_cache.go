// Package redis caches clustering advice. The cache is advisory: when it is
// disabled every lookup misses.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"mealflow/internal/core/application/usecases/queries"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

const keyPrefix = "mealflow:"

type Config struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
	TTL      time.Duration
}

type AdviceCache struct {
	client  *redis.Client
	ttl     time.Duration
	enabled bool
}

// NewAdviceCache pings the server when the cache is enabled.
func NewAdviceCache(cfg Config) (*AdviceCache, error) {
	if !cfg.Enabled {
		return &AdviceCache{enabled: false}, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "failed to connect to Redis")
	}

	return NewAdviceCacheWithClient(client, cfg.TTL), nil
}

func NewAdviceCacheWithClient(client *redis.Client, ttl time.Duration) *AdviceCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &AdviceCache{client: client, ttl: ttl, enabled: true}
}

func (c *AdviceCache) Get(ctx context.Context, key string) ([]queries.ClusterAdvice, bool, error) {
	if !c.enabled {
		return nil, false, nil
	}

	data, err := c.client.Get(ctx, keyPrefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(err, "failed to get advice from Redis")
	}

	var advice []queries.ClusterAdvice
	if err = json.Unmarshal(data, &advice); err != nil {
		return nil, false, errors.Wrap(err, "failed to unmarshal cached advice")
	}
	return advice, true, nil
}

func (c *AdviceCache) Set(ctx context.Context, key string, advice []queries.ClusterAdvice) error {
	if !c.enabled {
		return nil
	}

	data, err := json.Marshal(advice)
	if err != nil {
		return errors.Wrap(err, "failed to marshal advice for caching")
	}
	if err = c.client.Set(ctx, keyPrefix+key, data, c.ttl).Err(); err != nil {
		return errors.Wrap(err, "failed to set advice in Redis")
	}
	return nil
}

func (c *AdviceCache) Close() error {
	if !c.enabled || c.client == nil {
		return nil
	}
	return c.client.Close()
}
