package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"sales-analytics/internal/config"
	"sales-analytics/internal/models"

	"github.com/redis/go-redis/v9"
)

const (
	categoryTotalsKey = "sales:category_totals"
	generationKey     = "sales:category_totals:generation"
)

// RedisTotalsCache keeps the last store-side category totals report in redis
type RedisTotalsCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTotalsCache(client *redis.Client, ttl time.Duration) *RedisTotalsCache {
	return &RedisTotalsCache{
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient connects to redis and verifies the connection
func NewRedisClient(ctx context.Context, cfg *config.RedisConfig) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to ping redis: %w", err)
	}

	return client, nil
}

// Get returns the cached report, or nil on a miss
func (c *RedisTotalsCache) Get(ctx context.Context) (*models.CategoryTotalsReport, error) {
	payload, err := c.client.Get(ctx, categoryTotalsKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached totals: %w", err)
	}

	var report models.CategoryTotalsReport
	if err := json.Unmarshal(payload, &report); err != nil {
		return nil, fmt.Errorf("failed to decode cached totals: %w", err)
	}

	return &report, nil
}

// Generation returns the invalidation counter. A report computed after
// reading generation g may only be stored while the counter is still g.
func (c *RedisTotalsCache) Generation(ctx context.Context) (int64, error) {
	generation, err := c.client.Get(ctx, generationKey).Int64()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to read totals generation: %w", err)
	}
	return generation, nil
}

// Set stores the report unless an invalidation happened since generation was
// read, in which case the report may predate a write and is dropped.
func (c *RedisTotalsCache) Set(ctx context.Context, generation int64, report *models.CategoryTotalsReport) error {
	payload, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to encode totals: %w", err)
	}

	err = c.client.Watch(ctx, func(tx *redis.Tx) error {
		current, err := tx.Get(ctx, generationKey).Int64()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		if current != generation {
			return nil
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, categoryTotalsKey, payload, c.ttl)
			return nil
		})
		return err
	}, generationKey)
	if errors.Is(err, redis.TxFailedErr) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to cache totals: %w", err)
	}

	return nil
}

// Invalidate drops the cached report and bumps the generation so in-flight
// fills started before this call are discarded
func (c *RedisTotalsCache) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, generationKey)
		pipe.Del(ctx, categoryTotalsKey)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to invalidate cached totals: %w", err)
	}
	return nil
}
