package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/redis/go-redis/v9"
)

const backendRedis = "redis"

// RedisFeaturedCache keeps the snapshot under a single key. A zero ttl stores
// it without expiry.
type RedisFeaturedCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisFeaturedCache(client *redis.Client, prefix string, ttl time.Duration) *RedisFeaturedCache {
	return &RedisFeaturedCache{
		client: client,
		key:    keyFor(prefix),
		ttl:    ttl,
	}
}

func (c *RedisFeaturedCache) GetFeatured(ctx context.Context) ([]domain.Product, error) {
	b, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		FeaturedMisses.WithLabelValues(backendRedis).Inc()
		return nil, app.ErrCacheMiss
	}
	if err != nil {
		FeaturedErrors.WithLabelValues(backendRedis, "get").Inc()
		return nil, fmt.Errorf("%w: redis get: %w", app.ErrCacheUnavailable, err)
	}

	products, err := decodeSnapshot(b)
	if err != nil {
		FeaturedErrors.WithLabelValues(backendRedis, "get").Inc()
		return nil, fmt.Errorf("%w: %w", app.ErrCacheUnavailable, err)
	}

	FeaturedHits.WithLabelValues(backendRedis).Inc()
	return products, nil
}

func (c *RedisFeaturedCache) SetFeatured(ctx context.Context, products []domain.Product) error {
	b, err := encodeSnapshot(products)
	if err != nil {
		return err
	}
	if err := c.client.Set(ctx, c.key, b, c.ttl).Err(); err != nil {
		FeaturedErrors.WithLabelValues(backendRedis, "set").Inc()
		return fmt.Errorf("%w: redis set: %w", app.ErrCacheUnavailable, err)
	}
	return nil
}

func (c *RedisFeaturedCache) InvalidateFeatured(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		FeaturedErrors.WithLabelValues(backendRedis, "delete").Inc()
		return fmt.Errorf("%w: redis del: %w", app.ErrCacheUnavailable, err)
	}
	return nil
}
