package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/allegro/bigcache/v3"
	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

const backendMemory = "memory"

// bigcache needs a finite life window; this stands in for "no expiry".
const noExpiry = 10 * 365 * 24 * time.Hour

// MemoryFeaturedCache is the single-process backend, used when Redis is not
// configured and in tests.
type MemoryFeaturedCache struct {
	cache *bigcache.BigCache
	key   string
}

func NewMemoryFeaturedCache(ctx context.Context, prefix string, ttl time.Duration) (*MemoryFeaturedCache, error) {
	life := ttl
	if life <= 0 {
		life = noExpiry
	}

	cfg := bigcache.DefaultConfig(life)
	cfg.Shards = 16
	cfg.MaxEntriesInWindow = 64
	cfg.Verbose = false
	if ttl <= 0 {
		cfg.CleanWindow = 0
	}

	bc, err := bigcache.New(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("bigcache: %w", err)
	}

	return &MemoryFeaturedCache{cache: bc, key: keyFor(prefix)}, nil
}

func (c *MemoryFeaturedCache) GetFeatured(context.Context) ([]domain.Product, error) {
	b, err := c.cache.Get(c.key)
	if errors.Is(err, bigcache.ErrEntryNotFound) {
		FeaturedMisses.WithLabelValues(backendMemory).Inc()
		return nil, app.ErrCacheMiss
	}
	if err != nil {
		FeaturedErrors.WithLabelValues(backendMemory, "get").Inc()
		return nil, fmt.Errorf("%w: %w", app.ErrCacheUnavailable, err)
	}

	products, err := decodeSnapshot(b)
	if err != nil {
		FeaturedErrors.WithLabelValues(backendMemory, "get").Inc()
		return nil, fmt.Errorf("%w: %w", app.ErrCacheUnavailable, err)
	}

	FeaturedHits.WithLabelValues(backendMemory).Inc()
	return products, nil
}

func (c *MemoryFeaturedCache) SetFeatured(_ context.Context, products []domain.Product) error {
	b, err := encodeSnapshot(products)
	if err != nil {
		return err
	}
	if err := c.cache.Set(c.key, b); err != nil {
		FeaturedErrors.WithLabelValues(backendMemory, "set").Inc()
		return fmt.Errorf("%w: %w", app.ErrCacheUnavailable, err)
	}
	return nil
}

func (c *MemoryFeaturedCache) InvalidateFeatured(context.Context) error {
	err := c.cache.Delete(c.key)
	if err != nil && !errors.Is(err, bigcache.ErrEntryNotFound) {
		FeaturedErrors.WithLabelValues(backendMemory, "delete").Inc()
		return fmt.Errorf("%w: %w", app.ErrCacheUnavailable, err)
	}
	return nil
}

func (c *MemoryFeaturedCache) Close() error {
	return c.cache.Close()
}
