package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
)

const (
	featuredFlight      = "featured"
	featuredFillTimeout = 5 * time.Second
)

// GetFeatured serves the featured snapshot from the cache, falling back to the
// store on a miss or cache failure. Concurrent misses share one store query,
// which runs detached from any single caller's cancellation.
//
// A fill only writes the cache if no refresh started while it was reading, so
// a slow miss can never put back a snapshot that a toggle already replaced.
func (s *Service) GetFeatured(ctx context.Context) ([]domain.Product, error) {
	products, err := s.cache.GetFeatured(ctx)
	if err == nil {
		return products, nil
	}
	if !errors.Is(err, ErrCacheMiss) {
		s.log.Warn("featured cache read failed", slog.Any("err", err))
	}

	v, err, _ := s.featured.Do(featuredFlight, func() (any, error) {
		fillCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), featuredFillTimeout)
		defer cancel()
		return s.fillFeatured(fillCtx)
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

func (s *Service) fillFeatured(ctx context.Context) ([]domain.Product, error) {
	s.fillMu.Lock()
	gen := s.generation
	s.fillMu.Unlock()

	products, err := s.repo.ListFeatured(ctx)
	if err != nil {
		return nil, err
	}

	s.fillMu.Lock()
	defer s.fillMu.Unlock()
	if gen != s.generation {
		s.log.Debug("featured fill superseded by refresh")
		return products, nil
	}
	if err := s.cache.SetFeatured(ctx, products); err != nil {
		s.log.Warn("featured cache write failed", slog.Any("err", err))
	}
	return products, nil
}

// ToggleFeatured flips the featured flag and then rebuilds the snapshot. A
// failed rebuild is logged and never fails the toggle.
func (s *Service) ToggleFeatured(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if id == uuid.Nil {
		return domain.Product{}, ErrInvalidInput
	}

	product, err := s.repo.ToggleFeatured(ctx, id)
	if err != nil {
		return domain.Product{}, err
	}

	s.refreshFeatured(ctx)
	return product, nil
}

// refreshFeatured rebuilds the snapshot after a featured-set write. Holding
// fillMu for the whole rebuild orders it against in-flight fills.
func (s *Service) refreshFeatured(ctx context.Context) {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()

	s.generation++
	s.featured.Forget(featuredFlight)

	products, err := s.repo.ListFeatured(ctx)
	if err != nil {
		s.log.Error("featured refresh: store read failed", slog.Any("err", err))
		s.invalidateFeatured(ctx)
		return
	}

	if err := s.cache.SetFeatured(ctx, products); err != nil {
		s.log.Error("featured refresh: cache write failed", slog.Any("err", err))
		s.invalidateFeatured(ctx)
	}
}

func (s *Service) invalidateFeatured(ctx context.Context) {
	if err := s.cache.InvalidateFeatured(ctx); err != nil {
		s.log.Warn("featured cache invalidate failed", slog.Any("err", err))
	}
}
