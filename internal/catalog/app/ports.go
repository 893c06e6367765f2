package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
)

type ProductRepo interface {
	Create(ctx context.Context, p domain.Product) (domain.Product, error)
	Get(ctx context.Context, id uuid.UUID) (domain.Product, error)
	GetMany(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error)
	List(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error)
	ListByCategory(ctx context.Context, category string) ([]domain.Product, error)
	ListFeatured(ctx context.Context) ([]domain.Product, error)
	Sample(ctx context.Context, n int) ([]domain.Product, error)
	// ToggleFeatured flips is_featured atomically and returns the new row.
	ToggleFeatured(ctx context.Context, id uuid.UUID) (domain.Product, error)
	// Delete returns the removed row.
	Delete(ctx context.Context, id uuid.UUID) (domain.Product, error)
}

// FeaturedCache holds the serialized featured-products snapshot.
type FeaturedCache interface {
	// GetFeatured returns ErrCacheMiss when no snapshot is stored.
	GetFeatured(ctx context.Context) ([]domain.Product, error)
	SetFeatured(ctx context.Context, products []domain.Product) error
	InvalidateFeatured(ctx context.Context) error
}
