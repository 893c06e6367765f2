package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CartRepo loads and stores the cart embedded in a user record.
type CartRepo interface {
	// Load returns ErrOwnerNotFound when no user has the given id.
	Load(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error)
	// Save writes all lines only if the stored version still equals
	// cart.Version, returning the cart with its new version. A stale
	// version yields ErrVersionConflict and nothing is written.
	Save(ctx context.Context, cart domain.Cart) (domain.Cart, error)
}

type ProductReader interface {
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	// GetMany returns the products that still exist, in no particular order.
	GetMany(ctx context.Context, ids []uuid.UUID) ([]Product, error)
}

type EventPublisher interface {
	Publish(ctx context.Context, ev CartChanged) error
}

type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Image       string
	Category    string
	Currency    string
	Price       decimal.Decimal
	IsFeatured  bool
}
