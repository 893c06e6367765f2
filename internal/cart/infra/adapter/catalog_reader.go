package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/google/uuid"
)

// CatalogServiceReader answers the cart's product lookups from the catalog
// service running in the same process.
type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	_, err := r.svc.GetProduct(ctx, id)
	if errors.Is(err, catalogapp.ErrNotFound) || errors.Is(err, catalogapp.ErrInvalidInput) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *CatalogServiceReader) GetMany(ctx context.Context, ids []uuid.UUID) ([]cartapp.Product, error) {
	products, err := r.svc.GetProducts(ctx, ids)
	if err != nil {
		return nil, err
	}

	out := make([]cartapp.Product, 0, len(products))
	for _, p := range products {
		out = append(out, cartapp.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Image:       p.Image,
			Category:    p.Category,
			Currency:    p.Price.Currency,
			Price:       p.Price.Amount,
			IsFeatured:  p.IsFeatured,
		})
	}
	return out, nil
}
