package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	checkoutapp "github.com/dwikikusuma/storefront/internal/checkout/app"
	"github.com/google/uuid"
)

type CartServiceReader struct {
	svc *cartapp.Service
}

func NewCartServiceReader(svc *cartapp.Service) *CartServiceReader {
	return &CartServiceReader{svc: svc}
}

func (r *CartServiceReader) GetCart(ctx context.Context, userID uuid.UUID) ([]checkoutapp.CartItem, error) {
	cart, err := r.svc.GetCart(ctx, userID)
	if errors.Is(err, cartapp.ErrNotAuthenticated) {
		return nil, checkoutapp.ErrNotAuthenticated
	}
	if err != nil {
		return nil, err
	}

	items := make([]checkoutapp.CartItem, 0, len(cart.Lines))
	for _, l := range cart.Lines {
		items = append(items, checkoutapp.CartItem{
			ProductID: l.ProductRef,
			Quantity:  int64(l.Quantity),
		})
	}
	return items, nil
}
