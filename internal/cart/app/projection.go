package app

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
)

// CartProduct is a catalog product joined with the quantity held in the cart.
type CartProduct struct {
	Product
	Quantity int
}

// ListCartWithProducts joins the cart with current catalog data in one batch
// lookup. Output follows cart line order; lines whose product no longer
// exists are skipped.
func (s *Service) ListCartWithProducts(ctx context.Context, ownerID uuid.UUID) ([]CartProduct, error) {
	if ownerID == uuid.Nil {
		return nil, ErrNotAuthenticated
	}

	cart, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if len(cart.Lines) == 0 {
		return []CartProduct{}, nil
	}

	products, err := s.products.GetMany(ctx, cart.Lines.ProductRefs())
	if err != nil {
		return nil, storeErr(err)
	}

	byID := make(map[uuid.UUID]Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}

	out := make([]CartProduct, 0, len(cart.Lines))
	for _, line := range cart.Lines {
		p, ok := byID[line.ProductRef]
		if !ok {
			s.log.Debug("dropping dangling cart line",
				slog.String("owner_id", ownerID.String()),
				slog.String("product_id", line.ProductRef.String()))
			continue
		}
		out = append(out, CartProduct{Product: p, Quantity: line.Quantity})
	}

	return out, nil
}
