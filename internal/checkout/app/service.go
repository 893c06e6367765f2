package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/checkout/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

type CartReader interface {
	// GetCart returns ErrNotAuthenticated for unknown owners.
	GetCart(ctx context.Context, userID uuid.UUID) ([]CartItem, error)
}

type CartItem struct {
	ProductID uuid.UUID
	Quantity  int64
}

type CatalogReader interface {
	// GetProduct returns ErrProductNotFound for deleted products.
	GetProduct(ctx context.Context, productID uuid.UUID) (Product, error)
}

type Product struct {
	ID       uuid.UUID
	Name     string
	Currency string
	Amount   decimal.Decimal
}

type Service struct {
	Cart    CartReader
	Catalog CatalogReader

	maxConcurrent int
}

func NewService(cart CartReader, catalog CatalogReader, maxConcurrent int) *Service {
	if maxConcurrent <= 0 {
		maxConcurrent = 10
	}

	return &Service{
		Cart:          cart,
		Catalog:       catalog,
		maxConcurrent: maxConcurrent,
	}
}

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrEmptyCart        = errors.New("cart is empty")
	ErrProductNotFound  = errors.New("product not found")
	ErrMixedCurrency    = errors.New("cart mixes currencies")
)

// Quote prices every cart line against the current catalog. Lines whose
// product was deleted are left out of the quote.
func (s *Service) Quote(ctx context.Context, userID uuid.UUID) (domain.Quote, error) {
	items, err := s.Cart.GetCart(ctx, userID)
	if err != nil {
		return domain.Quote{}, err
	}

	if len(items) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	lines := make([]*domain.QuoteLine, len(items))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.maxConcurrent)

	for idx := range items {
		g.Go(func() error {
			it := items[idx]
			if it.Quantity <= 0 {
				return fmt.Errorf("quantity must be greater than zero: %d", it.Quantity)
			}

			product, err := s.Catalog.GetProduct(gctx, it.ProductID)
			if errors.Is(err, ErrProductNotFound) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get product %s: %w", it.ProductID, err)
			}

			lineTotal := product.Amount.Mul(decimal.NewFromInt(it.Quantity))
			lines[idx] = &domain.QuoteLine{
				ProductID: product.ID,
				Name:      product.Name,
				Quantity:  it.Quantity,
				UnitPrice: domain.Money{
					Currency: product.Currency,
					Amount:   product.Amount,
				},
				LineTotal: domain.Money{
					Currency: product.Currency,
					Amount:   lineTotal,
				},
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return domain.Quote{}, err
	}

	quote := domain.Quote{Lines: make([]domain.QuoteLine, 0, len(lines))}
	total := decimal.Zero
	for _, line := range lines {
		if line == nil {
			continue
		}
		if len(quote.Lines) > 0 && line.LineTotal.Currency != quote.Lines[0].LineTotal.Currency {
			return domain.Quote{}, ErrMixedCurrency
		}
		quote.Lines = append(quote.Lines, *line)
		total = total.Add(line.LineTotal.Amount)
	}

	if len(quote.Lines) == 0 {
		return domain.Quote{}, ErrEmptyCart
	}

	quote.Total = domain.Money{
		Currency: quote.Lines[0].LineTotal.Currency,
		Amount:   total,
	}
	return quote, nil
}
