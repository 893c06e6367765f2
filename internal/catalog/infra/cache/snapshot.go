package cache

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const featuredKey = "featured_products"

func keyFor(prefix string) string {
	if prefix == "" {
		return featuredKey
	}
	return prefix + ":" + featuredKey
}

type moneyJSON struct {
	Currency string          `json:"currency"`
	Amount   decimal.Decimal `json:"amount"`
}

type productJSON struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       moneyJSON `json:"price"`
	Image       string    `json:"image"`
	Category    string    `json:"category"`
	IsFeatured  bool      `json:"is_featured"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func encodeSnapshot(products []domain.Product) ([]byte, error) {
	out := make([]productJSON, 0, len(products))
	for _, p := range products {
		out = append(out, productJSON{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       moneyJSON{Currency: p.Price.Currency, Amount: p.Price.Amount},
			Image:       p.Image,
			Category:    p.Category,
			IsFeatured:  p.IsFeatured,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	return json.Marshal(out)
}

func decodeSnapshot(b []byte) ([]domain.Product, error) {
	var in []productJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return nil, fmt.Errorf("decode featured snapshot: %w", err)
	}

	out := make([]domain.Product, 0, len(in))
	for _, p := range in {
		out = append(out, domain.Product{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       domain.Money{Currency: p.Price.Currency, Amount: p.Price.Amount},
			Image:       p.Image,
			Category:    p.Category,
			IsFeatured:  p.IsFeatured,
			CreatedAt:   p.CreatedAt,
			UpdatedAt:   p.UpdatedAt,
		})
	}
	return out, nil
}
