package postgres

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/google/uuid"
)

// userModel is the slice of the users table the cart needs. The cart lives in
// cart_items as a JSON array ordered by insertion.
type userModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"size:200;not null"`
	Email       string    `gorm:"size:320;uniqueIndex;not null"`
	Role        string    `gorm:"size:32;not null;default:customer"`
	CartItems   cartItems `gorm:"type:jsonb;not null;default:'[]'"`
	CartVersion int64     `gorm:"not null;default:0"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (userModel) TableName() string { return "users" }

type cartItem struct {
	ProductRef uuid.UUID `json:"product_ref"`
	Quantity   int       `json:"quantity"`
}

type cartItems []cartItem

func (c cartItems) Value() (driver.Value, error) {
	if c == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]cartItem(c))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (c *cartItems) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*c = cartItems{}
		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("cart_items: unsupported type %T", src)
	}

	var items []cartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return fmt.Errorf("cart_items: %w", err)
	}
	*c = items
	return nil
}

func toItems(lines domain.Lines) cartItems {
	out := make(cartItems, 0, len(lines))
	for _, l := range lines {
		out = append(out, cartItem{ProductRef: l.ProductRef, Quantity: l.Quantity})
	}
	return out
}

func toLines(items cartItems) domain.Lines {
	out := make(domain.Lines, 0, len(items))
	for _, it := range items {
		out = append(out, domain.CartLine{ProductRef: it.ProductRef, Quantity: it.Quantity})
	}
	return out
}
