package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Money struct {
	Currency string
	Amount   decimal.Decimal
}

type Product struct {
	ID          uuid.UUID
	Name        string
	Description string
	Price       Money
	Image       string
	Category    string
	IsFeatured  bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
