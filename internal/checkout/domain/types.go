package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Money struct {
	Currency string
	Amount   decimal.Decimal
}

type QuoteLine struct {
	ProductID uuid.UUID
	Name      string
	Quantity  int64
	UnitPrice Money
	LineTotal Money
}

type Quote struct {
	Lines []QuoteLine
	Total Money
}
