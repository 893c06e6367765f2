package domain

import (
	"errors"
	"fmt"
	"math"

	"github.com/google/uuid"
)

// MaxQuantity bounds a single line so quantities fit the 32-bit wire type.
const MaxQuantity = math.MaxInt32

var (
	ErrProductNotInCart = errors.New("product not in cart")
	ErrInvalidLines     = errors.New("invalid cart lines")
	ErrQuantityLimit    = errors.New("quantity limit exceeded")
)

// CartLine is one product in a cart. A line with quantity zero does not exist.
type CartLine struct {
	ProductRef uuid.UUID
	Quantity   int
}

// Lines keeps insertion order and holds at most one line per product.
type Lines []CartLine

// Cart is embedded in the owning user record. Version increases on every
// successful write and guards against lost updates.
type Cart struct {
	OwnerID uuid.UUID
	Lines   Lines
	Version int64
}

func (l Lines) index(p uuid.UUID) int {
	for i, line := range l {
		if line.ProductRef == p {
			return i
		}
	}
	return -1
}

func (l Lines) clone() Lines {
	out := make(Lines, len(l))
	copy(out, l)
	return out
}

func (l Lines) Quantity(p uuid.UUID) int {
	if i := l.index(p); i >= 0 {
		return l[i].Quantity
	}
	return 0
}

func (l Lines) TotalQuantity() int {
	n := 0
	for _, line := range l {
		n += line.Quantity
	}
	return n
}

func (l Lines) ProductRefs() []uuid.UUID {
	out := make([]uuid.UUID, 0, len(l))
	for _, line := range l {
		out = append(out, line.ProductRef)
	}
	return out
}

// Validate rejects duplicate product refs and quantities outside
// [1, MaxQuantity].
func (l Lines) Validate() error {
	seen := make(map[uuid.UUID]struct{}, len(l))
	for _, line := range l {
		if line.Quantity < 1 || line.Quantity > MaxQuantity {
			return fmt.Errorf("%w: quantity %d for %s", ErrInvalidLines, line.Quantity, line.ProductRef)
		}
		if _, dup := seen[line.ProductRef]; dup {
			return fmt.Errorf("%w: duplicate product %s", ErrInvalidLines, line.ProductRef)
		}
		seen[line.ProductRef] = struct{}{}
	}
	return nil
}

// Merge adds one unit of p, appending a new line when p is not present yet.
// Callers check CanAdd first; Merge itself does not cap.
func Merge(lines Lines, p uuid.UUID) Lines {
	out := lines.clone()
	if i := out.index(p); i >= 0 {
		out[i].Quantity++
		return out
	}
	return append(out, CartLine{ProductRef: p, Quantity: 1})
}

// CanAdd reports whether one more unit of p stays within MaxQuantity.
func (l Lines) CanAdd(p uuid.UUID) bool {
	return l.Quantity(p) < MaxQuantity
}

// SetQuantity replaces the quantity of p. q <= 0 removes the line and never
// fails; a positive q for an absent product returns ErrProductNotInCart and
// the input unchanged. q above MaxQuantity returns ErrQuantityLimit.
func SetQuantity(lines Lines, p uuid.UUID, q int) (Lines, error) {
	if q <= 0 {
		return Remove(lines, &p), nil
	}
	if q > MaxQuantity {
		return lines, ErrQuantityLimit
	}
	i := lines.index(p)
	if i < 0 {
		return lines, ErrProductNotInCart
	}
	out := lines.clone()
	out[i].Quantity = q
	return out, nil
}

// Remove drops the line for p, or every line when p is nil.
func Remove(lines Lines, p *uuid.UUID) Lines {
	if p == nil {
		return Lines{}
	}
	out := make(Lines, 0, len(lines))
	for _, line := range lines {
		if line.ProductRef != *p {
			out = append(out, line)
		}
	}
	return out
}
