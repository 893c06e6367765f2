package app

import (
	"errors"
	"fmt"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrOwnerNotFound    = errors.New("cart owner not found")
	ErrProductNotFound  = errors.New("product not found")
	ErrVersionConflict  = errors.New("cart version conflict")
	ErrStoreUnavailable = errors.New("store unavailable")

	ErrProductNotInCart = domain.ErrProductNotInCart
	ErrQuantityLimit    = domain.ErrQuantityLimit
)

// storeErr tags infrastructure failures so callers can tell them apart from
// business outcomes.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrStoreUnavailable),
		errors.Is(err, ErrOwnerNotFound),
		errors.Is(err, ErrVersionConflict):
		return err
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
