package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CartRepo struct {
	db *gorm.DB
}

func NewCartRepo(db *gorm.DB) *CartRepo {
	return &CartRepo{db: db}
}

func (r *CartRepo) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&userModel{})
}

func (r *CartRepo) Load(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error) {
	var m userModel
	err := r.db.WithContext(ctx).
		Select("id", "cart_items", "cart_version").
		Where("id = ?", ownerID).
		First(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Cart{}, app.ErrOwnerNotFound
	}
	if err != nil {
		return domain.Cart{}, fmt.Errorf("load cart %s: %w", ownerID, err)
	}

	return domain.Cart{
		OwnerID: m.ID,
		Lines:   toLines(m.CartItems),
		Version: m.CartVersion,
	}, nil
}

// Save replaces the whole line sequence and bumps the version in a single
// conditional UPDATE.
func (r *CartRepo) Save(ctx context.Context, cart domain.Cart) (domain.Cart, error) {
	if err := cart.Lines.Validate(); err != nil {
		return domain.Cart{}, err
	}

	res := r.db.WithContext(ctx).
		Model(&userModel{}).
		Where("id = ? AND cart_version = ?", cart.OwnerID, cart.Version).
		Updates(map[string]any{
			"cart_items":   toItems(cart.Lines),
			"cart_version": gorm.Expr("cart_version + 1"),
			"updated_at":   time.Now().UTC(),
		})
	if res.Error != nil {
		return domain.Cart{}, fmt.Errorf("save cart %s: %w", cart.OwnerID, res.Error)
	}

	if res.RowsAffected == 0 {
		var n int64
		if err := r.db.WithContext(ctx).Model(&userModel{}).Where("id = ?", cart.OwnerID).Count(&n).Error; err != nil {
			return domain.Cart{}, fmt.Errorf("save cart %s: %w", cart.OwnerID, err)
		}
		if n == 0 {
			return domain.Cart{}, app.ErrOwnerNotFound
		}
		return domain.Cart{}, app.ErrVersionConflict
	}

	cart.Version++
	return cart, nil
}

// CreateOwner inserts a user with an empty cart. Account management lives
// elsewhere; this exists for seeding and tests.
func (r *CartRepo) CreateOwner(ctx context.Context, id uuid.UUID, name, email string) error {
	return r.db.WithContext(ctx).Create(&userModel{
		ID:        id,
		Name:      name,
		Email:     email,
		Role:      "customer",
		CartItems: cartItems{},
	}).Error
}
