package app

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/singleflight"
)

var (
	ErrInvalidInput     = errors.New("invalid input")
	ErrNotFound         = errors.New("not found")
	ErrCacheMiss        = errors.New("cache miss")
	ErrCacheUnavailable = errors.New("cache unavailable")
)

const (
	defaultRecommended = 3
	maxRecommended     = 20
)

type Service struct {
	repo  ProductRepo
	cache FeaturedCache
	log   *slog.Logger

	featured singleflight.Group

	// fillMu guards generation, which every refresh bumps.
	fillMu     sync.Mutex
	generation uint64
}

func NewService(repo ProductRepo, cache FeaturedCache, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		repo:  repo,
		cache: cache,
		log:   log,
	}
}

type NewProduct struct {
	Name        string
	Description string
	Currency    string
	Amount      decimal.Decimal
	Image       string
	Category    string
	IsFeatured  bool
}

func (s *Service) CreateProduct(ctx context.Context, in NewProduct) (domain.Product, error) {
	name := strings.TrimSpace(in.Name)
	currency := strings.ToUpper(strings.TrimSpace(in.Currency))
	category := strings.ToLower(strings.TrimSpace(in.Category))

	if name == "" || currency == "" || category == "" || !in.Amount.IsPositive() {
		return domain.Product{}, ErrInvalidInput
	}

	p := domain.Product{
		Name:        name,
		Description: in.Description,
		Price: domain.Money{
			Currency: currency,
			Amount:   in.Amount,
		},
		Image:      in.Image,
		Category:   category,
		IsFeatured: in.IsFeatured,
	}

	product, err := s.repo.Create(ctx, p)
	if err != nil {
		return domain.Product{}, err
	}

	if product.IsFeatured {
		s.refreshFeatured(ctx)
	}

	return product, nil
}

func (s *Service) GetProduct(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	if id == uuid.Nil {
		return domain.Product{}, ErrInvalidInput
	}
	return s.repo.Get(ctx, id)
}

// GetProducts returns the subset of ids that exist.
func (s *Service) GetProducts(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}
	return s.repo.GetMany(ctx, ids)
}

func (s *Service) ListProducts(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	return s.repo.List(ctx, query, limit, cursor)
}

func (s *Service) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		return nil, ErrInvalidInput
	}
	return s.repo.ListByCategory(ctx, category)
}

// Recommended returns a random sample of n products.
func (s *Service) Recommended(ctx context.Context, n int) ([]domain.Product, error) {
	if n <= 0 {
		n = defaultRecommended
	}
	if n > maxRecommended {
		n = maxRecommended
	}
	return s.repo.Sample(ctx, n)
}

// DeleteProduct removes a product. Carts that still reference it are left
// alone; the cart listing skips dangling lines.
func (s *Service) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidInput
	}

	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}

	if deleted.IsFeatured {
		s.refreshFeatured(ctx)
	}
	return nil
}
