package adapter

import (
	"context"
	"errors"
	"testing"

	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/pkg/logger"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type repo struct {
	catalogapp.ProductRepo
	products map[uuid.UUID]domain.Product
	err      error
}

func (r repo) Get(_ context.Context, id uuid.UUID) (domain.Product, error) {
	if r.err != nil {
		return domain.Product{}, r.err
	}
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, catalogapp.ErrNotFound
	}
	return p, nil
}

func (r repo) GetMany(_ context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	var out []domain.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, r.err
}

func TestCatalogServiceReader(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()
	p := domain.Product{
		ID:       id,
		Name:     "Kettle",
		Category: "kitchen",
		Price:    domain.Money{Currency: "USD", Amount: decimal.RequireFromString("25")},
	}
	r := NewCatalogServiceReader(catalogapp.NewService(repo{products: map[uuid.UUID]domain.Product{id: p}}, nil, logger.Discard()))

	ok, err := r.Exists(ctx, id)
	require.NoError(t, err)
	require.True(t, ok)

	ok, err = r.Exists(ctx, uuid.New())
	require.NoError(t, err)
	require.False(t, ok)

	ok, err = r.Exists(ctx, uuid.Nil)
	require.NoError(t, err)
	require.False(t, ok)

	got, err := r.GetMany(ctx, []uuid.UUID{id, uuid.New()})
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, "Kettle", got[0].Name)
	require.Equal(t, "USD", got[0].Currency)
	require.True(t, decimal.NewFromInt(25).Equal(got[0].Price))
}

func TestCatalogServiceReaderFailure(t *testing.T) {
	boom := errors.New("boom")
	r := NewCatalogServiceReader(catalogapp.NewService(repo{err: boom}, nil, logger.Discard()))

	_, err := r.Exists(context.Background(), uuid.New())
	require.ErrorIs(t, err, boom)
}
