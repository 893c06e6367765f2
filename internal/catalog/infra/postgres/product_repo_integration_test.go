//go:build integration

package postgres

import (
	"context"
	"testing"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/dwikikusuma/storefront/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type ProductRepoSuite struct {
	suite.Suite
	repo *ProductRepo
	ctx  context.Context
}

func TestProductRepoSuite(t *testing.T) {
	suite.Run(t, new(ProductRepoSuite))
}

func (s *ProductRepoSuite) SetupSuite() {
	s.ctx = context.Background()
	s.repo = NewProductRepo(testutil.Postgres(s.T()))
	s.Require().NoError(s.repo.AutoMigrate(s.ctx))
}

func (s *ProductRepoSuite) SetupTest() {
	s.Require().NoError(s.repo.db.Exec("TRUNCATE products").Error)
}

func (s *ProductRepoSuite) create(name, category string, featured bool) domain.Product {
	p, err := s.repo.Create(s.ctx, domain.Product{
		Name:       name,
		Price:      domain.Money{Currency: "USD", Amount: decimal.RequireFromString("12.50")},
		Category:   category,
		IsFeatured: featured,
	})
	s.Require().NoError(err)
	return p
}

func (s *ProductRepoSuite) TestCreateGet() {
	p := s.create("Lamp", "home", false)

	got, err := s.repo.Get(s.ctx, p.ID)
	s.Require().NoError(err)
	s.Equal("Lamp", got.Name)
	s.True(decimal.RequireFromString("12.5").Equal(got.Price.Amount))

	_, err = s.repo.Get(s.ctx, uuid.New())
	s.ErrorIs(err, app.ErrNotFound)
}

func (s *ProductRepoSuite) TestGetManySkipsMissing() {
	a := s.create("A", "home", false)
	b := s.create("B", "home", false)

	got, err := s.repo.GetMany(s.ctx, []uuid.UUID{a.ID, uuid.New(), b.ID})
	s.Require().NoError(err)
	s.Len(got, 2)
}

func (s *ProductRepoSuite) TestListPaginates() {
	for i := 0; i < 5; i++ {
		s.create("Item", "misc", false)
	}

	page, next, err := s.repo.List(s.ctx, "", 3, "")
	s.Require().NoError(err)
	s.Len(page, 3)
	s.NotEmpty(next)

	page, next, err = s.repo.List(s.ctx, "", 3, next)
	s.Require().NoError(err)
	s.Len(page, 2)
	s.Empty(next)

	_, _, err = s.repo.List(s.ctx, "", 3, "bogus")
	s.ErrorIs(err, app.ErrInvalidInput)
}

func (s *ProductRepoSuite) TestToggleAndListFeatured() {
	p := s.create("Chair", "home", false)
	s.create("Sofa", "home", true)

	toggled, err := s.repo.ToggleFeatured(s.ctx, p.ID)
	s.Require().NoError(err)
	s.True(toggled.IsFeatured)
	s.Equal("Chair", toggled.Name)

	featured, err := s.repo.ListFeatured(s.ctx)
	s.Require().NoError(err)
	s.Len(featured, 2)

	_, err = s.repo.ToggleFeatured(s.ctx, uuid.New())
	s.ErrorIs(err, app.ErrNotFound)
}

func (s *ProductRepoSuite) TestCategorySampleDelete() {
	a := s.create("Boot", "shoes", true)
	s.create("Bag", "bags", false)

	shoes, err := s.repo.ListByCategory(s.ctx, "shoes")
	s.Require().NoError(err)
	s.Len(shoes, 1)

	sample, err := s.repo.Sample(s.ctx, 3)
	s.Require().NoError(err)
	s.Len(sample, 2)

	deleted, err := s.repo.Delete(s.ctx, a.ID)
	s.Require().NoError(err)
	s.True(deleted.IsFeatured)

	_, err = s.repo.Delete(s.ctx, a.ID)
	s.ErrorIs(err, app.ErrNotFound)
}
