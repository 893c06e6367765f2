package postgres

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/app"
	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type productModel struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Name        string          `gorm:"size:200;not null"`
	Description string          `gorm:"type:text;not null;default:''"`
	PriceAmount decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Currency    string          `gorm:"size:3;not null"`
	Image       string          `gorm:"type:text;not null;default:''"`
	Category    string          `gorm:"size:100;not null;index"`
	IsFeatured  bool            `gorm:"not null;default:false;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (productModel) TableName() string { return "products" }

type ProductRepo struct {
	db *gorm.DB
}

func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

func (r *ProductRepo) AutoMigrate(ctx context.Context) error {
	return r.db.WithContext(ctx).AutoMigrate(&productModel{})
}

func (r *ProductRepo) Create(ctx context.Context, p domain.Product) (domain.Product, error) {
	row := fromDomain(p)
	if row.ID == uuid.Nil {
		row.ID = uuid.New()
	}

	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return domain.Product{}, err
	}
	return toDomain(row), nil
}

func (r *ProductRepo) Get(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	var row productModel
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.Product{}, app.ErrNotFound
	}
	if err != nil {
		return domain.Product{}, err
	}
	return toDomain(row), nil
}

func (r *ProductRepo) GetMany(ctx context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	if len(ids) == 0 {
		return []domain.Product{}, nil
	}

	var rows []productModel
	if err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&rows).Error; err != nil {
		return nil, err
	}
	return toDomainList(rows), nil
}

// List pages by id. The returned cursor is empty on the last page.
func (r *ProductRepo) List(ctx context.Context, query string, limit int, cursor string) ([]domain.Product, string, error) {
	q := r.db.WithContext(ctx).Model(&productModel{})

	if c := strings.TrimSpace(cursor); c != "" {
		cur, err := uuid.Parse(c)
		if err != nil {
			return nil, "", app.ErrInvalidInput
		}
		q = q.Where("id > ?", cur)
	}
	if s := strings.TrimSpace(query); s != "" {
		q = q.Where("name ILIKE ?", "%"+s+"%")
	}

	var rows []productModel
	if err := q.Order("id").Limit(limit).Find(&rows).Error; err != nil {
		return nil, "", err
	}

	var nextCursor string
	if len(rows) == limit && limit > 0 {
		nextCursor = rows[len(rows)-1].ID.String()
	}

	return toDomainList(rows), nextCursor, nil
}

func (r *ProductRepo) ListByCategory(ctx context.Context, category string) ([]domain.Product, error) {
	var rows []productModel
	err := r.db.WithContext(ctx).
		Where("category = ?", category).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(rows), nil
}

func (r *ProductRepo) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	var rows []productModel
	err := r.db.WithContext(ctx).
		Where("is_featured = ?", true).
		Order("created_at, id").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(rows), nil
}

func (r *ProductRepo) Sample(ctx context.Context, n int) ([]domain.Product, error) {
	var rows []productModel
	err := r.db.WithContext(ctx).
		Order("random()").
		Limit(n).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toDomainList(rows), nil
}

func (r *ProductRepo) ToggleFeatured(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	var row productModel
	res := r.db.WithContext(ctx).
		Model(&row).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_featured": gorm.Expr("NOT is_featured"),
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return domain.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Product{}, app.ErrNotFound
	}
	return toDomain(row), nil
}

func (r *ProductRepo) Delete(ctx context.Context, id uuid.UUID) (domain.Product, error) {
	var row productModel
	res := r.db.WithContext(ctx).
		Clauses(clause.Returning{}).
		Where("id = ?", id).
		Delete(&row)
	if res.Error != nil {
		return domain.Product{}, res.Error
	}
	if res.RowsAffected == 0 {
		return domain.Product{}, app.ErrNotFound
	}
	return toDomain(row), nil
}

func fromDomain(p domain.Product) productModel {
	return productModel{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		PriceAmount: p.Price.Amount,
		Currency:    p.Price.Currency,
		Image:       p.Image,
		Category:    p.Category,
		IsFeatured:  p.IsFeatured,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toDomain(row productModel) domain.Product {
	return domain.Product{
		ID:          row.ID,
		Name:        row.Name,
		Description: row.Description,
		Price: domain.Money{
			Currency: row.Currency,
			Amount:   row.PriceAmount,
		},
		Image:      row.Image,
		Category:   row.Category,
		IsFeatured: row.IsFeatured,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

func toDomainList(rows []productModel) []domain.Product {
	out := make([]domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomain(row))
	}
	return out
}
