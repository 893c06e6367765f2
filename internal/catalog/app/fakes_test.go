package app

import (
	"context"
	"errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/google/uuid"
)

type fakeRepo struct {
	mu       sync.Mutex
	products map[uuid.UUID]domain.Product
	order    []uuid.UUID

	featuredErr   error
	featuredCalls atomic.Int32

	// afterFeaturedRead runs once, after the next ListFeatured has read the set.
	afterFeaturedRead func()
}

func newFakeRepo(products ...domain.Product) *fakeRepo {
	r := &fakeRepo{products: make(map[uuid.UUID]domain.Product)}
	for _, p := range products {
		r.products[p.ID] = p
		r.order = append(r.order, p.ID)
	}
	return r
}

func (r *fakeRepo) Create(_ context.Context, p domain.Product) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p.ID = uuid.New()
	r.products[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *fakeRepo) Get(_ context.Context, id uuid.UUID) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return p, nil
}

func (r *fakeRepo) GetMany(_ context.Context, ids []uuid.UUID) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []domain.Product
	for _, id := range ids {
		if p, ok := r.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (r *fakeRepo) List(_ context.Context, _ string, limit int, _ string) ([]domain.Product, string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.ordered(func(domain.Product) bool { return true })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, "", nil
}

func (r *fakeRepo) ListByCategory(_ context.Context, category string) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ordered(func(p domain.Product) bool { return p.Category == category }), nil
}

func (r *fakeRepo) ListFeatured(ctx context.Context) ([]domain.Product, error) {
	r.featuredCalls.Add(1)
	r.mu.Lock()
	if r.featuredErr != nil {
		r.mu.Unlock()
		return nil, r.featuredErr
	}
	out := r.ordered(func(p domain.Product) bool { return p.IsFeatured })
	hook := r.afterFeaturedRead
	r.afterFeaturedRead = nil
	r.mu.Unlock()

	if hook != nil {
		hook()
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *fakeRepo) Sample(_ context.Context, n int) ([]domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.ordered(func(domain.Product) bool { return true })
	if len(out) > n {
		out = out[:n]
	}
	return out, nil
}

func (r *fakeRepo) ToggleFeatured(_ context.Context, id uuid.UUID) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	p.IsFeatured = !p.IsFeatured
	r.products[id] = p
	return p, nil
}

func (r *fakeRepo) Delete(_ context.Context, id uuid.UUID) (domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	p, ok := r.products[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	delete(r.products, id)
	return p, nil
}

func (r *fakeRepo) ordered(keep func(domain.Product) bool) []domain.Product {
	out := []domain.Product{}
	for _, id := range r.order {
		if p, ok := r.products[id]; ok && keep(p) {
			out = append(out, p)
		}
	}
	return out
}

// mapCache is a FeaturedCache with switchable failures.
type mapCache struct {
	mu       sync.Mutex
	snapshot []domain.Product
	present  bool

	getErr, setErr, delErr error
	invalidations          int
}

func (c *mapCache) GetFeatured(context.Context) ([]domain.Product, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.getErr != nil {
		return nil, c.getErr
	}
	if !c.present {
		return nil, ErrCacheMiss
	}
	return append([]domain.Product(nil), c.snapshot...), nil
}

func (c *mapCache) SetFeatured(_ context.Context, products []domain.Product) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.setErr != nil {
		return c.setErr
	}
	c.snapshot = append([]domain.Product(nil), products...)
	c.present = true
	return nil
}

func (c *mapCache) InvalidateFeatured(context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.invalidations++
	if c.delErr != nil {
		return c.delErr
	}
	c.snapshot, c.present = nil, false
	return nil
}

func ids(products []domain.Product) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].String() < out[j].String() })
	return out
}

var errDown = errors.New("connection refused")
