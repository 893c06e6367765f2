package app

import (
	"context"
	"sync"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
)

// memRepo mimics the versioned users.cart_items column.
type memRepo struct {
	mu    sync.Mutex
	carts map[uuid.UUID]domain.Cart
	saves int

	loadErr error
	saveErr error
	// beforeSave runs without the repo lock, so it may write concurrently.
	beforeSave func(r *memRepo, c domain.Cart)
}

func newMemRepo(owners ...uuid.UUID) *memRepo {
	r := &memRepo{carts: make(map[uuid.UUID]domain.Cart)}
	for _, id := range owners {
		r.carts[id] = domain.Cart{OwnerID: id, Lines: domain.Lines{}}
	}
	return r
}

func (r *memRepo) Load(_ context.Context, ownerID uuid.UUID) (domain.Cart, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.loadErr != nil {
		return domain.Cart{}, r.loadErr
	}
	c, ok := r.carts[ownerID]
	if !ok {
		return domain.Cart{}, ErrOwnerNotFound
	}
	c.Lines = append(domain.Lines{}, c.Lines...)
	return c, nil
}

func (r *memRepo) Save(_ context.Context, c domain.Cart) (domain.Cart, error) {
	if r.beforeSave != nil {
		r.beforeSave(r, c)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.saveErr != nil {
		return domain.Cart{}, r.saveErr
	}
	cur, ok := r.carts[c.OwnerID]
	if !ok {
		return domain.Cart{}, ErrOwnerNotFound
	}
	if cur.Version != c.Version {
		return domain.Cart{}, ErrVersionConflict
	}

	c.Version++
	c.Lines = append(domain.Lines{}, c.Lines...)
	r.carts[c.OwnerID] = c
	r.saves++
	return c, nil
}

// writeBehind applies fn as if another process had committed it.
func (r *memRepo) writeBehind(owner uuid.UUID, fn func(domain.Lines) domain.Lines) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c := r.carts[owner]
	c.Lines = fn(c.Lines)
	c.Version++
	r.carts[owner] = c
}

func (r *memRepo) saveCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saves
}

func (r *memRepo) stored(owner uuid.UUID) domain.Cart {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.carts[owner]
}

type staticProducts map[uuid.UUID]Product

func (p staticProducts) Exists(_ context.Context, id uuid.UUID) (bool, error) {
	_, ok := p[id]
	return ok, nil
}

func (p staticProducts) GetMany(_ context.Context, ids []uuid.UUID) ([]Product, error) {
	out := make([]Product, 0, len(ids))
	for _, id := range ids {
		if prod, ok := p[id]; ok {
			out = append(out, prod)
		}
	}
	return out, nil
}

type productReaderMock struct {
	mock.Mock
}

func (m *productReaderMock) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *productReaderMock) GetMany(ctx context.Context, ids []uuid.UUID) ([]Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]Product)
	return products, args.Error(1)
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []CartChanged
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, ev CartChanged) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, ev)
	return p.err
}

func (p *recordingPublisher) all() []CartChanged {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]CartChanged(nil), p.events...)
}
