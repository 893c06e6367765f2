package app

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/google/uuid"
)

// Service owns every cart mutation.
//
// Writes for one owner are serialized by an in-process lock and persisted with
// an optimistic version check; a conflict (another process wrote in between)
// reloads and reapplies the transition. RemoveFromCart and ClearCart are
// idempotent. AddToCart is not: every call adds one unit, so clients that
// retry should use UpdateQuantity with an explicit value instead.
type Service struct {
	repo     CartRepo
	products ProductReader
	events   *eventQueue
	log      *slog.Logger

	locks      *ownerLocks
	maxRetries int
	backoff    func() backoff.BackOff
	now        func() time.Time
}

func NewService(repo CartRepo, products ProductReader, events EventPublisher, log *slog.Logger, maxRetries int) *Service {
	if events == nil {
		events = NopPublisher{}
	}
	if log == nil {
		log = slog.Default()
	}
	if maxRetries <= 0 {
		maxRetries = 5
	}

	return &Service{
		repo:       repo,
		products:   products,
		events:     newEventQueue(events, log, eventQueueSize, publishTimeout),
		log:        log,
		locks:      newOwnerLocks(),
		maxRetries: maxRetries,
		backoff:    defaultBackOff,
		now:        time.Now,
	}
}

// Close stops event publishing once queued events are flushed or ctx ends.
// Cart writes made after Close still commit; their events are dropped.
func (s *Service) Close(ctx context.Context) error {
	return s.events.close(ctx)
}

func defaultBackOff() backoff.BackOff {
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 5 * time.Millisecond
	b.MaxInterval = 200 * time.Millisecond
	b.MaxElapsedTime = 0
	return b
}

func (s *Service) GetCart(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error) {
	if ownerID == uuid.Nil {
		return domain.Cart{}, ErrNotAuthenticated
	}
	return s.load(ctx, ownerID)
}

// AddToCart adds one unit of productID, creating the line when needed.
func (s *Service) AddToCart(ctx context.Context, ownerID, productID uuid.UUID) (domain.Cart, error) {
	if ownerID == uuid.Nil {
		return domain.Cart{}, ErrNotAuthenticated
	}

	ok, err := s.products.Exists(ctx, productID)
	if err != nil {
		return domain.Cart{}, storeErr(err)
	}
	if !ok {
		return domain.Cart{}, ErrProductNotFound
	}

	return s.mutate(ctx, ownerID, ActionAdd, &productID, func(lines domain.Lines) (domain.Lines, error) {
		if !lines.CanAdd(productID) {
			return nil, ErrQuantityLimit
		}
		return domain.Merge(lines, productID), nil
	})
}

// UpdateQuantity sets the quantity of a product already in the cart; q <= 0
// removes it and q above domain.MaxQuantity is rejected.
func (s *Service) UpdateQuantity(ctx context.Context, ownerID, productID uuid.UUID, q int) (domain.Cart, error) {
	if ownerID == uuid.Nil {
		return domain.Cart{}, ErrNotAuthenticated
	}

	action := ActionSetQuantity
	if q <= 0 {
		action = ActionRemove
	}
	return s.mutate(ctx, ownerID, action, &productID, func(lines domain.Lines) (domain.Lines, error) {
		return domain.SetQuantity(lines, productID, q)
	})
}

// ClearOrRemove removes productID, or empties the cart when productID is nil.
func (s *Service) ClearOrRemove(ctx context.Context, ownerID uuid.UUID, productID *uuid.UUID) (domain.Cart, error) {
	if ownerID == uuid.Nil {
		return domain.Cart{}, ErrNotAuthenticated
	}

	action := ActionRemove
	if productID == nil {
		action = ActionClear
	}
	return s.mutate(ctx, ownerID, action, productID, func(lines domain.Lines) (domain.Lines, error) {
		return domain.Remove(lines, productID), nil
	})
}

func (s *Service) load(ctx context.Context, ownerID uuid.UUID) (domain.Cart, error) {
	cart, err := s.repo.Load(ctx, ownerID)
	if errors.Is(err, ErrOwnerNotFound) {
		return domain.Cart{}, ErrNotAuthenticated
	}
	if err != nil {
		return domain.Cart{}, storeErr(err)
	}
	return cart, nil
}

// mutate applies transition under the owner lock and queues the change event
// once the write has committed. Publishing happens off the request path.
func (s *Service) mutate(
	ctx context.Context,
	ownerID uuid.UUID,
	action string,
	productID *uuid.UUID,
	transition func(domain.Lines) (domain.Lines, error),
) (domain.Cart, error) {
	unlock, err := s.locks.lock(ctx, ownerID)
	if err != nil {
		return domain.Cart{}, err
	}
	defer unlock()

	saved, err := s.commit(ctx, ownerID, transition)
	if err != nil {
		return domain.Cart{}, err
	}

	// enqueue never blocks; doing it under the lock keeps per-owner order.
	s.events.enqueue(CartChanged{
		OwnerID:    ownerID,
		Action:     action,
		ProductRef: productID,
		Version:    saved.Version,
		Lines:      saved.Lines,
		OccurredAt: s.now().UTC(),
	})

	return saved, nil
}

func (s *Service) commit(ctx context.Context, ownerID uuid.UUID, transition func(domain.Lines) (domain.Lines, error)) (domain.Cart, error) {
	var saved domain.Cart
	attempt := 0
	op := func() error {
		attempt++
		cart, err := s.load(ctx, ownerID)
		if err != nil {
			return backoff.Permanent(err)
		}

		lines, err := transition(cart.Lines)
		if err != nil {
			return backoff.Permanent(err)
		}
		cart.Lines = lines

		saved, err = s.repo.Save(ctx, cart)
		if errors.Is(err, ErrVersionConflict) {
			s.log.Debug("cart version conflict, retrying",
				slog.String("owner_id", ownerID.String()),
				slog.Int64("version", cart.Version),
				slog.Int("attempt", attempt))
			return err
		}
		if errors.Is(err, ErrOwnerNotFound) {
			return backoff.Permanent(ErrNotAuthenticated)
		}
		if err != nil {
			return backoff.Permanent(storeErr(err))
		}
		return nil
	}

	policy := backoff.WithContext(backoff.WithMaxRetries(s.backoff(), uint64(s.maxRetries)), ctx)
	if err := backoff.Retry(op, policy); err != nil {
		return domain.Cart{}, err
	}
	return saved, nil
}
