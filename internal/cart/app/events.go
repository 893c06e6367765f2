package app

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/google/uuid"
)

const (
	ActionAdd         = "add"
	ActionSetQuantity = "set_quantity"
	ActionRemove      = "remove"
	ActionClear       = "clear"
)

// CartChanged describes a committed cart write.
type CartChanged struct {
	OwnerID    uuid.UUID
	Action     string
	ProductRef *uuid.UUID
	Version    int64
	Lines      domain.Lines
	OccurredAt time.Time
}

type NopPublisher struct{}

func (NopPublisher) Publish(context.Context, CartChanged) error { return nil }

const (
	eventQueueSize = 1024
	publishTimeout = 5 * time.Second
)

// eventQueue hands committed changes to the publisher on a single background
// goroutine. Enqueueing never blocks: a full or closed queue drops the event
// with a warning. Events leave in the order they were enqueued.
type eventQueue struct {
	pub     EventPublisher
	log     *slog.Logger
	timeout time.Duration

	mu     sync.RWMutex
	closed bool
	ch     chan CartChanged
	done   chan struct{}
}

func newEventQueue(pub EventPublisher, log *slog.Logger, size int, timeout time.Duration) *eventQueue {
	q := &eventQueue{
		pub:     pub,
		log:     log,
		timeout: timeout,
		ch:      make(chan CartChanged, size),
		done:    make(chan struct{}),
	}
	go q.run()
	return q
}

func (q *eventQueue) enqueue(ev CartChanged) {
	q.mu.RLock()
	defer q.mu.RUnlock()

	if q.closed {
		q.drop(ev, "queue closed")
		return
	}
	select {
	case q.ch <- ev:
	default:
		q.drop(ev, "queue full")
	}
}

func (q *eventQueue) run() {
	defer close(q.done)
	for ev := range q.ch {
		q.publish(ev)
	}
}

func (q *eventQueue) publish(ev CartChanged) {
	ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
	defer cancel()

	if err := q.pub.Publish(ctx, ev); err != nil {
		q.log.Warn("publish cart event failed",
			slog.String("owner_id", ev.OwnerID.String()),
			slog.String("action", ev.Action),
			slog.Int64("version", ev.Version),
			slog.Any("err", err))
	}
}

func (q *eventQueue) drop(ev CartChanged, reason string) {
	q.log.Warn("cart event dropped",
		slog.String("reason", reason),
		slog.String("owner_id", ev.OwnerID.String()),
		slog.Int64("version", ev.Version))
}

// close stops intake and waits for queued events to drain or ctx to end.
// It is safe to call more than once.
func (q *eventQueue) close(ctx context.Context) error {
	q.mu.Lock()
	if !q.closed {
		q.closed = true
		close(q.ch)
	}
	q.mu.Unlock()

	select {
	case <-q.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
