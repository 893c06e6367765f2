package app

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// ownerLocks serializes cart writes per owner inside one process. Entries are
// dropped once nobody holds or waits for them.
type ownerLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*ownerLock
}

type ownerLock struct {
	ch   chan struct{}
	refs int
}

func newOwnerLocks() *ownerLocks {
	return &ownerLocks{locks: make(map[uuid.UUID]*ownerLock)}
}

func (l *ownerLocks) lock(ctx context.Context, owner uuid.UUID) (func(), error) {
	l.mu.Lock()
	ol, ok := l.locks[owner]
	if !ok {
		ol = &ownerLock{ch: make(chan struct{}, 1)}
		l.locks[owner] = ol
	}
	ol.refs++
	l.mu.Unlock()

	select {
	case ol.ch <- struct{}{}:
	case <-ctx.Done():
		l.release(owner, ol)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			<-ol.ch
			l.release(owner, ol)
		})
	}, nil
}

func (l *ownerLocks) release(owner uuid.UUID, ol *ownerLock) {
	l.mu.Lock()
	ol.refs--
	if ol.refs == 0 {
		delete(l.locks, owner)
	}
	l.mu.Unlock()
}

func (l *ownerLocks) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.locks)
}
