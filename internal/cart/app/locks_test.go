package app

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestOwnerLocks(t *testing.T) {
	l := newOwnerLocks()
	owner := uuid.New()

	unlock, err := l.lock(context.Background(), owner)
	require.NoError(t, err)

	t.Run("waiter gives up with its context", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
		defer cancel()

		_, err := l.lock(ctx, owner)
		require.ErrorIs(t, err, context.DeadlineExceeded)
	})

	t.Run("other owners are not blocked", func(t *testing.T) {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()

		other, err := l.lock(ctx, uuid.New())
		require.NoError(t, err)
		other()
	})

	acquired := make(chan struct{})
	go func() {
		u, err := l.lock(context.Background(), owner)
		if err == nil {
			u()
		}
		close(acquired)
	}()

	unlock()
	unlock()

	select {
	case <-acquired:
	case <-time.After(2 * time.Second):
		t.Fatal("waiter never acquired the lock")
	}
	require.Zero(t, l.size())
}
