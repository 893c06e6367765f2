package shutdown

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"
)

// WithSignals returns a context cancelled on SIGINT or SIGTERM.
func WithSignals(parent context.Context, log *slog.Logger) (context.Context, context.CancelFunc) {
	return notify(parent, log, syscall.SIGINT, syscall.SIGTERM)
}

func notify(parent context.Context, log *slog.Logger, sigs ...os.Signal) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, sigs...)

	go func() {
		defer signal.Stop(ch)
		select {
		case <-ctx.Done():
			return
		case sig := <-ch:
			log.Info("signal received", slog.String("signal", sig.String()))
			cancel()
		}
	}()

	return ctx, cancel
}

// Wait runs stop and gives it until timeout to return; force runs after that.
func Wait(timeout time.Duration, stop, force func()) bool {
	done := make(chan struct{})
	go func() {
		stop()
		close(done)
	}()

	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case <-done:
		return true
	case <-t.C:
		force()
		return false
	}
}
