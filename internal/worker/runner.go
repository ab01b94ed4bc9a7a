package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// Loop runs tick every interval until Stop. A tick that overruns the interval delays the
// next one rather than overlapping it.
type Loop struct {
	name     string
	interval time.Duration
	tick     func(ctx context.Context)
	logger   *slog.Logger

	cancel context.CancelFunc
	wg     sync.WaitGroup
}

func NewLoop(name string, interval time.Duration, tick func(ctx context.Context), logger *slog.Logger) *Loop {
	return &Loop{
		name:     name,
		interval: interval,
		tick:     tick,
		logger:   logger.With("worker", name),
	}
}

func (l *Loop) Start() {
	ctx, cancel := context.WithCancel(context.Background())
	l.cancel = cancel

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		ticker := time.NewTicker(l.interval)
		defer ticker.Stop()

		l.logger.Info("worker started", "interval", l.interval)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.runTick(ctx)
			}
		}
	}()
}

func (l *Loop) runTick(ctx context.Context) {
	defer func() {
		if r := recover(); r != nil {
			l.logger.Error("worker tick panicked", "panic", r)
		}
	}()
	l.tick(ctx)
}

// Stop cancels the running tick and waits for it, bounded by ctx.
func (l *Loop) Stop(ctx context.Context) error {
	if l.cancel == nil {
		return nil
	}
	l.cancel()

	done := make(chan struct{})
	go func() {
		l.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		l.logger.Info("worker stopped")
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
