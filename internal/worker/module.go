package worker

import (
	"context"
	"log/slog"

	"tourpay/internal/pkg/config"
	"tourpay/internal/usecase/commands"

	"go.uber.org/fx"
)

// RegisterSweeper runs the sweeper on SWEEP_INTERVAL when SWEEP_ENABLED is set.
func RegisterSweeper(lc fx.Lifecycle, sweeper commands.SweepCommands, cfg config.Config, logger *slog.Logger) {
	if !cfg.Sweeper.Enabled {
		logger.Info("sweeper disabled")
		return
	}

	loop := NewLoop("sweeper", cfg.Sweeper.Interval, func(ctx context.Context) {
		if _, err := sweeper.Sweep(ctx); err != nil && ctx.Err() == nil {
			logger.ErrorContext(ctx, "sweep failed", "error", err)
		}
	}, logger)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			loop.Start()
			return nil
		},
		OnStop: loop.Stop,
	})
}

func RegisterOutbox(lc fx.Lifecycle, dispatcher *OutboxDispatcher, cfg config.Config, logger *slog.Logger) {
	loop := NewLoop("outbox", cfg.Events.PollInterval, dispatcher.tick, logger)

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			loop.Start()
			return nil
		},
		OnStop: loop.Stop,
	})
}
