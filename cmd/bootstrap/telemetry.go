package bootstrap

import (
	"context"
	"log/slog"

	"tourpay/internal/infra/telemetry"
	"tourpay/internal/pkg/config"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(RegisterTracer),
)

func RegisterTracer(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) error {
	shutdown, err := telemetry.InitTracer(context.Background(), cfg.Telemetry, logger)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: shutdown,
	})
	return nil
}
