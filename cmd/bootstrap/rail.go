package bootstrap

import (
	"context"
	"log/slog"

	"tourpay/internal/infra/rail"
	"tourpay/internal/pkg/config"
	"tourpay/internal/usecase/shared"

	"go.uber.org/fx"
)

var RailModule = fx.Module("rail",
	fx.Provide(
		NewRailClients,
		rail.NewVerifiers,
		rail.NewCardProcessor,
		rail.NewWebhookVerifier,
		fx.Annotate(
			rail.NewAddressBook,
			fx.As(new(shared.AddressBook)),
		),
	),
)

func NewRailClients(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*rail.Clients, error) {
	clients, cleanup, err := rail.Dial(context.Background(), cfg, logger)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			cleanup()
			return nil
		},
	})

	return clients, nil
}
