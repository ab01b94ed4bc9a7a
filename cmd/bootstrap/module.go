package bootstrap

import (
	"tourpay/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// CoreModule is everything the use cases need: config, logging, storage and the payment rails.
var CoreModule = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	RailModule,
	EventsModule,
	components.PersistenceModule,
	components.UseCaseModule,
)

// Module is the full API server.
var Module = fx.Options(
	CoreModule,
	TelemetryModule,
	JWTModule,
	components.HandlerModule,
	WorkerModule,
)
