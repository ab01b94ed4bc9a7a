package components

import (
	"tourpay/internal/pkg/clock"
	"tourpay/internal/usecase"
	"tourpay/internal/usecase/commands"
	"tourpay/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseValidatorsModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewReconciler,
		commands.NewIntentUseCase,
		commands.NewRefundUseCase,
		commands.NewWebhookUseCase,
		commands.NewBookingUseCase,
		commands.NewSweeper,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewTourQueries,
		queries.NewPaymentQueries,
		queries.NewBookingQueries,
	),
)

var usecaseValidatorsModule = fx.Module("usecase/validators",
	fx.Provide(
		usecase.NewTokenValidator,
	),
)
