package bootstrap

import (
	"tourpay/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		worker.NewOutboxDispatcher,
	),
	fx.Invoke(
		worker.RegisterSweeper,
		worker.RegisterOutbox,
	),
)
