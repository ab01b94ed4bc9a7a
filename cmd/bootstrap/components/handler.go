package components

import (
	"tourpay/internal/handler"
	"tourpay/internal/handler/api"
	"tourpay/internal/handler/middleware"
	"tourpay/internal/handler/validation"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewTourHandler,
		api.NewPaymentHandler,
		api.NewBookingHandler,
		api.NewWebhookHandler,
		middleware.NewAuthMiddleware,
		func(tours *api.TourHandler, payments *api.PaymentHandler, bookings *api.BookingHandler, webhooks *api.WebhookHandler) handler.Handlers {
			return handler.Handlers{
				Tours:    tours,
				Payments: payments,
				Bookings: bookings,
				Webhooks: webhooks,
			}
		},
	),
	fx.Invoke(
		validation.Register,
		handler.NewRouter,
	),
)
