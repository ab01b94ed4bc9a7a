package api

import (
	"net/http"

	"tourpay/internal/domain/payment"
	"tourpay/internal/handler/httperr"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/commands"
	"tourpay/internal/usecase/queries"
	"tourpay/internal/usecase/shared"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps usecase sentinels onto HTTP statuses. Anything unrecognised is a 500.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, commands.ErrInvalidClaim),
		errs.Is(err, commands.ErrInvalidAmount),
		errs.Is(err, payment.ErrInvalidRail):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", err.Error())
	case errs.Is(err, shared.ErrInvalidSignature):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid signature", nil)
	case errs.Is(err, commands.ErrTourNotFound),
		errs.Is(err, queries.ErrTourNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Tour not found", nil)
	case errs.Is(err, commands.ErrBookingNotFound),
		errs.Is(err, queries.ErrBookingNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Booking not found", nil)
	case errs.Is(err, commands.ErrPaymentNotFound),
		errs.Is(err, queries.ErrPaymentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Payment not found", nil)
	case errs.Is(err, queries.ErrAddressNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Receiving address not configured", nil)
	case errs.Is(err, commands.ErrClaimConflict):
		httperr.AbortWithError(c, http.StatusConflict, err, "Transaction reference already claimed", nil)
	case errs.Is(err, commands.ErrInvalidTransition):
		httperr.AbortWithError(c, http.StatusConflict, err, "Invalid state transition", nil)
	case errs.Is(err, commands.ErrPriceUnavailable):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Tour has no price on this rail", nil)
	case errs.Is(err, commands.ErrRefundUnsupported):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Refund is only supported for card payments", nil)
	case errs.Is(err, queries.ErrNotAChainRail):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Rail has no receiving address", nil)
	case errs.Is(err, shared.ErrRailUnavailable):
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Payment rail unavailable", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
