package api

import (
	"io"
	"net/http"

	reqdto "tourpay/internal/handler/dto/request"
	resdto "tourpay/internal/handler/dto/response"
	"tourpay/internal/handler/httperr"
	"tourpay/internal/handler/validation"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/commands"
	"tourpay/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type PaymentHandler struct {
	reconciler commands.ReconcileCommands
	intents    commands.IntentCommands
	refunds    commands.RefundCommands
	q          queries.PaymentQueries
}

func NewPaymentHandler(
	reconciler commands.ReconcileCommands,
	intents commands.IntentCommands,
	refunds commands.RefundCommands,
	q queries.PaymentQueries,
) *PaymentHandler {
	return &PaymentHandler{
		reconciler: reconciler,
		intents:    intents,
		refunds:    refunds,
		q:          q,
	}
}

// @Summary Submit payment claim
// @Description Submit a transaction reference for verification. Resubmitting the same reference returns the stored outcome.
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.ClaimPaymentRequest true "Payment claim"
// @Success 200 {object} resdto.ClaimResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /payments/claims [post]
func (h *PaymentHandler) Claim(c *gin.Context) {
	var req reqdto.ClaimPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", validation.Details(err))
		return
	}

	result, err := h.reconciler.Submit(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromClaimResult(result))
}

// @Summary Create card payment intent
// @Description Issue a card payment intent priced from the tour's USD price
// @Tags payments
// @Accept json
// @Produce json
// @Param request body reqdto.CreateIntentRequest true "Intent request"
// @Success 201 {object} resdto.IntentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /payments/intents [post]
func (h *PaymentHandler) CreateIntent(c *gin.Context) {
	var req reqdto.CreateIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", validation.Details(err))
		return
	}

	intent, err := h.intents.IssueIntent(c.Request.Context(), req.ToCommand())
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromIntent(intent))
}

// @Summary Get payment
// @Description Get the status of a payment
// @Tags payments
// @Produce json
// @Param id path string true "Payment ID"
// @Success 200 {object} resdto.PaymentResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /payments/{id} [get]
func (h *PaymentHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment ID format", nil)
		return
	}

	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromPaymentView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get receiving address
// @Description Get the wallet and network that chain payments should be sent to
// @Tags payments
// @Produce json
// @Param rail path string true "Rail (fast-chain, utxo-chain, account-chain or an alias)"
// @Success 200 {object} resdto.AddressResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /payments/addresses/{rail} [get]
func (h *PaymentHandler) Address(c *gin.Context) {
	view, err := h.q.AddressFor(c.Request.Context(), c.Param("rail"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	res, err := resdto.FromAddressView(view)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Refund payment
// @Description Refund a completed card payment, fully or partially
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Payment ID"
// @Param request body reqdto.RefundPaymentRequest false "Refund request"
// @Success 200 {object} resdto.RefundResponse
// @Failure 400 {object} httperr.Response
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 422 {object} httperr.Response
// @Router /payments/{id}/refund [post]
func (h *PaymentHandler) Refund(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid payment ID format", nil)
		return
	}

	// The body is optional; an empty one, chunked or not, refunds in full.
	var req reqdto.RefundPaymentRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil && !errs.Is(bindErr, io.EOF) {
		httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request format", validation.Details(bindErr))
		return
	}

	result, err := h.refunds.Refund(c.Request.Context(), commands.RefundRequest{
		PaymentID: id,
		Amount:    req.Amount,
	})
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromRefundResult(result))
}
