package api

import (
	"io"
	"net/http"

	resdto "tourpay/internal/handler/dto/response"
	"tourpay/internal/handler/httperr"
	"tourpay/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

// upper bound for a single event payload
const maxWebhookBody = 1 << 19

type WebhookHandler struct {
	cmds commands.WebhookCommands
}

func NewWebhookHandler(cmds commands.WebhookCommands) *WebhookHandler {
	return &WebhookHandler{cmds: cmds}
}

// @Summary Stripe webhook
// @Description Receive card processor notifications. The signature is verified against the raw body before anything else runs.
// @Tags webhooks
// @Accept json
// @Produce json
// @Param Stripe-Signature header string true "Stripe signature header"
// @Success 200 {object} resdto.WebhookAckResponse
// @Failure 400 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /webhooks/stripe [post]
func (h *WebhookHandler) Stripe(c *gin.Context) {
	payload, err := io.ReadAll(io.LimitReader(c.Request.Body, maxWebhookBody+1))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
		return
	}
	if len(payload) > maxWebhookBody {
		httperr.AbortWithError(c, http.StatusRequestEntityTooLarge, nil, "Payload too large", nil)
		return
	}

	result, err := h.cmds.HandleCardEvent(c.Request.Context(), payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		abortWithUseCaseError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromWebhookResult(result))
}
