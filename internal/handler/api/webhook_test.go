//go:build unit

package api_test

import (
	"bytes"
	"net/http"
	nethttptest "net/http/httptest"
	"testing"

	"tourpay/internal/handler/api"
	resdto "tourpay/internal/handler/dto/response"
	"tourpay/internal/usecase/commands"
	"tourpay/internal/usecase/shared"
	"tourpay/tests/common/httptest"
	commandsmock "tourpay/tests/mock/commands"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type WebhookHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockWebhookCommands
}

func (s *WebhookHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockWebhookCommands(s.mockCtrl)
	s.router.POST("/webhooks/stripe", api.NewWebhookHandler(s.mockCommands).Stripe)
}

func (s *WebhookHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestWebhookHandlerSuite(t *testing.T) {
	suite.Run(t, new(WebhookHandlerTestSuite))
}

func (s *WebhookHandlerTestSuite) post(payload []byte, signature string) *nethttptest.ResponseRecorder {
	headers := map[string]string{"Content-Type": "application/json"}
	if signature != "" {
		headers["Stripe-Signature"] = signature
	}
	return httptest.PerformRawRequest(s.T(), s.router, http.MethodPost, "/webhooks/stripe", payload, headers)
}

func (s *WebhookHandlerTestSuite) TestStripe() {
	payload := []byte(`{"id":"evt_1","type":"payment_intent.succeeded"}`)
	signature := "t=1700000000,v1=abc"

	s.Run("success: raw body and signature reach the command", func() {
		bookingID := uuid.New()
		s.mockCommands.EXPECT().HandleCardEvent(gomock.Any(), payload, signature).Return(&commands.WebhookResult{
			EventID:   "evt_1",
			EventType: "payment_intent.succeeded",
			Handled:   true,
			Claim:     &commands.ClaimResult{Success: true, BookingID: &bookingID, Message: commands.MsgVerified},
		}, nil).Times(1)

		var body resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), s.post(payload, signature), http.StatusOK, &body)
		s.True(body.Received)
		s.True(body.Handled)
		s.Equal("evt_1", body.EventID)
		s.Require().NotNil(body.Claim)
		s.Equal(&bookingID, body.Claim.BookingID)
	})

	s.Run("success: ignored events are acknowledged", func() {
		s.mockCommands.EXPECT().HandleCardEvent(gomock.Any(), gomock.Any(), gomock.Any()).
			Return(&commands.WebhookResult{EventID: "evt_2", EventType: "charge.updated"}, nil).Times(1)

		var body resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), s.post(payload, signature), http.StatusOK, &body)
		s.True(body.Received)
		s.False(body.Handled)
		s.Nil(body.Claim)
	})

	s.Run("error: 400 on a bad signature", func() {
		s.mockCommands.EXPECT().HandleCardEvent(gomock.Any(), payload, "").Return(nil, shared.ErrInvalidSignature).Times(1)

		httptest.AssertErrorResponse(s.T(), s.post(payload, ""), http.StatusBadRequest, "Invalid signature")
	})

	s.Run("error: 413 when the body exceeds the limit", func() {
		huge := bytes.Repeat([]byte("a"), 1<<19+1)
		httptest.AssertErrorResponse(s.T(), s.post(huge, signature), http.StatusRequestEntityTooLarge, "Payload too large")
	})

	s.Run("error: 503 when the card rail is not configured", func() {
		s.mockCommands.EXPECT().HandleCardEvent(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, shared.ErrRailUnavailable).Times(1)

		httptest.AssertErrorResponse(s.T(), s.post(payload, signature), http.StatusServiceUnavailable, "Payment rail unavailable")
	})
}
