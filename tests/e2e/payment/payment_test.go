//go:build e2e

package payment_test

import (
	"encoding/hex"
	"fmt"
	"net/http"
	"testing"
	"time"

	"tourpay/internal/domain/payment"
	"tourpay/internal/domain/user"
	resdto "tourpay/internal/handler/dto/response"
	"tourpay/internal/usecase/commands"
	"tourpay/tests/common/dbtest"
	"tourpay/tests/common/httptest"
	"tourpay/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/stripe/stripe-go/v76/webhook"
)

const (
	solSignature = "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbkPqW3WsyXgmzGZT6eTdG8pN1pSc7B9Y4x6qjzZQmY7Wd"
	cardIntent   = "pi_3PqRsTuVwXyZ0123"
)

type PaymentE2ETestSuite struct {
	e2e.SharedSuite
}

func TestPaymentE2ETestSuite(t *testing.T) {
	suite.Run(t, new(PaymentE2ETestSuite))
}

func claimBody(rail, reference, amount string) map[string]any {
	return map[string]any{
		"rail":          rail,
		"reference":     reference,
		"amount":        amount,
		"tourId":        dbtest.KayakTourID,
		"customerEmail": "guest@example.com",
	}
}

func (s *PaymentE2ETestSuite) claim(body map[string]any) (*resdto.ClaimResponse, int) {
	w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments/claims", body, "")
	if w.Code != http.StatusOK {
		return nil, w.Code
	}
	var res resdto.ClaimResponse
	httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
	return &res, w.Code
}

func (s *PaymentE2ETestSuite) TestClaim() {
	s.Run("confirmed claim creates a booking exactly once", func() {
		s.Rails.Script(solSignature, payment.VerifyConfirmed)

		first, code := s.claim(claimBody("fast-chain", solSignature, "0.15"))
		require.Equal(s.T(), http.StatusOK, code)
		assert.True(s.T(), first.Success)
		assert.Equal(s.T(), commands.MsgVerified, first.Message)
		assert.Equal(s.T(), "completed", first.Status)
		require.NotNil(s.T(), first.BookingID)
		assert.Equal(s.T(), "confirmed", dbtest.BookingStatus(s.T(), s.DB, *first.BookingID))

		again, code := s.claim(claimBody("solana", solSignature, "0.150"))
		require.Equal(s.T(), http.StatusOK, code)
		assert.True(s.T(), again.Success)
		assert.Equal(s.T(), first.BookingID, again.BookingID)
		assert.Equal(s.T(), first.PaymentID, again.PaymentID)

		assert.Equal(s.T(), 1, s.Rails.Calls(solSignature), "terminal payments are not re-verified")
		assert.Equal(s.T(), 1, dbtest.CountPayments(s.T(), s.DB, "fast-chain", solSignature))
		assert.Equal(s.T(), 1, dbtest.CountBookings(s.T(), s.DB))
		assert.Equal(s.T(), 1, dbtest.CountQueuedEvents(s.T(), s.DB, commands.TopicPaymentCompleted))
		assert.Equal(s.T(), 1, dbtest.CountQueuedEvents(s.T(), s.DB, commands.TopicBookingConfirmed))
	})

	s.Run("same reference with another amount conflicts", func() {
		s.Rails.Script(solSignature, payment.VerifyConfirmed)
		_, code := s.claim(claimBody("fast-chain", solSignature, "0.15"))
		require.Equal(s.T(), http.StatusOK, code)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments/claims", claimBody("fast-chain", solSignature, "0.2"), "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusConflict, "Transaction reference already claimed")
		assert.Equal(s.T(), 1, dbtest.CountPayments(s.T(), s.DB, "fast-chain", solSignature))
	})

	s.Run("amount below the tour price fails without a booking", func() {
		s.Rails.Script(solSignature, payment.VerifyConfirmed)

		res, code := s.claim(claimBody("fast-chain", solSignature, "0.14"))
		require.Equal(s.T(), http.StatusOK, code)
		assert.False(s.T(), res.Success)
		assert.Equal(s.T(), "failed", res.Status)
		assert.Nil(s.T(), res.BookingID)
		assert.Equal(s.T(), 0, dbtest.CountBookings(s.T(), s.DB))
	})

	s.Run("pending verdict can be retried to completion", func() {
		s.Rails.Script(solSignature, payment.VerifyPending)

		pending, code := s.claim(claimBody("fast-chain", solSignature, "0.15"))
		require.Equal(s.T(), http.StatusOK, code)
		assert.False(s.T(), pending.Success)
		assert.Equal(s.T(), commands.MsgPending, pending.Message)

		s.Rails.Script(solSignature, payment.VerifyConfirmed)
		done, code := s.claim(claimBody("fast-chain", solSignature, "0.15"))
		require.Equal(s.T(), http.StatusOK, code)
		assert.True(s.T(), done.Success)
		assert.Equal(s.T(), pending.PaymentID, done.PaymentID)
		assert.Equal(s.T(), 2, s.Rails.Calls(solSignature))
	})

	s.Run("unknown reference fails after the attempt limit", func() {
		for range s.Config.Reconcile.NotFoundMaxAttempts - 1 {
			res, code := s.claim(claimBody("fast-chain", solSignature, "0.15"))
			require.Equal(s.T(), http.StatusOK, code)
			assert.False(s.T(), res.Success)
			assert.NotEqual(s.T(), "failed", res.Status)
		}

		res, code := s.claim(claimBody("fast-chain", solSignature, "0.15"))
		require.Equal(s.T(), http.StatusOK, code)
		assert.Equal(s.T(), "failed", res.Status)
		assert.Equal(s.T(), commands.ReasonNotFound, res.Message)
	})

	s.Run("reverted transaction fails", func() {
		s.Rails.Script(solSignature, payment.VerifyFailed)

		res, code := s.claim(claimBody("fast-chain", solSignature, "0.15"))
		require.Equal(s.T(), http.StatusOK, code)
		assert.False(s.T(), res.Success)
		assert.Equal(s.T(), "failed", res.Status)
	})

	s.Run("tour without a price on the rail", func() {
		body := claimBody("utxo-chain", "9f3c1a7e0b6d4f2a8c5e1b3d7f9a0c2e4b6d8f1a3c5e7b9d0f2a4c6e8b1d3f5a", "0.002")
		body["tourId"] = dbtest.GlacierTourID
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments/claims", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Tour has no price on this rail")
	})

	s.Run("unknown tour", func() {
		body := claimBody("fast-chain", solSignature, "0.15")
		body["tourId"] = 999
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments/claims", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
		assert.Equal(s.T(), 0, dbtest.CountPayments(s.T(), s.DB, "fast-chain", solSignature))
	})

	s.Run("unknown booking is rejected before the ledger", func() {
		body := claimBody("fast-chain", solSignature, "0.15")
		body["bookingId"] = uuid.NewString()
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments/claims", body, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
		assert.Equal(s.T(), 0, dbtest.CountPayments(s.T(), s.DB, "fast-chain", solSignature))
	})
}

func (s *PaymentE2ETestSuite) TestGet() {
	s.Run("payment is readable after a claim", func() {
		s.Rails.Script(solSignature, payment.VerifyConfirmed)
		res, _ := s.claim(claimBody("fast-chain", solSignature, "0.15"))
		require.NotNil(s.T(), res.PaymentID)

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/payments/"+res.PaymentID.String(), nil, "")
		var view resdto.PaymentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &view)
		assert.Equal(s.T(), "fast-chain", view.Rail)
		assert.Equal(s.T(), "SOL", view.Asset)
		assert.Equal(s.T(), "completed", view.Status)
		assert.Equal(s.T(), "0.15", view.SettledAmount.String())
	})

	s.Run("unknown payment", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/payments/"+uuid.NewString(), nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})

	s.Run("no wallet configured for the rail", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/api/payments/addresses/solana", nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusNotFound, "")
	})
}

func (s *PaymentE2ETestSuite) TestCardFlow() {
	s.Run("intent then refund", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, "/api/payments/intents",
			map[string]any{"tourId": dbtest.KayakTourID, "customerEmail": "guest@example.com"}, "")
		var intent resdto.IntentResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusCreated, &intent)
		assert.Equal(s.T(), "120", intent.Amount.String())
		assert.Equal(s.T(), "usd", intent.Currency)

		s.Rails.Script(cardIntent, payment.VerifyConfirmed)
		claimed, code := s.claim(claimBody("card", cardIntent, "120.00"))
		require.Equal(s.T(), http.StatusOK, code)
		require.True(s.T(), claimed.Success)
		path := fmt.Sprintf("/api/payments/%s/refund", claimed.PaymentID)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, s.JWT.StaffToken(s.T(), user.RoleOperator))
		assert.Equal(s.T(), http.StatusForbidden, w.Code)

		w = httptest.PerformRequest(s.T(), s.Router, http.MethodPost, path, nil, s.JWT.StaffToken(s.T(), user.RoleAdmin))
		var refund resdto.RefundResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &refund)
		assert.Equal(s.T(), "re_e2e_1", refund.RefundID)
		assert.Equal(s.T(), "120", refund.Amount.String())

		require.Len(s.T(), s.Rails.Refunds(), 1)
		assert.Equal(s.T(), cardIntent, s.Rails.Refunds()[0].Reference)

		again, _ := s.claim(claimBody("card", cardIntent, "120.00"))
		assert.Equal(s.T(), commands.MsgRefunded, again.Message)
		assert.Equal(s.T(), 1, dbtest.CountQueuedEvents(s.T(), s.DB, commands.TopicPaymentRefunded))
	})

	s.Run("chain payments cannot be refunded", func() {
		s.Rails.Script(solSignature, payment.VerifyConfirmed)
		claimed, _ := s.claim(claimBody("fast-chain", solSignature, "0.15"))

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, fmt.Sprintf("/api/payments/%s/refund", claimed.PaymentID),
			nil, s.JWT.StaffToken(s.T(), user.RoleAdmin))
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnprocessableEntity, "Refund is only supported for card payments")
		assert.Empty(s.T(), s.Rails.Refunds())
	})
}

func signed(payload []byte) string {
	now := time.Now()
	sig := webhook.ComputeSignature(now, payload, e2e.WebhookSecret)
	return fmt.Sprintf("t=%d,v1=%s", now.Unix(), hex.EncodeToString(sig))
}

func (s *PaymentE2ETestSuite) TestWebhook() {
	payload := []byte(fmt.Sprintf(`{
		"id": "evt_1PqRsT",
		"object": "event",
		"api_version": "2023-10-16",
		"type": "payment_intent.succeeded",
		"data": {"object": {
			"id": %q,
			"object": "payment_intent",
			"amount": 12000,
			"currency": "usd",
			"status": "succeeded",
			"metadata": {"tour_id": "7", "customer_email": "guest@example.com"}
		}}
	}`, cardIntent))

	s.Run("signed succeeded event settles the payment", func() {
		s.Rails.Script(cardIntent, payment.VerifyConfirmed)

		w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/stripe", payload,
			map[string]string{"Content-Type": "application/json", "Stripe-Signature": signed(payload)})
		var ack resdto.WebhookAckResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &ack)
		assert.True(s.T(), ack.Received)
		assert.True(s.T(), ack.Handled)
		require.NotNil(s.T(), ack.Claim)
		assert.True(s.T(), ack.Claim.Success)
		assert.Equal(s.T(), 1, dbtest.CountPayments(s.T(), s.DB, "card", cardIntent))

		// Redelivery is idempotent.
		w = httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/stripe", payload,
			map[string]string{"Content-Type": "application/json", "Stripe-Signature": signed(payload)})
		require.Equal(s.T(), http.StatusOK, w.Code)
		assert.Equal(s.T(), 1, dbtest.CountBookings(s.T(), s.DB))
	})

	s.Run("tampered payload is rejected", func() {
		header := signed(payload)
		tampered := append([]byte{}, payload...)
		tampered[len(tampered)-2] = ' '

		w := httptest.PerformRawRequest(s.T(), s.Router, http.MethodPost, "/api/webhooks/stripe", tampered,
			map[string]string{"Content-Type": "application/json", "Stripe-Signature": header})
		httptest.AssertErrorResponse(s.T(), w, http.StatusBadRequest, "Invalid signature")
		assert.Equal(s.T(), 0, dbtest.CountPayments(s.T(), s.DB, "card", cardIntent))
	})
}
