package card

import (
	"encoding/json"
	"strings"
	"time"

	"tourpay/internal/domain/payment"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/shared"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

type WebhookVerifier struct {
	secret    string
	tolerance time.Duration
}

func NewWebhookVerifier(secret string, tolerance time.Duration) *WebhookVerifier {
	return &WebhookVerifier{secret: secret, tolerance: tolerance}
}

func (w *WebhookVerifier) ParseEvent(payload []byte, signatureHeader string) (*shared.CardEvent, error) {
	event, err := webhook.ConstructEventWithOptions(payload, signatureHeader, w.secret, webhook.ConstructEventOptions{
		Tolerance:                w.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errs.Mark(err, shared.ErrInvalidSignature)
	}

	out := &shared.CardEvent{ID: event.ID, Type: string(event.Type)}
	if !strings.HasPrefix(out.Type, "payment_intent.") || event.Data == nil {
		return out, nil
	}

	var pi stripe.PaymentIntent
	if err := json.Unmarshal(event.Data.Raw, &pi); err != nil {
		return nil, errs.Wrap(err, "decode payment intent event")
	}
	out.IntentID = pi.ID
	out.Amount = payment.MoneyFromMinor(pi.Amount, payment.AssetUSD)
	out.Metadata = pi.Metadata
	return out, nil
}
