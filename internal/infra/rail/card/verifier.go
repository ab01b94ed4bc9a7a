package card

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"tourpay/internal/domain/payment"

	"github.com/stripe/stripe-go/v76"
)

// IntentAPI is the subset of the Stripe payment intent client the card rail uses.
type IntentAPI interface {
	New(params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
	Get(id string, params *stripe.PaymentIntentParams) (*stripe.PaymentIntent, error)
}

type Verifier struct {
	intents IntentAPI
}

func NewVerifier(intents IntentAPI) *Verifier {
	return &Verifier{intents: intents}
}

func (v *Verifier) Verify(ctx context.Context, reference string, expected payment.Money) (payment.VerifyResult, error) {
	params := &stripe.PaymentIntentParams{}
	params.Context = ctx

	pi, err := v.intents.Get(reference, params)
	if err != nil {
		if isMissing(err) {
			return payment.NotFound("payment intent not found"), nil
		}
		return payment.VerifyResult{}, fmt.Errorf("retrieve payment intent: %w", err)
	}

	return classifyIntent(pi, expected), nil
}

func classifyIntent(pi *stripe.PaymentIntent, expected payment.Money) payment.VerifyResult {
	if !strings.EqualFold(string(pi.Currency), string(stripe.CurrencyUSD)) {
		return payment.Failed("currency mismatch")
	}

	switch pi.Status {
	case stripe.PaymentIntentStatusSucceeded:
		if pi.Amount != expected.Minor() {
			return payment.Failed("amount mismatch")
		}
		received := pi.AmountReceived
		if received == 0 {
			received = pi.Amount
		}
		return payment.Confirmed(payment.MoneyFromMinor(received, payment.AssetUSD), "succeeded")

	case stripe.PaymentIntentStatusProcessing,
		stripe.PaymentIntentStatusRequiresAction,
		stripe.PaymentIntentStatusRequiresConfirmation,
		stripe.PaymentIntentStatusRequiresCapture:
		return payment.Pending(string(pi.Status))

	case stripe.PaymentIntentStatusRequiresPaymentMethod:
		// A declined intent stays open for another card. Only cancellation ends it.
		if pi.LastPaymentError != nil {
			return payment.Pending(string(pi.Status) + ": " + lastErrorMessage(pi.LastPaymentError))
		}
		return payment.Pending(string(pi.Status))

	case stripe.PaymentIntentStatusCanceled:
		reason := "payment intent canceled"
		if pi.CancellationReason != "" {
			reason += ": " + string(pi.CancellationReason)
		}
		return payment.Failed(reason)

	default:
		return payment.Pending(string(pi.Status))
	}
}

func lastErrorMessage(e *stripe.Error) string {
	if e.Msg != "" {
		return e.Msg
	}
	if e.Code != "" {
		return string(e.Code)
	}
	return "card payment failed"
}

func isMissing(err error) bool {
	var serr *stripe.Error
	if !errors.As(err, &serr) {
		return false
	}
	return serr.Code == stripe.ErrorCodeResourceMissing || serr.HTTPStatusCode == http.StatusNotFound
}
