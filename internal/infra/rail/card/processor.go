package card

import (
	"context"
	"fmt"
	"strconv"

	"tourpay/internal/domain/payment"
	"tourpay/internal/usecase/shared"

	"github.com/stripe/stripe-go/v76"
)

type RefundAPI interface {
	New(params *stripe.RefundParams) (*stripe.Refund, error)
}

// Processor issues intents and refunds. Neither call writes to the ledger.
type Processor struct {
	intents IntentAPI
	refunds RefundAPI
}

func NewProcessor(intents IntentAPI, refunds RefundAPI) *Processor {
	return &Processor{intents: intents, refunds: refunds}
}

func (p *Processor) CreateIntent(ctx context.Context, in shared.IntentParams) (*shared.Intent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:   stripe.Int64(in.Amount.Minor()),
		Currency: stripe.String(string(stripe.CurrencyUSD)),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	params.Context = ctx
	params.AddMetadata(shared.IntentMetadataTourID, strconv.FormatInt(in.TourID, 10))
	params.AddMetadata(shared.IntentMetadataCustomerEmail, in.CustomerEmail)
	if in.BookingID != nil {
		params.AddMetadata(shared.IntentMetadataBookingID, in.BookingID.String())
	}
	if in.CustomerEmail != "" {
		params.ReceiptEmail = stripe.String(in.CustomerEmail)
	}

	pi, err := p.intents.New(params)
	if err != nil {
		return nil, fmt.Errorf("create payment intent: %w", err)
	}

	return &shared.Intent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       payment.MoneyFromMinor(pi.Amount, payment.AssetUSD),
		Currency:     string(pi.Currency),
	}, nil
}

func (p *Processor) Refund(ctx context.Context, in shared.RefundParams) (*shared.RefundReceipt, error) {
	params := &stripe.RefundParams{
		PaymentIntent: stripe.String(in.Reference),
		Amount:        stripe.Int64(in.Amount.Minor()),
	}
	params.Context = ctx
	params.SetIdempotencyKey(in.IdempotencyKey)
	params.AddMetadata("payment_id", in.PaymentID.String())

	r, err := p.refunds.New(params)
	if err != nil {
		return nil, fmt.Errorf("create refund: %w", err)
	}

	return &shared.RefundReceipt{ID: r.ID, Status: string(r.Status)}, nil
}
