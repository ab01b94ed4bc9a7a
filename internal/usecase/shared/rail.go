package shared

import (
	"context"

	"tourpay/internal/domain/payment"
	"tourpay/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrRailUnavailable = errs.New("rail is not configured")

// Verifier asks one payment rail whether a reference settled. A non-nil error is
// a transport or protocol fault; "not settled yet" is reported through the result.
type Verifier interface {
	Verify(ctx context.Context, reference string, expected payment.Money) (payment.VerifyResult, error)
}

type Verifiers struct {
	byRail map[payment.Rail]Verifier
}

func NewVerifiers(byRail map[payment.Rail]Verifier) *Verifiers {
	m := make(map[payment.Rail]Verifier, len(byRail))
	for rail, v := range byRail {
		if v != nil {
			m[rail] = v
		}
	}
	return &Verifiers{byRail: m}
}

func (v *Verifiers) For(rail payment.Rail) (Verifier, error) {
	verifier, ok := v.byRail[rail]
	if !ok {
		return nil, errs.Wrap(ErrRailUnavailable, rail.String())
	}
	return verifier, nil
}

type IntentParams struct {
	TourID        int64
	CustomerEmail string
	BookingID     *uuid.UUID
	Amount        payment.Money
}

type Intent struct {
	ID           string
	ClientSecret string
	Amount       payment.Money
	Currency     string
}

type RefundParams struct {
	PaymentID      uuid.UUID
	Reference      string
	Amount         payment.Money
	IdempotencyKey string
}

type RefundReceipt struct {
	ID     string
	Status string
}

// CardProcessor covers the card rail operations that move money.
type CardProcessor interface {
	CreateIntent(ctx context.Context, params IntentParams) (*Intent, error)
	Refund(ctx context.Context, params RefundParams) (*RefundReceipt, error)
}

// CardEvent is a signature-verified card processor notification.
type CardEvent struct {
	ID       string
	Type     string
	IntentID string
	Amount   payment.Money
	Metadata map[string]string
}

type WebhookVerifier interface {
	ParseEvent(payload []byte, signatureHeader string) (*CardEvent, error)
}

// AddressBook lists receiving wallets for the chain rails.
type AddressBook interface {
	Address(rail payment.Rail) (address, network string, ok bool)
}

var ErrInvalidSignature = errs.New("invalid webhook signature")

// Card intent metadata keys. The issuer writes them; webhook reconciliation reads them back.
const (
	IntentMetadataTourID        = "tour_id"
	IntentMetadataCustomerEmail = "customer_email"
	IntentMetadataBookingID     = "booking_id"
)
