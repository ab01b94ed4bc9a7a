//go:build unit || e2e

package builder

import (
	"time"

	"tourpay/internal/domain/payment"
	reqdto "tourpay/internal/handler/dto/request"
	sqlc "tourpay/internal/infra/sqlc/generated"
	"tourpay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type PaymentBuilder struct {
	ID             uuid.UUID
	BookingID      *uuid.UUID
	TourID         int64
	CustomerEmail  string
	Rail           payment.Rail
	Reference      string
	Amount         decimal.Decimal
	Status         payment.Status
	FailureReason  *string
	VerifyAttempts int32
	Settled        decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func NewPaymentBuilder() *PaymentBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &PaymentBuilder{
		ID:            uuid.New(),
		TourID:        7,
		CustomerEmail: "guest@example.com",
		Rail:          payment.RailFastChain,
		Reference:     "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnb",
		Amount:        decimal.RequireFromString("0.15"),
		Status:        payment.StatusProcessing,
		Settled:       decimal.Zero,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *PaymentBuilder) With(mutate func(*PaymentBuilder)) *PaymentBuilder {
	mutate(b)
	return b
}

func (b *PaymentBuilder) AsCard() *PaymentBuilder {
	b.Rail = payment.RailCard
	b.Reference = "pi_3PqRsTuVwXyZ0123"
	b.Amount = decimal.RequireFromString("120.00")
	return b
}

func (b *PaymentBuilder) AsCompleted(bookingID uuid.UUID) *PaymentBuilder {
	b.Status = payment.StatusCompleted
	b.BookingID = &bookingID
	b.Settled = b.Amount
	return b
}

func (b *PaymentBuilder) AsFailed(reason string) *PaymentBuilder {
	b.Status = payment.StatusFailed
	b.FailureReason = &reason
	return b
}

// Build methods
func (b *PaymentBuilder) BuildClaim() (payment.Claim, error) {
	return payment.NewClaim(b.Rail.String(), b.Reference, b.Amount, b.TourID, b.CustomerEmail, nil)
}

func (b *PaymentBuilder) BuildDomain() (*payment.Payment, error) {
	claim, err := b.BuildClaim()
	if err != nil {
		return nil, err
	}
	asset := b.Rail.Asset()
	settled, err := payment.NewMoney(b.Settled, asset)
	if err != nil {
		return nil, err
	}
	var completedAt *time.Time
	if b.Status == payment.StatusCompleted {
		completedAt = &b.UpdatedAt
	}
	return payment.ReconstructPayment(payment.ReconstructParams{
		ID:             b.ID,
		BookingID:      b.BookingID,
		TourID:         b.TourID,
		CustomerEmail:  b.CustomerEmail,
		Rail:           b.Rail,
		Reference:      claim.Reference,
		Amount:         claim.Amount,
		Status:         b.Status,
		FailureReason:  b.FailureReason,
		ClaimHash:      claim.Fingerprint(),
		VerifyAttempts: b.VerifyAttempts,
		LeaseUntil:     b.UpdatedAt,
		Settled:        settled,
		Refunded:       payment.ZeroMoney(asset),
		CompletedAt:    completedAt,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}), nil
}

func (b *PaymentBuilder) BuildInfra() sqlc.Payments {
	row := sqlc.Payments{
		ID:             b.ID,
		TourID:         b.TourID,
		CustomerEmail:  b.CustomerEmail,
		Rail:           b.Rail.String(),
		ExternalRef:    b.Reference,
		Amount:         b.Amount,
		Asset:          b.Rail.Asset().String(),
		Status:         b.Status.String(),
		ClaimHash:      "hash",
		VerifyAttempts: b.VerifyAttempts,
		LeaseUntil:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
		SettledAmount:  b.Settled,
		RefundedAmount: decimal.Zero,
		CreatedAt:      pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:      pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
	if b.BookingID != nil {
		row.BookingID = pgtype.UUID{Bytes: *b.BookingID, Valid: true}
	}
	if b.FailureReason != nil {
		row.FailureReason = pgtype.Text{String: *b.FailureReason, Valid: true}
	}
	if b.Status == payment.StatusCompleted {
		row.CompletedAt = pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true}
	}
	return row
}

func (b *PaymentBuilder) BuildClaimRequestDTO() reqdto.ClaimPaymentRequest {
	return reqdto.ClaimPaymentRequest{
		Rail:          b.Rail.String(),
		Reference:     b.Reference,
		Amount:        b.Amount,
		TourID:        b.TourID,
		CustomerEmail: b.CustomerEmail,
		BookingID:     b.BookingID,
	}
}

func (b *PaymentBuilder) BuildView() *queries.PaymentView {
	return &queries.PaymentView{
		ID:             b.ID,
		BookingID:      b.BookingID,
		TourID:         b.TourID,
		Rail:           b.Rail.String(),
		Reference:      b.Reference,
		Amount:         b.Amount,
		Asset:          b.Rail.Asset().String(),
		Status:         b.Status.String(),
		FailureReason:  b.FailureReason,
		VerifyAttempts: b.VerifyAttempts,
		SettledAmount:  b.Settled,
		RefundedAmount: decimal.Zero,
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}
}
