package converter

import (
	"fmt"

	"tourpay/internal/domain/payment"
	sqlc "tourpay/internal/infra/sqlc/generated"
	"tourpay/internal/pkg/pgconv"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

func PaymentToInsertParams(p *payment.Payment) sqlc.InsertPaymentClaimParams {
	return sqlc.InsertPaymentClaimParams{
		ID:                 p.ID(),
		TourID:             p.TourID(),
		CustomerEmail:      p.CustomerEmail(),
		RequestedBookingID: pgconv.UUIDPtrToPgtype(p.RequestedBookingID()),
		Rail:               p.Rail().String(),
		ExternalRef:        p.Reference(),
		Amount:             p.Amount().Amount(),
		Asset:              p.Amount().Asset().String(),
		ClaimHash:          p.ClaimHash(),
		LeaseUntil:         pgconv.TimeToPgtype(p.LeaseUntil()),
		CreatedAt:          pgconv.TimeToPgtype(p.CreatedAt()),
	}
}

// PaymentFromRow rebuilds the aggregate. Unknown enum values mean the row was
// written by something other than this service and are reported, not coerced.
func PaymentFromRow(row sqlc.Payments) (*payment.Payment, error) {
	rail, err := payment.ParseRail(row.Rail)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", row.ID, err)
	}
	status, err := payment.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("payment %s: %w", row.ID, err)
	}
	asset := payment.Asset(row.Asset)
	amount, err := payment.NewMoney(row.Amount, asset)
	if err != nil {
		return nil, fmt.Errorf("payment %s amount: %w", row.ID, err)
	}

	return payment.ReconstructPayment(payment.ReconstructParams{
		ID:                 row.ID,
		BookingID:          pgconv.UUIDPtrFromPgtype(row.BookingID),
		TourID:             row.TourID,
		CustomerEmail:      row.CustomerEmail,
		RequestedBookingID: pgconv.UUIDPtrFromPgtype(row.RequestedBookingID),
		Rail:               rail,
		Reference:          row.ExternalRef,
		Amount:             amount,
		Status:             status,
		FailureReason:      pgconv.StringPtrFromPgtype(row.FailureReason),
		ClaimHash:          row.ClaimHash,
		VerifyAttempts:     row.VerifyAttempts,
		NotFoundAttempts:   row.NotFoundAttempts,
		LeaseUntil:         pgconv.TimeFromPgtype(row.LeaseUntil),
		Settled:            moneyOrZero(row.SettledAmount, asset),
		Refunded:           moneyOrZero(row.RefundedAmount, asset),
		CompletedAt:        pgconv.TimePtrFromPgtype(row.CompletedAt),
		RefundedAt:         pgconv.TimePtrFromPgtype(row.RefundedAt),
		CreatedAt:          pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:          pgconv.TimeFromPgtype(row.UpdatedAt),
	}), nil
}

func PaymentToCompleteParams(p *payment.Payment) sqlc.CompletePaymentParams {
	return sqlc.CompletePaymentParams{
		BookingID:     pgconv.UUIDPtrToPgtype(p.BookingID()),
		SettledAmount: p.Settled().Amount(),
		Now:           pgconv.TimeToPgtype(p.UpdatedAt()),
		ID:            p.ID(),
	}
}

func PaymentToFailParams(p *payment.Payment) sqlc.FailPaymentParams {
	return sqlc.FailPaymentParams{
		FailureReason: pgconv.StringPtrToPgtype(p.FailureReason()),
		Now:           pgconv.TimeToPgtype(p.UpdatedAt()),
		ID:            p.ID(),
	}
}

func PaymentToRefundParams(p *payment.Payment, refundRef string) sqlc.RefundPaymentParams {
	ref := pgtype.Text{Valid: false}
	if refundRef != "" {
		ref = pgconv.StringToPgtype(refundRef)
	}
	return sqlc.RefundPaymentParams{
		RefundedAmount: p.Refunded().Amount(),
		RefundRef:      ref,
		Now:            pgconv.TimeToPgtype(p.UpdatedAt()),
		ID:             p.ID(),
	}
}

func moneyOrZero(amount decimal.Decimal, asset payment.Asset) payment.Money {
	m, err := payment.NewMoney(amount, asset)
	if err != nil {
		return payment.ZeroMoney(asset)
	}
	return m
}
