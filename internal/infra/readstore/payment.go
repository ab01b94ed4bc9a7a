package readstore

import (
	"context"

	"tourpay/internal/infra"
	sqlc "tourpay/internal/infra/sqlc/generated"
	"tourpay/internal/pkg/pgconv"
	"tourpay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

type PaymentViewQueries interface {
	GetPaymentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	ListPaymentsByBookingID(ctx context.Context, db sqlc.DBTX, bookingID pgtype.UUID) ([]sqlc.Payments, error)
}

type PaymentReadStore struct {
	queries PaymentViewQueries
	db      sqlc.DBTX
}

func NewPaymentReadStore(queries PaymentViewQueries, db sqlc.DBTX) *PaymentReadStore {
	return &PaymentReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *PaymentReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PaymentView, error) {
	row, err := r.queries.GetPaymentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}
	return rowToPaymentView(row), nil
}

func (r *PaymentReadStore) FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*queries.PaymentView, error) {
	rows, err := r.queries.ListPaymentsByBookingID(ctx, r.db, pgconv.UUIDToPgtype(bookingID))
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments by booking", err)
	}

	result := make([]*queries.PaymentView, len(rows))
	for i, row := range rows {
		result[i] = rowToPaymentView(row)
	}
	return result, nil
}

func rowToPaymentView(row sqlc.Payments) *queries.PaymentView {
	return &queries.PaymentView{
		ID:             row.ID,
		BookingID:      pgconv.UUIDPtrFromPgtype(row.BookingID),
		TourID:         row.TourID,
		Rail:           row.Rail,
		Reference:      row.ExternalRef,
		Amount:         row.Amount,
		Asset:          row.Asset,
		Status:         row.Status,
		FailureReason:  pgconv.StringPtrFromPgtype(row.FailureReason),
		VerifyAttempts: row.VerifyAttempts,
		SettledAmount:  row.SettledAmount,
		RefundedAmount: row.RefundedAmount,
		CompletedAt:    pgconv.TimePtrFromPgtype(row.CompletedAt),
		RefundedAt:     pgconv.TimePtrFromPgtype(row.RefundedAt),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
		UpdatedAt:      pgconv.TimeFromPgtype(row.UpdatedAt),
	}
}
