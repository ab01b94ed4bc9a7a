package repository

import (
	"context"
	"time"

	"tourpay/internal/domain/payment"
	"tourpay/internal/infra"
	"tourpay/internal/infra/repository/converter"
	sqlc "tourpay/internal/infra/sqlc/generated"
	"tourpay/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type PaymentWriteQueries interface {
	InsertPaymentClaim(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPaymentClaimParams) (sqlc.Payments, error)
	GetPaymentByRailRef(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPaymentByRailRefParams) (sqlc.Payments, error)
	GetPaymentByID(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	GetPaymentByIDForUpdate(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.Payments, error)
	ReacquirePaymentLease(ctx context.Context, db sqlc.DBTX, arg sqlc.ReacquirePaymentLeaseParams) (sqlc.Payments, error)
	ReleasePaymentLease(ctx context.Context, db sqlc.DBTX, arg sqlc.ReleasePaymentLeaseParams) (int32, error)
	CompletePayment(ctx context.Context, db sqlc.DBTX, arg sqlc.CompletePaymentParams) (int64, error)
	FailPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.FailPaymentParams) (int64, error)
	RefundPayment(ctx context.Context, db sqlc.DBTX, arg sqlc.RefundPaymentParams) (int64, error)
	ListStalePayments(ctx context.Context, db sqlc.DBTX, arg sqlc.ListStalePaymentsParams) ([]sqlc.Payments, error)
}

type PaymentRepository struct {
	queries PaymentWriteQueries
	db      sqlc.DBTX
}

func NewPaymentRepository(queries PaymentWriteQueries, db sqlc.DBTX) *PaymentRepository {
	return &PaymentRepository{
		queries: queries,
		db:      db,
	}
}

// InsertClaim is the ledger gate: the unique (rail, external_ref) constraint
// lets exactly one concurrent insert through.
func (r *PaymentRepository) InsertClaim(ctx context.Context, p *payment.Payment) (bool, error) {
	_, err := r.queries.InsertPaymentClaim(ctx, r.db, converter.PaymentToInsertParams(p))
	if err != nil {
		if pgconv.IsNoRows(err) {
			return false, nil
		}
		return false, infra.WrapRepoErr("failed to insert payment claim", err)
	}
	return true, nil
}

func (r *PaymentRepository) FindByRailRef(ctx context.Context, rail payment.Rail, reference string) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByRailRef(ctx, r.db, sqlc.GetPaymentByRailRefParams{
		Rail:        rail.String(),
		ExternalRef: reference,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by reference", err)
	}
	return toDomainPayment(row)
}

func (r *PaymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find payment by ID", err)
	}
	return toDomainPayment(row)
}

func (r *PaymentRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	row, err := r.queries.GetPaymentByIDForUpdate(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("payment not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to lock payment", err)
	}
	return toDomainPayment(row)
}

func (r *PaymentRepository) ReacquireLease(ctx context.Context, id uuid.UUID, leaseUntil, now time.Time) (*payment.Payment, error) {
	row, err := r.queries.ReacquirePaymentLease(ctx, r.db, sqlc.ReacquirePaymentLeaseParams{
		LeaseUntil: pgconv.TimeToPgtype(leaseUntil),
		Now:        pgconv.TimeToPgtype(now),
		ID:         id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, nil
		}
		return nil, infra.WrapRepoErr("failed to reacquire payment lease", err)
	}
	return toDomainPayment(row)
}

func (r *PaymentRepository) ReleaseLease(ctx context.Context, id uuid.UUID, notFoundAttempts int32, now time.Time) (int32, error) {
	attempts, err := r.queries.ReleasePaymentLease(ctx, r.db, sqlc.ReleasePaymentLeaseParams{
		Now:              pgconv.TimeToPgtype(now),
		NotFoundAttempts: notFoundAttempts,
		ID:               id,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return 0, infra.WrapRepoErr("payment is no longer processing", err, infra.KindStaleState)
		}
		return 0, infra.WrapRepoErr("failed to release payment lease", err)
	}
	return attempts, nil
}

func (r *PaymentRepository) MarkCompleted(ctx context.Context, p *payment.Payment) error {
	affected, err := r.queries.CompletePayment(ctx, r.db, converter.PaymentToCompleteParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to complete payment", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment is no longer processing", nil, infra.KindStaleState)
	}
	return nil
}

func (r *PaymentRepository) MarkFailed(ctx context.Context, p *payment.Payment) error {
	affected, err := r.queries.FailPayment(ctx, r.db, converter.PaymentToFailParams(p))
	if err != nil {
		return infra.WrapRepoErr("failed to fail payment", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment is no longer processing", nil, infra.KindStaleState)
	}
	return nil
}

func (r *PaymentRepository) MarkRefunded(ctx context.Context, p *payment.Payment, refundRef string) error {
	affected, err := r.queries.RefundPayment(ctx, r.db, converter.PaymentToRefundParams(p, refundRef))
	if err != nil {
		return infra.WrapRepoErr("failed to refund payment", err)
	}
	if affected == 0 {
		return infra.WrapRepoErr("payment is no longer completed", nil, infra.KindStaleState)
	}
	return nil
}

func (r *PaymentRepository) ListStale(ctx context.Context, now, updatedBefore time.Time, limit int32) ([]*payment.Payment, error) {
	rows, err := r.queries.ListStalePayments(ctx, r.db, sqlc.ListStalePaymentsParams{
		Now:           pgconv.TimeToPgtype(now),
		UpdatedBefore: pgconv.TimeToPgtype(updatedBefore),
		RowLimit:      limit,
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list stale payments", err)
	}

	result := make([]*payment.Payment, 0, len(rows))
	for _, row := range rows {
		p, err := toDomainPayment(row)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}
	return result, nil
}

func toDomainPayment(row sqlc.Payments) (*payment.Payment, error) {
	p, err := converter.PaymentFromRow(row)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt payment row", err)
	}
	return p, nil
}
