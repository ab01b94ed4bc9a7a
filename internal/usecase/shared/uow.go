package shared

import (
	"context"
	"time"

	"tourpay/internal/domain/booking"
	"tourpay/internal/domain/payment"
	"tourpay/internal/domain/tour"
	sqlc "tourpay/internal/infra/sqlc/generated"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// WithDB: Single query operations using implicit transactions
	WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error
	// Direct: Repositories bound to the pool; every statement commits on its own.
	// The ledger gate relies on this so a claim is visible to concurrent requests at once.
	Direct() Tx
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Payments() PaymentRepository
	Bookings() BookingRepository
	Notifications() NotificationRepository
	Reads() CommandReads
	DB() sqlc.DBTX
}

type CommandReads interface {
	TourByID(ctx context.Context, id int64) (*tour.Tour, error)
	BookingByID(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
}

type PaymentRepository interface {
	// InsertClaim reports false when the (rail, reference) pair is already claimed.
	InsertClaim(ctx context.Context, p *payment.Payment) (bool, error)
	FindByRailRef(ctx context.Context, rail payment.Rail, reference string) (*payment.Payment, error)
	FindByID(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*payment.Payment, error)
	// ReacquireLease returns nil when the lease is still held by someone else.
	ReacquireLease(ctx context.Context, id uuid.UUID, leaseUntil, now time.Time) (*payment.Payment, error)
	// ReleaseLease ends the lease, counts one more verification and stores the not_found streak.
	ReleaseLease(ctx context.Context, id uuid.UUID, notFoundAttempts int32, now time.Time) (int32, error)
	MarkCompleted(ctx context.Context, p *payment.Payment) error
	MarkFailed(ctx context.Context, p *payment.Payment) error
	MarkRefunded(ctx context.Context, p *payment.Payment, refundRef string) error
	ListStale(ctx context.Context, now, updatedBefore time.Time, limit int32) ([]*payment.Payment, error)
}

type BookingRepository interface {
	Create(ctx context.Context, b *booking.Booking) error
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*booking.Booking, error)
	// UpdateStatus persists b.Status() only if the stored row is still in status from.
	UpdateStatus(ctx context.Context, b *booking.Booking, from booking.Status) error
}

type NotificationRepository interface {
	CreateJob(ctx context.Context, kind, topic string, payload []byte, runAt time.Time) error
	ClaimQueued(ctx context.Context, now time.Time, limit int32) ([]*NotificationJob, error)
	MarkSent(ctx context.Context, id uuid.UUID) error
	Reschedule(ctx context.Context, id uuid.UUID, status, lastError string, runAt time.Time) error
}
