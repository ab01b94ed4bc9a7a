package queries

import (
	"context"

	"tourpay/internal/infra"
	"tourpay/internal/pkg/errs"

	"github.com/google/uuid"
)

var ErrBookingNotFound = errs.New("booking not found")

type BookingReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type BookingQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error)
}

type bookingQueriesImpl struct {
	bookings BookingReadStore
	payments PaymentReadStore
}

func NewBookingQueries(bookings BookingReadStore, payments PaymentReadStore) BookingQueries {
	return &bookingQueriesImpl{bookings: bookings, payments: payments}
}

func (q *bookingQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BookingView, error) {
	view, err := q.bookings.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrBookingNotFound)
		}
		return nil, err
	}

	payments, err := q.payments.FindByBookingID(ctx, id)
	if err != nil {
		return nil, err
	}
	view.Payments = payments
	return view, nil
}
