package commands

import (
	"context"
	"time"

	"tourpay/internal/domain/booking"
	"tourpay/internal/infra"
	"tourpay/internal/pkg/clock"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	TourID        int64
	CustomerEmail string
}

type BookingCommands interface {
	Create(ctx context.Context, req CreateBookingRequest) (uuid.UUID, error)
	Cancel(ctx context.Context, id uuid.UUID) error
	Complete(ctx context.Context, id uuid.UUID) error
}

type bookingUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewBookingUseCase(uow shared.UnitOfWork, clk clock.Clock) BookingCommands {
	return &bookingUseCaseImpl{uow: uow, clock: clk}
}

func (uc *bookingUseCaseImpl) Create(ctx context.Context, req CreateBookingRequest) (uuid.UUID, error) {
	if _, err := uc.uow.CommandReads().TourByID(ctx, req.TourID); err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return uuid.Nil, ErrTourNotFound
		}
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	b, err := booking.NewPendingBooking(req.TourID, req.CustomerEmail, uc.clock.Now())
	if err != nil {
		return uuid.Nil, errs.Mark(err, ErrInvalidClaim)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Bookings().Create(ctx, b)
	})
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return b.ID(), nil
}

func (uc *bookingUseCaseImpl) Cancel(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, TopicBookingCancelled, (*booking.Booking).Cancel)
}

func (uc *bookingUseCaseImpl) Complete(ctx context.Context, id uuid.UUID) error {
	return uc.transition(ctx, id, TopicBookingCompleted, (*booking.Booking).Complete)
}

func (uc *bookingUseCaseImpl) transition(ctx context.Context, id uuid.UUID, topic string, apply func(*booking.Booking, time.Time) error) error {
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		b, err := tx.Bookings().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		from := b.Status()
		now := uc.clock.Now()
		if err := apply(b, now); err != nil {
			return err
		}
		if err := tx.Bookings().UpdateStatus(ctx, b, from); err != nil {
			return err
		}
		return enqueue(ctx, tx, topic, newBookingEvent(b, now), now)
	})

	switch {
	case err == nil:
		return nil
	case infra.IsKind(err, infra.KindNotFound):
		return ErrBookingNotFound
	case errs.Is(err, booking.ErrInvalidTransition), infra.IsKind(err, infra.KindStaleState):
		return errs.Mark(err, ErrInvalidTransition)
	default:
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
}
