package commands

import (
	"context"

	"tourpay/internal/domain/payment"
	"tourpay/internal/infra"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/shared"

	"github.com/google/uuid"
)

type IntentRequest struct {
	TourID        int64
	CustomerEmail string
	BookingID     *uuid.UUID
}

type IntentCommands interface {
	IssueIntent(ctx context.Context, req IntentRequest) (*shared.Intent, error)
}

// intentUseCaseImpl writes nothing: the payment row appears only when the intent is claimed.
type intentUseCaseImpl struct {
	uow       shared.UnitOfWork
	processor shared.CardProcessor
}

func NewIntentUseCase(uow shared.UnitOfWork, processor shared.CardProcessor) IntentCommands {
	return &intentUseCaseImpl{uow: uow, processor: processor}
}

func (uc *intentUseCaseImpl) IssueIntent(ctx context.Context, req IntentRequest) (*shared.Intent, error) {
	if uc.processor == nil {
		return nil, errs.Wrap(shared.ErrRailUnavailable, payment.RailCard.String())
	}
	if req.TourID <= 0 {
		return nil, errs.Wrap(ErrInvalidClaim, "tourId must be positive")
	}

	reads := uc.uow.CommandReads()
	t, err := reads.TourByID(ctx, req.TourID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrTourNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	price, err := t.PriceFor(payment.AssetUSD)
	if err != nil {
		return nil, errs.Mark(err, ErrPriceUnavailable)
	}

	if req.BookingID != nil {
		b, err := reads.BookingByID(ctx, *req.BookingID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if b.TourID() != t.ID() {
			return nil, errs.Wrap(ErrInvalidClaim, "booking belongs to a different tour")
		}
	}

	return uc.processor.CreateIntent(ctx, shared.IntentParams{
		TourID:        t.ID(),
		CustomerEmail: req.CustomerEmail,
		BookingID:     req.BookingID,
		Amount:        price,
	})
}
