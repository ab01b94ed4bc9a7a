package commands

import (
	"context"

	"tourpay/internal/domain/payment"
	"tourpay/internal/infra"
	"tourpay/internal/pkg/clock"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RefundRequest struct {
	PaymentID uuid.UUID
	// Amount nil refunds everything that settled.
	Amount *decimal.Decimal
}

type RefundResult struct {
	PaymentID uuid.UUID
	RefundID  string
	Amount    payment.Money
	Status    string
}

type RefundCommands interface {
	Refund(ctx context.Context, req RefundRequest) (*RefundResult, error)
}

type refundUseCaseImpl struct {
	uow       shared.UnitOfWork
	processor shared.CardProcessor
	clock     clock.Clock
}

func NewRefundUseCase(uow shared.UnitOfWork, processor shared.CardProcessor, clk clock.Clock) RefundCommands {
	return &refundUseCaseImpl{uow: uow, processor: processor, clock: clk}
}

func RefundIdempotencyKey(paymentID uuid.UUID) string {
	return "refund-" + paymentID.String()
}

// Refund holds the payment row lock across the processor call. The idempotency key makes a
// retried transaction reuse the refund Stripe already created.
func (uc *refundUseCaseImpl) Refund(ctx context.Context, req RefundRequest) (*RefundResult, error) {
	var result *RefundResult
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		p, err := tx.Payments().FindByIDForUpdate(ctx, req.PaymentID)
		if err != nil {
			return err
		}
		if !p.Rail().SupportsRefund() {
			return ErrRefundUnsupported
		}
		if uc.processor == nil {
			return shared.ErrRailUnavailable
		}

		amount := payment.ZeroMoney(p.Rail().Asset())
		if req.Amount != nil {
			if amount, err = payment.NewMoney(*req.Amount, p.Rail().Asset()); err != nil {
				return errs.Mark(err, ErrInvalidAmount)
			}
		}

		now := uc.clock.Now()
		if err := p.Refund(amount, now); err != nil {
			return mapRefundErr(err)
		}

		receipt, err := uc.processor.Refund(ctx, shared.RefundParams{
			PaymentID:      p.ID(),
			Reference:      p.Reference(),
			Amount:         p.Refunded(),
			IdempotencyKey: RefundIdempotencyKey(p.ID()),
		})
		if err != nil {
			return errs.Wrap(err, "card processor refund")
		}

		if err := tx.Payments().MarkRefunded(ctx, p, receipt.ID); err != nil {
			return err
		}
		if err := enqueue(ctx, tx, TopicPaymentRefunded, newPaymentEvent(p, now), now); err != nil {
			return err
		}

		result = &RefundResult{
			PaymentID: p.ID(),
			RefundID:  receipt.ID,
			Amount:    p.Refunded(),
			Status:    receipt.Status,
		}
		return nil
	})
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		if infra.IsKind(err, infra.KindStaleState) {
			return nil, errs.Mark(err, ErrInvalidTransition)
		}
		return nil, err
	}
	return result, nil
}

func mapRefundErr(err error) error {
	switch {
	case errs.Is(err, payment.ErrRefundUnsupported):
		return ErrRefundUnsupported
	case errs.Is(err, payment.ErrInvalidTransition):
		return errs.Mark(err, ErrInvalidTransition)
	default:
		return errs.Mark(err, ErrInvalidAmount)
	}
}
