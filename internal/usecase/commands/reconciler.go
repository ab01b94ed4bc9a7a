package commands

import (
	"context"
	"log/slog"
	"time"

	"tourpay/internal/domain/booking"
	"tourpay/internal/domain/payment"
	"tourpay/internal/infra"
	"tourpay/internal/pkg/clock"
	"tourpay/internal/pkg/config"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/shared"

	"github.com/cenkalti/backoff/v4"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	MsgVerified      = "payment verified"
	MsgInFlight      = "verification in progress"
	MsgPending       = "payment is pending confirmation, retry later"
	MsgRefunded      = "payment was refunded"
	MsgCancelled     = "payment was cancelled"
	ReasonNotFound   = "transaction not found on rail"
	ReasonNotPayable = "booking not payable"
	ReasonExpired    = "verification expired"
)

var errBookingNotPayable = errs.New("requested booking cannot take this payment")

type ClaimRequest struct {
	Rail          string
	Reference     string
	Amount        decimal.Decimal
	TourID        int64
	CustomerEmail string
	BookingID     *uuid.UUID
}

// ClaimResult is what a submitter sees. Pending and in-flight claims are not errors.
type ClaimResult struct {
	Success   bool
	BookingID *uuid.UUID
	PaymentID *uuid.UUID
	Status    string
	Message   string
}

type AuditReport struct {
	PaymentID      uuid.UUID
	Rail           payment.Rail
	Reference      string
	State          payment.VerifyState
	Detail         string
	StillConfirmed bool
}

type ReconcileCommands interface {
	Submit(ctx context.Context, req ClaimRequest) (*ClaimResult, error)
	// Resume re-verifies an existing processing payment whose lease has lapsed.
	Resume(ctx context.Context, paymentID uuid.UUID) (*ClaimResult, error)
	// Audit re-asks the rail about a completed chain payment. It never writes.
	Audit(ctx context.Context, paymentID uuid.UUID) (*AuditReport, error)
	// Expire fails a processing payment that never settled.
	Expire(ctx context.Context, paymentID uuid.UUID) (*ClaimResult, error)
}

type reconcilerImpl struct {
	uow       shared.UnitOfWork
	gate      *LedgerGate
	verifiers *shared.Verifiers
	clock     clock.Clock
	cfg       config.ReconcileConfig
	logger    *slog.Logger
	tracer    trace.Tracer
}

func NewReconciler(
	uow shared.UnitOfWork,
	verifiers *shared.Verifiers,
	clk clock.Clock,
	cfg config.Config,
	logger *slog.Logger,
) ReconcileCommands {
	return &reconcilerImpl{
		uow:       uow,
		gate:      NewLedgerGate(uow, clk, cfg.Reconcile.ClaimLease),
		verifiers: verifiers,
		clock:     clk,
		cfg:       cfg.Reconcile,
		logger:    logger.With("component", "reconciler"),
		tracer:    otel.Tracer("tourpay/reconciler"),
	}
}

func (r *reconcilerImpl) Submit(ctx context.Context, req ClaimRequest) (*ClaimResult, error) {
	if req.TourID <= 0 {
		return nil, errs.Wrap(ErrInvalidClaim, "tourId must be positive")
	}
	claim, err := payment.NewClaim(req.Rail, req.Reference, req.Amount, req.TourID, req.CustomerEmail, req.BookingID)
	if err != nil {
		return nil, errs.Mark(err, ErrInvalidClaim)
	}

	ctx, span := r.tracer.Start(ctx, "reconcile.submit", trace.WithAttributes(
		attribute.String("rail", claim.Rail.String()),
		attribute.Int64("tour_id", claim.TourID),
	))
	defer span.End()

	price, err := r.priceFor(ctx, claim.TourID, claim.Rail)
	if err != nil {
		return nil, err
	}
	if claim.BookingID != nil {
		if _, err := r.uow.CommandReads().BookingByID(ctx, *claim.BookingID); err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, ErrBookingNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
	}
	verifier, err := r.verifiers.For(claim.Rail)
	if err != nil {
		return nil, err
	}

	outcome, err := r.gate.Claim(ctx, claim)
	if err != nil {
		return nil, err
	}

	switch outcome.Kind {
	case ClaimAlreadyTerminal:
		return resultFromPayment(outcome.Payment), nil
	case ClaimInFlight:
		return inFlightResult(outcome.Payment), nil
	}
	return r.reconcile(ctx, outcome.Payment, verifier, price)
}

func (r *reconcilerImpl) Resume(ctx context.Context, paymentID uuid.UUID) (*ClaimResult, error) {
	outcome, err := r.gate.Reacquire(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}

	switch outcome.Kind {
	case ClaimAlreadyTerminal:
		return resultFromPayment(outcome.Payment), nil
	case ClaimInFlight:
		return inFlightResult(outcome.Payment), nil
	}

	p := outcome.Payment
	verifier, err := r.verifiers.For(p.Rail())
	if err == nil {
		var price payment.Money
		if price, err = r.priceFor(ctx, p.TourID(), p.Rail()); err == nil {
			return r.reconcile(ctx, p, verifier, price)
		}
	}

	// Give the lease back so the payment is not stuck until it expires.
	if _, releaseErr := r.gate.Release(ctx, p.ID(), p.NotFoundAttempts()); releaseErr != nil {
		r.logger.WarnContext(ctx, "failed to release lease", "payment_id", p.ID(), "error", releaseErr)
	}
	return nil, err
}

func (r *reconcilerImpl) Expire(ctx context.Context, paymentID uuid.UUID) (*ClaimResult, error) {
	final, err := r.finish(ctx, paymentID, func(ctx context.Context, tx shared.Tx, p *payment.Payment, now time.Time) error {
		return r.applyFailure(ctx, tx, p, ReasonExpired, now)
	})
	if err != nil {
		return nil, err
	}
	return resultFromPayment(final), nil
}

func (r *reconcilerImpl) Audit(ctx context.Context, paymentID uuid.UUID) (*AuditReport, error) {
	p, err := r.uow.Direct().Payments().FindByID(ctx, paymentID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if p.Status() != payment.StatusCompleted || !p.Rail().IsChain() {
		return nil, ErrNotAuditable
	}
	verifier, err := r.verifiers.For(p.Rail())
	if err != nil {
		return nil, err
	}

	verdict, err := r.verify(ctx, verifier, p)
	if err != nil {
		return nil, err
	}

	report := &AuditReport{
		PaymentID:      p.ID(),
		Rail:           p.Rail(),
		Reference:      p.Reference(),
		State:          verdict.State,
		Detail:         verdict.Detail,
		StillConfirmed: verdict.State == payment.VerifyConfirmed,
	}
	if !report.StillConfirmed {
		r.logger.ErrorContext(ctx, "suspected reorg",
			"payment_id", p.ID(),
			"rail", p.Rail(),
			"reference", p.Reference(),
			"verdict", verdict.State,
			"detail", verdict.Detail,
			"error", errs.ErrSuspectedReorg,
		)
	}
	return report, nil
}

func (r *reconcilerImpl) priceFor(ctx context.Context, tourID int64, rail payment.Rail) (payment.Money, error) {
	t, err := r.uow.CommandReads().TourByID(ctx, tourID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return payment.Money{}, ErrTourNotFound
		}
		return payment.Money{}, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	price, err := t.PriceFor(rail.Asset())
	if err != nil {
		return payment.Money{}, errs.Mark(err, ErrPriceUnavailable)
	}
	return price, nil
}

// reconcile runs with the lease held.
func (r *reconcilerImpl) reconcile(ctx context.Context, p *payment.Payment, verifier shared.Verifier, price payment.Money) (*ClaimResult, error) {
	verdict, err := r.verify(ctx, verifier, p)
	if err != nil {
		r.logger.WarnContext(ctx, "rail unreachable, keeping payment pending",
			"payment_id", p.ID(),
			"rail", p.Rail(),
			"error", err,
		)
		// No answer says nothing about whether the rail has seen the transaction.
		return r.release(ctx, p, p.NotFoundAttempts())
	}

	r.logger.InfoContext(ctx, "rail verdict",
		"payment_id", p.ID(),
		"rail", p.Rail(),
		"verdict", verdict.State,
		"detail", verdict.Detail,
	)

	switch verdict.State {
	case payment.VerifyConfirmed:
		return r.settle(ctx, p, verdict, price)
	case payment.VerifyFailed:
		return r.fail(ctx, p, verdict.Detail)
	default:
		streak := p.NotFoundStreakAfter(verdict.State)
		if verdict.State == payment.VerifyNotFound && streak >= r.cfg.NotFoundMaxAttempts {
			return r.fail(ctx, p, ReasonNotFound)
		}
		return r.release(ctx, p, streak)
	}
}

// verify asks the rail under RAIL_TIMEOUT, retrying transport errors with backoff. An
// error return means the rail could not answer in time.
func (r *reconcilerImpl) verify(ctx context.Context, verifier shared.Verifier, p *payment.Payment) (payment.VerifyResult, error) {
	ctx, cancel := context.WithTimeout(ctx, r.cfg.RailTimeout)
	defer cancel()

	ctx, span := r.tracer.Start(ctx, "rail.verify", trace.WithAttributes(
		attribute.String("rail", p.Rail().String()),
		attribute.String("payment_id", p.ID().String()),
	))
	defer span.End()

	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = 200 * time.Millisecond
	policy.MaxInterval = 2 * time.Second
	policy.MaxElapsedTime = 0

	attempt := 0
	verdict, err := backoff.RetryWithData(func() (payment.VerifyResult, error) {
		attempt++
		result, err := verifier.Verify(ctx, p.Reference(), p.Amount())
		if err != nil {
			r.logger.DebugContext(ctx, "rail call failed", "payment_id", p.ID(), "attempt", attempt, "error", err)
		}
		return result, err
	}, backoff.WithContext(policy, ctx))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "rail unreachable")
		return payment.VerifyResult{}, errs.Mark(err, errs.ErrRailTransport)
	}

	span.SetAttributes(attribute.String("verdict", verdict.State.String()))
	return verdict, nil
}

func (r *reconcilerImpl) settle(ctx context.Context, p *payment.Payment, verdict payment.VerifyResult, price payment.Money) (*ClaimResult, error) {
	if !p.Amount().Equal(price) {
		return r.fail(ctx, p, errs.ErrAmountMismatch.Error())
	}
	if r.cfg.StrictOnchainAmount && p.Rail().IsChain() && !verdict.Settled.Equal(p.Amount()) {
		return r.fail(ctx, p, errs.ErrAmountMismatch.Error())
	}

	final, err := r.finish(ctx, p.ID(), func(ctx context.Context, tx shared.Tx, locked *payment.Payment, now time.Time) error {
		b, err := r.bookingFor(ctx, tx, locked, now)
		if err != nil {
			return err
		}
		if err := locked.Complete(b.ID(), verdict.Settled, now); err != nil {
			return err
		}
		if err := tx.Payments().MarkCompleted(ctx, locked); err != nil {
			return err
		}
		if err := enqueue(ctx, tx, TopicPaymentCompleted, newPaymentEvent(locked, now), now); err != nil {
			return err
		}
		return enqueue(ctx, tx, TopicBookingConfirmed, newBookingEvent(b, now), now)
	})
	if errs.Is(err, errBookingNotPayable) {
		return r.fail(ctx, p, ReasonNotPayable)
	}
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "payment completed",
		"payment_id", final.ID(),
		"booking_id", final.BookingID(),
		"rail", final.Rail(),
	)
	return resultFromPayment(final), nil
}

// bookingFor confirms the requested booking, or creates a confirmed one when none was requested.
func (r *reconcilerImpl) bookingFor(ctx context.Context, tx shared.Tx, p *payment.Payment, now time.Time) (*booking.Booking, error) {
	if p.RequestedBookingID() == nil {
		b, err := booking.NewPaidBooking(p.TourID(), p.CustomerEmail(), now)
		if err != nil {
			return nil, err
		}
		if err := tx.Bookings().Create(ctx, b); err != nil {
			return nil, err
		}
		return b, nil
	}

	b, err := tx.Bookings().FindByIDForUpdate(ctx, *p.RequestedBookingID())
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errBookingNotPayable
		}
		return nil, err
	}
	from := b.Status()
	if err := b.ConfirmByPayment(p.TourID(), now); err != nil {
		return nil, errs.Mark(err, errBookingNotPayable)
	}
	if b.Status() != from {
		if err := tx.Bookings().UpdateStatus(ctx, b, from); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (r *reconcilerImpl) fail(ctx context.Context, p *payment.Payment, reason string) (*ClaimResult, error) {
	final, err := r.finish(ctx, p.ID(), func(ctx context.Context, tx shared.Tx, locked *payment.Payment, now time.Time) error {
		return r.applyFailure(ctx, tx, locked, reason, now)
	})
	if err != nil {
		return nil, err
	}

	r.logger.InfoContext(ctx, "payment failed",
		"payment_id", final.ID(),
		"rail", final.Rail(),
		"reason", final.FailureReason(),
	)
	return resultFromPayment(final), nil
}

func (r *reconcilerImpl) applyFailure(ctx context.Context, tx shared.Tx, p *payment.Payment, reason string, now time.Time) error {
	if err := p.Fail(reason, now); err != nil {
		return err
	}
	if err := tx.Payments().MarkFailed(ctx, p); err != nil {
		return err
	}
	return enqueue(ctx, tx, TopicPaymentFailed, newPaymentEvent(p, now), now)
}

// finish locks the payment and applies a terminal transition. A payment some other
// writer already finished is returned as stored.
func (r *reconcilerImpl) finish(
	ctx context.Context,
	id uuid.UUID,
	apply func(ctx context.Context, tx shared.Tx, p *payment.Payment, now time.Time) error,
) (*payment.Payment, error) {
	var final *payment.Payment
	err := r.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		locked, err := tx.Payments().FindByIDForUpdate(ctx, id)
		if err != nil {
			return err
		}
		final = locked
		if locked.Status() != payment.StatusProcessing {
			return nil
		}
		return apply(ctx, tx, locked, r.clock.Now())
	})
	if err != nil {
		if errs.Is(err, errBookingNotPayable) {
			return nil, err
		}
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return final, nil
}

func (r *reconcilerImpl) release(ctx context.Context, p *payment.Payment, notFoundAttempts int32) (*ClaimResult, error) {
	if _, err := r.gate.Release(ctx, p.ID(), notFoundAttempts); err != nil {
		if !infra.IsKind(err, infra.KindStaleState) {
			return nil, err
		}
		// Finished by someone else between our verdict and the release.
		stored, err := r.uow.Direct().Payments().FindByID(ctx, p.ID())
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return resultFromPayment(stored), nil
	}

	id := p.ID()
	return &ClaimResult{
		Success:   false,
		PaymentID: &id,
		Status:    payment.StatusProcessing.String(),
		Message:   MsgPending,
	}, nil
}

func inFlightResult(p *payment.Payment) *ClaimResult {
	id := p.ID()
	return &ClaimResult{
		Success:   false,
		PaymentID: &id,
		Status:    p.Status().String(),
		Message:   MsgInFlight,
	}
}

func resultFromPayment(p *payment.Payment) *ClaimResult {
	id := p.ID()
	res := &ClaimResult{
		PaymentID: &id,
		BookingID: p.BookingID(),
		Status:    p.Status().String(),
	}

	switch p.Status() {
	case payment.StatusCompleted:
		res.Success = true
		res.Message = MsgVerified
	case payment.StatusFailed:
		res.Message = payment.SanitizeReason("")
		if reason := p.FailureReason(); reason != nil {
			res.Message = *reason
		}
	case payment.StatusRefunded:
		res.Message = MsgRefunded
	case payment.StatusCancelled:
		res.Message = MsgCancelled
	default:
		res.Message = MsgPending
	}
	return res
}
