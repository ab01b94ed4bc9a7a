package commands

import (
	"context"
	"time"

	"tourpay/internal/domain/payment"
	"tourpay/internal/pkg/clock"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/shared"

	"github.com/google/uuid"
)

type ClaimOutcomeKind int

const (
	// ClaimAcquired: the caller holds the lease and must verify.
	ClaimAcquired ClaimOutcomeKind = iota
	// ClaimAlreadyTerminal: a stored outcome exists; the rail is not contacted again.
	ClaimAlreadyTerminal
	// ClaimInFlight: another invocation holds the lease.
	ClaimInFlight
)

type ClaimOutcome struct {
	Kind    ClaimOutcomeKind
	Payment *payment.Payment
}

// LedgerGate guarantees at most one verification per (rail, reference) at a time. The
// unique constraint and the leased conditional update are its only synchronization.
type LedgerGate struct {
	uow   shared.UnitOfWork
	clock clock.Clock
	lease time.Duration
}

func NewLedgerGate(uow shared.UnitOfWork, clk clock.Clock, lease time.Duration) *LedgerGate {
	return &LedgerGate{uow: uow, clock: clk, lease: lease}
}

func (g *LedgerGate) Claim(ctx context.Context, claim payment.Claim) (*ClaimOutcome, error) {
	now := g.clock.Now()
	payments := g.uow.Direct().Payments()

	candidate := payment.NewProcessingPayment(claim, now, g.lease)
	inserted, err := payments.InsertClaim(ctx, candidate)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if inserted {
		return &ClaimOutcome{Kind: ClaimAcquired, Payment: candidate}, nil
	}

	existing, err := payments.FindByRailRef(ctx, claim.Rail, claim.Reference)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if existing.ClaimHash() != claim.Fingerprint() {
		return nil, ErrClaimConflict
	}

	return g.resolve(ctx, existing, now)
}

// Reacquire takes the lease on an existing processing payment. Used by the sweeper.
func (g *LedgerGate) Reacquire(ctx context.Context, id uuid.UUID) (*ClaimOutcome, error) {
	existing, err := g.uow.Direct().Payments().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return g.resolve(ctx, existing, g.clock.Now())
}

func (g *LedgerGate) resolve(ctx context.Context, existing *payment.Payment, now time.Time) (*ClaimOutcome, error) {
	if existing.Status().IsTerminal() {
		return &ClaimOutcome{Kind: ClaimAlreadyTerminal, Payment: existing}, nil
	}
	if existing.LeaseActive(now) {
		return &ClaimOutcome{Kind: ClaimInFlight, Payment: existing}, nil
	}

	acquired, err := g.uow.Direct().Payments().ReacquireLease(ctx, existing.ID(), now.Add(g.lease), now)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if acquired == nil {
		return &ClaimOutcome{Kind: ClaimInFlight, Payment: existing}, nil
	}
	return &ClaimOutcome{Kind: ClaimAcquired, Payment: acquired}, nil
}

// Release ends the lease early so the next poll re-verifies at once, storing the
// consecutive not_found count. It returns the updated verification attempt count.
func (g *LedgerGate) Release(ctx context.Context, id uuid.UUID, notFoundAttempts int32) (int32, error) {
	attempts, err := g.uow.Direct().Payments().ReleaseLease(ctx, id, notFoundAttempts, g.clock.Now())
	if err != nil {
		return 0, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return attempts, nil
}
