//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"tourpay/internal/domain/payment"
	"tourpay/internal/pkg/clock"
	"tourpay/internal/pkg/config"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/commands"
	commandsmock "tourpay/tests/mock/commands"
	sharedmock "tourpay/tests/mock/shared"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func stalePayment(t *testing.T, reference string, createdAt time.Time) *payment.Payment {
	t.Helper()
	claim, err := payment.NewClaim("fast-chain", reference, decimal.RequireFromString("0.15"), kayakTourID, "", nil)
	require.NoError(t, err)
	return payment.NewProcessingPayment(claim, createdAt, time.Second)
}

func TestSweeper_Sweep(t *testing.T) {
	ctx := context.Background()
	cfg := config.NewTestConfig()
	now := baseTime.Add(48 * time.Hour)

	recent := now.Add(-time.Hour)
	completes := stalePayment(t, "SIG-completes", recent)
	stillPending := stalePayment(t, "SIG-pending", recent)
	rejected := stalePayment(t, "SIG-rejected", recent)
	broken := stalePayment(t, "SIG-broken", recent)
	abandoned := stalePayment(t, "SIG-abandoned", now.Add(-cfg.Sweeper.VerificationTTL-time.Minute))

	result := func(status payment.Status) *commands.ClaimResult {
		return &commands.ClaimResult{Status: status.String()}
	}

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	m := newTxMocks(ctrl)
	reconciler := commandsmock.NewMockReconcileCommands(ctrl)

	uow.EXPECT().Direct().Return(m.tx).AnyTimes()
	m.payments.EXPECT().ListStale(ctx, now, now.Add(-cfg.Sweeper.Grace), cfg.Sweeper.Batch).
		Return([]*payment.Payment{completes, stillPending, rejected, broken, abandoned}, nil)

	gomock.InOrder(
		reconciler.EXPECT().Resume(ctx, completes.ID()).Return(result(payment.StatusCompleted), nil),
		reconciler.EXPECT().Resume(ctx, stillPending.ID()).Return(result(payment.StatusProcessing), nil),
		reconciler.EXPECT().Resume(ctx, rejected.ID()).Return(result(payment.StatusFailed), nil),
		reconciler.EXPECT().Resume(ctx, broken.ID()).Return(nil, errors.New("rpc down")),
		reconciler.EXPECT().Expire(ctx, abandoned.ID()).Return(result(payment.StatusFailed), nil),
	)

	sut := commands.NewSweeper(uow, reconciler, clock.NewMockClock(now), cfg, discardLogger())
	report, err := sut.Sweep(ctx)
	require.NoError(t, err)

	assert.Equal(t, &commands.SweepReport{
		Scanned:   5,
		Completed: 1,
		Failed:    1,
		Expired:   1,
		Pending:   1,
		Errors:    1,
	}, report)
}

func TestSweeper_Sweep_ListFailure(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	uow := sharedmock.NewMockUnitOfWork(ctrl)
	m := newTxMocks(ctrl)
	uow.EXPECT().Direct().Return(m.tx).AnyTimes()
	m.payments.EXPECT().ListStale(ctx, gomock.Any(), gomock.Any(), gomock.Any()).Return(nil, errors.New("pool exhausted"))

	sut := commands.NewSweeper(uow, commandsmock.NewMockReconcileCommands(ctrl), clock.NewMockClock(baseTime), config.NewTestConfig(), discardLogger())
	report, err := sut.Sweep(ctx)
	assert.Nil(t, report)
	assert.True(t, errs.Is(err, errs.ErrDatabaseOperationFailed))
}

// The sweeper against the in-memory ledger: a claim left pending is finished by the next
// sweep once the rail confirms.
func TestSweeper_Sweep_FinishesAbandonedClaim(t *testing.T) {
	ctx := context.Background()
	f := newReconcilerFixture(&stubVerifier{verdicts: []payment.VerifyResult{
		payment.Pending("processed"),
		payment.Confirmed(sol("0.15"), "finalized"),
	}})

	first, err := f.sut.Submit(ctx, fastChainClaim("0.15"))
	require.NoError(t, err)
	require.Equal(t, commands.MsgPending, first.Message)

	cfg := config.NewTestConfig()
	sweeper := commands.NewSweeper(f.store, f.sut, f.clock, cfg, discardLogger())

	// inside the grace window nothing is picked up
	report, err := sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Zero(t, report.Scanned)

	f.clock.Add(cfg.Sweeper.Grace + time.Second)
	report, err = sweeper.Sweep(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Scanned)
	assert.Equal(t, 1, report.Completed)

	stored := f.store.payment(*first.PaymentID)
	assert.Equal(t, payment.StatusCompleted, stored.Status())
	assert.NotNil(t, stored.BookingID())
}
