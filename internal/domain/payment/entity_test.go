//go:build unit

package payment_test

import (
	"math/big"
	"strings"
	"testing"
	"time"

	"tourpay/internal/domain/payment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustClaim(t *testing.T, rail, ref, amount string) payment.Claim {
	t.Helper()
	claim, err := payment.NewClaim(rail, ref, decimal.RequireFromString(amount), 7, " Guest@Example.com ", nil)
	require.NoError(t, err)
	return claim
}

// =============================================================================
// Money
// =============================================================================

func TestMoney(t *testing.T) {
	t.Run("precision is bounded by the asset", func(t *testing.T) {
		_, err := payment.NewMoney(decimal.RequireFromString("10.001"), payment.AssetUSD)
		require.ErrorIs(t, err, payment.ErrAmountPrecision)

		m, err := payment.NewMoney(decimal.RequireFromString("0.000000001"), payment.AssetSOL)
		require.NoError(t, err)
		assert.Equal(t, int64(1), m.Minor())
	})

	t.Run("negative and unknown assets are rejected", func(t *testing.T) {
		_, err := payment.NewMoney(decimal.NewFromInt(-1), payment.AssetBTC)
		require.ErrorIs(t, err, payment.ErrNegativeAmount)

		_, err = payment.NewMoney(decimal.NewFromInt(1), payment.Asset("DOGE"))
		require.ErrorIs(t, err, payment.ErrInvalidAsset)
	})

	t.Run("minor unit conversions", func(t *testing.T) {
		usd := payment.MoneyFromMinor(15000, payment.AssetUSD)
		assert.Equal(t, "150", usd.Amount().String())
		assert.Equal(t, int64(15000), usd.Minor())

		wei, ok := new(big.Int).SetString("150000000000000000", 10)
		require.True(t, ok)
		eth := payment.MoneyFromBaseUnits(wei, payment.AssetETH)
		assert.True(t, eth.Amount().Equal(decimal.RequireFromString("0.15")))
		assert.True(t, payment.MoneyFromBaseUnits(nil, payment.AssetETH).IsZero())
	})

	t.Run("equality ignores trailing zeros but not assets", func(t *testing.T) {
		a, _ := payment.NewMoney(decimal.RequireFromString("0.150"), payment.AssetSOL)
		b, _ := payment.NewMoney(decimal.RequireFromString("0.15"), payment.AssetSOL)
		c, _ := payment.NewMoney(decimal.RequireFromString("0.15"), payment.AssetETH)
		assert.True(t, a.Equal(b))
		assert.False(t, a.Equal(c))

		_, err := a.GreaterThan(c)
		assert.ErrorIs(t, err, payment.ErrAssetMismatch)
	})
}

// =============================================================================
// Claim
// =============================================================================

func TestClaim(t *testing.T) {
	t.Run("normalizes its inputs", func(t *testing.T) {
		claim := mustClaim(t, "BTC", strings.ToUpper(btcTxID), "0.0025")
		assert.Equal(t, payment.RailUTXOChain, claim.Rail)
		assert.Equal(t, btcTxID, claim.Reference)
		assert.Equal(t, payment.AssetBTC, claim.Amount.Asset())
		assert.Equal(t, "guest@example.com", claim.CustomerEmail)
	})

	t.Run("fingerprint is stable across spellings of the same claim", func(t *testing.T) {
		a := mustClaim(t, "eth", strings.TrimPrefix(ethTxHash, "0x"), "0.150")
		b := mustClaim(t, "account-chain", ethTxHash, "0.15")
		assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	})

	t.Run("fingerprint changes with the claim context", func(t *testing.T) {
		base := mustClaim(t, "solana", solSignature, "0.15")
		other := base
		other.TourID = 8
		withBooking := base
		id := uuid.New()
		withBooking.BookingID = &id

		assert.NotEqual(t, base.Fingerprint(), other.Fingerprint())
		assert.NotEqual(t, base.Fingerprint(), withBooking.Fingerprint())
	})

	t.Run("rejects invalid input", func(t *testing.T) {
		_, err := payment.NewClaim("venmo", "x", decimal.NewFromInt(1), 1, "", nil)
		assert.ErrorIs(t, err, payment.ErrInvalidRail)

		_, err = payment.NewClaim("card", "ch_1", decimal.NewFromInt(1), 1, "", nil)
		assert.ErrorIs(t, err, payment.ErrInvalidReference)

		_, err = payment.NewClaim("card", "pi_1", decimal.RequireFromString("1.005"), 1, "", nil)
		assert.ErrorIs(t, err, payment.ErrAmountPrecision)
	})
}

// =============================================================================
// Payment state machine
// =============================================================================

func TestPayment_StateMachine(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("processing payment carries a lease", func(t *testing.T) {
		p := payment.NewProcessingPayment(mustClaim(t, "card", "pi_123", "150"), now, 30*time.Second)
		assert.Equal(t, payment.StatusProcessing, p.Status())
		assert.True(t, p.LeaseActive(now.Add(29*time.Second)))
		assert.False(t, p.LeaseActive(now.Add(30*time.Second)))
		assert.Nil(t, p.BookingID())
	})

	t.Run("complete links the booking", func(t *testing.T) {
		p := payment.NewProcessingPayment(mustClaim(t, "card", "pi_123", "150"), now, time.Minute)
		bookingID := uuid.New()
		require.NoError(t, p.Complete(bookingID, payment.MoneyFromMinor(15000, payment.AssetUSD), now))

		assert.Equal(t, payment.StatusCompleted, p.Status())
		require.NotNil(t, p.BookingID())
		assert.Equal(t, bookingID, *p.BookingID())
		require.NotNil(t, p.CompletedAt())
		assert.ErrorIs(t, p.Fail("late failure", now), payment.ErrInvalidTransition)
	})

	t.Run("terminal failure cannot be completed", func(t *testing.T) {
		p := payment.NewProcessingPayment(mustClaim(t, "solana", solSignature, "0.15"), now, time.Minute)
		require.NoError(t, p.Fail("amount mismatch", now))
		require.NotNil(t, p.FailureReason())
		assert.Equal(t, "amount mismatch", *p.FailureReason())
		assert.True(t, p.Status().IsTerminal())
		assert.ErrorIs(t, p.Complete(uuid.New(), payment.ZeroMoney(payment.AssetSOL), now), payment.ErrInvalidTransition)
	})

	t.Run("refund is card only", func(t *testing.T) {
		p := payment.NewProcessingPayment(mustClaim(t, "solana", solSignature, "0.15"), now, time.Minute)
		require.NoError(t, p.Complete(uuid.New(), payment.ZeroMoney(payment.AssetSOL), now))
		assert.ErrorIs(t, p.Refund(payment.ZeroMoney(payment.AssetSOL), now), payment.ErrRefundUnsupported)
		assert.Equal(t, payment.StatusCompleted, p.Status())
	})

	t.Run("refund requires completion and respects the ceiling", func(t *testing.T) {
		p := payment.NewProcessingPayment(mustClaim(t, "card", "pi_123", "150"), now, time.Minute)
		assert.ErrorIs(t, p.Refund(payment.ZeroMoney(payment.AssetUSD), now), payment.ErrInvalidTransition)

		require.NoError(t, p.Complete(uuid.New(), payment.MoneyFromMinor(15000, payment.AssetUSD), now))
		assert.ErrorIs(t, p.Refund(payment.MoneyFromMinor(15001, payment.AssetUSD), now), payment.ErrRefundExceedsTotal)

		require.NoError(t, p.Refund(payment.MoneyFromMinor(5000, payment.AssetUSD), now))
		assert.Equal(t, payment.StatusRefunded, p.Status())
		assert.Equal(t, int64(5000), p.Refunded().Minor())
	})

	t.Run("zero refund amount means full refund", func(t *testing.T) {
		p := payment.NewProcessingPayment(mustClaim(t, "card", "pi_123", "150"), now, time.Minute)
		require.NoError(t, p.Complete(uuid.New(), payment.MoneyFromMinor(15000, payment.AssetUSD), now))
		require.NoError(t, p.Refund(payment.ZeroMoney(payment.AssetUSD), now))
		assert.Equal(t, int64(15000), p.Refunded().Minor())
	})
}

func TestPayment_NotFoundStreakAfter(t *testing.T) {
	p := payment.ReconstructPayment(payment.ReconstructParams{
		ID:               uuid.New(),
		Rail:             payment.RailFastChain,
		Status:           payment.StatusProcessing,
		NotFoundAttempts: 2,
	})

	testCases := []struct {
		state  payment.VerifyState
		expect int32
	}{
		{payment.VerifyNotFound, 3},
		{payment.VerifyPending, 0},
		{payment.VerifyConfirmed, 2},
		{payment.VerifyFailed, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.state.String(), func(t *testing.T) {
			assert.Equal(t, tc.expect, p.NotFoundStreakAfter(tc.state))
		})
	}
	assert.Equal(t, int32(2), p.NotFoundAttempts())
}

func TestStatus_Transitions(t *testing.T) {
	testCases := []struct {
		from, to payment.Status
		allowed  bool
	}{
		{payment.StatusPending, payment.StatusProcessing, true},
		{payment.StatusPending, payment.StatusFailed, true},
		{payment.StatusProcessing, payment.StatusCompleted, true},
		{payment.StatusProcessing, payment.StatusFailed, true},
		{payment.StatusProcessing, payment.StatusCancelled, true},
		{payment.StatusCompleted, payment.StatusRefunded, true},
		{payment.StatusCompleted, payment.StatusFailed, false},
		{payment.StatusFailed, payment.StatusProcessing, false},
		{payment.StatusRefunded, payment.StatusCompleted, false},
		{payment.StatusPending, payment.StatusCompleted, false},
	}

	for _, tc := range testCases {
		t.Run(tc.from.String()+"->"+tc.to.String(), func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanTransitionTo(tc.to))
		})
	}

	_, err := payment.ParseStatus("paid")
	assert.ErrorIs(t, err, payment.ErrInvalidStatus)
}

func TestSanitizeReason(t *testing.T) {
	reason := payment.SanitizeReason("rpc https://mainnet.infura.io/v3/abc123 timed out using sk_live_51Habc")
	assert.NotContains(t, reason, "infura")
	assert.NotContains(t, reason, "sk_live")
	assert.Contains(t, reason, "timed out")

	assert.Equal(t, "payment failed", payment.SanitizeReason("  "))
	assert.Len(t, payment.SanitizeReason(strings.Repeat("x", 400)), payment.MaxFailureReasonLength)
}
