//go:build unit

package booking_test

import (
	"testing"
	"time"

	"tourpay/internal/domain/booking"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	t.Run("pending booking", func(t *testing.T) {
		b, err := booking.NewPendingBooking(7, "  Guest@Example.com", now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusPending, b.Status())
		assert.Equal(t, "guest@example.com", b.CustomerEmail())
		assert.Equal(t, now, b.CreatedAt())
	})

	t.Run("tour is required", func(t *testing.T) {
		_, err := booking.NewPendingBooking(0, "", now)
		assert.ErrorIs(t, err, booking.ErrInvalidTour)
	})

	t.Run("paid booking is born confirmed", func(t *testing.T) {
		b, err := booking.NewPaidBooking(7, "", now)
		require.NoError(t, err)
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("payment for another tour cannot confirm", func(t *testing.T) {
		b, err := booking.NewPendingBooking(7, "", now)
		require.NoError(t, err)
		assert.ErrorIs(t, b.ConfirmByPayment(8, now), booking.ErrTourMismatch)
		assert.Equal(t, booking.StatusPending, b.Status())
	})

	t.Run("second payment on a confirmed booking is accepted", func(t *testing.T) {
		b, err := booking.NewPaidBooking(7, "", now)
		require.NoError(t, err)
		assert.NoError(t, b.ConfirmByPayment(7, now.Add(time.Hour)))
		assert.Equal(t, booking.StatusConfirmed, b.Status())
	})

	t.Run("cancelled booking cannot be paid", func(t *testing.T) {
		b, err := booking.NewPendingBooking(7, "", now)
		require.NoError(t, err)
		require.NoError(t, b.Cancel(now))
		assert.ErrorIs(t, b.ConfirmByPayment(7, now), booking.ErrInvalidTransition)
	})

	t.Run("completed booking cannot be cancelled", func(t *testing.T) {
		b, err := booking.NewPaidBooking(7, "", now)
		require.NoError(t, err)
		require.NoError(t, b.Complete(now))
		assert.ErrorIs(t, b.Cancel(now), booking.ErrInvalidTransition)
	})

	t.Run("pending booking cannot be completed", func(t *testing.T) {
		b, err := booking.NewPendingBooking(7, "", now)
		require.NoError(t, err)
		assert.ErrorIs(t, b.Complete(now), booking.ErrInvalidTransition)
	})
}
