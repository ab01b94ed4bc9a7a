package booking

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Booking struct {
	id            uuid.UUID
	tourID        int64
	customerEmail string
	status        Status
	createdAt     time.Time
	updatedAt     time.Time
}

// NewPendingBooking reserves a tour ahead of payment. It can only become confirmed
// through a completed payment.
func NewPendingBooking(tourID int64, customerEmail string, now time.Time) (*Booking, error) {
	if tourID <= 0 {
		return nil, ErrInvalidTour
	}
	return &Booking{
		id:            uuid.New(),
		tourID:        tourID,
		customerEmail: normalizeEmail(customerEmail),
		status:        StatusPending,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

// NewPaidBooking is used by reconciliation when a payment completes without a booking
// requested up front; the booking is born confirmed in the same transaction.
func NewPaidBooking(tourID int64, customerEmail string, now time.Time) (*Booking, error) {
	b, err := NewPendingBooking(tourID, customerEmail, now)
	if err != nil {
		return nil, err
	}
	if err := b.ConfirmByPayment(tourID, now); err != nil {
		return nil, err
	}
	return b, nil
}

func ReconstructBooking(id uuid.UUID, tourID int64, customerEmail string, status Status, createdAt, updatedAt time.Time) *Booking {
	return &Booking{
		id:            id,
		tourID:        tourID,
		customerEmail: customerEmail,
		status:        status,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}
}

// ConfirmByPayment is the only way into StatusConfirmed. An already confirmed booking
// accepts a further payment for the same tour without changing state.
func (b *Booking) ConfirmByPayment(paidTourID int64, now time.Time) error {
	if paidTourID != b.tourID {
		return ErrTourMismatch
	}
	if b.status == StatusConfirmed {
		return nil
	}
	return b.transition(StatusConfirmed, now)
}

func (b *Booking) Complete(now time.Time) error {
	return b.transition(StatusCompleted, now)
}

func (b *Booking) Cancel(now time.Time) error {
	return b.transition(StatusCancelled, now)
}

func (b *Booking) transition(next Status, now time.Time) error {
	if !b.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	b.status = next
	b.updatedAt = now
	return nil
}

func (b *Booking) ID() uuid.UUID         { return b.id }
func (b *Booking) TourID() int64         { return b.tourID }
func (b *Booking) CustomerEmail() string { return b.customerEmail }
func (b *Booking) Status() Status        { return b.status }
func (b *Booking) CreatedAt() time.Time  { return b.createdAt }
func (b *Booking) UpdatedAt() time.Time  { return b.updatedAt }

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
