package commands

import (
	"context"
	"encoding/json"
	"time"

	"tourpay/internal/domain/booking"
	"tourpay/internal/domain/payment"
	"tourpay/internal/usecase/shared"

	"github.com/google/uuid"
)

const jobKindEvent = "event"

const (
	TopicPaymentCompleted = "payment.completed"
	TopicPaymentFailed    = "payment.failed"
	TopicPaymentRefunded  = "payment.refunded"
	TopicBookingConfirmed = "booking.confirmed"
	TopicBookingCancelled = "booking.cancelled"
	TopicBookingCompleted = "booking.completed"
)

type PaymentEvent struct {
	PaymentID  uuid.UUID  `json:"paymentId"`
	BookingID  *uuid.UUID `json:"bookingId,omitempty"`
	TourID     int64      `json:"tourId"`
	Rail       string     `json:"rail"`
	Reference  string     `json:"reference"`
	Amount     string     `json:"amount"`
	Asset      string     `json:"asset"`
	Settled    string     `json:"settledAmount"`
	Refunded   string     `json:"refundedAmount,omitempty"`
	Status     string     `json:"status"`
	Reason     *string    `json:"reason,omitempty"`
	OccurredAt time.Time  `json:"occurredAt"`
}

type BookingEvent struct {
	BookingID     uuid.UUID `json:"bookingId"`
	TourID        int64     `json:"tourId"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurredAt"`
}

func newPaymentEvent(p *payment.Payment, now time.Time) PaymentEvent {
	ev := PaymentEvent{
		PaymentID:  p.ID(),
		BookingID:  p.BookingID(),
		TourID:     p.TourID(),
		Rail:       p.Rail().String(),
		Reference:  p.Reference(),
		Amount:     p.Amount().Amount().String(),
		Asset:      p.Amount().Asset().String(),
		Settled:    p.Settled().Amount().String(),
		Status:     p.Status().String(),
		Reason:     p.FailureReason(),
		OccurredAt: now,
	}
	if !p.Refunded().IsZero() {
		ev.Refunded = p.Refunded().Amount().String()
	}
	return ev
}

func newBookingEvent(b *booking.Booking, now time.Time) BookingEvent {
	return BookingEvent{
		BookingID:     b.ID(),
		TourID:        b.TourID(),
		CustomerEmail: b.CustomerEmail(),
		Status:        b.Status().String(),
		OccurredAt:    now,
	}
}

// enqueue writes an outbox row in the caller's transaction; the dispatcher publishes it later.
func enqueue(ctx context.Context, tx shared.Tx, topic string, payload any, now time.Time) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return tx.Notifications().CreateJob(ctx, jobKindEvent, topic, body, now)
}
