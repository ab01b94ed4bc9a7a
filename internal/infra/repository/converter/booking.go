package converter

import (
	"fmt"

	"tourpay/internal/domain/booking"
	sqlc "tourpay/internal/infra/sqlc/generated"
	"tourpay/internal/pkg/pgconv"
)

func BookingToCreateParams(b *booking.Booking) sqlc.CreateBookingParams {
	return sqlc.CreateBookingParams{
		ID:            b.ID(),
		TourID:        b.TourID(),
		CustomerEmail: b.CustomerEmail(),
		Status:        b.Status().String(),
		CreatedAt:     pgconv.TimeToPgtype(b.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(b.UpdatedAt()),
	}
}

func BookingFromRow(row sqlc.Bookings) (*booking.Booking, error) {
	status, err := booking.ParseStatus(row.Status)
	if err != nil {
		return nil, fmt.Errorf("booking %s: %w", row.ID, err)
	}
	return booking.ReconstructBooking(
		row.ID,
		row.TourID,
		row.CustomerEmail,
		status,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
