//go:build unit || e2e

package builder

import (
	"time"

	"tourpay/internal/domain/booking"
	"tourpay/internal/domain/tour"
	reqdto "tourpay/internal/handler/dto/request"
	sqlc "tourpay/internal/infra/sqlc/generated"
	"tourpay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

type TourBuilder struct {
	ID       int64
	Name     string
	Location string
	Duration string
	PriceUSD decimal.Decimal
	PriceSOL decimal.Decimal
	PriceBTC *decimal.Decimal
	PriceETH *decimal.Decimal
}

func NewTourBuilder() *TourBuilder {
	btc := decimal.RequireFromString("0.002")
	eth := decimal.RequireFromString("0.05")
	return &TourBuilder{
		ID:       7,
		Name:     "Fjord Kayak",
		Location: "Bergen",
		Duration: "4h",
		PriceUSD: decimal.RequireFromString("120.00"),
		PriceSOL: decimal.RequireFromString("0.15"),
		PriceBTC: &btc,
		PriceETH: &eth,
	}
}

func (b *TourBuilder) With(mutate func(*TourBuilder)) *TourBuilder {
	mutate(b)
	return b
}

func (b *TourBuilder) BuildDomain() *tour.Tour {
	return tour.ReconstructTour(b.ID, b.Name, b.Location, b.PriceUSD, b.PriceSOL, b.PriceBTC, b.PriceETH)
}

func (b *TourBuilder) BuildInfra() sqlc.Tours {
	now := pgtype.Timestamptz{Time: time.Now().UTC(), Valid: true}
	row := sqlc.Tours{
		ID:        b.ID,
		Name:      b.Name,
		Location:  b.Location,
		Duration:  b.Duration,
		PriceUsd:  b.PriceUSD,
		PriceSol:  b.PriceSOL,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if b.PriceBTC != nil {
		row.PriceBtc = decimal.NullDecimal{Decimal: *b.PriceBTC, Valid: true}
	}
	if b.PriceETH != nil {
		row.PriceEth = decimal.NullDecimal{Decimal: *b.PriceETH, Valid: true}
	}
	return row
}

func (b *TourBuilder) BuildView() *queries.TourView {
	return &queries.TourView{
		ID:       b.ID,
		Name:     b.Name,
		Location: b.Location,
		Duration: b.Duration,
		PriceUSD: b.PriceUSD,
		PriceSOL: b.PriceSOL,
		PriceBTC: b.PriceBTC,
		PriceETH: b.PriceETH,
	}
}

type BookingBuilder struct {
	ID            uuid.UUID
	TourID        int64
	CustomerEmail string
	Status        booking.Status
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func NewBookingBuilder() *BookingBuilder {
	now := time.Now().UTC().Truncate(time.Microsecond)
	return &BookingBuilder{
		ID:            uuid.New(),
		TourID:        7,
		CustomerEmail: "guest@example.com",
		Status:        booking.StatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

func (b *BookingBuilder) With(mutate func(*BookingBuilder)) *BookingBuilder {
	mutate(b)
	return b
}

func (b *BookingBuilder) WithStatus(status booking.Status) *BookingBuilder {
	b.Status = status
	return b
}

func (b *BookingBuilder) BuildDomain() *booking.Booking {
	return booking.ReconstructBooking(b.ID, b.TourID, b.CustomerEmail, b.Status, b.CreatedAt, b.UpdatedAt)
}

func (b *BookingBuilder) BuildInfra() sqlc.Bookings {
	return sqlc.Bookings{
		ID:            b.ID,
		TourID:        b.TourID,
		CustomerEmail: b.CustomerEmail,
		Status:        b.Status.String(),
		CreatedAt:     pgtype.Timestamptz{Time: b.CreatedAt, Valid: true},
		UpdatedAt:     pgtype.Timestamptz{Time: b.UpdatedAt, Valid: true},
	}
}

func (b *BookingBuilder) BuildCreateRequestDTO() reqdto.CreateBookingRequest {
	return reqdto.CreateBookingRequest{TourID: b.TourID, CustomerEmail: b.CustomerEmail}
}

func (b *BookingBuilder) BuildView(payments ...*queries.PaymentView) *queries.BookingView {
	if payments == nil {
		payments = []*queries.PaymentView{}
	}
	return &queries.BookingView{
		ID:            b.ID,
		TourID:        b.TourID,
		CustomerEmail: b.CustomerEmail,
		Status:        b.Status.String(),
		Payments:      payments,
		CreatedAt:     b.CreatedAt,
		UpdatedAt:     b.UpdatedAt,
	}
}
