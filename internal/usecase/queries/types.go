package queries

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TourView represents the catalog entry with its per-asset prices
type TourView struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Duration    string           `json:"duration"`
	PriceUSD    decimal.Decimal  `json:"price_usd"`
	PriceSOL    decimal.Decimal  `json:"price_sol"`
	PriceBTC    *decimal.Decimal `json:"price_btc,omitempty"`
	PriceETH    *decimal.Decimal `json:"price_eth,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// PaymentView represents a ledger row as exposed to clients
type PaymentView struct {
	ID             uuid.UUID       `json:"id"`
	BookingID      *uuid.UUID      `json:"booking_id,omitempty"`
	TourID         int64           `json:"tour_id"`
	Rail           string          `json:"rail"`
	Reference      string          `json:"reference"`
	Amount         decimal.Decimal `json:"amount"`
	Asset          string          `json:"asset"`
	Status         string          `json:"status"`
	FailureReason  *string         `json:"failure_reason,omitempty"`
	VerifyAttempts int32           `json:"verify_attempts"`
	SettledAmount  decimal.Decimal `json:"settled_amount"`
	RefundedAmount decimal.Decimal `json:"refunded_amount"`
	CompletedAt    *time.Time      `json:"completed_at,omitempty"`
	RefundedAt     *time.Time      `json:"refunded_at,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// BookingView carries the booking and every payment attached to it, latest completed first
type BookingView struct {
	ID            uuid.UUID      `json:"id"`
	TourID        int64          `json:"tour_id"`
	CustomerEmail string         `json:"customer_email"`
	Status        string         `json:"status"`
	Payments      []*PaymentView `json:"payments"`
	CreatedAt     time.Time      `json:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"`
}

type AddressView struct {
	Rail    string `json:"rail"`
	Asset   string `json:"asset"`
	Address string `json:"address"`
	Network string `json:"network"`
}
