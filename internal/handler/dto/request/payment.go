package request

import (
	"tourpay/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type ClaimPaymentRequest struct {
	Rail          string          `json:"rail" binding:"required,rail"`
	Reference     string          `json:"reference" binding:"required,txref"`
	Amount        decimal.Decimal `json:"amount"`
	TourID        int64           `json:"tourId" binding:"required,gt=0"`
	CustomerEmail string          `json:"customerEmail" binding:"omitempty,email,max=254"`
	BookingID     *uuid.UUID      `json:"bookingId"`
}

func (r *ClaimPaymentRequest) ToCommand() commands.ClaimRequest {
	return commands.ClaimRequest{
		Rail:          r.Rail,
		Reference:     r.Reference,
		Amount:        r.Amount,
		TourID:        r.TourID,
		CustomerEmail: r.CustomerEmail,
		BookingID:     r.BookingID,
	}
}

type CreateIntentRequest struct {
	TourID        int64      `json:"tourId" binding:"required,gt=0"`
	CustomerEmail string     `json:"customerEmail" binding:"omitempty,email,max=254"`
	BookingID     *uuid.UUID `json:"bookingId"`
}

func (r *CreateIntentRequest) ToCommand() commands.IntentRequest {
	return commands.IntentRequest{
		TourID:        r.TourID,
		CustomerEmail: r.CustomerEmail,
		BookingID:     r.BookingID,
	}
}

// RefundPaymentRequest: omit amount to refund everything that settled.
type RefundPaymentRequest struct {
	Amount *decimal.Decimal `json:"amount"`
}
