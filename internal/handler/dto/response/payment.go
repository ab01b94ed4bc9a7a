package response

import (
	"time"

	"tourpay/internal/usecase/commands"
	"tourpay/internal/usecase/queries"
	"tourpay/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type ClaimResponse struct {
	Success   bool       `json:"success"`
	BookingID *uuid.UUID `json:"bookingId,omitempty"`
	PaymentID *uuid.UUID `json:"paymentId,omitempty"`
	Status    string     `json:"status,omitempty"`
	Message   string     `json:"message"`
}

func FromClaimResult(r *commands.ClaimResult) *ClaimResponse {
	return &ClaimResponse{
		Success:   r.Success,
		BookingID: r.BookingID,
		PaymentID: r.PaymentID,
		Status:    r.Status,
		Message:   r.Message,
	}
}

type PaymentResponse struct {
	ID             uuid.UUID       `json:"id"`
	BookingID      *uuid.UUID      `json:"bookingId,omitempty"`
	TourID         int64           `json:"tourId"`
	Rail           string          `json:"rail"`
	Reference      string          `json:"reference"`
	Amount         decimal.Decimal `json:"amount"`
	Asset          string          `json:"asset"`
	Status         string          `json:"status"`
	FailureReason  *string         `json:"failureReason,omitempty"`
	VerifyAttempts int32           `json:"verifyAttempts"`
	SettledAmount  decimal.Decimal `json:"settledAmount"`
	RefundedAmount decimal.Decimal `json:"refundedAmount"`
	CompletedAt    *time.Time      `json:"completedAt,omitempty"`
	RefundedAt     *time.Time      `json:"refundedAt,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}

func FromPaymentView(v *queries.PaymentView) (*PaymentResponse, error) {
	var res PaymentResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type IntentResponse struct {
	IntentID     string          `json:"intentId"`
	ClientSecret string          `json:"clientSecret"`
	Amount       decimal.Decimal `json:"amount"`
	Currency     string          `json:"currency"`
}

func FromIntent(in *shared.Intent) *IntentResponse {
	return &IntentResponse{
		IntentID:     in.ID,
		ClientSecret: in.ClientSecret,
		Amount:       in.Amount.Amount(),
		Currency:     in.Currency,
	}
}

type RefundResponse struct {
	PaymentID uuid.UUID       `json:"paymentId"`
	RefundID  string          `json:"refundId"`
	Amount    decimal.Decimal `json:"amount"`
	Status    string          `json:"status"`
}

func FromRefundResult(r *commands.RefundResult) *RefundResponse {
	return &RefundResponse{
		PaymentID: r.PaymentID,
		RefundID:  r.RefundID,
		Amount:    r.Amount.Amount(),
		Status:    r.Status,
	}
}

type AddressResponse struct {
	Rail    string `json:"rail"`
	Asset   string `json:"asset"`
	Address string `json:"address"`
	Network string `json:"network"`
}

func FromAddressView(v *queries.AddressView) (*AddressResponse, error) {
	var res AddressResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

type WebhookAckResponse struct {
	Received bool           `json:"received"`
	EventID  string         `json:"eventId,omitempty"`
	Handled  bool           `json:"handled"`
	Claim    *ClaimResponse `json:"claim,omitempty"`
}

func FromWebhookResult(r *commands.WebhookResult) *WebhookAckResponse {
	res := &WebhookAckResponse{Received: true, EventID: r.EventID, Handled: r.Handled}
	if r.Claim != nil {
		res.Claim = FromClaimResult(r.Claim)
	}
	return res
}
