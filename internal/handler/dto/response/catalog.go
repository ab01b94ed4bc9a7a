package response

import (
	"time"

	"tourpay/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type TourResponse struct {
	ID          int64            `json:"id"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Location    string           `json:"location"`
	Duration    string           `json:"duration"`
	PriceUSD    decimal.Decimal  `json:"priceUsd"`
	PriceSOL    decimal.Decimal  `json:"priceSol"`
	PriceBTC    *decimal.Decimal `json:"priceBtc,omitempty"`
	PriceETH    *decimal.Decimal `json:"priceEth,omitempty"`
	CreatedAt   time.Time        `json:"createdAt"`
	UpdatedAt   time.Time        `json:"updatedAt"`
}

func FromTourView(v *queries.TourView) (*TourResponse, error) {
	var res TourResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	return &res, nil
}

func FromTourViews(vs []*queries.TourView) ([]*TourResponse, error) {
	res := make([]*TourResponse, 0, len(vs))
	for _, v := range vs {
		t, err := FromTourView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, nil
}

type BookingResponse struct {
	ID            uuid.UUID          `json:"id"`
	TourID        int64              `json:"tourId"`
	CustomerEmail string             `json:"customerEmail"`
	Status        string             `json:"status"`
	Payments      []*PaymentResponse `json:"payments" copier:"-"`
	CreatedAt     time.Time          `json:"createdAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

func FromBookingView(v *queries.BookingView) (*BookingResponse, error) {
	var res BookingResponse
	if err := copier.Copy(&res, v); err != nil {
		return nil, err
	}
	res.Payments = make([]*PaymentResponse, 0, len(v.Payments))
	for _, pv := range v.Payments {
		p, err := FromPaymentView(pv)
		if err != nil {
			return nil, err
		}
		res.Payments = append(res.Payments, p)
	}
	return &res, nil
}
