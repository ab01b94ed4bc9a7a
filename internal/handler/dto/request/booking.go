package request

import "tourpay/internal/usecase/commands"

type CreateBookingRequest struct {
	TourID        int64  `json:"tourId" binding:"required,gt=0"`
	CustomerEmail string `json:"customerEmail" binding:"omitempty,email,max=254"`
}

func (r *CreateBookingRequest) ToCommand() commands.CreateBookingRequest {
	return commands.CreateBookingRequest{
		TourID:        r.TourID,
		CustomerEmail: r.CustomerEmail,
	}
}
