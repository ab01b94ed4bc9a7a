package commands

import "tourpay/internal/pkg/errs"

var (
	ErrInvalidClaim     = errs.New("invalid payment claim")
	ErrTourNotFound     = errs.New("tour not found")
	ErrPriceUnavailable = errs.New("tour has no price on this rail")
	// ErrClaimConflict: the reference is already claimed with a different tour, amount or booking.
	ErrClaimConflict     = errs.New("transaction reference already claimed by a different claim")
	ErrPaymentNotFound   = errs.New("payment not found")
	ErrBookingNotFound   = errs.New("booking not found")
	ErrRefundUnsupported = errs.New("refund is not supported on this rail")
	ErrInvalidTransition = errs.New("invalid state transition")
	ErrInvalidAmount     = errs.New("invalid amount")
	ErrNotAuditable      = errs.New("only completed chain payments can be audited")
)
