package queries

import (
	"context"

	"tourpay/internal/domain/payment"
	"tourpay/internal/infra"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/shared"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound = errs.New("payment not found")
	ErrAddressNotFound = errs.New("no receiving address configured")
	ErrNotAChainRail   = errs.New("rail has no receiving address")
)

type PaymentReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	FindByBookingID(ctx context.Context, bookingID uuid.UUID) ([]*PaymentView, error)
}

type PaymentQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error)
	AddressFor(ctx context.Context, railName string) (*AddressView, error)
}

type paymentQueriesImpl struct {
	repo      PaymentReadStore
	addresses shared.AddressBook
}

func NewPaymentQueries(repo PaymentReadStore, addresses shared.AddressBook) PaymentQueries {
	return &paymentQueriesImpl{repo: repo, addresses: addresses}
}

func (q *paymentQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PaymentView, error) {
	view, err := q.repo.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.Mark(err, ErrPaymentNotFound)
		}
		return nil, err
	}
	return view, nil
}

func (q *paymentQueriesImpl) AddressFor(_ context.Context, railName string) (*AddressView, error) {
	rail, err := payment.ParseRail(railName)
	if err != nil {
		return nil, err
	}
	if !rail.IsChain() {
		return nil, ErrNotAChainRail
	}
	address, network, ok := q.addresses.Address(rail)
	if !ok {
		return nil, ErrAddressNotFound
	}
	return &AddressView{
		Rail:    rail.String(),
		Asset:   rail.Asset().String(),
		Address: address,
		Network: network,
	}, nil
}
