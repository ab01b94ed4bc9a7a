package tour

import (
	"errors"

	"tourpay/internal/domain/payment"

	"github.com/shopspring/decimal"
)

var ErrPriceUnavailable = errors.New("tour has no price in the requested asset")

// Tour is a read-only catalog item. The core only ever asks it for a price.
type Tour struct {
	id       int64
	name     string
	location string
	priceUSD decimal.Decimal
	priceSOL decimal.Decimal
	priceBTC *decimal.Decimal
	priceETH *decimal.Decimal
}

func ReconstructTour(id int64, name, location string, priceUSD, priceSOL decimal.Decimal, priceBTC, priceETH *decimal.Decimal) *Tour {
	return &Tour{
		id:       id,
		name:     name,
		location: location,
		priceUSD: priceUSD,
		priceSOL: priceSOL,
		priceBTC: priceBTC,
		priceETH: priceETH,
	}
}

func (t *Tour) PriceFor(asset payment.Asset) (payment.Money, error) {
	var amount *decimal.Decimal
	switch asset {
	case payment.AssetUSD:
		amount = &t.priceUSD
	case payment.AssetSOL:
		amount = &t.priceSOL
	case payment.AssetBTC:
		amount = t.priceBTC
	case payment.AssetETH:
		amount = t.priceETH
	}
	if amount == nil || !amount.IsPositive() {
		return payment.Money{}, ErrPriceUnavailable
	}
	return payment.NewMoney(*amount, asset)
}

func (t *Tour) ID() int64                  { return t.id }
func (t *Tour) Name() string               { return t.name }
func (t *Tour) Location() string           { return t.location }
func (t *Tour) PriceUSD() decimal.Decimal  { return t.priceUSD }
func (t *Tour) PriceSOL() decimal.Decimal  { return t.priceSOL }
func (t *Tour) PriceBTC() *decimal.Decimal { return t.priceBTC }
func (t *Tour) PriceETH() *decimal.Decimal { return t.priceETH }
