package payment

import (
	"math/big"

	"github.com/shopspring/decimal"
)

type Asset string

const (
	AssetUSD Asset = "USD"
	AssetSOL Asset = "SOL"
	AssetBTC Asset = "BTC"
	AssetETH Asset = "ETH"
)

func (a Asset) String() string {
	return string(a)
}

func (a Asset) IsValid() bool {
	switch a {
	case AssetUSD, AssetSOL, AssetBTC, AssetETH:
		return true
	default:
		return false
	}
}

// Decimals is the number of minor-unit digits: cents, lamports, satoshis, wei.
func (a Asset) Decimals() int32 {
	switch a {
	case AssetUSD:
		return 2
	case AssetSOL:
		return 9
	case AssetBTC:
		return 8
	case AssetETH:
		return 18
	default:
		return 0
	}
}

type Money struct {
	amount decimal.Decimal
	asset  Asset
}

func NewMoney(amount decimal.Decimal, asset Asset) (Money, error) {
	if !asset.IsValid() {
		return Money{}, ErrInvalidAsset
	}
	if amount.IsNegative() {
		return Money{}, ErrNegativeAmount
	}
	if !amount.Equal(amount.Truncate(asset.Decimals())) {
		return Money{}, ErrAmountPrecision
	}
	return Money{amount: amount, asset: asset}, nil
}

func ZeroMoney(asset Asset) Money {
	return Money{amount: decimal.Zero, asset: asset}
}

// MoneyFromMinor converts an integer amount of minor units into Money.
func MoneyFromMinor(minor int64, asset Asset) Money {
	return Money{amount: decimal.New(minor, -asset.Decimals()), asset: asset}
}

func MoneyFromBaseUnits(units *big.Int, asset Asset) Money {
	if units == nil {
		return ZeroMoney(asset)
	}
	return Money{amount: decimal.NewFromBigInt(units, -asset.Decimals()), asset: asset}
}

func (m Money) Amount() decimal.Decimal { return m.amount }
func (m Money) Asset() Asset            { return m.asset }
func (m Money) IsZero() bool            { return m.amount.IsZero() }

// Minor returns the amount in minor units. Money built through NewMoney never carries
// sub-minor precision, so the result is exact.
func (m Money) Minor() int64 {
	return m.amount.Shift(m.asset.Decimals()).IntPart()
}

func (m Money) Equal(other Money) bool {
	return m.asset == other.asset && m.amount.Equal(other.amount)
}

func (m Money) GreaterThan(other Money) (bool, error) {
	if m.asset != other.asset {
		return false, ErrAssetMismatch
	}
	return m.amount.GreaterThan(other.amount), nil
}

func (m Money) String() string {
	return m.amount.String() + " " + m.asset.String()
}
