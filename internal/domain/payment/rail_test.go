//go:build unit

package payment_test

import (
	"strings"
	"testing"

	"tourpay/internal/domain/payment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	solSignature = "5VERv8NMvzbJMEkV8xnrLkEaWRtSz9CosKDYjCJjBRnbJLgp8uirBgmQpjKhoR4tjF3ZpRzrFmBV6UjKdiSZkQUW"
	btcTxID      = "4a5e1e4baab89f3a32518a88c31bc87f618f76673e2cc77ab2127b7afdeda33b"
	ethTxHash    = "0x88df016429689c079f3b2f6ad39fa052532c56795b733da78a91ebe6a713944b"
)

func TestParseRail(t *testing.T) {
	testCases := []struct {
		input    string
		expected payment.Rail
		errIs    error
	}{
		{input: "card", expected: payment.RailCard},
		{input: "Stripe", expected: payment.RailCard},
		{input: " solana ", expected: payment.RailFastChain},
		{input: "fast-chain", expected: payment.RailFastChain},
		{input: "BTC", expected: payment.RailUTXOChain},
		{input: "ethereum", expected: payment.RailAccountChain},
		{input: "paypal", errIs: payment.ErrInvalidRail},
		{input: "", errIs: payment.ErrInvalidRail},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			rail, err := payment.ParseRail(tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, rail)
		})
	}
}

func TestRail_Asset(t *testing.T) {
	assert.Equal(t, payment.AssetUSD, payment.RailCard.Asset())
	assert.Equal(t, payment.AssetSOL, payment.RailFastChain.Asset())
	assert.Equal(t, payment.AssetBTC, payment.RailUTXOChain.Asset())
	assert.Equal(t, payment.AssetETH, payment.RailAccountChain.Asset())

	assert.True(t, payment.RailCard.SupportsRefund())
	for _, r := range []payment.Rail{payment.RailFastChain, payment.RailUTXOChain, payment.RailAccountChain} {
		assert.False(t, r.SupportsRefund(), r.String())
		assert.True(t, r.IsChain(), r.String())
	}
}

func TestNormalizeReference(t *testing.T) {
	testCases := []struct {
		name     string
		rail     payment.Rail
		input    string
		expected string
		errIs    error
	}{
		{name: "card intent id", rail: payment.RailCard, input: " pi_3Mtw2HLkdIwHu7ix0 ", expected: "pi_3Mtw2HLkdIwHu7ix0"},
		{name: "card charge id rejected", rail: payment.RailCard, input: "ch_123", errIs: payment.ErrInvalidReference},
		{name: "solana signature", rail: payment.RailFastChain, input: solSignature, expected: solSignature},
		{name: "solana short reference kept verbatim", rail: payment.RailFastChain, input: " SIG123 ", expected: "SIG123"},
		{name: "solana reference with inner space", rail: payment.RailFastChain, input: "SIG 123", errIs: payment.ErrInvalidReference},
		{name: "bitcoin txid is lowercased", rail: payment.RailUTXOChain, input: strings.ToUpper(btcTxID), expected: btcTxID},
		{name: "bitcoin short txid", rail: payment.RailUTXOChain, input: "abcd", errIs: payment.ErrInvalidReference},
		{name: "ethereum hash without prefix", rail: payment.RailAccountChain, input: strings.TrimPrefix(ethTxHash, "0x"), expected: ethTxHash},
		{name: "ethereum hash mixed case", rail: payment.RailAccountChain, input: "0x88DF016429689C079F3B2F6AD39FA052532C56795B733DA78A91EBE6A713944B", expected: ethTxHash},
		{name: "ethereum non-hex", rail: payment.RailAccountChain, input: "0x" + strings.Repeat("z", 64), errIs: payment.ErrInvalidReference},
		{name: "empty", rail: payment.RailCard, input: "   ", errIs: payment.ErrInvalidReference},
		{name: "too long", rail: payment.RailCard, input: "pi_" + strings.Repeat("a", payment.MaxReferenceLength), errIs: payment.ErrInvalidReference},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ref, err := payment.NormalizeReference(tc.rail, tc.input)
			if tc.errIs != nil {
				require.ErrorIs(t, err, tc.errIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, ref)
		})
	}
}
