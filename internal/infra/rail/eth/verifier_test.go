//go:build unit

package eth_test

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"tourpay/internal/domain/payment"
	"tourpay/internal/infra/rail/eth"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const walletHex = "0x742d35Cc6634C0532925a3b844Bc454e4438f44e"

// fakeChain answers from fixed values. head is the latest block number.
type fakeChain struct {
	receipt    *types.Receipt
	receiptErr error
	tx         *types.Transaction
	head       uint64
	headErr    error
}

func (f *fakeChain) TransactionReceipt(context.Context, common.Hash) (*types.Receipt, error) {
	return f.receipt, f.receiptErr
}

func (f *fakeChain) TransactionByHash(context.Context, common.Hash) (*types.Transaction, bool, error) {
	if f.tx == nil {
		return nil, false, ethereum.NotFound
	}
	return f.tx, false, nil
}

func (f *fakeChain) BlockNumber(context.Context) (uint64, error) {
	return f.head, f.headErr
}

func receipt(status uint64, block int64) *types.Receipt {
	return &types.Receipt{Status: status, BlockNumber: big.NewInt(block)}
}

func transferTo(to common.Address, wei *big.Int) *types.Transaction {
	return types.NewTx(&types.LegacyTx{Nonce: 1, To: &to, Value: wei, Gas: 21000, GasPrice: big.NewInt(1)})
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	wallet := common.HexToAddress(walletHex)
	fiveCenti := new(big.Int).Mul(big.NewInt(5), big.NewInt(1e16))

	testCases := []struct {
		name          string
		chain         *fakeChain
		expectState   payment.VerifyState
		expectDetail  string
		expectSettled string
		expectErrText string
	}{
		{
			name:          "enough confirmations credits the transfer value",
			chain:         &fakeChain{receipt: receipt(types.ReceiptStatusSuccessful, 100), head: 111, tx: transferTo(wallet, fiveCenti)},
			expectState:   payment.VerifyConfirmed,
			expectDetail:  "confirmed",
			expectSettled: "0.05",
		},
		{
			name:          "transfer to another address settles nothing",
			chain:         &fakeChain{receipt: receipt(types.ReceiptStatusSuccessful, 100), head: 111, tx: transferTo(common.HexToAddress("0x1111111111111111111111111111111111111111"), fiveCenti)},
			expectState:   payment.VerifyConfirmed,
			expectSettled: "0",
		},
		{
			name:         "too few confirmations is pending",
			chain:        &fakeChain{receipt: receipt(types.ReceiptStatusSuccessful, 100), head: 105},
			expectState:  payment.VerifyPending,
			expectDetail: "awaiting confirmations",
		},
		{
			name:         "receipt ahead of our head is pending",
			chain:        &fakeChain{receipt: receipt(types.ReceiptStatusSuccessful, 120), head: 111},
			expectState:  payment.VerifyPending,
			expectDetail: "awaiting confirmations",
		},
		{
			name:         "reverted transaction fails",
			chain:        &fakeChain{receipt: receipt(types.ReceiptStatusFailed, 100), head: 200},
			expectState:  payment.VerifyFailed,
			expectDetail: "transaction reverted",
		},
		{
			name:         "missing receipt is not found",
			chain:        &fakeChain{receiptErr: ethereum.NotFound},
			expectState:  payment.VerifyNotFound,
			expectDetail: "no receipt",
		},
		{
			name:          "rpc failure on receipt",
			chain:         &fakeChain{receiptErr: errors.New("connection refused")},
			expectErrText: "get receipt",
		},
		{
			name:          "rpc failure on block number",
			chain:         &fakeChain{receipt: receipt(types.ReceiptStatusSuccessful, 100), headErr: errors.New("timeout")},
			expectErrText: "get block number",
		},
		{
			name:          "transaction lookup fails after confirmation",
			chain:         &fakeChain{receipt: receipt(types.ReceiptStatusSuccessful, 100), head: 111},
			expectErrText: "get transaction",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			v, err := eth.NewVerifier(tc.chain, walletHex, 12)
			require.NoError(t, err)

			res, err := v.Verify(ctx, "0x5c504ed432cb51138bcf09aa5e8a410dd4a1e204ef84bfed1be16dfba1b22060", payment.ZeroMoney(payment.AssetETH))
			if tc.expectErrText != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectErrText)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectState, res.State)
			if tc.expectDetail != "" {
				assert.Equal(t, tc.expectDetail, res.Detail)
			}
			if tc.expectSettled != "" {
				assert.Equal(t, tc.expectSettled, res.Settled.Amount().String())
			}
		})
	}
}

func TestNewVerifier(t *testing.T) {
	_, err := eth.NewVerifier(&fakeChain{}, "not-an-address", 1)
	assert.Error(t, err)

	// No wallet: confirmations still apply, settlement is zero.
	v, err := eth.NewVerifier(&fakeChain{receipt: receipt(types.ReceiptStatusSuccessful, 7), head: 7}, "", 0)
	require.NoError(t, err)
	res, err := v.Verify(context.Background(), "0x01", payment.ZeroMoney(payment.AssetETH))
	require.NoError(t, err)
	assert.Equal(t, payment.VerifyConfirmed, res.State)
	assert.True(t, res.Settled.IsZero())
}
