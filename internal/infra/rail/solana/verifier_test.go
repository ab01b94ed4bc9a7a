//go:build unit

package solana_test

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"testing"

	"tourpay/internal/domain/payment"
	"tourpay/internal/infra/rail/solana"

	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/programs/system"
	"github.com/gagliardetto/solana-go/rpc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockTransactionAPI struct {
	mock.Mock
}

func (m *MockTransactionAPI) GetTransaction(ctx context.Context, sig sol.Signature, opts *rpc.GetTransactionOpts) (*rpc.GetTransactionResult, error) {
	args := m.Called(ctx, sig, opts)
	out, _ := args.Get(0).(*rpc.GetTransactionResult)
	return out, args.Error(1)
}

func at(commitment rpc.CommitmentType) interface{} {
	return mock.MatchedBy(func(opts *rpc.GetTransactionOpts) bool {
		return opts != nil && opts.Commitment == commitment
	})
}

// transfer builds a signed system transfer of lamports to wallet, wrapped the way the RPC returns it.
func transfer(t *testing.T, wallet sol.PublicKey, lamports uint64, pre, post []uint64) *rpc.GetTransactionResult {
	t.Helper()
	payer := sol.NewWallet()

	tx, err := sol.NewTransaction(
		[]sol.Instruction{system.NewTransferInstruction(lamports, payer.PublicKey(), wallet).Build()},
		sol.Hash{},
		sol.TransactionPayer(payer.PublicKey()),
	)
	require.NoError(t, err)
	_, err = tx.Sign(func(key sol.PublicKey) *sol.PrivateKey {
		if key.Equals(payer.PublicKey()) {
			return &payer.PrivateKey
		}
		return nil
	})
	require.NoError(t, err)

	raw, err := tx.MarshalBinary()
	require.NoError(t, err)

	body := fmt.Sprintf(`{
		"slot": 1,
		"transaction": [%q, "base64"],
		"meta": {
			"err": null,
			"fee": 5000,
			"preBalances": %s,
			"postBalances": %s,
			"loadedAddresses": {"writable": [], "readonly": []}
		}
	}`, base64.StdEncoding.EncodeToString(raw), ints(pre), ints(post))

	var out rpc.GetTransactionResult
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return &out
}

// truncated claims one signature and then ends.
func truncated(t *testing.T) *rpc.GetTransactionResult {
	t.Helper()
	body := `{
		"slot": 1,
		"transaction": ["AQ==", "base64"],
		"meta": {"err": null, "fee": 5000, "preBalances": [], "postBalances": []}
	}`
	var out rpc.GetTransactionResult
	require.NoError(t, json.Unmarshal([]byte(body), &out))
	return &out
}

func ints(v []uint64) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestVerifier_Verify(t *testing.T) {
	ctx := context.Background()
	wallet := sol.NewWallet().PublicKey()
	sig := sol.Signature{1, 2, 3}
	reference := sig.String()

	testCases := []struct {
		name          string
		setupMock     func(api *MockTransactionAPI)
		expectState   payment.VerifyState
		expectDetail  string
		expectSettled string
		expectErr     bool
	}{
		{
			name: "finalized transfer credits the wallet delta",
			setupMock: func(api *MockTransactionAPI) {
				api.On("GetTransaction", ctx, sig, at(rpc.CommitmentFinalized)).
					Return(transfer(t, wallet, 150_000_000, []uint64{1_000_000_000, 0, 1}, []uint64{849_995_000, 150_000_000, 1}), nil)
			},
			expectState:   payment.VerifyConfirmed,
			expectDetail:  "finalized",
			expectSettled: "0.15",
		},
		{
			name: "transfer to another account settles nothing",
			setupMock: func(api *MockTransactionAPI) {
				other := sol.NewWallet().PublicKey()
				api.On("GetTransaction", ctx, sig, at(rpc.CommitmentFinalized)).
					Return(transfer(t, other, 150_000_000, []uint64{1_000_000_000, 0, 1}, []uint64{849_995_000, 150_000_000, 1}), nil)
			},
			expectState:   payment.VerifyConfirmed,
			expectDetail:  "finalized",
			expectSettled: "0",
		},
		{
			name: "seen only at confirmed commitment is pending",
			setupMock: func(api *MockTransactionAPI) {
				api.On("GetTransaction", ctx, sig, at(rpc.CommitmentFinalized)).Return(nil, rpc.ErrNotFound)
				api.On("GetTransaction", ctx, sig, at(rpc.CommitmentConfirmed)).Return(&rpc.GetTransactionResult{Slot: 9}, nil)
			},
			expectState:  payment.VerifyPending,
			expectDetail: "awaiting finalization",
		},
		{
			name: "unknown signature is not found",
			setupMock: func(api *MockTransactionAPI) {
				api.On("GetTransaction", ctx, sig, at(rpc.CommitmentFinalized)).Return(nil, rpc.ErrNotFound)
				api.On("GetTransaction", ctx, sig, at(rpc.CommitmentConfirmed)).Return(nil, rpc.ErrNotFound)
			},
			expectState:  payment.VerifyNotFound,
			expectDetail: "signature not found",
		},
		{
			name: "missing meta stays pending",
			setupMock: func(api *MockTransactionAPI) {
				api.On("GetTransaction", ctx, sig, at(rpc.CommitmentFinalized)).Return(&rpc.GetTransactionResult{Slot: 9}, nil)
			},
			expectState:  payment.VerifyPending,
			expectDetail: "transaction meta unavailable",
		},
		{
			name: "on-chain error fails the payment",
			setupMock: func(api *MockTransactionAPI) {
				api.On("GetTransaction", ctx, sig, at(rpc.CommitmentFinalized)).Return(&rpc.GetTransactionResult{
					Meta: &rpc.TransactionMeta{Err: map[string]interface{}{"InstructionError": []interface{}{0, "Custom"}}},
				}, nil)
			},
			expectState: payment.VerifyFailed,
		},
		{
			name: "undecodable transaction stays pending without a retry",
			setupMock: func(api *MockTransactionAPI) {
				api.On("GetTransaction", ctx, sig, at(rpc.CommitmentFinalized)).Return(truncated(t), nil).Once()
			},
			expectState: payment.VerifyPending,
		},
		{
			name: "rpc failure is returned",
			setupMock: func(api *MockTransactionAPI) {
				api.On("GetTransaction", ctx, sig, at(rpc.CommitmentFinalized)).Return(nil, errors.New("429 too many requests"))
			},
			expectErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			api := new(MockTransactionAPI)
			tc.setupMock(api)

			v, err := solana.NewVerifier(api, wallet.String())
			require.NoError(t, err)

			res, err := v.Verify(ctx, reference, payment.ZeroMoney(payment.AssetSOL))
			if tc.expectErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "get solana transaction")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectState, res.State)
			if tc.expectDetail != "" {
				assert.Equal(t, tc.expectDetail, res.Detail)
			}
			if tc.expectSettled != "" {
				assert.Equal(t, tc.expectSettled, res.Settled.Amount().String())
				assert.Equal(t, payment.AssetSOL, res.Settled.Asset())
			}
			api.AssertExpectations(t)
		})
	}
}

func TestVerifier_InvalidSignature(t *testing.T) {
	api := new(MockTransactionAPI)
	v, err := solana.NewVerifier(api, "")
	require.NoError(t, err)

	res, err := v.Verify(context.Background(), "not-base58-0OIl", payment.ZeroMoney(payment.AssetSOL))
	require.NoError(t, err)
	assert.Equal(t, payment.VerifyNotFound, res.State)
	api.AssertNotCalled(t, "GetTransaction", mock.Anything, mock.Anything, mock.Anything)
}

func TestNewVerifier_RejectsBadWallet(t *testing.T) {
	_, err := solana.NewVerifier(new(MockTransactionAPI), "0xdeadbeef")
	assert.Error(t, err)
}
