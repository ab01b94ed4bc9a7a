package solana

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"tourpay/internal/domain/payment"

	sol "github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// TransactionAPI is the slice of the Solana RPC client the verifier needs.
type TransactionAPI interface {
	GetTransaction(ctx context.Context, sig sol.Signature, opts *rpc.GetTransactionOpts) (*rpc.GetTransactionResult, error)
}

type Verifier struct {
	client TransactionAPI
	wallet *sol.PublicKey
}

// NewVerifier builds a verifier. With an empty wallet the settled amount is always zero.
func NewVerifier(client TransactionAPI, wallet string) (*Verifier, error) {
	v := &Verifier{client: client}
	if wallet == "" {
		return v, nil
	}
	key, err := sol.PublicKeyFromBase58(wallet)
	if err != nil {
		return nil, fmt.Errorf("parse solana wallet: %w", err)
	}
	v.wallet = &key
	return v, nil
}

// Verify treats only finalized transactions as settled. A signature visible at
// confirmed commitment but not yet finalized is pending.
func (v *Verifier) Verify(ctx context.Context, reference string, _ payment.Money) (payment.VerifyResult, error) {
	sig, err := sol.SignatureFromBase58(reference)
	if err != nil {
		return payment.NotFound("signature is not valid base58"), nil
	}

	tx, err := v.fetch(ctx, sig, rpc.CommitmentFinalized)
	if err != nil {
		return payment.VerifyResult{}, err
	}
	if tx == nil {
		seen, err := v.fetch(ctx, sig, rpc.CommitmentConfirmed)
		if err != nil {
			return payment.VerifyResult{}, err
		}
		if seen == nil {
			return payment.NotFound("signature not found"), nil
		}
		return payment.Pending("awaiting finalization"), nil
	}

	if tx.Meta == nil {
		return payment.Pending("transaction meta unavailable"), nil
	}
	if tx.Meta.Err != nil {
		return payment.Failed(fmt.Sprintf("transaction failed on chain: %v", tx.Meta.Err)), nil
	}

	received, err := v.received(tx)
	if err != nil {
		// Asking again returns the same bytes, so this is a verdict rather than a transport error.
		return payment.Pending(err.Error()), nil
	}
	return payment.Confirmed(payment.MoneyFromBaseUnits(received, payment.AssetSOL), "finalized"), nil
}

func (v *Verifier) fetch(ctx context.Context, sig sol.Signature, commitment rpc.CommitmentType) (*rpc.GetTransactionResult, error) {
	maxVersion := rpc.MaxSupportedTransactionVersion0
	out, err := v.client.GetTransaction(ctx, sig, &rpc.GetTransactionOpts{
		Encoding:                       sol.EncodingBase64,
		Commitment:                     commitment,
		MaxSupportedTransactionVersion: &maxVersion,
	})
	if errors.Is(err, rpc.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get solana transaction: %w", err)
	}
	return out, nil
}

// received is the wallet's lamport delta. Zero when the wallet is not an account of the transaction.
func (v *Verifier) received(tx *rpc.GetTransactionResult) (*big.Int, error) {
	if v.wallet == nil || tx.Transaction == nil {
		return big.NewInt(0), nil
	}
	decoded, err := tx.Transaction.GetTransaction()
	if err != nil {
		return nil, fmt.Errorf("decode solana transaction: %w", err)
	}

	keys := append(sol.PublicKeySlice{}, decoded.Message.AccountKeys...)
	keys = append(keys, tx.Meta.LoadedAddresses.Writable...)
	keys = append(keys, tx.Meta.LoadedAddresses.ReadOnly...)

	for i, key := range keys {
		if !key.Equals(*v.wallet) {
			continue
		}
		if i >= len(tx.Meta.PreBalances) || i >= len(tx.Meta.PostBalances) {
			break
		}
		pre, post := tx.Meta.PreBalances[i], tx.Meta.PostBalances[i]
		if post <= pre {
			break
		}
		return new(big.Int).SetUint64(post - pre), nil
	}
	return big.NewInt(0), nil
}
