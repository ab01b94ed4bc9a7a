package btc

import (
	"context"
	"errors"

	"tourpay/internal/domain/payment"
)

type TransactionAPI interface {
	Transaction(ctx context.Context, txid string) (*Tx, error)
}

type Verifier struct {
	client TransactionAPI
	wallet string
}

func NewVerifier(client TransactionAPI, wallet string) *Verifier {
	return &Verifier{client: client, wallet: wallet}
}

func (v *Verifier) Verify(ctx context.Context, reference string, _ payment.Money) (payment.VerifyResult, error) {
	tx, err := v.client.Transaction(ctx, reference)
	if errors.Is(err, ErrTxNotFound) {
		return payment.NotFound("transaction not found"), nil
	}
	if err != nil {
		return payment.VerifyResult{}, err
	}

	if !tx.Status.Confirmed || tx.Status.BlockHeight == nil {
		return payment.Pending("in mempool"), nil
	}

	return payment.Confirmed(payment.MoneyFromMinor(v.received(tx), payment.AssetBTC), "confirmed"), nil
}

// received sums the satoshis paid to the configured wallet.
func (v *Verifier) received(tx *Tx) int64 {
	if v.wallet == "" {
		return 0
	}
	var sats int64
	for _, out := range tx.Vout {
		if out.ScriptPubKeyAddress == v.wallet {
			sats += out.Value
		}
	}
	return sats
}
