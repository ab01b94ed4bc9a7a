package eth

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"strings"

	"tourpay/internal/domain/payment"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
)

// ChainAPI is implemented by *ethclient.Client.
type ChainAPI interface {
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	TransactionByHash(ctx context.Context, hash common.Hash) (tx *types.Transaction, isPending bool, err error)
	BlockNumber(ctx context.Context) (uint64, error)
}

type Verifier struct {
	client           ChainAPI
	wallet           *common.Address
	minConfirmations uint64
}

func NewVerifier(client ChainAPI, wallet string, minConfirmations uint64) (*Verifier, error) {
	v := &Verifier{client: client, minConfirmations: max(minConfirmations, 1)}
	if wallet == "" {
		return v, nil
	}
	if !common.IsHexAddress(wallet) {
		return nil, fmt.Errorf("invalid ethereum wallet %q", wallet)
	}
	addr := common.HexToAddress(wallet)
	v.wallet = &addr
	return v, nil
}

func (v *Verifier) Verify(ctx context.Context, reference string, _ payment.Money) (payment.VerifyResult, error) {
	hash := common.HexToHash(reference)

	receipt, err := v.client.TransactionReceipt(ctx, hash)
	if errors.Is(err, ethereum.NotFound) {
		return payment.NotFound("no receipt"), nil
	}
	if err != nil {
		return payment.VerifyResult{}, fmt.Errorf("get receipt: %w", err)
	}

	if receipt.Status != types.ReceiptStatusSuccessful {
		return payment.Failed("transaction reverted"), nil
	}

	head, err := v.client.BlockNumber(ctx)
	if err != nil {
		return payment.VerifyResult{}, fmt.Errorf("get block number: %w", err)
	}
	if confirmations(receipt.BlockNumber, head) < v.minConfirmations {
		return payment.Pending("awaiting confirmations"), nil
	}

	settled, err := v.received(ctx, hash)
	if err != nil {
		return payment.VerifyResult{}, err
	}
	return payment.Confirmed(settled, "confirmed"), nil
}

func confirmations(block *big.Int, head uint64) uint64 {
	if block == nil || !block.IsUint64() || block.Uint64() > head {
		return 0
	}
	return head - block.Uint64() + 1
}

// received is tx.value when the recipient is the configured wallet, else zero.
func (v *Verifier) received(ctx context.Context, hash common.Hash) (payment.Money, error) {
	if v.wallet == nil {
		return payment.ZeroMoney(payment.AssetETH), nil
	}
	tx, _, err := v.client.TransactionByHash(ctx, hash)
	if err != nil {
		return payment.Money{}, fmt.Errorf("get transaction: %w", err)
	}
	to := tx.To()
	if to == nil || !strings.EqualFold(to.Hex(), v.wallet.Hex()) {
		return payment.ZeroMoney(payment.AssetETH), nil
	}
	return payment.MoneyFromBaseUnits(tx.Value(), payment.AssetETH), nil
}
