//go:build e2e

package e2e

import (
	"context"
	"fmt"
	"sync"

	"tourpay/internal/domain/payment"
	"tourpay/internal/usecase/shared"

	"github.com/google/uuid"
)

// FakeRails stands in for the external payment rails. Tests script the verdict per
// reference; unscripted references are not found.
type FakeRails struct {
	mu       sync.Mutex
	verdicts map[string]payment.VerifyState
	calls    map[string]int
	refunds  []shared.RefundParams
}

func NewFakeRails() *FakeRails {
	return &FakeRails{
		verdicts: map[string]payment.VerifyState{},
		calls:    map[string]int{},
	}
}

func (f *FakeRails) Script(reference string, state payment.VerifyState) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verdicts[reference] = state
}

func (f *FakeRails) Calls(reference string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls[reference]
}

func (f *FakeRails) Refunds() []shared.RefundParams {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]shared.RefundParams(nil), f.refunds...)
}

func (f *FakeRails) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.verdicts = map[string]payment.VerifyState{}
	f.calls = map[string]int{}
	f.refunds = nil
}

// Verify settles exactly the expected amount when scripted as confirmed.
func (f *FakeRails) Verify(_ context.Context, reference string, expected payment.Money) (payment.VerifyResult, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls[reference]++

	switch f.verdicts[reference] {
	case payment.VerifyConfirmed:
		return payment.Confirmed(expected, "scripted"), nil
	case payment.VerifyPending:
		return payment.Pending("scripted"), nil
	case payment.VerifyFailed:
		return payment.Failed("transaction reverted"), nil
	default:
		return payment.NotFound("scripted"), nil
	}
}

func (f *FakeRails) Verifiers() *shared.Verifiers {
	return shared.NewVerifiers(map[payment.Rail]shared.Verifier{
		payment.RailCard:         f,
		payment.RailFastChain:    f,
		payment.RailUTXOChain:    f,
		payment.RailAccountChain: f,
	})
}

func (f *FakeRails) CreateIntent(_ context.Context, params shared.IntentParams) (*shared.Intent, error) {
	id := "pi_e2e" + uuid.NewString()[:8]
	return &shared.Intent{
		ID:           id,
		ClientSecret: fmt.Sprintf("%s_secret_e2e", id),
		Amount:       params.Amount,
		Currency:     "usd",
	}, nil
}

func (f *FakeRails) Refund(_ context.Context, params shared.RefundParams) (*shared.RefundReceipt, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.refunds = append(f.refunds, params)
	return &shared.RefundReceipt{ID: fmt.Sprintf("re_e2e_%d", len(f.refunds)), Status: "succeeded"}, nil
}
