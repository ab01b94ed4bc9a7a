package commands

import (
	"context"
	"log/slog"
	"strconv"

	"tourpay/internal/domain/payment"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/shared"

	"github.com/google/uuid"
)

var reconciledCardEvents = map[string]bool{
	"payment_intent.succeeded":      true,
	"payment_intent.payment_failed": true,
	"payment_intent.canceled":       true,
	"payment_intent.processing":     true,
}

type WebhookResult struct {
	EventID   string
	EventType string
	Handled   bool
	Claim     *ClaimResult
}

type WebhookCommands interface {
	HandleCardEvent(ctx context.Context, payload []byte, signature string) (*WebhookResult, error)
}

type webhookUseCaseImpl struct {
	verifier   shared.WebhookVerifier
	reconciler ReconcileCommands
	logger     *slog.Logger
}

func NewWebhookUseCase(verifier shared.WebhookVerifier, reconciler ReconcileCommands, logger *slog.Logger) WebhookCommands {
	return &webhookUseCaseImpl{
		verifier:   verifier,
		reconciler: reconciler,
		logger:     logger.With("component", "card-webhook"),
	}
}

// HandleCardEvent checks the signature before anything else. Events that can never
// reconcile are acknowledged so the processor stops redelivering them; only
// infrastructure failures return an error.
func (uc *webhookUseCaseImpl) HandleCardEvent(ctx context.Context, payload []byte, signature string) (*WebhookResult, error) {
	if uc.verifier == nil {
		return nil, errs.Wrap(shared.ErrRailUnavailable, "card webhook secret")
	}
	ev, err := uc.verifier.ParseEvent(payload, signature)
	if err != nil {
		return nil, err
	}

	result := &WebhookResult{EventID: ev.ID, EventType: ev.Type}
	if !reconciledCardEvents[ev.Type] {
		return result, nil
	}

	req, err := claimFromCardEvent(ev)
	if err != nil {
		uc.logger.WarnContext(ctx, "card event without usable metadata", "event_id", ev.ID, "intent_id", ev.IntentID, "error", err)
		return result, nil
	}

	claim, err := uc.reconciler.Submit(ctx, req)
	if err != nil {
		if isClientClaimError(err) {
			uc.logger.WarnContext(ctx, "card event not reconcilable", "event_id", ev.ID, "intent_id", ev.IntentID, "error", err)
			return result, nil
		}
		return nil, err
	}

	result.Handled = true
	result.Claim = claim
	return result, nil
}

func claimFromCardEvent(ev *shared.CardEvent) (ClaimRequest, error) {
	tourID, err := strconv.ParseInt(ev.Metadata[shared.IntentMetadataTourID], 10, 64)
	if err != nil {
		return ClaimRequest{}, errs.Wrap(err, "tour_id metadata")
	}

	req := ClaimRequest{
		Rail:          payment.RailCard.String(),
		Reference:     ev.IntentID,
		Amount:        ev.Amount.Amount(),
		TourID:        tourID,
		CustomerEmail: ev.Metadata[shared.IntentMetadataCustomerEmail],
	}
	if raw := ev.Metadata[shared.IntentMetadataBookingID]; raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return ClaimRequest{}, errs.Wrap(err, "booking_id metadata")
		}
		req.BookingID = &id
	}
	return req, nil
}

func isClientClaimError(err error) bool {
	for _, target := range []error{
		ErrInvalidClaim,
		ErrTourNotFound,
		ErrPriceUnavailable,
		ErrClaimConflict,
		ErrBookingNotFound,
	} {
		if errs.Is(err, target) {
			return true
		}
	}
	return false
}
