package payment

import (
	"crypto/sha256"
	"encoding/hex"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Claim is a client's assertion that a rail transaction paid for a tour.
type Claim struct {
	Rail          Rail
	Reference     string
	Amount        Money
	TourID        int64
	CustomerEmail string
	BookingID     *uuid.UUID
}

func NewClaim(railName, reference string, amount decimal.Decimal, tourID int64, customerEmail string, bookingID *uuid.UUID) (Claim, error) {
	rail, err := ParseRail(railName)
	if err != nil {
		return Claim{}, err
	}
	ref, err := NormalizeReference(rail, reference)
	if err != nil {
		return Claim{}, err
	}
	money, err := NewMoney(amount, rail.Asset())
	if err != nil {
		return Claim{}, err
	}
	return Claim{
		Rail:          rail,
		Reference:     ref,
		Amount:        money,
		TourID:        tourID,
		CustomerEmail: strings.ToLower(strings.TrimSpace(customerEmail)),
		BookingID:     bookingID,
	}, nil
}

// Fingerprint identifies the claim context. The customer email is left out on purpose:
// the card webhook rebuilds claims from intent metadata, which may not carry it.
func (c Claim) Fingerprint() string {
	var b strings.Builder
	b.WriteString(c.Rail.String())
	b.WriteByte('|')
	b.WriteString(c.Reference)
	b.WriteByte('|')
	b.WriteString(strconv.FormatInt(c.TourID, 10))
	b.WriteByte('|')
	b.WriteString(c.Amount.Amount().String())
	b.WriteByte('|')
	if c.BookingID != nil {
		b.WriteString(c.BookingID.String())
	}
	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

type Payment struct {
	id                 uuid.UUID
	bookingID          *uuid.UUID
	tourID             int64
	customerEmail      string
	requestedBookingID *uuid.UUID
	rail               Rail
	reference          string
	amount             Money
	status             Status
	failureReason      *string
	claimHash          string
	verifyAttempts     int32
	notFoundAttempts   int32
	leaseUntil         time.Time
	settled            Money
	refunded           Money
	completedAt        *time.Time
	refundedAt         *time.Time
	createdAt          time.Time
	updatedAt          time.Time
}

// NewProcessingPayment builds the row the ledger gate inserts when it claims a reference.
func NewProcessingPayment(claim Claim, now time.Time, lease time.Duration) *Payment {
	asset := claim.Rail.Asset()
	return &Payment{
		id:                 uuid.New(),
		tourID:             claim.TourID,
		customerEmail:      claim.CustomerEmail,
		requestedBookingID: claim.BookingID,
		rail:               claim.Rail,
		reference:          claim.Reference,
		amount:             claim.Amount,
		status:             StatusProcessing,
		claimHash:          claim.Fingerprint(),
		leaseUntil:         now.Add(lease),
		settled:            ZeroMoney(asset),
		refunded:           ZeroMoney(asset),
		createdAt:          now,
		updatedAt:          now,
	}
}

type ReconstructParams struct {
	ID                 uuid.UUID
	BookingID          *uuid.UUID
	TourID             int64
	CustomerEmail      string
	RequestedBookingID *uuid.UUID
	Rail               Rail
	Reference          string
	Amount             Money
	Status             Status
	FailureReason      *string
	ClaimHash          string
	VerifyAttempts     int32
	NotFoundAttempts   int32
	LeaseUntil         time.Time
	Settled            Money
	Refunded           Money
	CompletedAt        *time.Time
	RefundedAt         *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func ReconstructPayment(p ReconstructParams) *Payment {
	return &Payment{
		id:                 p.ID,
		bookingID:          p.BookingID,
		tourID:             p.TourID,
		customerEmail:      p.CustomerEmail,
		requestedBookingID: p.RequestedBookingID,
		rail:               p.Rail,
		reference:          p.Reference,
		amount:             p.Amount,
		status:             p.Status,
		failureReason:      p.FailureReason,
		claimHash:          p.ClaimHash,
		verifyAttempts:     p.VerifyAttempts,
		notFoundAttempts:   p.NotFoundAttempts,
		leaseUntil:         p.LeaseUntil,
		settled:            p.Settled,
		refunded:           p.Refunded,
		completedAt:        p.CompletedAt,
		refundedAt:         p.RefundedAt,
		createdAt:          p.CreatedAt,
		updatedAt:          p.UpdatedAt,
	}
}

func (p *Payment) transition(next Status, now time.Time) error {
	if !p.status.CanTransitionTo(next) {
		return ErrInvalidTransition
	}
	p.status = next
	p.updatedAt = now
	return nil
}

func (p *Payment) Complete(bookingID uuid.UUID, settled Money, now time.Time) error {
	if err := p.transition(StatusCompleted, now); err != nil {
		return err
	}
	p.bookingID = &bookingID
	p.settled = settled
	p.completedAt = &now
	p.failureReason = nil
	return nil
}

func (p *Payment) Fail(reason string, now time.Time) error {
	if err := p.transition(StatusFailed, now); err != nil {
		return err
	}
	sanitized := SanitizeReason(reason)
	p.failureReason = &sanitized
	return nil
}

func (p *Payment) Cancel(now time.Time) error {
	return p.transition(StatusCancelled, now)
}

// Refund settles a processor-side reversal. A zero amount refunds everything that settled.
func (p *Payment) Refund(amount Money, now time.Time) error {
	if !p.rail.SupportsRefund() {
		return ErrRefundUnsupported
	}
	if !p.status.CanTransitionTo(StatusRefunded) {
		return ErrInvalidTransition
	}
	ceiling := p.RefundableAmount()
	if amount.IsZero() {
		amount = ceiling
	}
	exceeds, err := amount.GreaterThan(ceiling)
	if err != nil {
		return err
	}
	if exceeds {
		return ErrRefundExceedsTotal
	}
	if err := p.transition(StatusRefunded, now); err != nil {
		return err
	}
	p.refunded = amount
	p.refundedAt = &now
	return nil
}

// RefundableAmount prefers what the processor settled over what the client claimed.
func (p *Payment) RefundableAmount() Money {
	if !p.settled.IsZero() {
		return p.settled
	}
	return p.amount
}

func (p *Payment) LeaseActive(now time.Time) bool {
	return now.Before(p.leaseUntil)
}

// NotFoundStreakAfter is the consecutive not_found count once state is recorded. A pending
// verdict means the rail has seen the transaction, so the count starts over; any other
// state leaves it as is.
func (p *Payment) NotFoundStreakAfter(state VerifyState) int32 {
	switch state {
	case VerifyNotFound:
		return p.notFoundAttempts + 1
	case VerifyPending:
		return 0
	default:
		return p.notFoundAttempts
	}
}

func (p *Payment) ID() uuid.UUID                  { return p.id }
func (p *Payment) BookingID() *uuid.UUID          { return p.bookingID }
func (p *Payment) TourID() int64                  { return p.tourID }
func (p *Payment) CustomerEmail() string          { return p.customerEmail }
func (p *Payment) RequestedBookingID() *uuid.UUID { return p.requestedBookingID }
func (p *Payment) Rail() Rail                     { return p.rail }
func (p *Payment) Reference() string              { return p.reference }
func (p *Payment) Amount() Money                  { return p.amount }
func (p *Payment) Status() Status                 { return p.status }
func (p *Payment) FailureReason() *string         { return p.failureReason }
func (p *Payment) ClaimHash() string              { return p.claimHash }
func (p *Payment) VerifyAttempts() int32          { return p.verifyAttempts }
func (p *Payment) NotFoundAttempts() int32        { return p.notFoundAttempts }
func (p *Payment) LeaseUntil() time.Time          { return p.leaseUntil }
func (p *Payment) Settled() Money                 { return p.settled }
func (p *Payment) Refunded() Money                { return p.refunded }
func (p *Payment) CompletedAt() *time.Time        { return p.completedAt }
func (p *Payment) RefundedAt() *time.Time         { return p.refundedAt }
func (p *Payment) CreatedAt() time.Time           { return p.createdAt }
func (p *Payment) UpdatedAt() time.Time           { return p.updatedAt }

var (
	urlPattern    = regexp.MustCompile(`https?://\S+`)
	secretPattern = regexp.MustCompile(`\b(sk|rk|pk|whsec)_(live|test)?_?[A-Za-z0-9]+\b`)
)

// SanitizeReason strips URLs (RPC endpoints may embed API keys) and processor secrets from a
// failure reason before it is persisted and shown to clients.
func SanitizeReason(reason string) string {
	reason = urlPattern.ReplaceAllString(reason, "[redacted-url]")
	reason = secretPattern.ReplaceAllString(reason, "[redacted]")
	reason = strings.TrimSpace(reason)
	if reason == "" {
		reason = "payment failed"
	}
	if len(reason) > MaxFailureReasonLength {
		reason = reason[:MaxFailureReasonLength]
	}
	return reason
}
