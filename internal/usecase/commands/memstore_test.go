//go:build unit

package commands_test

import (
	"context"
	"maps"
	"sort"
	"sync"
	"time"

	"tourpay/internal/domain/booking"
	"tourpay/internal/domain/payment"
	"tourpay/internal/domain/tour"
	"tourpay/internal/infra"
	sqlc "tourpay/internal/infra/sqlc/generated"
	"tourpay/internal/usecase/shared"

	"github.com/google/uuid"
)

// memStore is an in-memory shared.UnitOfWork whose conditional updates behave like the
// postgres queries behind the real repositories. One mutex stands in for row locks:
// Within holds it for the whole transaction, Direct statements take it per call.
type memStore struct {
	mu       sync.Mutex
	tours    map[int64]*tour.Tour
	payments map[uuid.UUID]payment.ReconstructParams
	bookings map[uuid.UUID]bookingRow
	jobs     []memJob
}

type bookingRow struct {
	id        uuid.UUID
	tourID    int64
	email     string
	status    booking.Status
	createdAt time.Time
	updatedAt time.Time
}

type memJob struct {
	kind    string
	topic   string
	payload []byte
	runAt   time.Time
}

func newMemStore(tours ...*tour.Tour) *memStore {
	s := &memStore{
		tours:    make(map[int64]*tour.Tour),
		payments: make(map[uuid.UUID]payment.ReconstructParams),
		bookings: make(map[uuid.UUID]bookingRow),
	}
	for _, t := range tours {
		s.tours[t.ID()] = t
	}
	return s
}

var _ shared.UnitOfWork = (*memStore)(nil)

func (s *memStore) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	payments := maps.Clone(s.payments)
	bookings := maps.Clone(s.bookings)
	jobs := len(s.jobs)

	if err := fn(ctx, memTx{s: s, held: true}); err != nil {
		s.payments = payments
		s.bookings = bookings
		s.jobs = s.jobs[:jobs]
		return err
	}
	return nil
}

func (s *memStore) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, nil)
}

func (s *memStore) Direct() shared.Tx {
	return memTx{s: s}
}

func (s *memStore) CommandReads() shared.CommandReads {
	return memTx{s: s}
}

// test accessors

func (s *memStore) payment(id uuid.UUID) *payment.Payment {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.payments[id]
	if !ok {
		return nil
	}
	return payment.ReconstructPayment(row)
}

func (s *memStore) putPayment(p *payment.Payment) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payments[p.ID()] = paymentRow(p)
}

func (s *memStore) putBooking(b *booking.Booking) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookings[b.ID()] = newBookingRow(b)
}

func (s *memStore) booking(id uuid.UUID) *booking.Booking {
	s.mu.Lock()
	defer s.mu.Unlock()
	row, ok := s.bookings[id]
	if !ok {
		return nil
	}
	return row.entity()
}

func (s *memStore) paymentCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.payments)
}

func (s *memStore) bookingCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.bookings)
}

func (s *memStore) topics() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, j := range s.jobs {
		out = append(out, j.topic)
	}
	return out
}

type memTx struct {
	s    *memStore
	held bool
}

func (t memTx) lock() func() {
	if t.held {
		return func() {}
	}
	t.s.mu.Lock()
	return t.s.mu.Unlock
}

func (t memTx) Payments() shared.PaymentRepository           { return memPayments(t) }
func (t memTx) Bookings() shared.BookingRepository           { return memBookings(t) }
func (t memTx) Notifications() shared.NotificationRepository { return memNotifications(t) }
func (t memTx) Reads() shared.CommandReads                   { return t }
func (t memTx) DB() sqlc.DBTX                                { return nil }

func (t memTx) TourByID(_ context.Context, id int64) (*tour.Tour, error) {
	defer t.lock()()
	found, ok := t.s.tours[id]
	if !ok {
		return nil, infra.WrapRepoErr("tour not found", nil, infra.KindNotFound)
	}
	return found, nil
}

func (t memTx) BookingByID(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	defer t.lock()()
	row, ok := t.s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return row.entity(), nil
}

type memPayments memTx

func (r memPayments) lock() func() { return memTx(r).lock() }

func (r memPayments) InsertClaim(_ context.Context, p *payment.Payment) (bool, error) {
	defer r.lock()()
	for _, row := range r.s.payments {
		if row.Rail == p.Rail() && row.Reference == p.Reference() {
			return false, nil
		}
	}
	r.s.payments[p.ID()] = paymentRow(p)
	return true, nil
}

func (r memPayments) FindByRailRef(_ context.Context, rail payment.Rail, reference string) (*payment.Payment, error) {
	defer r.lock()()
	for _, row := range r.s.payments {
		if row.Rail == rail && row.Reference == reference {
			return payment.ReconstructPayment(row), nil
		}
	}
	return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
}

func (r memPayments) FindByID(_ context.Context, id uuid.UUID) (*payment.Payment, error) {
	defer r.lock()()
	row, ok := r.s.payments[id]
	if !ok {
		return nil, infra.WrapRepoErr("payment not found", nil, infra.KindNotFound)
	}
	return payment.ReconstructPayment(row), nil
}

func (r memPayments) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*payment.Payment, error) {
	return r.FindByID(ctx, id)
}

func (r memPayments) ReacquireLease(_ context.Context, id uuid.UUID, leaseUntil, now time.Time) (*payment.Payment, error) {
	defer r.lock()()
	row, ok := r.s.payments[id]
	if !ok || row.Status != payment.StatusProcessing || row.LeaseUntil.After(now) {
		return nil, nil
	}
	row.LeaseUntil = leaseUntil
	row.UpdatedAt = now
	r.s.payments[id] = row
	return payment.ReconstructPayment(row), nil
}

func (r memPayments) ReleaseLease(_ context.Context, id uuid.UUID, notFoundAttempts int32, now time.Time) (int32, error) {
	defer r.lock()()
	row, ok := r.s.payments[id]
	if !ok || row.Status != payment.StatusProcessing {
		return 0, infra.WrapRepoErr("payment is no longer processing", nil, infra.KindStaleState)
	}
	row.LeaseUntil = now
	row.VerifyAttempts++
	row.NotFoundAttempts = notFoundAttempts
	row.UpdatedAt = now
	r.s.payments[id] = row
	return row.VerifyAttempts, nil
}

func (r memPayments) MarkCompleted(_ context.Context, p *payment.Payment) error {
	return r.transition(p, payment.StatusProcessing)
}

func (r memPayments) MarkFailed(_ context.Context, p *payment.Payment) error {
	return r.transition(p, payment.StatusProcessing)
}

func (r memPayments) MarkRefunded(_ context.Context, p *payment.Payment, _ string) error {
	return r.transition(p, payment.StatusCompleted)
}

func (r memPayments) transition(p *payment.Payment, from payment.Status) error {
	defer r.lock()()
	row, ok := r.s.payments[p.ID()]
	if !ok || row.Status != from {
		return infra.WrapRepoErr("payment moved on", nil, infra.KindStaleState)
	}
	next := paymentRow(p)
	next.VerifyAttempts = row.VerifyAttempts
	next.NotFoundAttempts = row.NotFoundAttempts
	next.LeaseUntil = row.LeaseUntil
	r.s.payments[p.ID()] = next
	return nil
}

func (r memPayments) ListStale(_ context.Context, now, updatedBefore time.Time, limit int32) ([]*payment.Payment, error) {
	defer r.lock()()
	var rows []payment.ReconstructParams
	for _, row := range r.s.payments {
		if row.Status == payment.StatusProcessing && row.LeaseUntil.Before(now) && row.UpdatedAt.Before(updatedBefore) {
			rows = append(rows, row)
		}
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].UpdatedAt.Before(rows[j].UpdatedAt) })
	if len(rows) > int(limit) {
		rows = rows[:limit]
	}
	out := make([]*payment.Payment, 0, len(rows))
	for _, row := range rows {
		out = append(out, payment.ReconstructPayment(row))
	}
	return out, nil
}

type memBookings memTx

func (r memBookings) lock() func() { return memTx(r).lock() }

func (r memBookings) Create(_ context.Context, b *booking.Booking) error {
	defer r.lock()()
	if _, ok := r.s.bookings[b.ID()]; ok {
		return infra.WrapRepoErr("booking exists", nil, infra.KindDuplicateKey)
	}
	r.s.bookings[b.ID()] = newBookingRow(b)
	return nil
}

func (r memBookings) FindByIDForUpdate(_ context.Context, id uuid.UUID) (*booking.Booking, error) {
	defer r.lock()()
	row, ok := r.s.bookings[id]
	if !ok {
		return nil, infra.WrapRepoErr("booking not found", nil, infra.KindNotFound)
	}
	return row.entity(), nil
}

func (r memBookings) UpdateStatus(_ context.Context, b *booking.Booking, from booking.Status) error {
	defer r.lock()()
	row, ok := r.s.bookings[b.ID()]
	if !ok || row.status != from {
		return infra.WrapRepoErr("booking moved on", nil, infra.KindStaleState)
	}
	r.s.bookings[b.ID()] = newBookingRow(b)
	return nil
}

type memNotifications memTx

func (r memNotifications) lock() func() { return memTx(r).lock() }

func (r memNotifications) CreateJob(_ context.Context, kind, topic string, payload []byte, runAt time.Time) error {
	defer r.lock()()
	r.s.jobs = append(r.s.jobs, memJob{kind: kind, topic: topic, payload: payload, runAt: runAt})
	return nil
}

func (r memNotifications) ClaimQueued(context.Context, time.Time, int32) ([]*shared.NotificationJob, error) {
	return nil, nil
}

func (r memNotifications) MarkSent(context.Context, uuid.UUID) error {
	return nil
}

func (r memNotifications) Reschedule(context.Context, uuid.UUID, string, string, time.Time) error {
	return nil
}

func paymentRow(p *payment.Payment) payment.ReconstructParams {
	return payment.ReconstructParams{
		ID:                 p.ID(),
		BookingID:          p.BookingID(),
		TourID:             p.TourID(),
		CustomerEmail:      p.CustomerEmail(),
		RequestedBookingID: p.RequestedBookingID(),
		Rail:               p.Rail(),
		Reference:          p.Reference(),
		Amount:             p.Amount(),
		Status:             p.Status(),
		FailureReason:      p.FailureReason(),
		ClaimHash:          p.ClaimHash(),
		VerifyAttempts:     p.VerifyAttempts(),
		NotFoundAttempts:   p.NotFoundAttempts(),
		LeaseUntil:         p.LeaseUntil(),
		Settled:            p.Settled(),
		Refunded:           p.Refunded(),
		CompletedAt:        p.CompletedAt(),
		RefundedAt:         p.RefundedAt(),
		CreatedAt:          p.CreatedAt(),
		UpdatedAt:          p.UpdatedAt(),
	}
}

func newBookingRow(b *booking.Booking) bookingRow {
	return bookingRow{
		id:        b.ID(),
		tourID:    b.TourID(),
		email:     b.CustomerEmail(),
		status:    b.Status(),
		createdAt: b.CreatedAt(),
		updatedAt: b.UpdatedAt(),
	}
}

func (r bookingRow) entity() *booking.Booking {
	return booking.ReconstructBooking(r.id, r.tourID, r.email, r.status, r.createdAt, r.updatedAt)
}
