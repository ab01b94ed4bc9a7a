package worker

import (
	"context"
	"log/slog"
	"time"

	"tourpay/internal/infra/events"
	"tourpay/internal/pkg/clock"
	"tourpay/internal/pkg/config"
	"tourpay/internal/usecase/shared"
)

const maxRedeliveryDelay = 10 * time.Minute

type DispatchReport struct {
	Sent        int
	Rescheduled int
	Dead        int
}

// OutboxDispatcher publishes queued notification jobs. Rows are claimed with
// SKIP LOCKED, so several instances can run side by side.
type OutboxDispatcher struct {
	uow       shared.UnitOfWork
	publisher events.Publisher
	clock     clock.Clock
	cfg       config.EventsConfig
	logger    *slog.Logger
}

func NewOutboxDispatcher(uow shared.UnitOfWork, publisher events.Publisher, clk clock.Clock, cfg config.Config, logger *slog.Logger) *OutboxDispatcher {
	return &OutboxDispatcher{
		uow:       uow,
		publisher: publisher,
		clock:     clk,
		cfg:       cfg.Events,
		logger:    logger.With("component", "outbox"),
	}
}

func (d *OutboxDispatcher) Dispatch(ctx context.Context) (*DispatchReport, error) {
	report := &DispatchReport{}
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		*report = DispatchReport{}
		now := d.clock.Now()
		jobs, err := tx.Notifications().ClaimQueued(ctx, now, d.cfg.Batch)
		if err != nil {
			return err
		}

		for _, job := range jobs {
			pubErr := d.publisher.Publish(ctx, events.Message{
				Topic:   job.Topic,
				Key:     job.ID.String(),
				Payload: job.Payload,
				Headers: map[string]string{"kind": job.Kind},
			})
			if pubErr == nil {
				if err := tx.Notifications().MarkSent(ctx, job.ID); err != nil {
					return err
				}
				report.Sent++
				continue
			}

			status, runAt := d.nextAttempt(job, now)
			if err := tx.Notifications().Reschedule(ctx, job.ID, status, pubErr.Error(), runAt); err != nil {
				return err
			}
			if status == shared.JobStatusDead {
				report.Dead++
				d.logger.ErrorContext(ctx, "outbox job dead", "job_id", job.ID, "topic", job.Topic, "error", pubErr)
			} else {
				report.Rescheduled++
				d.logger.WarnContext(ctx, "outbox publish failed", "job_id", job.ID, "topic", job.Topic, "retry_at", runAt, "error", pubErr)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return report, nil
}

// nextAttempt doubles the delay per attempt. Attempts counts tries before this one.
func (d *OutboxDispatcher) nextAttempt(job *shared.NotificationJob, now time.Time) (string, time.Time) {
	if job.Attempts+1 >= d.cfg.MaxAttempts {
		return shared.JobStatusDead, now
	}
	delay := d.cfg.PollInterval
	for i := int32(0); i < job.Attempts && delay < maxRedeliveryDelay; i++ {
		delay *= 2
	}
	return shared.JobStatusQueued, now.Add(min(delay, maxRedeliveryDelay))
}

func (d *OutboxDispatcher) tick(ctx context.Context) {
	if _, err := d.Dispatch(ctx); err != nil && ctx.Err() == nil {
		d.logger.ErrorContext(ctx, "outbox dispatch failed", "error", err)
	}
}
