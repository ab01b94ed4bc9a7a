package commands

import (
	"context"
	"log/slog"

	"tourpay/internal/domain/payment"
	"tourpay/internal/pkg/clock"
	"tourpay/internal/pkg/config"
	"tourpay/internal/pkg/errs"
	"tourpay/internal/usecase/shared"
)

type SweepReport struct {
	Scanned   int
	Completed int
	Failed    int
	Expired   int
	Pending   int
	Errors    int
}

type SweepCommands interface {
	Sweep(ctx context.Context) (*SweepReport, error)
}

// sweeperImpl picks up processing payments nobody is polling: submitters that gave up
// after a pending verdict, or a process that died holding the lease.
type sweeperImpl struct {
	uow        shared.UnitOfWork
	reconciler ReconcileCommands
	clock      clock.Clock
	cfg        config.SweeperConfig
	logger     *slog.Logger
}

func NewSweeper(uow shared.UnitOfWork, reconciler ReconcileCommands, clk clock.Clock, cfg config.Config, logger *slog.Logger) SweepCommands {
	return &sweeperImpl{
		uow:        uow,
		reconciler: reconciler,
		clock:      clk,
		cfg:        cfg.Sweeper,
		logger:     logger.With("component", "sweeper"),
	}
}

func (s *sweeperImpl) Sweep(ctx context.Context) (*SweepReport, error) {
	now := s.clock.Now()
	stale, err := s.uow.Direct().Payments().ListStale(ctx, now, now.Add(-s.cfg.Grace), s.cfg.Batch)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}

	report := &SweepReport{Scanned: len(stale)}
	for _, p := range stale {
		if ctx.Err() != nil {
			return report, ctx.Err()
		}

		var res *ClaimResult
		expired := now.Sub(p.CreatedAt()) > s.cfg.VerificationTTL
		if expired {
			res, err = s.reconciler.Expire(ctx, p.ID())
		} else {
			res, err = s.reconciler.Resume(ctx, p.ID())
		}
		if err != nil {
			report.Errors++
			s.logger.WarnContext(ctx, "sweep failed for payment", "payment_id", p.ID(), "rail", p.Rail(), "error", err)
			continue
		}

		switch {
		case res.Status == payment.StatusCompleted.String():
			report.Completed++
		case res.Status == payment.StatusFailed.String() && expired:
			report.Expired++
		case res.Status == payment.StatusFailed.String():
			report.Failed++
		default:
			report.Pending++
		}
	}

	if report.Scanned > 0 {
		s.logger.InfoContext(ctx, "sweep finished",
			"scanned", report.Scanned,
			"completed", report.Completed,
			"failed", report.Failed,
			"expired", report.Expired,
			"pending", report.Pending,
			"errors", report.Errors,
		)
	}
	return report, nil
}
