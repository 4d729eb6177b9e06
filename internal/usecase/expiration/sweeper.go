package expiration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"stokship/internal/pkg/clock"
	"stokship/internal/pkg/config"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/commands"
	"stokship/internal/usecase/shared"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName = "stokship/expiration"
	// RunLockName identifies the sweep in the cross-process run lock.
	RunLockName = "deal-expiration-sweep"
)

// Report summarizes one sweep. Failed deals stay open and are retried by the
// next sweep.
type Report struct {
	Cutoff           time.Time
	Skipped          bool // another process held the run lock
	Candidates       int
	Expired          int
	Ineligible       int
	Failed           int
	Notified         int
	NotifyFailed     int
	ReleasedQuantity int
	PurgedKeys       int64
}

type Sweeper interface {
	Sweep(ctx context.Context) (Report, error)
}

type sweeper struct {
	uow      shared.UnitOfWork
	deals    commands.DealCommands
	notifier shared.Notifier
	lock     shared.RunLock
	clock    clock.Clock
	cfg      config.ExpirationConfig
	tracer   trace.Tracer
}

func NewSweeper(
	uow shared.UnitOfWork,
	deals commands.DealCommands,
	notifier shared.Notifier,
	lock shared.RunLock,
	clk clock.Clock,
	cfg config.ExpirationConfig,
) Sweeper {
	return &sweeper{
		uow:      uow,
		deals:    deals,
		notifier: notifier,
		lock:     lock,
		clock:    clk,
		cfg:      cfg,
		tracer:   otel.Tracer(tracerName),
	}
}

// Sweep cancels every open deal whose quote is older than the grace period and
// has no completed payment. Per-deal failures are counted, never returned;
// only a failure to select candidates aborts the sweep.
func (s *sweeper) Sweep(ctx context.Context) (Report, error) {
	var report Report
	acquired, err := s.lock.TryRun(ctx, RunLockName, func(ctx context.Context) error {
		var runErr error
		report, runErr = s.run(ctx)
		return runErr
	})
	if err != nil {
		return report, err
	}
	if !acquired {
		slog.Info("expiration sweep skipped, run lock held elsewhere")
		return Report{Skipped: true}, nil
	}
	return report, nil
}

func (s *sweeper) run(ctx context.Context) (Report, error) {
	ctx, span := s.tracer.Start(ctx, "expiration.sweep")
	defer span.End()

	now := s.clock.Now()
	report := Report{Cutoff: now.Add(-s.cfg.GracePeriod())}
	span.SetAttributes(attribute.String("expiration.cutoff", report.Cutoff.Format(time.RFC3339)))

	candidates, err := s.candidates(ctx, report.Cutoff)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "candidate selection failed")
		return report, err
	}
	report.Candidates = len(candidates)

	for _, c := range candidates {
		res, err := s.expireOne(ctx, c, report.Cutoff)
		switch {
		case err != nil:
			report.Failed++
			slog.Error("failed to expire deal",
				"deal_id", c.ID,
				"deal_number", c.Number,
				"error", err)
			continue
		case !res.Expired:
			report.Ineligible++
			continue
		}

		report.Expired++
		report.ReleasedQuantity += res.Released.TotalQuantityReleased
		if !s.cfg.SendNotifications {
			continue
		}
		if err := s.notify(ctx, c, res); err != nil {
			report.NotifyFailed++
			slog.Warn("failed to send deal cancelled notice",
				"deal_id", c.ID,
				"deal_number", res.DealNumber,
				"error", err)
			continue
		}
		report.Notified++
	}

	report.PurgedKeys = s.purgeIdempotencyKeys(ctx, now)

	span.SetAttributes(
		attribute.Int("expiration.candidates", report.Candidates),
		attribute.Int("expiration.expired", report.Expired),
		attribute.Int("expiration.failed", report.Failed),
	)
	slog.Info("expiration sweep finished",
		"cutoff", report.Cutoff,
		"candidates", report.Candidates,
		"expired", report.Expired,
		"ineligible", report.Ineligible,
		"failed", report.Failed,
		"notified", report.Notified,
		"notify_failed", report.NotifyFailed,
		"purged_keys", report.PurgedKeys)
	return report, nil
}

func (s *sweeper) candidates(ctx context.Context, cutoff time.Time) ([]shared.ExpirableDeal, error) {
	var out []shared.ExpirableDeal
	err := s.uow.WithinReadOnly(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		out, err = tx.Deals().ListExpirable(ctx, tx.DB(), cutoff, s.cfg.BatchSize)
		return err
	})
	if err != nil {
		return nil, errs.Wrap(err, "select expirable deals")
	}
	return out, nil
}

func (s *sweeper) expireOne(ctx context.Context, c shared.ExpirableDeal, cutoff time.Time) (res *commands.ExpireResult, err error) {
	ctx, span := s.tracer.Start(ctx, "expiration.expire_deal", trace.WithAttributes(
		attribute.String("deal.id", c.ID.String()),
		attribute.String("deal.number", c.Number),
	))
	defer span.End()

	defer func() {
		if r := recover(); r != nil {
			err = errs.New(fmt.Sprintf("panic while expiring deal: %v", r))
		}
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "expire failed")
			return
		}
		span.SetAttributes(attribute.Bool("deal.expired", res.Expired))
	}()

	return s.deals.ExpireDeal(ctx, c.ID, cutoff, s.cfg.CancellationReason)
}

func (s *sweeper) notify(ctx context.Context, c shared.ExpirableDeal, res *commands.ExpireResult) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errs.New(fmt.Sprintf("panic in notifier: %v", r))
		}
	}()

	return s.notifier.NotifyDealCancelled(ctx, shared.DealCancelledNotice{
		DealID:      c.ID,
		DealNumber:  res.DealNumber,
		BuyerID:     res.BuyerID,
		ReasonText:  res.Reason,
		CancelledAt: res.CancelledAt,
	})
}

func (s *sweeper) purgeIdempotencyKeys(ctx context.Context, now time.Time) int64 {
	var purged int64
	err := s.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		purged, err = tx.Idempotency().DeleteExpired(ctx, tx.DB(), now)
		return err
	})
	if err != nil {
		slog.Warn("failed to purge expired idempotency keys", "error", err)
		return 0
	}
	return purged
}
