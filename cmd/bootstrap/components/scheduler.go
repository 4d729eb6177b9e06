package components

import (
	"context"
	"log/slog"

	"stokship/internal/infra/scheduler"
	"stokship/internal/pkg/config"
	"stokship/internal/usecase/expiration"

	"go.uber.org/fx"
)

var SchedulerModule = fx.Module("scheduler",
	fx.Provide(
		NewExpirationRunner,
	),
	fx.Invoke(startExpirationRunner),
)

func NewExpirationRunner(sweeper expiration.Sweeper, cfg config.Config) *scheduler.Runner {
	job := func(ctx context.Context) error {
		_, err := sweeper.Sweep(ctx)
		return err
	}
	return scheduler.NewRunner(expiration.RunLockName, job, scheduler.Options{
		Interval:   cfg.Expiration.SweepInterval,
		RunOnStart: cfg.Expiration.RunOnStart,
	})
}

func startExpirationRunner(lc fx.Lifecycle, runner *scheduler.Runner, cfg config.Config) {
	if !cfg.Expiration.Enabled {
		slog.Info("deal expiration disabled")
		return
	}
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			runner.Start(ctx)
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return runner.Stop(ctx)
		},
	})
}
