package components

import (
	"context"
	"log/slog"

	"stokship/internal/infra/notify"
	"stokship/internal/pkg/clock"
	"stokship/internal/pkg/config"
	"stokship/internal/usecase/shared"

	"go.uber.org/fx"
)

var NotifyModule = fx.Module("notify",
	fx.Provide(
		NewNotifier,
	),
)

func NewNotifier(lc fx.Lifecycle, cfg config.Config, uow shared.UnitOfWork, clk clock.Clock) (shared.Notifier, error) {
	sink, err := notify.New(cfg.Notify, uow, clk)
	if err != nil {
		return nil, err
	}
	slog.Info("notification sink ready", "driver", cfg.Notify.Driver)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return sink.Close()
		},
	})
	return sink, nil
}
