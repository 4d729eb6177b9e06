package bootstrap

import (
	"context"

	"stokship/internal/infra/telemetry"
	"stokship/internal/pkg/config"

	"go.uber.org/fx"
)

var TelemetryModule = fx.Module("telemetry",
	fx.Invoke(StartTelemetry),
)

func StartTelemetry(lc fx.Lifecycle, cfg config.Config) error {
	tp, err := telemetry.Setup(context.Background(), cfg.Telemetry)
	if err != nil {
		return err
	}
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			return tp.Shutdown(ctx)
		},
	})
	return nil
}
