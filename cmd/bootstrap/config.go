package bootstrap

import (
	"log/slog"

	"stokship/internal/pkg/config"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		config.LoadConfig,
	),
	fx.Invoke(logConfigSummary),
)

// secrets are never logged
func logConfigSummary(cfg config.Config) {
	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"db_max_conns", cfg.DB.MaxConns,
		"db_tx_max_retries", cfg.DB.TxMaxRetries,
		"expiration_enabled", cfg.Expiration.Enabled,
		"grace_period", cfg.Expiration.GracePeriod(),
		"sweep_interval", cfg.Expiration.SweepInterval,
		"notify_driver", cfg.Notify.Driver,
		"otlp_endpoint", cfg.Telemetry.OTLPEndpoint)
}
