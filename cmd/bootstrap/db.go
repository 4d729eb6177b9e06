package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"stokship/internal/infra/db"
	"stokship/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

const defaultConnectTimeout = 10 * time.Second

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

func NewDB(lc fx.Lifecycle, cfg config.Config) (*pgxpool.Pool, error) {
	connectTimeout := cfg.DB.TxTimeout
	if connectTimeout <= 0 {
		connectTimeout = defaultConnectTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	pool, cleanup, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		return nil, err
	}
	slog.Info("database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			stat := pool.Stat()
			slog.Info("closing database pool",
				"acquired", stat.AcquiredConns(),
				"total", stat.TotalConns(),
				"acquire_count", stat.AcquireCount())
			cleanup()
			return nil
		},
	})

	return pool, nil
}
