package db

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"stokship/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
)

const applicationName = "stokship"

// Connect opens a pool and verifies it with a ping. Row lock waits are capped
// at the transaction timeout so a stuck holder surfaces as 55P03 instead of
// blocking reservations indefinitely.
func Connect(ctx context.Context, cfg config.DBConfig) (*pgxpool.Pool, func(), error) {
	poolCfg, err := PoolConfig(cfg)
	if err != nil {
		return nil, nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return pool, pool.Close, nil
}

func PoolConfig(cfg config.DBConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.BuildDSN())
	if err != nil {
		return nil, fmt.Errorf("failed to parse database config: %w", err)
	}

	if cfg.MaxConns > 0 {
		poolCfg.MaxConns = cfg.MaxConns
	}
	poolCfg.MaxConnLifetime = time.Hour
	poolCfg.MaxConnIdleTime = 30 * time.Minute
	poolCfg.HealthCheckPeriod = time.Minute

	params := poolCfg.ConnConfig.RuntimeParams
	params["application_name"] = applicationName
	if cfg.TxTimeout > 0 {
		params["lock_timeout"] = strconv.FormatInt(cfg.TxTimeout.Milliseconds(), 10)
	}

	return poolCfg, nil
}
