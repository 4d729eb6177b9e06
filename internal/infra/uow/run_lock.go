package uow

import (
	"context"
	"log/slog"

	"stokship/internal/infra"
	"stokship/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	tryAdvisoryLockSQL = `SELECT pg_try_advisory_lock(hashtext($1))`
	advisoryUnlockSQL  = `SELECT pg_advisory_unlock(hashtext($1))`
)

// AdvisoryRunLock holds a session-level advisory lock on a dedicated pool
// connection for the duration of fn.
type AdvisoryRunLock struct {
	pool *pgxpool.Pool
}

func NewAdvisoryRunLock(pool *pgxpool.Pool) *AdvisoryRunLock {
	return &AdvisoryRunLock{pool: pool}
}

func (l *AdvisoryRunLock) TryRun(ctx context.Context, name string, fn func(ctx context.Context) error) (bool, error) {
	conn, err := l.pool.Acquire(ctx)
	if err != nil {
		return false, infra.WrapRepoErr("failed to acquire lock connection", err)
	}
	defer conn.Release()

	var acquired bool
	if err := conn.QueryRow(ctx, tryAdvisoryLockSQL, name).Scan(&acquired); err != nil {
		return false, infra.WrapRepoErr("failed to try advisory lock", err)
	}
	if !acquired {
		return false, nil
	}

	defer func() {
		var released bool
		if err := conn.QueryRow(context.WithoutCancel(ctx), advisoryUnlockSQL, name).Scan(&released); err != nil || !released {
			// a lock we cannot release must not go back to the pool
			slog.Warn("failed to release advisory lock", "lock", name, "error", errs.Wrap(err, "unlock"))
			_ = conn.Conn().Close(context.WithoutCancel(ctx))
		}
	}()

	return true, fn(ctx)
}
