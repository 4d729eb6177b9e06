package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"stokship/internal/infra"
	"stokship/internal/infra/repository"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/config"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/shared"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var (
	errTransactionBegin   = errs.New("failed to begin transaction")
	errTransactionCommit  = errs.New("failed to commit transaction")
	errMaxRetriesExceeded = errs.New("transaction failed after max retries")
)

type PostgresUoW struct {
	pool       *pgxpool.Pool
	q          *sqlc.Queries
	timeout    time.Duration
	maxRetries int
	base       time.Duration
}

func NewPostgresUoW(pool *pgxpool.Pool, q *sqlc.Queries, cfg config.DBConfig) *PostgresUoW {
	return &PostgresUoW{
		pool:       pool,
		q:          q,
		timeout:    cfg.TxTimeout,
		maxRetries: max(cfg.TxMaxRetries, 0),
		base:       100 * time.Millisecond,
	}
}

// ReadCommitted is enough here: every ledger mutation is a conditional
// update that takes the row lock inside the statement.
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) WithDB(ctx context.Context, fn func(ctx context.Context, db sqlc.DBTX) error) error {
	return fn(ctx, u.pool)
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	for attempt := 0; attempt <= u.maxRetries; attempt++ {
		err := u.attempt(ctx, options, fn)
		if err == nil {
			return nil
		}

		if !infra.IsTransient(err) {
			return err
		}
		if attempt == u.maxRetries {
			if u.maxRetries > 0 {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				err = errs.Mark(err, errMaxRetriesExceeded)
			}
			return errs.Mark(err, errs.ErrTransientStoreFailure)
		}

		waitTime := calculateBackoff(attempt, u.base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errMaxRetriesExceeded
}

func (u *PostgresUoW) attempt(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	// runs on error and on panic in fn; rollback must outlive a cancelled attempt context
	committed := false
	defer func() {
		if committed {
			return
		}
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, u.newTx(pgxTx)); err != nil {
		return err
	}
	if err := pgxTx.Commit(ctx); err != nil {
		return errs.Mark(err, errTransactionCommit)
	}
	committed = true
	return nil
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	if u.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.timeout)
		defer cancel()
	}

	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		if infra.IsTransient(err) {
			err = errs.Mark(err, errs.ErrTransientStoreFailure)
		}
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(context.WithoutCancel(ctx)); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, u.newTx(pgxTx)); err != nil {
		if infra.IsTransient(err) {
			return errs.Mark(err, errs.ErrTransientStoreFailure)
		}
		return err
	}

	return pgxTx.Commit(ctx)
}

func (u *PostgresUoW) newTx(dbtx sqlc.DBTX) *pgTx {
	return &pgTx{dbtx: dbtx, q: u.q}
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	// #nosec G115 -- Intentionally safe conversion after masking
	return int64(uval) % n
}

type pgTx struct {
	dbtx sqlc.DBTX
	q    *sqlc.Queries

	// Lazy-initialized repositories
	offerItemRepo    shared.OfferItemRepository
	reservationRepo  shared.ReservationRepository
	dealRepo         shared.DealRepository
	paymentRepo      shared.PaymentRepository
	idempotencyRepo  shared.IdempotencyRepository
	notificationRepo shared.NotificationRepository
}

func (t *pgTx) DB() sqlc.DBTX {
	return t.dbtx
}

func (t *pgTx) OfferItems() shared.OfferItemRepository {
	if t.offerItemRepo == nil {
		t.offerItemRepo = repository.NewOfferItemRepository(t.q, t.dbtx)
	}
	return t.offerItemRepo
}

func (t *pgTx) Reservations() shared.ReservationRepository {
	if t.reservationRepo == nil {
		t.reservationRepo = repository.NewReservationRepository(t.q, t.dbtx)
	}
	return t.reservationRepo
}

func (t *pgTx) Deals() shared.DealRepository {
	if t.dealRepo == nil {
		t.dealRepo = repository.NewDealRepository(t.q, t.dbtx)
	}
	return t.dealRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository(t.q, t.dbtx)
	}
	return t.paymentRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository(t.q, t.dbtx)
	}
	return t.idempotencyRepo
}

func (t *pgTx) Notifications() shared.NotificationRepository {
	if t.notificationRepo == nil {
		t.notificationRepo = repository.NewNotificationRepository(t.q, t.dbtx)
	}
	return t.notificationRepo
}
