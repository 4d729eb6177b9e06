//go:build unit || e2e

package dbtest

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

// DBLike is satisfied by pools, connections and transactions.
type DBLike interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// inserts an active offer item owned by traderID with the given stock
func CreateTestOfferItem(t *testing.T, db DBLike, traderID uuid.UUID, totalQuantity int) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO offer_items (id, offer_id, trader_id, title, total_quantity, unit_price, currency)
		VALUES ($1, $2, $3, $4, $5, 100.00, 'USD')`,
		id, uuid.New(), traderID, "Test item "+id.String()[:8], totalQuantity)
	require.NoError(t, err)
	return id
}

// inserts a payment row the way the payment layer would
func CreateTestPayment(t *testing.T, db DBLike, dealID uuid.UUID, status string) uuid.UUID {
	t.Helper()

	id := uuid.New()
	_, err := db.Exec(context.Background(), `
		INSERT INTO payments (id, deal_id, amount, currency, status)
		VALUES ($1, $2, 200.00, 'USD', $3)`,
		id, dealID, status)
	require.NoError(t, err)
	return id
}

type OfferItemCounters struct {
	Total    int
	Reserved int
	// Held is the sum of RESERVED and CONFIRMED reservation quantities.
	Held int
}

// reads the ledger counters of an offer item together with the reservation sum
func GetOfferItemCounters(t *testing.T, db DBLike, offerItemID uuid.UUID) OfferItemCounters {
	t.Helper()

	var c OfferItemCounters
	err := db.QueryRow(context.Background(), `
		SELECT oi.total_quantity,
		       oi.reserved_quantity,
		       COALESCE((SELECT SUM(r.quantity) FROM deal_reservations r
		                 WHERE r.offer_item_id = oi.id AND r.status IN ('RESERVED', 'CONFIRMED')), 0)
		FROM offer_items oi WHERE oi.id = $1`, offerItemID).Scan(&c.Total, &c.Reserved, &c.Held)
	require.NoError(t, err)
	return c
}

func GetDealStatus(t *testing.T, db DBLike, dealID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM deals WHERE id = $1", dealID).Scan(&status)
	require.NoError(t, err)
	return status
}

func GetPaymentStatus(t *testing.T, db DBLike, paymentID uuid.UUID) string {
	t.Helper()

	var status string
	err := db.QueryRow(context.Background(), "SELECT status FROM payments WHERE id = $1", paymentID).Scan(&status)
	require.NoError(t, err)
	return status
}

// CompletePaymentRow flips a payment the way the payment layer does, without
// touching the deal.
func CompletePaymentRow(ctx context.Context, db DBLike, paymentID uuid.UUID) error {
	_, err := db.Exec(ctx,
		"UPDATE payments SET status = 'COMPLETED', completed_at = now() WHERE id = $1", paymentID)
	return err
}

// AwaitLockWait blocks until some session of the current database is waiting
// on a lock while running a statement containing fragment.
func AwaitLockWait(t *testing.T, db DBLike, fragment string) {
	t.Helper()

	require.Eventually(t, func() bool {
		var n int
		err := db.QueryRow(context.Background(), `
			SELECT count(*) FROM pg_stat_activity
			WHERE datname = current_database()
			  AND wait_event_type = 'Lock'
			  AND position($1 in query) > 0`, fragment).Scan(&n)
		return err == nil && n > 0
	}, 5*time.Second, 10*time.Millisecond, "no session waiting on a lock in %q", fragment)
}

func CountReservations(t *testing.T, db DBLike, dealID uuid.UUID, status string) int {
	t.Helper()

	var n int
	err := db.QueryRow(context.Background(),
		"SELECT count(*) FROM deal_reservations WHERE deal_id = $1 AND status = $2", dealID, status).Scan(&n)
	require.NoError(t, err)
	return n
}

var (
	buildTruncateOnce sync.Once
	truncateSQL       atomic.Value // string
)

// truncates all tables
func ResetDB(pool *pgxpool.Pool) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	buildTruncateOnce.Do(func() {
		rows, err := pool.Query(ctx, `
		  SELECT 'public.' || quote_ident(tablename)
		  FROM pg_tables
		  WHERE schemaname = 'public'
		    AND tablename NOT IN ('atlas_schema_revisions')`)
		if err != nil {
			truncateSQL.Store("")
			return
		}
		defer rows.Close()
		var tables []string
		for rows.Next() {
			var t string
			if err := rows.Scan(&t); err != nil {
				truncateSQL.Store("")
				return
			}
			tables = append(tables, t)
		}
		if rows.Err() != nil {
			truncateSQL.Store("")
			return
		}
		if len(tables) == 0 {
			truncateSQL.Store("SELECT 1")
			return
		}
		truncateSQL.Store("TRUNCATE " + strings.Join(tables, ", ") + " RESTART IDENTITY CASCADE;")
	})
	sqlAny := truncateSQL.Load()
	if sqlAny == nil || sqlAny.(string) == "" {
		return fmt.Errorf("failed to build TRUNCATE SQL")
	}
	_, err := pool.Exec(ctx, sqlAny.(string))
	return err
}
