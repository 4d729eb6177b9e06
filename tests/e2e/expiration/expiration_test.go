//go:build e2e

package expiration_test

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"stokship/internal/domain/deal"
	"stokship/internal/domain/inventory"
	"stokship/internal/pkg/jwt"
	"stokship/internal/usecase/commands"
	"stokship/internal/usecase/expiration"
	"stokship/internal/usecase/shared"
	"stokship/tests/common/authtest"
	"stokship/tests/common/dbtest"
	"stokship/tests/common/httptest"
	"stokship/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const gracePeriod = 72 * time.Hour

type ExpirationSuite struct {
	e2e.SharedSuite
}

func TestExpirationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ExpirationSuite))
}

type quotedDeal struct {
	trader  authtest.Party
	buyer   authtest.Party
	itemID  uuid.UUID
	dealID  uuid.UUID
	number  string
	quoteAt time.Time
}

// opens a deal holding qty of a fresh item and sends the quote at the current clock time
func (s *ExpirationSuite) quotedDeal(t *testing.T, total, qty int) quotedDeal {
	t.Helper()

	d := quotedDeal{
		trader: s.JWT.NewParty(t, jwt.RoleTrader),
		buyer:  s.JWT.NewParty(t, jwt.RoleBuyer),
	}
	d.itemID = dbtest.CreateTestOfferItem(t, s.DB, d.trader.ID, total)
	started := s.StartDeal(t, d.buyer, e2e.Line(d.itemID, qty))
	d.dealID = started.DealID
	d.number = started.DealNumber

	d.quoteAt = s.App.Clock.Now()
	s.SendQuote(t, d.trader, d.dealID)
	return d
}

func (s *ExpirationSuite) sweep(t *testing.T) expiration.Report {
	t.Helper()

	report, err := s.App.Sweeper.Sweep(context.Background())
	require.NoError(t, err)
	require.False(t, report.Skipped)
	return report
}

// =============================================================================
// TestSweep - quoted deals past the grace period
// =============================================================================

func (s *ExpirationSuite) TestSweep() {
	s.Run("Normal case: unpaid quoted deal is cancelled and its stock returned", func() {
		t := s.T()
		d := s.quotedDeal(t, 5, 5)
		assert.Equal(t, 0, s.Availability(t, d.buyer, d.itemID).Available)

		s.App.Clock.Add(gracePeriod + time.Microsecond)
		report := s.sweep(t)

		assert.Equal(t, 1, report.Candidates)
		assert.Equal(t, 1, report.Expired)
		assert.Equal(t, 1, report.Notified)
		assert.Equal(t, 5, report.ReleasedQuantity)
		assert.Zero(t, report.Failed)

		view := s.GetDeal(t, d.buyer, d.dealID)
		assert.Equal(t, "CANCELLED", view.Status)
		require.NotNil(t, view.CancelledBy)
		assert.Equal(t, string(deal.ActorSystem), *view.CancelledBy)
		require.NotNil(t, view.CancellationReason)
		assert.Equal(t, s.App.Config.Expiration.CancellationReason, *view.CancellationReason)
		assert.Equal(t, "EXPIRED", view.History[len(view.History)-1].Event)

		assert.Equal(t, 5, s.Availability(t, d.buyer, d.itemID).Available)
		assert.Equal(t, 1, dbtest.CountReservations(t, s.DB, d.dealID, "RELEASED"))

		notices := s.App.Notifier.Notices()
		require.Len(t, notices, 1)
		if diff := cmp.Diff(d.number, notices[0].DealNumber); diff != "" {
			t.Errorf("deal number mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, d.dealID, notices[0].DealID)
		assert.Equal(t, d.buyer.ID, notices[0].BuyerID)
		assert.Equal(t, s.App.Config.Expiration.CancellationReason, notices[0].ReasonText)

		// a second sweep finds nothing to do
		again := s.sweep(t)
		assert.Zero(t, again.Candidates)
		assert.Len(t, s.App.Notifier.Notices(), 1)
	})

	s.Run("Boundary: a quote exactly at the cutoff is kept", func() {
		t := s.T()
		d := s.quotedDeal(t, 5, 2)

		s.App.Clock.Set(d.quoteAt.Add(gracePeriod))
		report := s.sweep(t)
		assert.Zero(t, report.Expired)
		assert.Equal(t, "NEGOTIATION", dbtest.GetDealStatus(t, s.DB, d.dealID))

		s.App.Clock.Add(time.Microsecond)
		report = s.sweep(t)
		assert.Equal(t, 1, report.Expired)
		assert.Equal(t, "CANCELLED", dbtest.GetDealStatus(t, s.DB, d.dealID))
	})

	s.Run("Normal case: deals without a quote never expire", func() {
		t := s.T()
		trader := s.JWT.NewParty(t, jwt.RoleTrader)
		buyer := s.JWT.NewParty(t, jwt.RoleBuyer)
		itemID := dbtest.CreateTestOfferItem(t, s.DB, trader.ID, 5)
		started := s.StartDeal(t, buyer, e2e.Line(itemID, 1))

		s.App.Clock.Add(10 * gracePeriod)
		report := s.sweep(t)

		assert.Zero(t, report.Candidates)
		assert.Equal(t, "NEGOTIATION", dbtest.GetDealStatus(t, s.DB, started.DealID))
	})

	s.Run("Normal case: approved deals are still expirable", func() {
		t := s.T()
		d := s.quotedDeal(t, 5, 2)
		s.Approve(t, d.trader, d.dealID)

		s.App.Clock.Add(gracePeriod + time.Second)
		report := s.sweep(t)

		assert.Equal(t, 1, report.Expired)
		assert.Equal(t, "CANCELLED", dbtest.GetDealStatus(t, s.DB, d.dealID))
	})

	s.Run("Normal case: a completed payment row keeps the deal open", func() {
		t := s.T()
		d := s.quotedDeal(t, 5, 2)
		dbtest.CreateTestPayment(t, s.DB, d.dealID, "COMPLETED")

		s.App.Clock.Add(gracePeriod + time.Second)
		report := s.sweep(t)

		assert.Zero(t, report.Expired)
		assert.Equal(t, "NEGOTIATION", dbtest.GetDealStatus(t, s.DB, d.dealID))
		assert.Equal(t, 1, dbtest.CountReservations(t, s.DB, d.dealID, "RESERVED"))
		assert.Empty(t, s.App.Notifier.Notices())
	})

	s.Run("Normal case: expired idempotency keys are purged", func() {
		t := s.T()
		trader := s.JWT.NewParty(t, jwt.RoleTrader)
		buyer := s.JWT.NewParty(t, jwt.RoleBuyer)
		itemID := dbtest.CreateTestOfferItem(t, s.DB, trader.ID, 5)

		w := httptest.PerformRequestWithHeaders(t, s.App.Router, http.MethodPost, e2e.DealsURL,
			map[string]any{"items": []any{e2e.Line(itemID, 1)}}, buyer.Token,
			map[string]string{"Idempotency-Key": uuid.NewString()})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		report := s.sweep(t)
		assert.Zero(t, report.PurgedKeys)

		s.App.Clock.Add(25 * time.Hour)
		report = s.sweep(t)
		assert.Equal(t, int64(1), report.PurgedKeys)
	})
}

// =============================================================================
// TestExpireDeal - per-deal act
// =============================================================================

func (s *ExpirationSuite) TestExpireDeal() {
	s.Run("Normal case: a completed deal is not expired", func() {
		t := s.T()
		d := s.quotedDeal(t, 5, 2)
		s.Approve(t, d.trader, d.dealID)
		paymentID := dbtest.CreateTestPayment(t, s.DB, d.dealID, "PENDING")
		_, err := s.App.Deals.CompletePayment(context.Background(), d.dealID, paymentID, deal.System())
		require.NoError(t, err)

		res, err := s.App.Deals.ExpireDeal(context.Background(), d.dealID, d.quoteAt.Add(time.Hour), "late")
		require.NoError(t, err)
		assert.False(t, res.Expired)
		assert.Equal(t, "COMPLETED", dbtest.GetDealStatus(t, s.DB, d.dealID))
		assert.Equal(t, 1, dbtest.CountReservations(t, s.DB, d.dealID, "CONFIRMED"))
	})

	s.Run("Normal case: expiring twice reports nothing the second time", func() {
		t := s.T()
		d := s.quotedDeal(t, 5, 3)
		cutoff := d.quoteAt.Add(time.Second)

		first, err := s.App.Deals.ExpireDeal(context.Background(), d.dealID, cutoff, "stale")
		require.NoError(t, err)
		require.True(t, first.Expired)
		assert.Equal(t, d.number, first.DealNumber)
		assert.Equal(t, 3, first.Released.TotalQuantityReleased)

		second, err := s.App.Deals.ExpireDeal(context.Background(), d.dealID, cutoff, "stale")
		require.NoError(t, err)
		assert.False(t, second.Expired)
		assert.Equal(t, dbtest.OfferItemCounters{Total: 5}, dbtest.GetOfferItemCounters(t, s.DB, d.itemID))
	})

	s.Run("Concurrency: a payment completing in an open transaction keeps the deal open", func() {
		t := s.T()
		ctx := context.Background()
		d := s.quotedDeal(t, 5, 2)
		s.Approve(t, d.trader, d.dealID)
		paymentID := dbtest.CreateTestPayment(t, s.DB, d.dealID, "PENDING")

		payTx, err := s.DB.Begin(ctx)
		require.NoError(t, err)
		defer func() { _ = payTx.Rollback(ctx) }()
		require.NoError(t, dbtest.CompletePaymentRow(ctx, payTx, paymentID))

		done := make(chan *commands.ExpireResult, 1)
		go func() {
			res, err := s.App.Deals.ExpireDeal(ctx, d.dealID, d.quoteAt.Add(time.Hour), "late")
			assert.NoError(t, err)
			done <- res
		}()

		dbtest.AwaitLockWait(t, s.DB, "GetDealForUpdate")
		require.NoError(t, payTx.Commit(ctx))

		res := <-done
		require.NotNil(t, res)
		assert.False(t, res.Expired)
		assert.Equal(t, "APPROVED", dbtest.GetDealStatus(t, s.DB, d.dealID))
		assert.Equal(t, 1, dbtest.CountReservations(t, s.DB, d.dealID, "RESERVED"))
	})

	s.Run("Concurrency: a payment flipped while the deal is expiring is rejected", func() {
		t := s.T()
		ctx := context.Background()
		d := s.quotedDeal(t, 5, 2)
		paymentID := dbtest.CreateTestPayment(t, s.DB, d.dealID, "PENDING")

		flipErr := make(chan error, 1)
		engine := releaseHook{
			ReservationEngine: s.App.Engine,
			before: func() {
				go func() { flipErr <- dbtest.CompletePaymentRow(ctx, s.DB, paymentID) }()
				dbtest.AwaitLockWait(t, s.DB, "UPDATE payments")
			},
		}
		deals := commands.NewDealCommands(s.App.UoW, engine, s.App.Clock)

		res, err := deals.ExpireDeal(ctx, d.dealID, d.quoteAt.Add(time.Hour), "late")
		require.NoError(t, err)
		require.True(t, res.Expired)

		err = <-flipErr
		require.Error(t, err)
		assert.Contains(t, err.Error(), "is cancelled")
		assert.Equal(t, "CANCELLED", dbtest.GetDealStatus(t, s.DB, d.dealID))
		assert.Equal(t, "PENDING", dbtest.GetPaymentStatus(t, s.DB, paymentID))
	})
}

// releaseHook calls before ahead of the release inside ExpireDeal's
// transaction, after the payment guard was read.
type releaseHook struct {
	commands.ReservationEngine
	before func()
}

func (h releaseHook) ReleaseTx(ctx context.Context, tx shared.Tx, dealID uuid.UUID) (inventory.ReleaseSummary, error) {
	h.before()
	return h.ReservationEngine.ReleaseTx(ctx, tx, dealID)
}

// =============================================================================
// TestConcurrency - sweeps against payments and other sweeps
// =============================================================================

func (s *ExpirationSuite) TestConcurrency() {
	s.Run("sweep and payment completion never both win", func() {
		for round := range 10 {
			t := s.T()
			require.NoError(t, dbtest.ResetDB(s.DB))
			s.App.Clock.Set(time.Now().UTC().Truncate(time.Microsecond))

			d := s.quotedDeal(t, 5, 2)
			s.Approve(t, d.trader, d.dealID)
			paymentID := dbtest.CreateTestPayment(t, s.DB, d.dealID, "PENDING")
			s.App.Clock.Add(gracePeriod + time.Second)

			var wg sync.WaitGroup
			var payErr, sweepErr error
			wg.Add(2)
			go func() {
				defer wg.Done()
				_, payErr = s.App.Deals.CompletePayment(context.Background(), d.dealID, paymentID, deal.System())
			}()
			go func() {
				defer wg.Done()
				_, sweepErr = s.App.Sweeper.Sweep(context.Background())
			}()
			wg.Wait()
			require.NoError(t, sweepErr, "round %d", round)

			var paymentStatus string
			require.NoError(t, s.DB.QueryRow(context.Background(),
				"SELECT status FROM payments WHERE id = $1", paymentID).Scan(&paymentStatus))

			switch status := dbtest.GetDealStatus(t, s.DB, d.dealID); status {
			case "COMPLETED":
				assert.NoError(t, payErr, "round %d", round)
				assert.Equal(t, "COMPLETED", paymentStatus, "round %d", round)
				assert.Equal(t, 1, dbtest.CountReservations(t, s.DB, d.dealID, "CONFIRMED"), "round %d", round)
				assert.Empty(t, s.App.Notifier.Notices(), "round %d", round)
			case "CANCELLED":
				assert.Error(t, payErr, "round %d", round)
				assert.NotEqual(t, "COMPLETED", paymentStatus, "round %d", round)
				assert.Equal(t, 1, dbtest.CountReservations(t, s.DB, d.dealID, "RELEASED"), "round %d", round)
			default:
				t.Fatalf("round %d: unexpected deal status %s", round, status)
			}
			s.App.Notifier.Reset()
		}
	})

	s.Run("overlapping sweeps expire each deal once", func() {
		t := s.T()
		deals := make([]quotedDeal, 3)
		for i := range deals {
			deals[i] = s.quotedDeal(t, 4, 2)
		}
		s.App.Clock.Add(gracePeriod + time.Second)

		const sweeps = 4
		reports := make([]expiration.Report, sweeps)
		var wg sync.WaitGroup
		for i := range sweeps {
			wg.Add(1)
			go func() {
				defer wg.Done()
				r, err := s.App.Sweeper.Sweep(context.Background())
				assert.NoError(t, err)
				reports[i] = r
			}()
		}
		wg.Wait()

		total := 0
		for _, r := range reports {
			total += r.Expired
		}
		assert.Equal(t, len(deals), total)

		got := make([]string, 0, len(deals))
		for _, n := range s.App.Notifier.Notices() {
			got = append(got, n.DealNumber)
		}
		want := make([]string, 0, len(deals))
		for _, d := range deals {
			want = append(want, d.number)
			assert.Equal(t, dbtest.OfferItemCounters{Total: 4}, dbtest.GetOfferItemCounters(t, s.DB, d.itemID))
		}
		if diff := cmp.Diff(want, got, cmpopts.SortSlices(func(a, b string) bool { return a < b })); diff != "" {
			t.Errorf("notices mismatch (-want +got):\n%s", diff)
		}
	})

	s.Run("a held run lock skips the sweep", func() {
		t := s.T()
		d := s.quotedDeal(t, 5, 1)
		s.App.Clock.Add(gracePeriod + time.Second)

		conn, err := s.DB.Acquire(context.Background())
		require.NoError(t, err)
		defer conn.Release()
		_, err = conn.Exec(context.Background(), "SELECT pg_advisory_lock(hashtext($1))", expiration.RunLockName)
		require.NoError(t, err)

		report, err := s.App.Sweeper.Sweep(context.Background())
		require.NoError(t, err)
		assert.True(t, report.Skipped)
		assert.Equal(t, "NEGOTIATION", dbtest.GetDealStatus(t, s.DB, d.dealID))

		_, err = conn.Exec(context.Background(), "SELECT pg_advisory_unlock(hashtext($1))", expiration.RunLockName)
		require.NoError(t, err)

		report = s.sweep(t)
		assert.Equal(t, 1, report.Expired)
		assert.Equal(t, "CANCELLED", dbtest.GetDealStatus(t, s.DB, d.dealID))
	})
}
