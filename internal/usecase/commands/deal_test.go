//go:build unit

package commands_test

import (
	"context"
	"testing"
	"time"

	"stokship/internal/domain/deal"
	"stokship/internal/domain/inventory"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/commands"
	"stokship/internal/usecase/shared"
	"stokship/tests/common/builder"
	commandsmock "stokship/tests/mock/commands"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newDealCommands(f *fixture) (commands.DealCommands, *commandsmock.MockReservationEngine) {
	engine := commandsmock.NewMockReservationEngine(f.ctrl)
	return commands.NewDealCommands(f.uow, engine, f.clock), engine
}

// =============================================================================
// StartNegotiation Tests
// =============================================================================

func TestDealCommands_StartNegotiation(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	traderID := uuid.New()
	low, high := orderedIDs()

	itemOf := func(id, trader uuid.UUID) *inventory.OfferItem {
		return builder.NewOfferItemBuilder().With(func(b *builder.OfferItemBuilder) {
			b.ID = id
			b.TraderID = trader
		}).BuildDomain()
	}

	t.Run("success: basket reserved in item order", func(t *testing.T) {
		f := newFixture(t)
		uc, engine := newDealCommands(f)

		f.offerItems.EXPECT().FindByID(gomock.Any(), gomock.Any(), low).Return(itemOf(low, traderID), nil)
		f.offerItems.EXPECT().FindByID(gomock.Any(), gomock.Any(), high).Return(itemOf(high, traderID), nil)
		f.deals.EXPECT().NextNumber(gomock.Any(), gomock.Any()).Return("DL-000001", nil)
		f.deals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ any, d *deal.Deal) error {
				assert.Equal(t, buyerID, d.BuyerID())
				assert.Equal(t, traderID, d.TraderID())
				assert.Equal(t, deal.StatusNegotiation, d.Status())
				return nil
			})
		gomock.InOrder(
			engine.EXPECT().ReserveTx(gomock.Any(), f.tx, low, gomock.Any(), 2).
				Return(&inventory.Reservation{OfferItemID: low, Quantity: 2}, nil),
			engine.EXPECT().ReserveTx(gomock.Any(), f.tx, high, gomock.Any(), 5).
				Return(&inventory.Reservation{OfferItemID: high, Quantity: 5}, nil),
		)

		res, err := uc.StartNegotiation(ctx, commands.StartNegotiationInput{
			Actor: deal.Buyer(buyerID),
			Items: []inventory.ItemRequest{
				{OfferItemID: high, Quantity: 3},
				{OfferItemID: low, Quantity: 2},
				{OfferItemID: high, Quantity: 2},
			},
		})

		require.NoError(t, err)
		assert.Equal(t, "DL-000001", res.DealNumber)
		assert.False(t, res.IsReplayed)
		assert.Len(t, res.Reservations, 2)
	})

	t.Run("rejected: any line short of stock fails the basket", func(t *testing.T) {
		f := newFixture(t)
		uc, engine := newDealCommands(f)

		f.offerItems.EXPECT().FindByID(gomock.Any(), gomock.Any(), low).Return(itemOf(low, traderID), nil)
		f.deals.EXPECT().NextNumber(gomock.Any(), gomock.Any()).Return("DL-000002", nil)
		f.deals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		engine.EXPECT().ReserveTx(gomock.Any(), f.tx, low, gomock.Any(), 9).
			Return(nil, errs.Wrap(errs.ErrInsufficientInventory, "offer item"))

		res, err := uc.StartNegotiation(ctx, commands.StartNegotiationInput{
			Actor: deal.Buyer(buyerID),
			Items: []inventory.ItemRequest{{OfferItemID: low, Quantity: 9}},
		})

		require.Error(t, err)
		assert.Nil(t, res)
		assert.True(t, errs.Is(err, errs.ErrInsufficientInventory))
	})

	t.Run("error: items of different traders", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newDealCommands(f)

		f.offerItems.EXPECT().FindByID(gomock.Any(), gomock.Any(), low).Return(itemOf(low, traderID), nil)
		f.offerItems.EXPECT().FindByID(gomock.Any(), gomock.Any(), high).Return(itemOf(high, uuid.New()), nil)

		_, err := uc.StartNegotiation(ctx, commands.StartNegotiationInput{
			Actor: deal.Buyer(buyerID),
			Items: []inventory.ItemRequest{{OfferItemID: low, Quantity: 1}, {OfferItemID: high, Quantity: 1}},
		})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})

	t.Run("error: empty basket", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newDealCommands(f)

		_, err := uc.StartNegotiation(ctx, commands.StartNegotiationInput{Actor: deal.Buyer(buyerID)})

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestDealCommands_StartNegotiation_Idempotency(t *testing.T) {
	ctx := context.Background()
	buyerID := uuid.New()
	key := uuid.New()
	itemID := uuid.New()
	in := commands.StartNegotiationInput{
		Actor:          deal.Buyer(buyerID),
		Items:          []inventory.ItemRequest{{OfferItemID: itemID, Quantity: 1}},
		IdempotencyKey: &key,
	}

	captureHash := func(f *fixture, uc commands.DealCommands, engine *commandsmock.MockReservationEngine) string {
		var hash string
		f.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, buyerID, "POST /api/deals", gomock.Any(), fixedNow.Add(24*time.Hour)).
			DoAndReturn(func(_ context.Context, _ any, _, _ uuid.UUID, _, h string, _ time.Time) (bool, error) {
				hash = h
				return true, nil
			})
		f.offerItems.EXPECT().FindByID(gomock.Any(), gomock.Any(), itemID).Return(builder.NewOfferItemBuilder().With(func(b *builder.OfferItemBuilder) { b.ID = itemID }).BuildDomain(), nil)
		f.deals.EXPECT().NextNumber(gomock.Any(), gomock.Any()).Return("DL-000010", nil)
		f.deals.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		engine.EXPECT().ReserveTx(gomock.Any(), f.tx, itemID, gomock.Any(), 1).Return(&inventory.Reservation{OfferItemID: itemID, Quantity: 1}, nil)
		f.idempotency.EXPECT().SetResult(gomock.Any(), gomock.Any(), key, buyerID, gomock.Any()).Return(nil)

		_, err := uc.StartNegotiation(ctx, in)
		require.NoError(t, err)
		return hash
	}

	t.Run("replay: same request returns the earlier deal without reserving", func(t *testing.T) {
		f := newFixture(t)
		uc, engine := newDealCommands(f)
		hash := captureHash(f, uc, engine)

		existing := builder.NewDealBuilder().With(func(b *builder.DealBuilder) { b.BuyerID = buyerID }).BuildDomain()
		dealID := existing.ID()
		f.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, buyerID, gomock.Any(), hash, gomock.Any()).Return(false, nil)
		f.idempotency.EXPECT().Get(gomock.Any(), gomock.Any(), key, buyerID).Return(&shared.IdempotencyRecord{
			Key: key, UserID: buyerID, Endpoint: "POST /api/deals", RequestHash: hash, ResultDealID: &dealID,
		}, nil)
		f.deals.EXPECT().FindByID(gomock.Any(), gomock.Any(), dealID).Return(existing, nil)
		f.reservations.EXPECT().ListByDeal(gomock.Any(), gomock.Any(), dealID).Return([]inventory.Reservation{{OfferItemID: itemID, Quantity: 1}}, nil)

		res, err := uc.StartNegotiation(ctx, in)

		require.NoError(t, err)
		assert.True(t, res.IsReplayed)
		assert.Equal(t, dealID, res.DealID)
	})

	t.Run("error: key reused with a different basket", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newDealCommands(f)

		f.idempotency.EXPECT().TryInsert(gomock.Any(), gomock.Any(), key, buyerID, gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
		f.idempotency.EXPECT().Get(gomock.Any(), gomock.Any(), key, buyerID).Return(&shared.IdempotencyRecord{
			Key: key, UserID: buyerID, Endpoint: "POST /api/deals", RequestHash: "other",
		}, nil)

		_, err := uc.StartNegotiation(ctx, in)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrIdempotencyKeyReused))
	})
}

// =============================================================================
// Transition Tests
// =============================================================================

func TestDealCommands_SendQuoteAndApprove(t *testing.T) {
	ctx := context.Background()

	t.Run("success: trader quotes then approves", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newDealCommands(f)
		b := builder.NewDealBuilder()
		d := b.BuildDomain()

		f.deals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(d, nil).Times(2)
		f.deals.EXPECT().Save(gomock.Any(), gomock.Any(), d).Return(nil).Times(2)

		require.NoError(t, uc.SendQuote(ctx, b.ID, deal.Trader(b.TraderID)))
		require.NoError(t, uc.Approve(ctx, b.ID, deal.Trader(b.TraderID)))

		assert.Equal(t, deal.StatusApproved, d.Status())
		require.NotNil(t, d.QuoteSentAt())
		assert.Equal(t, fixedNow, *d.QuoteSentAt())
	})

	t.Run("forbidden: buyer cannot quote", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newDealCommands(f)
		b := builder.NewDealBuilder()

		f.deals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildDomain(), nil)

		err := uc.SendQuote(ctx, b.ID, deal.Buyer(b.BuyerID))

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrForbiddenActor))
	})

	t.Run("invalid: approve without quote", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newDealCommands(f)
		b := builder.NewDealBuilder()

		f.deals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildDomain(), nil)

		err := uc.Approve(ctx, b.ID, deal.Trader(b.TraderID))

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})
}

func TestDealCommands_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("success: reservations released with the status change", func(t *testing.T) {
		f := newFixture(t)
		uc, engine := newDealCommands(f)
		b := builder.NewDealBuilder().Quoted(fixedNow.Add(-time.Hour))
		d := b.BuildDomain()

		f.deals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(d, nil)
		f.payments.EXPECT().HasCompleted(gomock.Any(), gomock.Any(), b.ID).Return(false, nil)
		engine.EXPECT().ReleaseTx(gomock.Any(), f.tx, b.ID).Return(inventory.ReleaseSummary{DealID: b.ID, ReleasedCount: 1, TotalQuantityReleased: 4}, nil)
		f.deals.EXPECT().Save(gomock.Any(), gomock.Any(), d).Return(nil)

		require.NoError(t, uc.Cancel(ctx, b.ID, deal.Buyer(b.BuyerID), "changed my mind"))

		assert.Equal(t, deal.StatusCancelled, d.Status())
		require.NotNil(t, d.CancelledBy())
		assert.Equal(t, deal.ActorBuyer, *d.CancelledBy())
	})

	t.Run("invalid: completed payment blocks cancellation", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newDealCommands(f)
		b := builder.NewDealBuilder().Approved(fixedNow.Add(-time.Hour))

		f.deals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
		f.payments.EXPECT().HasCompleted(gomock.Any(), gomock.Any(), b.ID).Return(true, nil)

		err := uc.Cancel(ctx, b.ID, deal.Trader(b.TraderID), "oops")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrInvalidTransition))
	})

	t.Run("error: deal not found", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newDealCommands(f)
		id := uuid.New()

		f.deals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr())

		err := uc.Cancel(ctx, id, deal.System(), "")

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDealNotFound))
	})
}

func TestDealCommands_CompletePayment(t *testing.T) {
	ctx := context.Background()
	paymentID := uuid.New()

	t.Run("success: payment marked and reservations confirmed", func(t *testing.T) {
		f := newFixture(t)
		uc, engine := newDealCommands(f)
		b := builder.NewDealBuilder().Approved(fixedNow.Add(-time.Hour))
		d := b.BuildDomain()

		f.deals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(d, nil)
		f.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), paymentID).
			Return(&shared.PaymentSnapshot{ID: paymentID, DealID: b.ID, Status: "PROCESSING"}, nil)
		f.payments.EXPECT().MarkCompleted(gomock.Any(), gomock.Any(), paymentID, fixedNow).Return(true, nil)
		engine.EXPECT().ConfirmTx(gomock.Any(), f.tx, b.ID).Return(3, nil)
		f.deals.EXPECT().Save(gomock.Any(), gomock.Any(), d).Return(nil)

		res, err := uc.CompletePayment(ctx, b.ID, paymentID, deal.System())

		require.NoError(t, err)
		assert.Equal(t, &commands.CompletePaymentResult{Status: deal.StatusCompleted, Confirmed: 3}, res)
	})

	t.Run("idempotent: completed deal is not confirmed twice", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newDealCommands(f)
		b := builder.NewDealBuilder().Approved(fixedNow.Add(-time.Hour)).With(func(b *builder.DealBuilder) {
			b.Status = deal.StatusCompleted
		})

		f.deals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
		f.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), paymentID).
			Return(&shared.PaymentSnapshot{ID: paymentID, DealID: b.ID, Status: shared.PaymentStatusCompleted}, nil)

		res, err := uc.CompletePayment(ctx, b.ID, paymentID, deal.System())

		require.NoError(t, err)
		assert.True(t, res.AlreadyCompleted)
		assert.Equal(t, 0, res.Confirmed)
	})

	t.Run("error: payment of another deal", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newDealCommands(f)
		b := builder.NewDealBuilder().Approved(fixedNow.Add(-time.Hour))

		f.deals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
		f.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), paymentID).
			Return(&shared.PaymentSnapshot{ID: paymentID, DealID: uuid.New(), Status: "PENDING"}, nil)

		_, err := uc.CompletePayment(ctx, b.ID, paymentID, deal.System())

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrPaymentNotFound))
	})

	t.Run("forbidden: buyer cannot complete payment", func(t *testing.T) {
		f := newFixture(t)
		uc, _ := newDealCommands(f)
		b := builder.NewDealBuilder().Approved(fixedNow.Add(-time.Hour))

		f.deals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(b.BuildDomain(), nil)
		f.payments.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), paymentID).
			Return(&shared.PaymentSnapshot{ID: paymentID, DealID: b.ID, Status: "PENDING"}, nil)

		_, err := uc.CompletePayment(ctx, b.ID, paymentID, deal.Buyer(b.BuyerID))

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrForbiddenActor))
	})
}

// =============================================================================
// ExpireDeal Tests
// =============================================================================

func TestDealCommands_ExpireDeal(t *testing.T) {
	ctx := context.Background()
	cutoff := fixedNow.Add(-72 * time.Hour)

	testCases := []struct {
		name       string
		quotedAt   time.Time
		paid       bool
		wantExpire bool
	}{
		{name: "expired: quote older than cutoff", quotedAt: cutoff.Add(-time.Second), wantExpire: true},
		{name: "skipped: quote exactly at cutoff", quotedAt: cutoff},
		{name: "skipped: quote newer than cutoff", quotedAt: cutoff.Add(time.Minute)},
		{name: "skipped: payment completed after selection", quotedAt: cutoff.Add(-time.Hour), paid: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f := newFixture(t)
			uc, engine := newDealCommands(f)
			b := builder.NewDealBuilder().Approved(tc.quotedAt)
			d := b.BuildDomain()

			f.deals.EXPECT().FindByIDForUpdate(gomock.Any(), gomock.Any(), b.ID).Return(d, nil)
			f.payments.EXPECT().HasCompleted(gomock.Any(), gomock.Any(), b.ID).Return(tc.paid, nil)
			if tc.wantExpire {
				engine.EXPECT().ReleaseTx(gomock.Any(), f.tx, b.ID).Return(inventory.ReleaseSummary{DealID: b.ID, ReleasedCount: 2, TotalQuantityReleased: 5}, nil)
				f.deals.EXPECT().Save(gomock.Any(), gomock.Any(), d).Return(nil)
			}

			res, err := uc.ExpireDeal(ctx, b.ID, cutoff, "Deal expired")

			require.NoError(t, err)
			assert.Equal(t, tc.wantExpire, res.Expired)
			if !tc.wantExpire {
				assert.Equal(t, deal.StatusApproved, d.Status())
				return
			}
			assert.Equal(t, deal.StatusCancelled, d.Status())
			assert.Equal(t, b.Number, res.DealNumber)
			assert.Equal(t, b.BuyerID, res.BuyerID)
			assert.Equal(t, "Deal expired", res.Reason)
			assert.Equal(t, 5, res.Released.TotalQuantityReleased)
			assert.Equal(t, deal.ActorSystem, *d.CancelledBy())
		})
	}
}
