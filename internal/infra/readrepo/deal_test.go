//go:build unit

package readrepo_test

import (
	"context"
	"testing"
	"time"

	"stokship/internal/infra"
	"stokship/internal/infra/readrepo"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"
	"stokship/tests/common/builder"
	readrepomock "stokship/tests/mock/readrepo"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDealViewRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewDealBuilder().BuildInfra()

	t.Run("maps nullable columns", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readrepomock.NewMockDealViewQueries(ctrl)
		q.EXPECT().GetDeal(ctx, nil, row.ID).Return(row, nil)

		view, err := readrepo.NewDealViewRepository(q, nil).FindByID(ctx, row.ID)

		require.NoError(t, err)
		assert.Equal(t, row.DealNumber, view.Number)
		assert.Equal(t, row.Status, view.Status)
		assert.Nil(t, view.CancelledAt)
		assert.Nil(t, view.CancellationReason)
	})

	t.Run("no rows is not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		q := readrepomock.NewMockDealViewQueries(ctrl)
		q.EXPECT().GetDeal(ctx, nil, row.ID).Return(sqlc.Deals{}, pgx.ErrNoRows)

		_, err := readrepo.NewDealViewRepository(q, nil).FindByID(ctx, row.ID)

		assert.True(t, infra.IsKind(err, infra.KindNotFound))
	})
}

func TestDealViewRepository_FindHistory(t *testing.T) {
	ctx := context.Background()
	dealID := uuid.New()
	actorID := uuid.New()
	at := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	q := readrepomock.NewMockDealViewQueries(ctrl)
	q.EXPECT().ListDealStatusHistory(ctx, nil, dealID).Return([]sqlc.DealStatusHistory{
		{DealID: dealID, ToStatus: "NEGOTIATION", Event: "NEGOTIATION_STARTED", ActorKind: "BUYER", ActorID: pgconv.UUIDToPgtype(actorID), CreatedAt: pgconv.TimeToPgtype(at)},
		{DealID: dealID, FromStatus: pgconv.StringToPgtype("NEGOTIATION"), ToStatus: "CANCELLED", Event: "EXPIRED", ActorKind: "SYSTEM", Note: pgconv.StringToPgtype("quote expired"), CreatedAt: pgconv.TimeToPgtype(at.Add(time.Hour))},
	}, nil)

	history, err := readrepo.NewDealViewRepository(q, nil).FindHistory(ctx, dealID)

	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Nil(t, history[0].FromStatus)
	assert.Equal(t, &actorID, history[0].ActorID)
	assert.Nil(t, history[1].ActorID)
	assert.Equal(t, "quote expired", *history[1].Note)
}

func TestDealViewRepository_FindByPartyKeyset(t *testing.T) {
	ctx := context.Background()
	partyID := uuid.New()
	afterID := uuid.New()
	after := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	ctrl := gomock.NewController(t)
	q := readrepomock.NewMockDealViewQueries(ctrl)
	q.EXPECT().ListDealsByPartyKeyset(ctx, nil, sqlc.ListDealsByPartyKeysetParams{
		PartyID:        partyID,
		AfterCreatedAt: pgtype.Timestamptz{Time: after, Valid: true},
		AfterID:        afterID,
		PageLimit:      11,
	}).Return([]sqlc.Deals{builder.NewDealBuilder().BuildInfra()}, nil)

	items, err := readrepo.NewDealViewRepository(q, nil).FindByPartyKeyset(ctx, partyID, after, afterID, 11)

	require.NoError(t, err)
	assert.Len(t, items, 1)
}

func TestOfferItemViewRepository_FindByID(t *testing.T) {
	ctx := context.Background()
	row := builder.NewOfferItemBuilder().BuildInfra()
	row.TotalQuantity = 10
	row.ReservedQuantity = 7

	ctrl := gomock.NewController(t)
	q := readrepomock.NewMockOfferItemViewQueries(ctrl)
	q.EXPECT().GetOfferItem(ctx, nil, row.ID).Return(row, nil)

	view, err := readrepo.NewOfferItemViewRepository(q, nil).FindByID(ctx, row.ID)

	require.NoError(t, err)
	assert.Equal(t, 3, view.Available)
	want, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	require.NoError(t, err)
	assert.True(t, want.Equal(view.UnitPrice))
}
