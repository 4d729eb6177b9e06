//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"stokship/internal/domain/deal"
	"stokship/internal/infra"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/queries"
	queriesmock "stokship/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDealQueries_GetByID(t *testing.T) {
	dealID := uuid.New()
	buyerID := uuid.New()
	traderID := uuid.New()

	tests := []struct {
		name    string
		actor   deal.Actor
		repoErr error
		wantErr error
	}{
		{name: "buyer sees own deal", actor: deal.Buyer(buyerID)},
		{name: "trader sees own deal", actor: deal.Trader(traderID)},
		{name: "admin sees any deal", actor: deal.Admin(uuid.New())},
		{name: "other buyer is forbidden", actor: deal.Buyer(uuid.New()), wantErr: errs.ErrForbiddenActor},
		{name: "other trader is forbidden", actor: deal.Trader(uuid.New()), wantErr: errs.ErrForbiddenActor},
		{
			name:    "missing deal",
			actor:   deal.Buyer(buyerID),
			repoErr: infra.NotFound("deal not found"),
			wantErr: errs.ErrDealNotFound,
		},
		{
			name:    "store failure",
			actor:   deal.Buyer(buyerID),
			repoErr: infra.WrapRepoErr("boom", assert.AnError),
			wantErr: errs.ErrDatabaseOperationFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			repo := queriesmock.NewMockDealViewRepo(ctrl)
			ctx := context.Background()

			if tt.repoErr != nil {
				repo.EXPECT().FindByID(ctx, dealID).Return(nil, tt.repoErr)
			} else {
				repo.EXPECT().FindByID(ctx, dealID).Return(&queries.DealView{
					ID:       dealID,
					BuyerID:  buyerID,
					TraderID: traderID,
					Status:   deal.StatusNegotiation.String(),
				}, nil)
			}
			if tt.wantErr == nil {
				repo.EXPECT().FindReservations(ctx, dealID).Return([]queries.ReservationView{{Quantity: 3}}, nil)
				repo.EXPECT().FindHistory(ctx, dealID).Return([]queries.TransitionView{{ToStatus: "NEGOTIATION"}}, nil)
			}

			view, err := queries.NewDealQueries(repo).GetByID(ctx, tt.actor, dealID)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr), "got %v", err)
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Len(t, view.Reservations, 1)
			assert.Len(t, view.History, 1)
		})
	}
}

func listItems(n int, start time.Time) []*queries.DealListItem {
	items := make([]*queries.DealListItem, n)
	for i := range items {
		items[i] = &queries.DealListItem{
			ID:        uuid.New(),
			CreatedAt: start.Add(-time.Duration(i) * time.Minute),
		}
	}
	return items
}

func TestDealQueries_ListForActor(t *testing.T) {
	ctx := context.Background()
	buyer := deal.Buyer(uuid.New())
	start := time.Date(2026, 5, 4, 10, 0, 0, 0, time.UTC)

	t.Run("first page with more rows returns cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockDealViewRepo(ctrl)
		rows := listItems(3, start)
		repo.EXPECT().FindByPartyFirstPage(ctx, buyer.ID, int32(3)).Return(rows, nil)

		items, next, err := queries.NewDealQueries(repo).ListForActor(ctx, buyer, nil, 2)

		require.NoError(t, err)
		assert.Len(t, items, 2)
		require.NotNil(t, next)
		createdAt, id, err := queries.DecodeAfterCursor(next.After)
		require.NoError(t, err)
		assert.Equal(t, rows[1].ID, id)
		assert.True(t, rows[1].CreatedAt.Equal(createdAt))
	})

	t.Run("last page has no cursor", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockDealViewRepo(ctrl)
		after := uuid.New()
		cursor := &queries.Cursor{After: queries.EncodeAfterCursor(start, after)}
		repo.EXPECT().
			FindByPartyKeyset(ctx, buyer.ID, gomock.Any(), after, int32(queries.DefaultListLimit+1)).
			Return(listItems(1, start.Add(-time.Hour)), nil)

		items, next, err := queries.NewDealQueries(repo).ListForActor(ctx, buyer, cursor, 0)

		require.NoError(t, err)
		assert.Len(t, items, 1)
		assert.Nil(t, next)
	})

	t.Run("malformed cursor is a validation error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockDealViewRepo(ctrl)

		_, _, err := queries.NewDealQueries(repo).ListForActor(ctx, buyer, &queries.Cursor{After: "not-a-cursor"}, 10)

		require.Error(t, err)
		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}
