//go:build unit

package repository_test

import (
	"context"
	"testing"
	"time"

	"stokship/internal/domain/deal"
	"stokship/internal/infra"
	"stokship/internal/infra/repository"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/tests/common/builder"
	repositorymock "stokship/tests/mock/repository"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestDealRepository_NextNumber(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockDealQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewDealRepository(mockQueries, mockDB)

	mockQueries.EXPECT().NextDealNumber(ctx, mockDB).Return(int64(42), nil)

	number, err := repo.NextNumber(ctx, mockDB)

	require.NoError(t, err)
	assert.Equal(t, "DL-000042", number)
}

func TestDealRepository_Create(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockDealQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewDealRepository(mockQueries, mockDB)

	buyerID := uuid.New()
	d, err := deal.NewDeal("DL-000001", buyerID, uuid.New(), deal.Buyer(buyerID), time.Now())
	require.NoError(t, err)

	gomock.InOrder(
		mockQueries.EXPECT().CreateDeal(ctx, mockDB, gomock.Any()).Return(nil),
		mockQueries.EXPECT().CreateDealStatusHistory(ctx, mockDB, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateDealStatusHistoryParams) error {
				assert.False(t, arg.FromStatus.Valid)
				assert.Equal(t, string(deal.StatusNegotiation), arg.ToStatus)
				assert.Equal(t, string(deal.ActorBuyer), arg.ActorKind)
				assert.Equal(t, pgtype.UUID{Bytes: buyerID, Valid: true}, arg.ActorID)
				return nil
			}),
	)

	require.NoError(t, repo.Create(ctx, mockDB, d))
}

func TestDealRepository_Save(t *testing.T) {
	ctx := context.Background()
	now := time.Now().UTC()

	testCases := []struct {
		name          string
		setupMock     func(*repositorymock.MockDealQueries, sqlc.DBTX)
		expectedError bool
		expectKind    infra.RepositoryErrorKind
	}{
		{
			name: "success: status written and transition appended",
			setupMock: func(mock *repositorymock.MockDealQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateDealStatus(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.UpdateDealStatusParams) (int64, error) {
						assert.Equal(t, string(deal.StatusCancelled), arg.Status)
						assert.Equal(t, pgtype.Text{String: string(deal.ActorSystem), Valid: true}, arg.CancelledBy)
						return 1, nil
					})
				mock.EXPECT().CreateDealStatusHistory(ctx, tx, gomock.Any()).
					DoAndReturn(func(_ context.Context, _ sqlc.DBTX, arg sqlc.CreateDealStatusHistoryParams) error {
						assert.Equal(t, string(deal.EventExpired), arg.Event)
						assert.False(t, arg.ActorID.Valid)
						return nil
					})
			},
		},
		{
			name: "error: deal row missing",
			setupMock: func(mock *repositorymock.MockDealQueries, tx sqlc.DBTX) {
				mock.EXPECT().UpdateDealStatus(ctx, tx, gomock.Any()).Return(int64(0), nil)
			},
			expectedError: true,
			expectKind:    infra.KindNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockQueries := repositorymock.NewMockDealQueries(ctrl)
			mockDB := &mockDBTX{}
			repo := repository.NewDealRepository(mockQueries, mockDB)

			d := builder.NewDealBuilder().Quoted(now.Add(-100 * time.Hour)).BuildDomain()
			require.NoError(t, d.Expire(now.Add(-72*time.Hour), "expired", false, now))

			tc.setupMock(mockQueries, mockDB)

			err := repo.Save(ctx, mockDB, d)

			if tc.expectedError {
				require.Error(t, err)
				assert.True(t, infra.IsKind(err, tc.expectKind))
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestDealRepository_FindByIDForUpdate_NotFound(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockDealQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewDealRepository(mockQueries, mockDB)

	mockQueries.EXPECT().GetDealForUpdate(ctx, mockDB, gomock.Any()).Return(sqlc.Deals{}, pgx.ErrNoRows)

	d, err := repo.FindByIDForUpdate(ctx, mockDB, uuid.New())

	require.Error(t, err)
	assert.Nil(t, d)
	assert.True(t, infra.IsKind(err, infra.KindNotFound))
}

func TestDealRepository_ListExpirable(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockQueries := repositorymock.NewMockDealQueries(ctrl)
	mockDB := &mockDBTX{}
	repo := repository.NewDealRepository(mockQueries, mockDB)

	cutoff := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	quoted := cutoff.Add(-time.Hour)
	id := uuid.New()

	mockQueries.EXPECT().ListExpirableDeals(ctx, mockDB, sqlc.ListExpirableDealsParams{
		Cutoff:     pgtype.Timestamptz{Time: cutoff, Valid: true},
		BatchLimit: 50,
	}).Return([]sqlc.ListExpirableDealsRow{
		{ID: id, DealNumber: "DL-000007", QuoteSentAt: pgtype.Timestamptz{Time: quoted, Valid: true}},
	}, nil)

	got, err := repo.ListExpirable(ctx, mockDB, cutoff, 50)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, id, got[0].ID)
	assert.Equal(t, "DL-000007", got[0].Number)
	assert.True(t, got[0].QuoteSentAt.Equal(quoted))
}
