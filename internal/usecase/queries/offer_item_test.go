//go:build unit

package queries_test

import (
	"context"
	"testing"

	"stokship/internal/infra"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/queries"
	queriesmock "stokship/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestOfferItemQueries_GetByID(t *testing.T) {
	ctx := context.Background()
	id := uuid.New()

	t.Run("found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockOfferItemViewRepo(ctrl)
		repo.EXPECT().FindByID(ctx, id).Return(&queries.OfferItemView{ID: id, TotalQuantity: 10, Available: 4}, nil)

		view, err := queries.NewOfferItemQueries(repo).GetByID(ctx, id)

		require.NoError(t, err)
		assert.Equal(t, 4, view.Available)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := queriesmock.NewMockOfferItemViewRepo(ctrl)
		repo.EXPECT().FindByID(ctx, id).Return(nil, infra.NotFound("offer item not found"))

		_, err := queries.NewOfferItemQueries(repo).GetByID(ctx, id)

		assert.True(t, errs.Is(err, errs.ErrOfferItemNotFound))
	})
}
