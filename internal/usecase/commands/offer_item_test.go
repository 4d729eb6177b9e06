//go:build unit

package commands_test

import (
	"context"
	"testing"

	"stokship/internal/domain/deal"
	"stokship/internal/infra"
	"stokship/internal/pkg/errs"
	"stokship/internal/usecase/commands"
	"stokship/tests/common/builder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFoundErr() error {
	return infra.NotFound("not found")
}

func TestOfferItemCommands_Publish(t *testing.T) {
	ctx := context.Background()
	traderID := uuid.New()
	base := commands.PublishOfferItemInput{
		OfferID:       uuid.New(),
		Title:         "Copper wire",
		TotalQuantity: 40,
		UnitPrice:     decimal.RequireFromString("9.99"),
		Currency:      "eur",
	}

	t.Run("success: trader publishes own item", func(t *testing.T) {
		f := newFixture(t)
		f.offerItems.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		in := base
		in.Actor = deal.Trader(traderID)
		item, err := commands.NewOfferItemCommands(f.uow, f.clock).Publish(ctx, in)

		require.NoError(t, err)
		assert.Equal(t, traderID, item.TraderID())
		assert.Equal(t, "EUR", item.Currency())
		assert.Equal(t, 40, item.Availability().Available)
	})

	t.Run("forbidden: buyer cannot publish", func(t *testing.T) {
		f := newFixture(t)

		in := base
		in.Actor = deal.Buyer(uuid.New())
		_, err := commands.NewOfferItemCommands(f.uow, f.clock).Publish(ctx, in)

		assert.True(t, errs.Is(err, errs.ErrForbiddenActor))
	})

	t.Run("error: negative quantity", func(t *testing.T) {
		f := newFixture(t)

		in := base
		in.Actor = deal.Trader(traderID)
		in.TotalQuantity = -1
		_, err := commands.NewOfferItemCommands(f.uow, f.clock).Publish(ctx, in)

		assert.True(t, errs.Is(err, errs.ErrDomainValidation))
	})
}

func TestOfferItemCommands_Disable(t *testing.T) {
	ctx := context.Background()

	t.Run("success: owner disables", func(t *testing.T) {
		f := newFixture(t)
		item := builder.NewOfferItemBuilder()
		f.offerItems.EXPECT().FindByID(gomock.Any(), gomock.Any(), item.ID).Return(item.BuildDomain(), nil)
		f.offerItems.EXPECT().Disable(gomock.Any(), gomock.Any(), item.ID).Return(nil)

		err := commands.NewOfferItemCommands(f.uow, f.clock).Disable(ctx, item.ID, deal.Trader(item.TraderID))

		require.NoError(t, err)
	})

	t.Run("forbidden: other trader", func(t *testing.T) {
		f := newFixture(t)
		item := builder.NewOfferItemBuilder()
		f.offerItems.EXPECT().FindByID(gomock.Any(), gomock.Any(), item.ID).Return(item.BuildDomain(), nil)

		err := commands.NewOfferItemCommands(f.uow, f.clock).Disable(ctx, item.ID, deal.Trader(uuid.New()))

		assert.True(t, errs.Is(err, errs.ErrForbiddenActor))
	})

	t.Run("error: missing item", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.offerItems.EXPECT().FindByID(gomock.Any(), gomock.Any(), id).Return(nil, notFoundErr())

		err := commands.NewOfferItemCommands(f.uow, f.clock).Disable(ctx, id, deal.Admin(uuid.New()))

		assert.True(t, errs.Is(err, errs.ErrOfferItemNotFound))
	})
}
