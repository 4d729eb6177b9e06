//go:build unit

package inventory_test

import (
	"strings"
	"testing"
	"time"

	"stokship/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOfferItem(t *testing.T) {
	now := time.Date(2026, 1, 10, 9, 0, 0, 0, time.UTC)
	price := decimal.RequireFromString("12.50")

	t.Run("basic success case", func(t *testing.T) {
		item, err := inventory.NewOfferItem(uuid.New(), uuid.New(), "  Steel coil  ", 10, price, "usd", now)
		require.NoError(t, err)

		assert.NotEqual(t, uuid.Nil, item.ID())
		assert.Equal(t, "Steel coil", item.Title())
		assert.Equal(t, "USD", item.Currency())
		assert.True(t, item.IsActive())
		assert.Equal(t, 0, item.ReservedQuantity())
		assert.Equal(t, inventory.Availability{
			OfferItemID: item.ID(),
			Total:       10,
			Reserved:    0,
			Available:   10,
			Active:      true,
		}, item.Availability())
	})

	tests := []struct {
		name     string
		title    string
		quantity int
		price    decimal.Decimal
		currency string
		errIs    error
	}{
		{name: "empty title", title: "   ", quantity: 1, price: price, currency: "USD", errIs: inventory.ErrEmptyTitle},
		{name: "title too long", title: strings.Repeat("a", 256), quantity: 1, price: price, currency: "USD", errIs: inventory.ErrTitleTooLong},
		{name: "negative quantity", title: "x", quantity: -1, price: price, currency: "USD", errIs: inventory.ErrNegativeQuantity},
		{name: "quantity above ledger maximum", title: "x", quantity: inventory.MaxQuantity + 1, price: price, currency: "USD", errIs: inventory.ErrQuantityTooLarge},
		{name: "zero quantity is allowed", title: "x", quantity: 0, price: price, currency: "USD"},
		{name: "negative price", title: "x", quantity: 1, price: decimal.NewFromInt(-1), currency: "USD", errIs: inventory.ErrNegativePrice},
		{name: "short currency", title: "x", quantity: 1, price: price, currency: "US", errIs: inventory.ErrInvalidCurrency},
		{name: "non-letter currency", title: "x", quantity: 1, price: price, currency: "U5D", errIs: inventory.ErrInvalidCurrency},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := inventory.NewOfferItem(uuid.New(), uuid.New(), tt.title, tt.quantity, tt.price, tt.currency, now)
			if tt.errIs != nil {
				assert.ErrorIs(t, err, tt.errIs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestReconstructOfferItem(t *testing.T) {
	id := uuid.New()
	trader := uuid.New()
	item := inventory.ReconstructOfferItem(id, uuid.New(), trader, "Copper", 8, 3,
		decimal.NewFromInt(5), "EUR", false, time.Now(), time.Now())

	a := item.Availability()
	assert.Equal(t, 5, a.Available)
	assert.False(t, a.Active)
	assert.True(t, item.IsOwnedBy(trader))
	assert.False(t, item.IsOwnedBy(uuid.New()))
}
