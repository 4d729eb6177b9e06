//go:build unit

package inventory_test

import (
	"math"
	"sort"
	"testing"

	"stokship/internal/domain/inventory"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sortedIDs(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	sort.Slice(ids, func(i, j int) bool { return inventory.CompareIDs(ids[i], ids[j]) < 0 })
	return ids
}

func TestSummarizeRelease(t *testing.T) {
	dealID := uuid.New()
	ids := sortedIDs(2)

	t.Run("aggregates per item in id order", func(t *testing.T) {
		released := []inventory.Reservation{
			{OfferItemID: ids[1], Quantity: 2},
			{OfferItemID: ids[0], Quantity: 3},
			{OfferItemID: ids[1], Quantity: 4},
		}

		got := inventory.SummarizeRelease(dealID, released)

		want := inventory.ReleaseSummary{
			DealID:                dealID,
			ReleasedCount:         3,
			TotalQuantityReleased: 9,
			Items: []inventory.ItemRelease{
				{OfferItemID: ids[0], Quantity: 3},
				{OfferItemID: ids[1], Quantity: 6},
			},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("summary mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("empty release is a zero summary", func(t *testing.T) {
		got := inventory.SummarizeRelease(dealID, nil)
		assert.True(t, got.IsZero())
		assert.Equal(t, 0, got.TotalQuantityReleased)
		assert.Empty(t, got.Items)
	})
}

func TestNormalizeBasket(t *testing.T) {
	ids := sortedIDs(3)

	t.Run("merges duplicates and sorts", func(t *testing.T) {
		got, err := inventory.NormalizeBasket([]inventory.ItemRequest{
			{OfferItemID: ids[2], Quantity: 1},
			{OfferItemID: ids[0], Quantity: 2},
			{OfferItemID: ids[2], Quantity: 4},
		})
		require.NoError(t, err)
		assert.Equal(t, []inventory.ItemRequest{
			{OfferItemID: ids[0], Quantity: 2},
			{OfferItemID: ids[2], Quantity: 5},
		}, got)
	})

	t.Run("rejects empty basket", func(t *testing.T) {
		_, err := inventory.NormalizeBasket(nil)
		assert.ErrorIs(t, err, inventory.ErrEmptyBasket)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := inventory.NormalizeBasket([]inventory.ItemRequest{{OfferItemID: ids[0], Quantity: 0}})
		assert.ErrorIs(t, err, inventory.ErrInvalidQuantity)
	})

	t.Run("rejects a line above the ledger maximum", func(t *testing.T) {
		_, err := inventory.NormalizeBasket([]inventory.ItemRequest{{OfferItemID: ids[0], Quantity: inventory.MaxQuantity + 1}})
		assert.ErrorIs(t, err, inventory.ErrQuantityTooLarge)
	})

	t.Run("rejects duplicates whose sum overflows", func(t *testing.T) {
		_, err := inventory.NormalizeBasket([]inventory.ItemRequest{
			{OfferItemID: ids[1], Quantity: math.MaxInt64},
			{OfferItemID: ids[1], Quantity: 1},
		})
		assert.ErrorIs(t, err, inventory.ErrQuantityTooLarge)

		_, err = inventory.NormalizeBasket([]inventory.ItemRequest{
			{OfferItemID: ids[1], Quantity: inventory.MaxQuantity},
			{OfferItemID: ids[1], Quantity: 1},
		})
		assert.ErrorIs(t, err, inventory.ErrQuantityTooLarge)
	})

	t.Run("accepts duplicates summing to the maximum", func(t *testing.T) {
		got, err := inventory.NormalizeBasket([]inventory.ItemRequest{
			{OfferItemID: ids[1], Quantity: inventory.MaxQuantity - 1},
			{OfferItemID: ids[1], Quantity: 1},
		})
		require.NoError(t, err)
		assert.Equal(t, []inventory.ItemRequest{{OfferItemID: ids[1], Quantity: inventory.MaxQuantity}}, got)
	})
}

func TestReservationStatus(t *testing.T) {
	tests := []struct {
		status   inventory.ReservationStatus
		valid    bool
		holds    bool
		terminal bool
	}{
		{status: inventory.ReservationReserved, valid: true, holds: true, terminal: false},
		{status: inventory.ReservationConfirmed, valid: true, holds: true, terminal: true},
		{status: inventory.ReservationReleased, valid: true, holds: false, terminal: true},
		{status: "EXPIRED", valid: false},
	}
	for _, tt := range tests {
		t.Run(tt.status.String(), func(t *testing.T) {
			assert.Equal(t, tt.valid, tt.status.IsValid())
			assert.Equal(t, tt.holds, tt.status.Holds())
			assert.Equal(t, tt.terminal, tt.status.IsTerminal())
		})
	}
}
