package inventory

import (
	"bytes"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

var ErrEmptyBasket = errors.New("at least one offer item is required")

// Reservation is a claim of one deal against one offer item.
type Reservation struct {
	ID          uuid.UUID
	OfferItemID uuid.UUID
	DealID      uuid.UUID
	Quantity    int
	Status      ReservationStatus
	ReservedAt  time.Time
	ConfirmedAt *time.Time
	ReleasedAt  *time.Time
}

func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}
	if quantity > MaxQuantity {
		return ErrQuantityTooLarge
	}
	return nil
}

type Availability struct {
	OfferItemID uuid.UUID
	Total       int
	Reserved    int
	Available   int
	Active      bool
}

// ItemRelease is the quantity returned to one offer item by a release.
type ItemRelease struct {
	OfferItemID uuid.UUID
	Quantity    int
}

type ReleaseSummary struct {
	DealID                uuid.UUID
	ReleasedCount         int
	TotalQuantityReleased int
	Items                 []ItemRelease
}

func (s ReleaseSummary) IsZero() bool {
	return s.ReleasedCount == 0
}

// SummarizeRelease folds released reservations into per-item quantities ordered
// by offer item id. The counter decrements are applied in that order so that
// concurrent releases lock offer item rows in the same sequence.
func SummarizeRelease(dealID uuid.UUID, released []Reservation) ReleaseSummary {
	summary := ReleaseSummary{DealID: dealID}
	perItem := make(map[uuid.UUID]int, len(released))
	for _, r := range released {
		summary.ReleasedCount++
		summary.TotalQuantityReleased += r.Quantity
		perItem[r.OfferItemID] += r.Quantity
	}

	summary.Items = make([]ItemRelease, 0, len(perItem))
	for id, q := range perItem {
		summary.Items = append(summary.Items, ItemRelease{OfferItemID: id, Quantity: q})
	}
	sort.Slice(summary.Items, func(i, j int) bool {
		return CompareIDs(summary.Items[i].OfferItemID, summary.Items[j].OfferItemID) < 0
	})
	return summary
}

// ItemRequest is one line of a basket to reserve.
type ItemRequest struct {
	OfferItemID uuid.UUID
	Quantity    int
}

// NormalizeBasket merges duplicate lines and orders them by offer item id.
func NormalizeBasket(items []ItemRequest) ([]ItemRequest, error) {
	if len(items) == 0 {
		return nil, ErrEmptyBasket
	}
	merged := make(map[uuid.UUID]int, len(items))
	for _, it := range items {
		if err := ValidateQuantity(it.Quantity); err != nil {
			return nil, err
		}
		if merged[it.OfferItemID] > MaxQuantity-it.Quantity {
			return nil, ErrQuantityTooLarge
		}
		merged[it.OfferItemID] += it.Quantity
	}
	out := make([]ItemRequest, 0, len(merged))
	for id, q := range merged {
		out = append(out, ItemRequest{OfferItemID: id, Quantity: q})
	}
	sort.Slice(out, func(i, j int) bool {
		return CompareIDs(out[i].OfferItemID, out[j].OfferItemID) < 0
	})
	return out, nil
}

// CompareIDs orders UUIDs bytewise, which matches PostgreSQL's uuid ordering.
func CompareIDs(a, b uuid.UUID) int {
	return bytes.Compare(a[:], b[:])
}
