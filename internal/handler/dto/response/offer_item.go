package response

import (
	"time"

	"stokship/internal/domain/inventory"
	"stokship/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"github.com/shopspring/decimal"
)

type OfferItemResponse struct {
	ID               uuid.UUID       `json:"id"`
	OfferID          uuid.UUID       `json:"offerId"`
	TraderID         uuid.UUID       `json:"traderId"`
	Title            string          `json:"title"`
	TotalQuantity    int             `json:"totalQuantity"`
	ReservedQuantity int             `json:"reservedQuantity"`
	Available        int             `json:"available"`
	UnitPrice        decimal.Decimal `json:"unitPrice"`
	Currency         string          `json:"currency"`
	IsActive         bool            `json:"isActive"`
	CreatedAt        time.Time       `json:"createdAt"`
	UpdatedAt        time.Time       `json:"updatedAt"`
}

type AvailabilityResponse struct {
	OfferItemID uuid.UUID `json:"offerItemId"`
	Total       int       `json:"totalQuantity"`
	Reserved    int       `json:"reservedQuantity"`
	Available   int       `json:"availableQuantity"`
	Active      bool      `json:"isActive"`
}

func FromOfferItemView(v *queries.OfferItemView) *OfferItemResponse {
	res := &OfferItemResponse{}
	_ = copier.Copy(res, v)
	return res
}

func FromOfferItem(item *inventory.OfferItem) *OfferItemResponse {
	a := item.Availability()
	return &OfferItemResponse{
		ID:               item.ID(),
		OfferID:          item.OfferID(),
		TraderID:         item.TraderID(),
		Title:            item.Title(),
		TotalQuantity:    item.TotalQuantity(),
		ReservedQuantity: item.ReservedQuantity(),
		Available:        a.Available,
		UnitPrice:        item.UnitPrice(),
		Currency:         item.Currency(),
		IsActive:         item.IsActive(),
		CreatedAt:        item.CreatedAt(),
		UpdatedAt:        item.UpdatedAt(),
	}
}

func FromAvailability(a inventory.Availability) *AvailabilityResponse {
	res := &AvailabilityResponse{}
	_ = copier.Copy(res, a)
	return res
}
