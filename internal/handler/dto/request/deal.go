package request

import (
	"stokship/internal/domain/deal"
	"stokship/internal/domain/inventory"
	"stokship/internal/usecase/commands"

	"github.com/google/uuid"
)

type DealItemRequest struct {
	OfferItemID uuid.UUID `json:"offerItemId" binding:"required"`
	Quantity    int       `json:"quantity" binding:"required,gt=0,lte=2147483647"`
}

type StartDealRequest struct {
	// BuyerID lets an admin open a deal for a buyer. Buyers leave it empty.
	BuyerID *uuid.UUID        `json:"buyerId,omitempty"`
	Items   []DealItemRequest `json:"items" binding:"required,min=1,dive"`
}

func (r StartDealRequest) ToInput(actor deal.Actor, idempotencyKey *uuid.UUID) commands.StartNegotiationInput {
	items := make([]inventory.ItemRequest, len(r.Items))
	for i, it := range r.Items {
		items[i] = inventory.ItemRequest{OfferItemID: it.OfferItemID, Quantity: it.Quantity}
	}
	in := commands.StartNegotiationInput{
		Actor:          actor,
		Items:          items,
		IdempotencyKey: idempotencyKey,
	}
	if r.BuyerID != nil {
		in.BuyerID = *r.BuyerID
	}
	return in
}

type CancelDealRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}
