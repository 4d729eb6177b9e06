package request

import (
	"stokship/internal/domain/deal"
	"stokship/internal/usecase/commands"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PublishOfferItemRequest struct {
	// TraderID is required when an admin publishes on behalf of a trader.
	TraderID      *uuid.UUID      `json:"traderId,omitempty"`
	OfferID       uuid.UUID       `json:"offerId" binding:"required"`
	Title         string          `json:"title" binding:"required,max=200"`
	TotalQuantity int             `json:"totalQuantity" binding:"gte=0,lte=2147483647"`
	UnitPrice     decimal.Decimal `json:"unitPrice"`
	Currency      string          `json:"currency" binding:"required,len=3"`
}

func (r PublishOfferItemRequest) ToInput(actor deal.Actor) commands.PublishOfferItemInput {
	in := commands.PublishOfferItemInput{
		Actor:         actor,
		OfferID:       r.OfferID,
		Title:         r.Title,
		TotalQuantity: r.TotalQuantity,
		UnitPrice:     r.UnitPrice,
		Currency:      r.Currency,
	}
	if r.TraderID != nil {
		in.TraderID = *r.TraderID
	}
	return in
}
