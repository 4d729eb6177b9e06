package response

import (
	"time"

	"stokship/internal/domain/inventory"
	"stokship/internal/usecase/commands"
	"stokship/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID          uuid.UUID  `json:"id"`
	OfferItemID uuid.UUID  `json:"offerItemId"`
	Quantity    int        `json:"quantity"`
	Status      string     `json:"status"`
	ReservedAt  time.Time  `json:"reservedAt"`
	ConfirmedAt *time.Time `json:"confirmedAt,omitempty"`
	ReleasedAt  *time.Time `json:"releasedAt,omitempty"`
}

type TransitionResponse struct {
	FromStatus *string    `json:"fromStatus,omitempty"`
	ToStatus   string     `json:"toStatus"`
	Event      string     `json:"event"`
	ActorKind  string     `json:"actorKind"`
	ActorID    *uuid.UUID `json:"actorId,omitempty"`
	Note       *string    `json:"note,omitempty"`
	At         time.Time  `json:"at"`
}

type DealResponse struct {
	ID                 uuid.UUID             `json:"id"`
	Number             string                `json:"dealNumber"`
	BuyerID            uuid.UUID             `json:"buyerId"`
	TraderID           uuid.UUID             `json:"traderId"`
	Status             string                `json:"status"`
	QuoteSentAt        *time.Time            `json:"quoteSentAt,omitempty"`
	ApprovedAt         *time.Time            `json:"approvedAt,omitempty"`
	CompletedAt        *time.Time            `json:"completedAt,omitempty"`
	CancelledAt        *time.Time            `json:"cancelledAt,omitempty"`
	CancellationReason *string               `json:"cancellationReason,omitempty"`
	CancelledBy        *string               `json:"cancelledBy,omitempty"`
	CreatedAt          time.Time             `json:"createdAt"`
	UpdatedAt          time.Time             `json:"updatedAt"`
	Reservations       []ReservationResponse `json:"reservations"`
	History            []TransitionResponse  `json:"history"`
}

type DealListItemResponse struct {
	ID          uuid.UUID  `json:"id"`
	Number      string     `json:"dealNumber"`
	BuyerID     uuid.UUID  `json:"buyerId"`
	TraderID    uuid.UUID  `json:"traderId"`
	Status      string     `json:"status"`
	QuoteSentAt *time.Time `json:"quoteSentAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
}

type DealListResponse struct {
	Items      []*DealListItemResponse `json:"items"`
	NextCursor string                  `json:"nextCursor,omitempty"`
}

type StartDealResponse struct {
	DealID       uuid.UUID             `json:"dealId"`
	DealNumber   string                `json:"dealNumber"`
	Reservations []ReservationResponse `json:"reservations"`
	IsReplayed   bool                  `json:"isReplayed"`
}

type CompletePaymentResponse struct {
	Status                string `json:"status"`
	ConfirmedReservations int    `json:"confirmedReservations"`
	AlreadyCompleted      bool   `json:"alreadyCompleted"`
}

func FromDealView(v *queries.DealView) *DealResponse {
	res := &DealResponse{}
	_ = copier.Copy(res, v)
	if res.Reservations == nil {
		res.Reservations = []ReservationResponse{}
	}
	if res.History == nil {
		res.History = []TransitionResponse{}
	}
	return res
}

func FromDealList(items []*queries.DealListItem, next *queries.Cursor) *DealListResponse {
	res := &DealListResponse{Items: make([]*DealListItemResponse, len(items))}
	for i, it := range items {
		res.Items[i] = &DealListItemResponse{}
		_ = copier.Copy(res.Items[i], it)
	}
	if next != nil {
		res.NextCursor = next.After
	}
	return res
}

func FromReservation(r inventory.Reservation) ReservationResponse {
	return ReservationResponse{
		ID:          r.ID,
		OfferItemID: r.OfferItemID,
		Quantity:    r.Quantity,
		Status:      r.Status.String(),
		ReservedAt:  r.ReservedAt,
		ConfirmedAt: r.ConfirmedAt,
		ReleasedAt:  r.ReleasedAt,
	}
}

func FromStartNegotiation(r *commands.StartNegotiationResult) *StartDealResponse {
	res := &StartDealResponse{
		DealID:       r.DealID,
		DealNumber:   r.DealNumber,
		Reservations: make([]ReservationResponse, len(r.Reservations)),
		IsReplayed:   r.IsReplayed,
	}
	for i, rv := range r.Reservations {
		res.Reservations[i] = FromReservation(rv)
	}
	return res
}

func FromCompletePayment(r *commands.CompletePaymentResult) *CompletePaymentResponse {
	return &CompletePaymentResponse{
		Status:                r.Status.String(),
		ConfirmedReservations: r.Confirmed,
		AlreadyCompleted:      r.AlreadyCompleted,
	}
}
