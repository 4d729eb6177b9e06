package deal

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidTransition = errors.New("invalid deal status transition")
	ErrForbidden         = errors.New("actor may not perform this action on the deal")
	ErrQuoteNotSent      = errors.New("a quote must be sent before the deal can be approved")
	ErrPaymentCompleted  = errors.New("deal has a completed payment")
	ErrNotExpirable      = errors.New("deal is not eligible for expiration")
	ErrEmptyDealNumber   = errors.New("deal number cannot be empty")
	ErrSameParty         = errors.New("buyer and trader must differ")
)

const maxReasonLength = 500

// Deal is the negotiation aggregate. Status changes go through its methods,
// each of which appends a Transition that the repository persists.
type Deal struct {
	id                 uuid.UUID
	number             string
	buyerID            uuid.UUID
	traderID           uuid.UUID
	status             Status
	quoteSentAt        *time.Time
	approvedAt         *time.Time
	completedAt        *time.Time
	cancelledAt        *time.Time
	cancellationReason *string
	cancelledBy        *ActorKind
	createdAt          time.Time
	updatedAt          time.Time

	transitions []Transition
}

func NewDeal(number string, buyerID, traderID uuid.UUID, actor Actor, now time.Time) (*Deal, error) {
	if number == "" {
		return nil, ErrEmptyDealNumber
	}
	if buyerID == traderID {
		return nil, ErrSameParty
	}
	if !(actor.Kind == ActorBuyer && actor.ID == buyerID) && !actor.IsAdmin() {
		return nil, ErrForbidden
	}

	d := &Deal{
		id:        uuid.New(),
		number:    number,
		buyerID:   buyerID,
		traderID:  traderID,
		status:    StatusNegotiation,
		createdAt: now,
		updatedAt: now,
	}
	d.record(nil, StatusNegotiation, EventNegotiationStarted, actor, "", now)
	return d, nil
}

type Snapshot struct {
	ID                 uuid.UUID
	Number             string
	BuyerID            uuid.UUID
	TraderID           uuid.UUID
	Status             Status
	QuoteSentAt        *time.Time
	ApprovedAt         *time.Time
	CompletedAt        *time.Time
	CancelledAt        *time.Time
	CancellationReason *string
	CancelledBy        *ActorKind
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func Reconstruct(s Snapshot) *Deal {
	return &Deal{
		id:                 s.ID,
		number:             s.Number,
		buyerID:            s.BuyerID,
		traderID:           s.TraderID,
		status:             s.Status,
		quoteSentAt:        s.QuoteSentAt,
		approvedAt:         s.ApprovedAt,
		completedAt:        s.CompletedAt,
		cancelledAt:        s.CancelledAt,
		cancellationReason: s.CancellationReason,
		cancelledBy:        s.CancelledBy,
		createdAt:          s.CreatedAt,
		updatedAt:          s.UpdatedAt,
	}
}

func (d *Deal) Snapshot() Snapshot {
	return Snapshot{
		ID:                 d.id,
		Number:             d.number,
		BuyerID:            d.buyerID,
		TraderID:           d.traderID,
		Status:             d.status,
		QuoteSentAt:        d.quoteSentAt,
		ApprovedAt:         d.approvedAt,
		CompletedAt:        d.completedAt,
		CancelledAt:        d.cancelledAt,
		CancellationReason: d.cancellationReason,
		CancelledBy:        d.cancelledBy,
		CreatedAt:          d.createdAt,
		UpdatedAt:          d.updatedAt,
	}
}

// SendQuote sets the quote timestamp. A re-quote refreshes it, which restarts
// the expiration grace period.
func (d *Deal) SendQuote(actor Actor, now time.Time) error {
	if d.status != StatusNegotiation {
		return d.invalid(EventQuoteSent)
	}
	if !d.isTraderSide(actor) {
		return ErrForbidden
	}

	note := ""
	if d.quoteSentAt != nil {
		note = "re-quote"
	}
	d.quoteSentAt = &now
	d.touch(now)
	d.record(&d.status, StatusNegotiation, EventQuoteSent, actor, note, now)
	return nil
}

func (d *Deal) Approve(actor Actor, now time.Time) error {
	if d.status != StatusNegotiation {
		return d.invalid(EventApproved)
	}
	if !d.isTraderSide(actor) {
		return ErrForbidden
	}
	if d.quoteSentAt == nil {
		return ErrQuoteNotSent
	}

	from := d.status
	d.status = StatusApproved
	d.approvedAt = &now
	d.touch(now)
	d.record(&from, StatusApproved, EventApproved, actor, "", now)
	return nil
}

// CompletePayment moves an approved deal to COMPLETED. It reports false when
// the deal was already completed so callers can skip the confirm step.
func (d *Deal) CompletePayment(actor Actor, now time.Time) (bool, error) {
	if !actor.IsSystem() && !actor.IsAdmin() {
		return false, ErrForbidden
	}
	if d.status == StatusCompleted {
		return false, nil
	}
	if d.status != StatusApproved {
		return false, d.invalid(EventPaymentCompleted)
	}

	from := d.status
	d.status = StatusCompleted
	d.completedAt = &now
	d.touch(now)
	d.record(&from, StatusCompleted, EventPaymentCompleted, actor, "", now)
	return true, nil
}

// Cancel is the actor-driven cancellation. hasCompletedPayment must be read
// under the same lock that guards the deal row.
func (d *Deal) Cancel(actor Actor, reason string, hasCompletedPayment bool, now time.Time) error {
	if !d.status.IsOpen() {
		return d.invalid(EventCancelled)
	}
	if !d.isParty(actor) {
		return ErrForbidden
	}
	if hasCompletedPayment {
		return ErrPaymentCompleted
	}
	d.cancel(actor, EventCancelled, reason, now)
	return nil
}

// CanExpire reports whether the deal is stale at cutoff. A deal whose quote was
// sent exactly at the cutoff is not stale.
func (d *Deal) CanExpire(cutoff time.Time, hasCompletedPayment bool) bool {
	return d.status.IsOpen() &&
		d.quoteSentAt != nil &&
		d.quoteSentAt.Before(cutoff) &&
		!hasCompletedPayment
}

func (d *Deal) Expire(cutoff time.Time, reason string, hasCompletedPayment bool, now time.Time) error {
	if !d.CanExpire(cutoff, hasCompletedPayment) {
		return ErrNotExpirable
	}
	d.cancel(System(), EventExpired, reason, now)
	return nil
}

func (d *Deal) cancel(actor Actor, event Event, reason string, now time.Time) {
	if r := []rune(reason); len(r) > maxReasonLength {
		reason = string(r[:maxReasonLength])
	}
	from := d.status
	kind := actor.Kind
	d.status = StatusCancelled
	d.cancelledAt = &now
	d.cancellationReason = &reason
	d.cancelledBy = &kind
	d.touch(now)
	d.record(&from, StatusCancelled, event, actor, reason, now)
}

// PendingTransitions returns the transitions recorded since load.
func (d *Deal) PendingTransitions() []Transition {
	out := make([]Transition, len(d.transitions))
	copy(out, d.transitions)
	return out
}

func (d *Deal) isTraderSide(actor Actor) bool {
	return (actor.Kind == ActorTrader && actor.ID == d.traderID) || actor.IsAdmin()
}

func (d *Deal) isParty(actor Actor) bool {
	switch actor.Kind {
	case ActorBuyer:
		return actor.ID == d.buyerID
	case ActorTrader:
		return actor.ID == d.traderID
	case ActorAdmin, ActorSystem:
		return true
	default:
		return false
	}
}

func (d *Deal) invalid(event Event) error {
	return fmt.Errorf("%w: %s from %s", ErrInvalidTransition, event, d.status)
}

func (d *Deal) touch(now time.Time) {
	d.updatedAt = now
}

func (d *Deal) record(from *Status, to Status, event Event, actor Actor, note string, at time.Time) {
	var f *Status
	if from != nil {
		v := *from
		f = &v
	}
	d.transitions = append(d.transitions, Transition{
		From:  f,
		To:    to,
		Event: event,
		Actor: actor,
		Note:  note,
		At:    at,
	})
}

func (d *Deal) ID() uuid.UUID               { return d.id }
func (d *Deal) Number() string              { return d.number }
func (d *Deal) BuyerID() uuid.UUID          { return d.buyerID }
func (d *Deal) TraderID() uuid.UUID         { return d.traderID }
func (d *Deal) Status() Status              { return d.status }
func (d *Deal) QuoteSentAt() *time.Time     { return d.quoteSentAt }
func (d *Deal) ApprovedAt() *time.Time      { return d.approvedAt }
func (d *Deal) CompletedAt() *time.Time     { return d.completedAt }
func (d *Deal) CancelledAt() *time.Time     { return d.cancelledAt }
func (d *Deal) CancellationReason() *string { return d.cancellationReason }
func (d *Deal) CancelledBy() *ActorKind     { return d.cancelledBy }
func (d *Deal) CreatedAt() time.Time        { return d.createdAt }
func (d *Deal) UpdatedAt() time.Time        { return d.updatedAt }
