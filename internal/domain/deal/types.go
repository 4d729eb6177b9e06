package deal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Status string

const (
	StatusNegotiation Status = "NEGOTIATION"
	StatusApproved    Status = "APPROVED"
	StatusCompleted   Status = "COMPLETED"
	StatusCancelled   Status = "CANCELLED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusNegotiation, StatusApproved, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func (s Status) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

// IsOpen reports whether the deal still holds reservations that may be
// cancelled or expired.
func (s Status) IsOpen() bool {
	return s == StatusNegotiation || s == StatusApproved
}

// OpenStatuses lists the statuses the expiration sweep looks at.
func OpenStatuses() []Status {
	return []Status{StatusNegotiation, StatusApproved}
}

type Event string

const (
	EventNegotiationStarted Event = "NEGOTIATION_STARTED"
	EventQuoteSent          Event = "QUOTE_SENT"
	EventApproved           Event = "APPROVED"
	EventPaymentCompleted   Event = "PAYMENT_COMPLETED"
	EventCancelled          Event = "CANCELLED"
	EventExpired            Event = "EXPIRED"
)

func (e Event) String() string {
	return string(e)
}

type ActorKind string

const (
	ActorSystem ActorKind = "SYSTEM"
	ActorBuyer  ActorKind = "BUYER"
	ActorTrader ActorKind = "TRADER"
	ActorAdmin  ActorKind = "ADMIN"
)

func (k ActorKind) String() string {
	return string(k)
}

func (k ActorKind) IsValid() bool {
	switch k {
	case ActorSystem, ActorBuyer, ActorTrader, ActorAdmin:
		return true
	default:
		return false
	}
}

var ErrUnknownRole = errors.New("unknown actor role")

// Actor identifies who triggered a status change. ID is uuid.Nil for the system.
type Actor struct {
	Kind ActorKind
	ID   uuid.UUID
}

func System() Actor             { return Actor{Kind: ActorSystem} }
func Buyer(id uuid.UUID) Actor  { return Actor{Kind: ActorBuyer, ID: id} }
func Trader(id uuid.UUID) Actor { return Actor{Kind: ActorTrader, ID: id} }
func Admin(id uuid.UUID) Actor  { return Actor{Kind: ActorAdmin, ID: id} }
func (a Actor) IsSystem() bool  { return a.Kind == ActorSystem }
func (a Actor) IsAdmin() bool   { return a.Kind == ActorAdmin }
func (a Actor) String() string  { return fmt.Sprintf("%s:%s", a.Kind, a.ID) }
func (a Actor) IDPtr() *uuid.UUID {
	if a.ID == uuid.Nil {
		return nil
	}
	id := a.ID
	return &id
}

// ActorFromRole maps a token role claim onto the actor variant.
func ActorFromRole(role string, userID uuid.UUID) (Actor, error) {
	switch strings.ToLower(role) {
	case "buyer":
		return Buyer(userID), nil
	case "trader":
		return Trader(userID), nil
	case "admin":
		return Admin(userID), nil
	case "system":
		return Actor{Kind: ActorSystem, ID: userID}, nil
	default:
		return Actor{}, fmt.Errorf("%w: %q", ErrUnknownRole, role)
	}
}

// Transition is one entry of a deal's status history.
type Transition struct {
	From  *Status
	To    Status
	Event Event
	Actor Actor
	Note  string
	At    time.Time
}
