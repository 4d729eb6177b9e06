package inventory

import (
	"errors"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrEmptyTitle       = errors.New("offer item title cannot be empty")
	ErrTitleTooLong     = errors.New("offer item title is too long (max 255 characters)")
	ErrNegativeQuantity = errors.New("total quantity cannot be negative")
	ErrInvalidQuantity  = errors.New("quantity must be greater than zero")
	ErrQuantityTooLarge = errors.New("quantity exceeds the maximum of 2147483647")
	ErrNegativePrice    = errors.New("unit price cannot be negative")
	ErrInvalidCurrency  = errors.New("currency must be a 3-letter ISO 4217 code")
)

const maxTitleLength = 255

// MaxQuantity matches the INTEGER ledger columns.
const MaxQuantity = math.MaxInt32

// OfferItem is a sellable line of a trading offer. The reserved counter is
// owned by the reservation engine; this type only reads it.
type OfferItem struct {
	id               uuid.UUID
	offerID          uuid.UUID
	traderID         uuid.UUID
	title            string
	totalQuantity    int
	reservedQuantity int
	unitPrice        decimal.Decimal
	currency         string
	active           bool
	createdAt        time.Time
	updatedAt        time.Time
}

func NewOfferItem(
	offerID, traderID uuid.UUID,
	title string,
	totalQuantity int,
	unitPrice decimal.Decimal,
	currency string,
	now time.Time,
) (*OfferItem, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, ErrEmptyTitle
	}
	if len(title) > maxTitleLength {
		return nil, ErrTitleTooLong
	}
	if totalQuantity < 0 {
		return nil, ErrNegativeQuantity
	}
	if totalQuantity > MaxQuantity {
		return nil, ErrQuantityTooLarge
	}
	if unitPrice.IsNegative() {
		return nil, ErrNegativePrice
	}
	currency, err := normalizeCurrency(currency)
	if err != nil {
		return nil, err
	}

	return &OfferItem{
		id:            uuid.New(),
		offerID:       offerID,
		traderID:      traderID,
		title:         title,
		totalQuantity: totalQuantity,
		unitPrice:     unitPrice,
		currency:      currency,
		active:        true,
		createdAt:     now,
		updatedAt:     now,
	}, nil
}

func ReconstructOfferItem(
	id, offerID, traderID uuid.UUID,
	title string,
	totalQuantity, reservedQuantity int,
	unitPrice decimal.Decimal,
	currency string,
	active bool,
	createdAt, updatedAt time.Time,
) *OfferItem {
	return &OfferItem{
		id:               id,
		offerID:          offerID,
		traderID:         traderID,
		title:            title,
		totalQuantity:    totalQuantity,
		reservedQuantity: reservedQuantity,
		unitPrice:        unitPrice,
		currency:         currency,
		active:           active,
		createdAt:        createdAt,
		updatedAt:        updatedAt,
	}
}

func (o *OfferItem) Availability() Availability {
	return Availability{
		OfferItemID: o.id,
		Total:       o.totalQuantity,
		Reserved:    o.reservedQuantity,
		Available:   o.totalQuantity - o.reservedQuantity,
		Active:      o.active,
	}
}

func (o *OfferItem) IsOwnedBy(traderID uuid.UUID) bool {
	return o.traderID == traderID
}

func (o *OfferItem) ID() uuid.UUID              { return o.id }
func (o *OfferItem) OfferID() uuid.UUID         { return o.offerID }
func (o *OfferItem) TraderID() uuid.UUID        { return o.traderID }
func (o *OfferItem) Title() string              { return o.title }
func (o *OfferItem) TotalQuantity() int         { return o.totalQuantity }
func (o *OfferItem) ReservedQuantity() int      { return o.reservedQuantity }
func (o *OfferItem) UnitPrice() decimal.Decimal { return o.unitPrice }
func (o *OfferItem) Currency() string           { return o.currency }
func (o *OfferItem) IsActive() bool             { return o.active }
func (o *OfferItem) CreatedAt() time.Time       { return o.createdAt }
func (o *OfferItem) UpdatedAt() time.Time       { return o.updatedAt }

func normalizeCurrency(c string) (string, error) {
	c = strings.ToUpper(strings.TrimSpace(c))
	if len(c) != 3 {
		return "", ErrInvalidCurrency
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return "", ErrInvalidCurrency
		}
	}
	return c, nil
}
