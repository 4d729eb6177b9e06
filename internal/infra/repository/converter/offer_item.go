package converter

import (
	"stokship/internal/domain/inventory"
	sqlc "stokship/internal/infra/sqlc/generated"
	"stokship/internal/pkg/pgconv"
)

func OfferItemToInfra(item *inventory.OfferItem) (sqlc.CreateOfferItemParams, error) {
	total, err := ToInt32(item.TotalQuantity())
	if err != nil {
		return sqlc.CreateOfferItemParams{}, err
	}

	return sqlc.CreateOfferItemParams{
		ID:            item.ID(),
		OfferID:       item.OfferID(),
		TraderID:      item.TraderID(),
		Title:         item.Title(),
		TotalQuantity: total,
		UnitPrice:     pgconv.DecimalToNumeric(item.UnitPrice()),
		Currency:      item.Currency(),
		IsActive:      item.IsActive(),
		CreatedAt:     pgconv.TimeToPgtype(item.CreatedAt()),
		UpdatedAt:     pgconv.TimeToPgtype(item.UpdatedAt()),
	}, nil
}

func OfferItemFromInfra(row sqlc.OfferItems) (*inventory.OfferItem, error) {
	price, err := pgconv.DecimalFromNumeric(row.UnitPrice)
	if err != nil {
		return nil, err
	}

	return inventory.ReconstructOfferItem(
		row.ID,
		row.OfferID,
		row.TraderID,
		row.Title,
		int(row.TotalQuantity),
		int(row.ReservedQuantity),
		price,
		row.Currency,
		row.IsActive,
		pgconv.TimeFromPgtype(row.CreatedAt),
		pgconv.TimeFromPgtype(row.UpdatedAt),
	), nil
}
