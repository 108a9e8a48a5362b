package queries

import (
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// scanListedProducts reads rows shaped as (id, name, price, stock,
// deleted) into the shared list read model. The wishlist, saved-for-later
// and purchased queries all project this shape.
func scanListedProducts(tx *gorm.DB) ([]ListedProductResponse, error) {
	rows, err := tx.Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	listed := make([]ListedProductResponse, 0)
	for rows.Next() {
		var item ListedProductResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.Name,
			&item.PriceAmount,
			&item.Stock,
			&item.Deleted,
		)
		if err != nil {
			return nil, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		listed = append(listed, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return listed, nil
}
