package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetCartQueryHandler retrieves cart contents from the database.
type GetCartQueryHandler struct {
	db *gorm.DB
}

// NewGetCartQueryHandler creates a handler for cart queries.
// Requires a GORM database connection for query execution.
func NewGetCartQueryHandler(db *gorm.DB) GetCartQueryHandler {
	return GetCartQueryHandler{db: db}
}

// Handle executes the cart query.
// Lines whose product has been delisted since it was added are dropped
// from the response.
func (h GetCartQueryHandler) Handle(
	ctx context.Context,
	query GetCartQuery,
) (GetCartQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetCartQueryResponse{}, err
	}

	resp := GetCartQueryResponse{Lines: make([]CartLineResponse, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			l.quantity,
			i.price,
			i.stock
		FROM carts c
		JOIN cart_lines l ON l.cart_id = c.id
		JOIN products p ON p.id = l.product_id AND p.deleted_at IS NULL
		JOIN inventories i ON i.id = p.inventory_id
		WHERE c.customer_id = ?
		ORDER BY p.name
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	for rows.Next() {
		var line CartLineResponse
		var productID uuid.UUID

		err = rows.Scan(
			&productID,
			&line.ProductName,
			&line.Quantity,
			&line.PriceAmount,
			&line.Stock,
		)
		if err != nil {
			return resp, err
		}

		line.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return resp, err
		}
		resp.Lines = append(resp.Lines, line)
	}

	if err = rows.Err(); err != nil {
		return resp, err
	}

	return resp, nil
}
