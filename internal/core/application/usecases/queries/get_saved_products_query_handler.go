package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetSavedProductsQueryHandler retrieves the saved-for-later list from the
// database.
type GetSavedProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetSavedProductsQueryHandler creates a handler for saved list queries.
func NewGetSavedProductsQueryHandler(db *gorm.DB) GetSavedProductsQueryHandler {
	return GetSavedProductsQueryHandler{db: db}
}

// Handle executes the saved list query.
func (h GetSavedProductsQueryHandler) Handle(
	ctx context.Context,
	query GetSavedProductsQuery,
) ([]ListedProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanListedProducts(h.db.WithContext(ctx).Raw(`
		SELECT
			p.id,
			p.name,
			i.price,
			i.stock,
			p.deleted_at IS NOT NULL
		FROM saved_products sp
		JOIN products p ON p.id = sp.product_id
		JOIN inventories i ON i.id = p.inventory_id
		WHERE sp.customer_id = ?
		ORDER BY p.name
	`, query.CustomerID().Bytes()))
}
