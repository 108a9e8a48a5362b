package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetWishlistQueryHandler retrieves wishlist contents from the database.
// Delisted products stay on the list, flagged as deleted, so the customer
// can see what disappeared.
type GetWishlistQueryHandler struct {
	db *gorm.DB
}

// NewGetWishlistQueryHandler creates a handler for wishlist queries.
// Requires a GORM database connection for query execution.
func NewGetWishlistQueryHandler(db *gorm.DB) GetWishlistQueryHandler {
	return GetWishlistQueryHandler{db: db}
}

// Handle executes the wishlist query.
func (h GetWishlistQueryHandler) Handle(
	ctx context.Context,
	query GetWishlistQuery,
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
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		JOIN inventories i ON i.id = p.inventory_id
		WHERE w.customer_id = ?
		ORDER BY p.name
	`, query.CustomerID().Bytes()))
}
