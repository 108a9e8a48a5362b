package queries

import (
	"context"

	"marketplace/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GetPurchasedProductsQueryHandler retrieves purchased products from the
// database. Cancelled items do not count as purchases.
type GetPurchasedProductsQueryHandler struct {
	db *gorm.DB
}

// NewGetPurchasedProductsQueryHandler creates a handler for purchased
// product queries.
func NewGetPurchasedProductsQueryHandler(db *gorm.DB) GetPurchasedProductsQueryHandler {
	return GetPurchasedProductsQueryHandler{db: db}
}

// Handle executes the purchased products query.
func (h GetPurchasedProductsQueryHandler) Handle(
	ctx context.Context,
	query GetPurchasedProductsQuery,
) ([]ListedProductResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	return scanListedProducts(h.db.WithContext(ctx).Raw(`
		SELECT DISTINCT
			p.id,
			p.name,
			i.price,
			i.stock,
			p.deleted_at IS NOT NULL
		FROM orders o
		JOIN order_items it ON it.order_id = o.id AND it.status = ?
		JOIN inventories i ON i.id = it.inventory_id
		JOIN products p ON p.id = i.product_id
		WHERE o.customer_id = ?
		ORDER BY p.name
	`, int(order.Paid), query.CustomerID().Bytes()))
}
