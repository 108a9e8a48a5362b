package queries

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves order history from the database.
// Items are joined to products through the inventory record so the
// response can show product names even for delisted products.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for order history queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the order history query.
// A customer who never checked out gets an object not found error.
// Items are returned newest first.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	resp := GetOrderQueryResponse{Items: make([]OrderItemResponse, 0)}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.id,
			it.id,
			p.id,
			p.name,
			it.quantity,
			it.price,
			it.status,
			it.receiver,
			it.delivery_address
		FROM orders o
		JOIN order_items it ON it.order_id = o.id
		JOIN inventories i ON i.id = it.inventory_id
		JOIN products p ON p.id = i.product_id
		WHERE o.customer_id = ?
		ORDER BY it.created_at DESC
	`, query.CustomerID().Bytes()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	for rows.Next() {
		var item OrderItemResponse
		var orderID, itemID, productID uuid.UUID
		var status int

		err = rows.Scan(
			&orderID,
			&itemID,
			&productID,
			&item.ProductName,
			&item.Quantity,
			&item.PriceAmount,
			&status,
			&item.Receiver,
			&item.DeliveryAddress,
		)
		if err != nil {
			return resp, err
		}

		resp.OrderID, err = kernel.UUIDFromBytes(orderID[:])
		if err != nil {
			return resp, err
		}
		item.ID, err = kernel.UUIDFromBytes(itemID[:])
		if err != nil {
			return resp, err
		}
		item.ProductID, err = kernel.UUIDFromBytes(productID[:])
		if err != nil {
			return resp, err
		}
		item.Status = order.Status(status).String()
		resp.Items = append(resp.Items, item)
	}

	if err = rows.Err(); err != nil {
		return resp, err
	}

	if len(resp.Items) == 0 {
		return resp, errs.NewObjectNotFoundError("customerId", query.CustomerID().String())
	}

	return resp, nil
}
