package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderItemQueryHandler retrieves a single purchased line from the
// database. The line is fetched by its identifier alone and ownership is
// checked afterwards, so a line bought by another customer is rejected as
// unauthorized rather than reported as missing.
type GetOrderItemQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderItemQueryHandler creates a handler for single-line queries.
// Requires a GORM database connection for query execution.
func NewGetOrderItemQueryHandler(db *gorm.DB) GetOrderItemQueryHandler {
	return GetOrderItemQueryHandler{db: db}
}

// Handle executes the single-line query.
func (h GetOrderItemQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemQuery,
) (OrderItemResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderItemResponse{}, err
	}

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			it.id,
			o.customer_id,
			p.id,
			p.name,
			it.quantity,
			it.price,
			it.status,
			it.receiver,
			it.delivery_address
		FROM order_items it
		JOIN orders o ON o.id = it.order_id
		JOIN inventories i ON i.id = it.inventory_id
		JOIN products p ON p.id = i.product_id
		WHERE it.id = ?
	`, query.ItemID().Bytes()).Row()

	var item OrderItemResponse
	var itemID, ownerID, productID uuid.UUID
	var status int

	err := row.Scan(
		&itemID,
		&ownerID,
		&productID,
		&item.ProductName,
		&item.Quantity,
		&item.PriceAmount,
		&status,
		&item.Receiver,
		&item.DeliveryAddress,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderItemResponse{}, errs.NewObjectNotFoundError("orderItemId", query.ItemID().String())
	}
	if err != nil {
		return OrderItemResponse{}, err
	}

	owner, err := kernel.UUIDFromBytes(ownerID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}
	if !owner.IsEqual(query.CustomerID()) {
		return OrderItemResponse{}, errs.NewUnauthorizedError("orderItemId")
	}

	item.ID, err = kernel.UUIDFromBytes(itemID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}
	item.ProductID, err = kernel.UUIDFromBytes(productID[:])
	if err != nil {
		return OrderItemResponse{}, err
	}
	item.Status = order.Status(status).String()

	return item, nil
}
