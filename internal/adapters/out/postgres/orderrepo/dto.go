// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// One order aggregate exists per customer; every purchase appends lines to it,
// so the lines table carries the temporal ordering via created_at.
package orderrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure for persisting order aggregates.
type OrderDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting purchased lines.
// Price is the snapshot taken at purchase time, in minor currency units.
// CreatedAt is set by the database on insert and never changed afterwards.
type OrderItemDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID `gorm:"type:uuid;not null;index"`
	InventoryID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity        int       `gorm:"type:int;not null"`
	Price           int64     `gorm:"type:bigint;not null"`
	Status          int       `gorm:"type:int;not null"`
	Receiver        string    `gorm:"type:varchar(255);not null"`
	DeliveryAddress string    `gorm:"type:text;not null"`
	CreatedAt       time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for order line entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Returns the order row and its line rows separately because the lines are
// upserted, not replaced, on update.
func fromDomain(aggregate *order.Order) (OrderDTO, []OrderItemDTO) {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:              item.ID().Bytes(),
			OrderID:         orderID,
			InventoryID:     item.InventoryID().Bytes(),
			Quantity:        item.Quantity(),
			Price:           item.Price().Amount(),
			Status:          int(item.Status()),
			Receiver:        item.Receiver(),
			DeliveryAddress: item.DeliveryAddress(),
		})
	}

	return OrderDTO{
		ID:         orderID,
		CustomerID: aggregate.CustomerID().Bytes(),
	}, items
}

// toDomain converts database DTOs to an order domain aggregate.
func toDomain(dto OrderDTO, itemDTOs []OrderItemDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	items := make([]*order.Item, 0, len(itemDTOs))
	for _, itemDTO := range itemDTOs {
		item, itemErr := itemToDomain(itemDTO)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(id, customerID, items)
}

// itemToDomain converts a line DTO to its domain entity.
func itemToDomain(dto OrderItemDTO) (*order.Item, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	inventoryID, err := kernel.UUIDFromBytes(dto.InventoryID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return order.RestoreItem(
		id, inventoryID,
		dto.Quantity, price,
		order.Status(dto.Status),
		dto.Receiver, dto.DeliveryAddress,
	)
}
