// Package inventoryrepo provides data transfer objects and mapping functions for
// inventory persistence. Stock reservation is done with a guarded in-database
// decrement rather than read-modify-write, so concurrent purchases can never
// drive stock negative.
package inventoryrepo

import (
	"marketplace/internal/core/domain/model/inventory"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// InventoryDTO represents the database structure for persisting inventory ledgers.
// Price is stored in minor currency units.
type InventoryDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	Stock     int       `gorm:"type:int;not null"`
	Price     int64     `gorm:"type:bigint;not null"`
	Sold      int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for inventory entities.
// Overrides GORM's default naming convention to use "inventories".
func (InventoryDTO) TableName() string {
	return "inventories"
}

// fromDomain converts an inventory domain aggregate to its database representation.
func fromDomain(aggregate *inventory.Inventory) InventoryDTO {
	return InventoryDTO{
		ID:        aggregate.ID().Bytes(),
		ProductID: aggregate.ProductID().Bytes(),
		Stock:     aggregate.Stock(),
		Price:     aggregate.Price().Amount(),
		Sold:      aggregate.Sold(),
	}
}

// toDomain converts a database DTO to an inventory domain aggregate.
func toDomain(dto InventoryDTO) (*inventory.Inventory, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	price, err := kernel.NewMoney(dto.Price)
	if err != nil {
		return nil, err
	}

	return inventory.RestoreInventory(id, productID, dto.Stock, price, dto.Sold)
}
