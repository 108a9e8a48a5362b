// Package cartrepo provides data transfer objects and mapping functions for cart persistence.
// A cart's lines are replaced wholesale on every update; the touched_at
// timestamp drives the abandoned-cart cleanup job.
package cartrepo

import (
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CartDTO represents the database structure for persisting cart aggregates.
type CartDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CustomerID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"`
	TouchedAt  time.Time `gorm:"not null;index"`
}

// TableName specifies the database table name for cart entities.
// Overrides GORM's default naming convention to use "carts".
func (CartDTO) TableName() string {
	return "carts"
}

// CartLineDTO represents one product reference inside a cart.
type CartLineDTO struct {
	CartID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID uuid.UUID `gorm:"type:uuid;primaryKey"`
	Quantity  int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for cart line entities.
// Overrides GORM's default naming convention to use "cart_lines".
func (CartLineDTO) TableName() string {
	return "cart_lines"
}

// fromDomain converts a cart domain aggregate to its database representation.
func fromDomain(aggregate *cart.Cart) (CartDTO, []CartLineDTO) {
	cartID := aggregate.ID().Bytes()
	lines := make([]CartLineDTO, 0, len(aggregate.Lines()))

	for _, line := range aggregate.Lines() {
		lines = append(lines, CartLineDTO{
			CartID:    cartID,
			ProductID: line.ProductID.Bytes(),
			Quantity:  line.Quantity,
		})
	}

	return CartDTO{
		ID:         cartID,
		CustomerID: aggregate.CustomerID().Bytes(),
		TouchedAt:  aggregate.TouchedAt(),
	}, lines
}

// toDomain converts database DTOs to a cart domain aggregate.
func toDomain(dto CartDTO, lineDTOs []CartLineDTO) (*cart.Cart, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	lines := make([]cart.Line, 0, len(lineDTOs))
	for _, lineDTO := range lineDTOs {
		productID, lineErr := kernel.UUIDFromBytes(lineDTO.ProductID[:])
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, cart.Line{ProductID: productID, Quantity: lineDTO.Quantity})
	}

	return cart.RestoreCart(id, customerID, lines, dto.TouchedAt)
}
