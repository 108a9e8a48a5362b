package ports

import (
	"context"

	"marketplace/internal/core/domain/model/inventory"
	"marketplace/internal/core/domain/model/kernel"
)

// InventoryRepository defines the persistence contract for inventory records.
//
// Reserve and Release exist alongside Update because stock movements must be
// safe under concurrent checkouts: the implementation performs a conditional
// decrement in the database so that two buyers cannot both take the last unit.
// Plain Update is reserved for non-contended changes (price, restock).
type InventoryRepository interface {
	// Add persists a new inventory record.
	Add(ctx context.Context, aggregate *inventory.Inventory) error

	// Update persists price and restock changes to an existing record.
	Update(ctx context.Context, aggregate *inventory.Inventory) error

	// Get retrieves an inventory record by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*inventory.Inventory, error)

	// GetByProduct retrieves the inventory record backing a product.
	GetByProduct(ctx context.Context, productID kernel.UUID) (*inventory.Inventory, error)

	// Reserve atomically decrements stock and increments the sold counter.
	// Returns inventory.ErrInsufficientStock when fewer than quantity
	// units remain; stock never goes negative.
	Reserve(ctx context.Context, id kernel.UUID, quantity int) error

	// Release returns previously reserved units to stock after a
	// cancellation. The sold counter floors at zero.
	Release(ctx context.Context, id kernel.UUID, quantity int) error
}
