// Package ports defines the contracts between the application core and
// infrastructure: repositories, the unit of work, session storage and
// event publishing. Adapters implement these interfaces, enabling
// dependency inversion and testability.
package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
)

// ProductRepository defines the persistence contract for product aggregates.
// Listing and search go through the query layer; this interface serves
// command handlers only.
type ProductRepository interface {
	// Add persists a new product aggregate to storage.
	// The product must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *product.Product) error

	// Update persists changes to an existing product aggregate,
	// including soft deletion.
	Update(ctx context.Context, aggregate *product.Product) error

	// Get retrieves a product aggregate by its unique identifier.
	// Soft-deleted products are still returned; callers decide whether
	// a deleted product is acceptable for their operation.
	Get(ctx context.Context, id kernel.UUID) (*product.Product, error)

	// GetAllByStore retrieves the live (not deleted) products listed by
	// a store. Used to cascade deletion when a store closes.
	GetAllByStore(ctx context.Context, storeID kernel.UUID) ([]*product.Product, error)
}
