package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Each customer owns at most one order aggregate that accumulates purchased
// items, so lookups go by customer as well as by aggregate identifier.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate,
	// including newly added and cancelled items.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier
	// with all of its items.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCustomer retrieves the order aggregate owned by a customer.
	// Returns errs.ObjectNotFoundError when the customer has never
	// completed a checkout.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*order.Order, error)

	// GetByItem retrieves the order aggregate containing the given line.
	// Returns errs.ObjectNotFoundError when no such line exists. Callers
	// that act on behalf of a customer must compare the aggregate's
	// customer to the caller themselves, so an unowned line can be
	// rejected as unauthorized rather than hidden as missing.
	GetByItem(ctx context.Context, itemID kernel.UUID) (*order.Order, error)
}
