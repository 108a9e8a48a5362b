package ports

import (
	"context"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
)

// CartRepository defines the persistence contract for shopping carts.
type CartRepository interface {
	// Add persists a new cart aggregate to storage.
	Add(ctx context.Context, aggregate *cart.Cart) error

	// Update persists changes to an existing cart aggregate.
	Update(ctx context.Context, aggregate *cart.Cart) error

	// GetByCustomer retrieves the cart owned by a customer.
	// Returns errs.ObjectNotFoundError when the customer has no cart yet.
	GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error)

	// GetAllTouchedBefore retrieves carts whose last modification is
	// older than the cutoff. Used by the abandoned-cart cleanup job.
	GetAllTouchedBefore(ctx context.Context, cutoff time.Time) ([]*cart.Cart, error)

	// Remove deletes a cart and its lines from storage.
	Remove(ctx context.Context, id kernel.UUID) error
}
