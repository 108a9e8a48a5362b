package ports

import (
	"context"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
)

// CustomerRepository defines the persistence contract for customer accounts.
type CustomerRepository interface {
	// Add persists a new customer aggregate to storage.
	Add(ctx context.Context, aggregate *customer.Customer) error

	// Update persists changes to an existing customer aggregate,
	// including wishlist and saved-for-later membership.
	Update(ctx context.Context, aggregate *customer.Customer) error

	// Get retrieves a customer aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error)

	// GetByEmail retrieves a customer aggregate by its normalized email.
	// Returns errs.ObjectNotFoundError when the email is unclaimed.
	GetByEmail(ctx context.Context, email string) (*customer.Customer, error)
}
