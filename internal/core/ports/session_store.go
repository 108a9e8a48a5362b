package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// SessionStore maps opaque bearer tokens to authenticated customers.
// Sessions expire server-side; an expired or unknown token resolves to
// errs.UnauthorizedError.
type SessionStore interface {
	// Create issues a new session token for the customer.
	Create(ctx context.Context, customerID kernel.UUID) (string, error)

	// Resolve returns the customer a token belongs to and refreshes
	// its expiry.
	Resolve(ctx context.Context, token string) (kernel.UUID, error)

	// Revoke invalidates a token. Revoking an unknown token is a no-op.
	Revoke(ctx context.Context, token string) error
}
