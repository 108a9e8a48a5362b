package queries

import (
	"errors"
	"strings"

	"marketplace/internal/pkg/guard"
)

var (
	ErrGetCustomerByEmailQueryIsNotConstructed = errors.New(
		"GetCustomerByEmailQuery must be created via NewGetCustomerByEmailQuery constructor",
	)
	ErrEmailIsRequired = errors.New("email is required")
)

// GetCustomerByEmailQuery resolves a customer by their email address.
// Used during sign-in to find the account a session should belong to.
type GetCustomerByEmailQuery struct {
	email string

	guard guard.ConstructorGuard
}

// NewGetCustomerByEmailQuery creates a query to resolve an account by
// email. The email is normalized the same way sign-up normalizes it.
func NewGetCustomerByEmailQuery(email string) (GetCustomerByEmailQuery, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return GetCustomerByEmailQuery{}, ErrEmailIsRequired
	}

	return GetCustomerByEmailQuery{
		email: email,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetCustomerByEmailQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerByEmailQueryIsNotConstructed)
}

// Email returns the normalized email address.
func (q GetCustomerByEmailQuery) Email() string {
	return q.email
}
