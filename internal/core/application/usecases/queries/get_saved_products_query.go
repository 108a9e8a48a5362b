package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetSavedProductsQueryIsNotConstructed = errors.New(
	"GetSavedProductsQuery must be created via NewGetSavedProductsQuery constructor",
)

// GetSavedProductsQuery retrieves the customer's saved-for-later list.
type GetSavedProductsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetSavedProductsQuery creates a query for the saved-for-later list.
func NewGetSavedProductsQuery(customerID kernel.UUID) (GetSavedProductsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetSavedProductsQuery{}, err
	}

	return GetSavedProductsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetSavedProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetSavedProductsQueryIsNotConstructed)
}

// CustomerID returns the identifier of the list owner.
func (q GetSavedProductsQuery) CustomerID() kernel.UUID {
	return q.customerID
}
