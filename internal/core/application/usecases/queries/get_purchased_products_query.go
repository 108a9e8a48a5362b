package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetPurchasedProductsQueryIsNotConstructed = errors.New(
	"GetPurchasedProductsQuery must be created via NewGetPurchasedProductsQuery constructor",
)

// GetPurchasedProductsQuery retrieves the distinct products the customer
// has bought. Backs the "buy again" view and review eligibility.
type GetPurchasedProductsQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetPurchasedProductsQuery creates a query for purchased products.
func NewGetPurchasedProductsQuery(customerID kernel.UUID) (GetPurchasedProductsQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetPurchasedProductsQuery{}, err
	}

	return GetPurchasedProductsQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetPurchasedProductsQuery) Validate() error {
	return q.guard.Validate(ErrGetPurchasedProductsQueryIsNotConstructed)
}

// CustomerID returns the identifier of the purchasing customer.
func (q GetPurchasedProductsQuery) CustomerID() kernel.UUID {
	return q.customerID
}
