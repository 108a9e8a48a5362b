package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetWishlistQueryIsNotConstructed = errors.New(
	"GetWishlistQuery must be created via NewGetWishlistQuery constructor",
)

// GetWishlistQuery retrieves the products on the customer's wishlist.
type GetWishlistQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetWishlistQuery creates a query for the customer's wishlist.
func NewGetWishlistQuery(customerID kernel.UUID) (GetWishlistQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetWishlistQuery{}, err
	}

	return GetWishlistQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetWishlistQuery) Validate() error {
	return q.guard.Validate(ErrGetWishlistQueryIsNotConstructed)
}

// CustomerID returns the identifier of the wishlist owner.
func (q GetWishlistQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// ListedProductResponse represents a product on one of the customer's
// lists (wishlist, saved for later, purchased). Availability reflects
// current stock, not the state when the product was listed.
type ListedProductResponse struct {
	ID          kernel.UUID
	Name        string
	PriceAmount int64
	Stock       int
	Deleted     bool
}
