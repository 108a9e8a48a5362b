package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetStoreDetailsQueryIsNotConstructed = errors.New(
	"GetStoreDetailsQuery must be created via NewGetStoreDetailsQuery constructor",
)

// GetStoreDetailsQuery retrieves a seller's store dashboard: the store
// itself and its live product listings. Only the owner may view it.
type GetStoreDetailsQuery struct {
	storeID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetStoreDetailsQuery creates a query for a store dashboard.
func NewGetStoreDetailsQuery(storeID, callerID kernel.UUID) (GetStoreDetailsQuery, error) {
	if err := errors.Join(storeID.Validate(), callerID.Validate()); err != nil {
		return GetStoreDetailsQuery{}, err
	}

	return GetStoreDetailsQuery{
		storeID:  storeID,
		callerID: callerID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetStoreDetailsQuery) Validate() error {
	return q.guard.Validate(ErrGetStoreDetailsQueryIsNotConstructed)
}

// StoreID returns the identifier of the requested store.
func (q GetStoreDetailsQuery) StoreID() kernel.UUID {
	return q.storeID
}

// CallerID returns the identifier of the requesting customer.
func (q GetStoreDetailsQuery) CallerID() kernel.UUID {
	return q.callerID
}

// GetStoreDetailsQueryResponse represents a storefront page in the read
// model.
type GetStoreDetailsQueryResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Products    []StoreProductResponse
}

// StoreProductResponse represents one live listing on a storefront page.
type StoreProductResponse struct {
	ID           kernel.UUID
	Name         string
	PriceAmount  int64
	Stock        int
	Rating       float64
	ReviewsCount int
}
