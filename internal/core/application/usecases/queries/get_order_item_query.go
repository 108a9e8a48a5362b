package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderItemQueryIsNotConstructed = errors.New(
	"GetOrderItemQuery must be created via NewGetOrderItemQuery constructor",
)

// GetOrderItemQuery retrieves a single purchased line. The line is only
// visible to the customer who bought it.
type GetOrderItemQuery struct {
	customerID kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderItemQuery creates a query for one order line.
func NewGetOrderItemQuery(customerID, itemID kernel.UUID) (GetOrderItemQuery, error) {
	if err := errors.Join(customerID.Validate(), itemID.Validate()); err != nil {
		return GetOrderItemQuery{}, err
	}

	return GetOrderItemQuery{
		customerID: customerID,
		itemID:     itemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderItemQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderItemQueryIsNotConstructed)
}

// CustomerID returns the identifier of the caller.
func (q GetOrderItemQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// ItemID returns the identifier of the requested line.
func (q GetOrderItemQuery) ItemID() kernel.UUID {
	return q.itemID
}
