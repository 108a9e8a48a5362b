package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the customer's order with all purchased items.
type GetOrderQuery struct {
	customerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for the customer's order history.
func NewGetOrderQuery(customerID kernel.UUID) (GetOrderQuery, error) {
	if err := customerID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		customerID: customerID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// CustomerID returns the identifier of the order owner.
func (q GetOrderQuery) CustomerID() kernel.UUID {
	return q.customerID
}

// GetOrderQueryResponse represents the customer's order in the read model.
type GetOrderQueryResponse struct {
	OrderID kernel.UUID
	Items   []OrderItemResponse
}

// OrderItemResponse represents one purchased item. Price is the unit
// price snapshotted at checkout, not the product's current price.
type OrderItemResponse struct {
	ID              kernel.UUID
	ProductID       kernel.UUID
	ProductName     string
	Quantity        int
	PriceAmount     int64
	Status          string
	Receiver        string
	DeliveryAddress string
}
