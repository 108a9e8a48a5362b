package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveSavedProductCommandIsNotConstructed = errors.New(
	"RemoveSavedProductCommand must be created via NewRemoveSavedProductCommand constructor",
)

// RemoveSavedProductCommand represents a request to drop a product from
// the customer's saved-for-later list. Removing an absent product is a
// no-op.
type RemoveSavedProductCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveSavedProductCommand creates a command to drop a saved product.
func NewRemoveSavedProductCommand(customerID, productID kernel.UUID) (RemoveSavedProductCommand, error) {
	removeCommand := RemoveSavedProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setCustomerID(customerID),
		removeCommand.setProductID(productID),
	); err != nil {
		return RemoveSavedProductCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveSavedProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveSavedProductCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer.
func (c RemoveSavedProductCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the saved product being dropped.
func (c RemoveSavedProductCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *RemoveSavedProductCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveSavedProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
