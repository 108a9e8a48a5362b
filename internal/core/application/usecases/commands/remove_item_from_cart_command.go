package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveItemFromCartCommandIsNotConstructed = errors.New(
	"RemoveItemFromCartCommand must be created via NewRemoveItemFromCartCommand constructor",
)

// RemoveItemFromCartCommand represents a request to drop a product from
// the customer's cart. Removing a product that is not in the cart is a
// no-op.
type RemoveItemFromCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveItemFromCartCommand creates a command to remove a cart line.
func NewRemoveItemFromCartCommand(customerID, productID kernel.UUID) (RemoveItemFromCartCommand, error) {
	removeCommand := RemoveItemFromCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setCustomerID(customerID),
		removeCommand.setProductID(productID),
	); err != nil {
		return RemoveItemFromCartCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveItemFromCartCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemFromCartCommandIsNotConstructed)
}

// CustomerID returns the identifier of the cart owner.
func (c RemoveItemFromCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the product being removed.
func (c RemoveItemFromCartCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *RemoveItemFromCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveItemFromCartCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
