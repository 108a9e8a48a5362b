package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveFromWishlistCommandIsNotConstructed = errors.New(
	"RemoveFromWishlistCommand must be created via NewRemoveFromWishlistCommand constructor",
)

// RemoveFromWishlistCommand represents a request to take a product off the
// customer's wishlist. Removing an absent product is a no-op.
type RemoveFromWishlistCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveFromWishlistCommand creates a command to unwish a product.
func NewRemoveFromWishlistCommand(customerID, productID kernel.UUID) (RemoveFromWishlistCommand, error) {
	removeCommand := RemoveFromWishlistCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setCustomerID(customerID),
		removeCommand.setProductID(productID),
	); err != nil {
		return RemoveFromWishlistCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveFromWishlistCommand) Validate() error {
	return c.guard.Validate(ErrRemoveFromWishlistCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer.
func (c RemoveFromWishlistCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the product being unwished.
func (c RemoveFromWishlistCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *RemoveFromWishlistCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *RemoveFromWishlistCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
