package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrAddToWishlistCommandIsNotConstructed = errors.New(
	"AddToWishlistCommand must be created via NewAddToWishlistCommand constructor",
)

// AddToWishlistCommand represents a request to put a product on the
// customer's wishlist. Adding a product that is already wished for is a
// no-op.
type AddToWishlistCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewAddToWishlistCommand creates a command to wish for a product.
func NewAddToWishlistCommand(customerID, productID kernel.UUID) (AddToWishlistCommand, error) {
	addCommand := AddToWishlistCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setCustomerID(customerID),
		addCommand.setProductID(productID),
	); err != nil {
		return AddToWishlistCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddToWishlistCommand) Validate() error {
	return c.guard.Validate(ErrAddToWishlistCommandIsNotConstructed)
}

// CustomerID returns the identifier of the wishing customer.
func (c AddToWishlistCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the wished-for product.
func (c AddToWishlistCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *AddToWishlistCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddToWishlistCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
