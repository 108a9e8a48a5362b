package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrSaveForLaterCommandIsNotConstructed = errors.New(
	"SaveForLaterCommand must be created via NewSaveForLaterCommand constructor",
)

// SaveForLaterCommand represents a request to move a product out of the
// cart onto the customer's saved-for-later list.
type SaveForLaterCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewSaveForLaterCommand creates a command to save a product for later.
func NewSaveForLaterCommand(customerID, productID kernel.UUID) (SaveForLaterCommand, error) {
	saveCommand := SaveForLaterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		saveCommand.setCustomerID(customerID),
		saveCommand.setProductID(productID),
	); err != nil {
		return SaveForLaterCommand{}, err
	}

	return saveCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SaveForLaterCommand) Validate() error {
	return c.guard.Validate(ErrSaveForLaterCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer.
func (c SaveForLaterCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the product being saved.
func (c SaveForLaterCommand) ProductID() kernel.UUID {
	return c.productID
}

func (c *SaveForLaterCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SaveForLaterCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}
