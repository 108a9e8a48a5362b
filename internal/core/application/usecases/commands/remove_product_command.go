package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveProductCommandIsNotConstructed = errors.New(
	"RemoveProductCommand must be created via NewRemoveProductCommand constructor",
)

// RemoveProductCommand represents a request to delist a product.
// The listing is soft deleted so purchased items keep referring to it.
type RemoveProductCommand struct { //nolint:recvcheck //using for validation
	productID kernel.UUID
	callerID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveProductCommand creates a command to delist a product.
func NewRemoveProductCommand(productID, callerID kernel.UUID) (RemoveProductCommand, error) {
	removeCommand := RemoveProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setProductID(productID),
		removeCommand.setCallerID(callerID),
	); err != nil {
		return RemoveProductCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being delisted.
func (c RemoveProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// CallerID returns the identifier of the customer delisting the product.
func (c RemoveProductCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *RemoveProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *RemoveProductCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
