package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrCancelOrderItemCommandIsNotConstructed = errors.New(
	"CancelOrderItemCommand must be created via NewCancelOrderItemCommand constructor",
)

// CancelOrderItemCommand represents a request to cancel a single purchased
// item from the customer's order. Cancellation returns the reserved units
// to inventory.
type CancelOrderItemCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	itemID     kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderItemCommand creates a command to cancel an order item.
// Validates that both identifiers are valid.
func NewCancelOrderItemCommand(customerID, itemID kernel.UUID) (CancelOrderItemCommand, error) {
	cancelCommand := CancelOrderItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cancelCommand.setCustomerID(customerID),
		cancelCommand.setItemID(itemID),
	); err != nil {
		return CancelOrderItemCommand{}, err
	}

	return cancelCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderItemCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderItemCommandIsNotConstructed)
}

// CustomerID returns the identifier of the customer who owns the order.
func (c CancelOrderItemCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ItemID returns the identifier of the item being cancelled.
func (c CancelOrderItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *CancelOrderItemCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CancelOrderItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
