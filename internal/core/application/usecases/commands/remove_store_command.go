package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveStoreCommandIsNotConstructed = errors.New(
	"RemoveStoreCommand must be created via NewRemoveStoreCommand constructor",
)

// RemoveStoreCommand represents a request to close a storefront.
// Closing a store also delists every product it sells.
type RemoveStoreCommand struct { //nolint:recvcheck //using for validation
	storeID  kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveStoreCommand creates a command to close a storefront.
func NewRemoveStoreCommand(storeID, callerID kernel.UUID) (RemoveStoreCommand, error) {
	removeCommand := RemoveStoreCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setStoreID(storeID),
		removeCommand.setCallerID(callerID),
	); err != nil {
		return RemoveStoreCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveStoreCommand) Validate() error {
	return c.guard.Validate(ErrRemoveStoreCommandIsNotConstructed)
}

// StoreID returns the identifier of the store being closed.
func (c RemoveStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// CallerID returns the identifier of the customer closing the store.
func (c RemoveStoreCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *RemoveStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *RemoveStoreCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
