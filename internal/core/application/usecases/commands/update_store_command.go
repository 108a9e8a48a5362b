package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateStoreCommandIsNotConstructed = errors.New(
	"UpdateStoreCommand must be created via NewUpdateStoreCommand constructor",
)

// UpdateStoreCommand represents a request to change a storefront's display
// details. Only the store owner may update it.
type UpdateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID     kernel.UUID
	callerID    kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewUpdateStoreCommand creates a command to update a storefront.
func NewUpdateStoreCommand(storeID, callerID kernel.UUID, name, description string) (UpdateStoreCommand, error) {
	updateCommand := UpdateStoreCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setStoreID(storeID),
		updateCommand.setCallerID(callerID),
		updateCommand.setName(name),
	); err != nil {
		return UpdateStoreCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateStoreCommand) Validate() error {
	return c.guard.Validate(ErrUpdateStoreCommandIsNotConstructed)
}

// StoreID returns the identifier of the store being updated.
func (c UpdateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// CallerID returns the identifier of the customer making the change.
func (c UpdateStoreCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Name returns the new display name of the store.
func (c UpdateStoreCommand) Name() string {
	return c.name
}

// Description returns the new description of the store.
func (c UpdateStoreCommand) Description() string {
	return c.description
}

func (c *UpdateStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *UpdateStoreCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *UpdateStoreCommand) setName(name string) error {
	if name == "" {
		return ErrStoreNameIsRequired
	}

	c.name = name
	return nil
}
