package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCreateStoreCommandIsNotConstructed = errors.New(
		"CreateStoreCommand must be created via NewCreateStoreCommand constructor",
	)
	ErrStoreNameIsRequired = errors.New("store name is required")
)

// CreateStoreCommand represents a request to open a new storefront owned
// by the calling customer.
//
// Example:
//
//	storeID := kernel.NewUUID()
//	cmd, err := NewCreateStoreCommand(storeID, ownerID, "Acme Goods", "Everything acme")
//	if err != nil {
//	    return fmt.Errorf("invalid store data: %w", err)
//	}
//
//	handler := NewCreateStoreCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create store: %w", err)
//	}
type CreateStoreCommand struct { //nolint:recvcheck //using for validation
	storeID     kernel.UUID
	ownerID     kernel.UUID
	name        string
	description string

	guard guard.ConstructorGuard
}

// NewCreateStoreCommand creates a command to open a storefront.
// Validates that identifiers are valid and the name is not empty.
// The description may be empty.
func NewCreateStoreCommand(storeID, ownerID kernel.UUID, name, description string) (CreateStoreCommand, error) {
	storeCommand := CreateStoreCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		storeCommand.setStoreID(storeID),
		storeCommand.setOwnerID(ownerID),
		storeCommand.setName(name),
	); err != nil {
		return CreateStoreCommand{}, err
	}

	return storeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateStoreCommand) Validate() error {
	return c.guard.Validate(ErrCreateStoreCommandIsNotConstructed)
}

// StoreID returns the identifier assigned to the new store.
func (c CreateStoreCommand) StoreID() kernel.UUID {
	return c.storeID
}

// OwnerID returns the identifier of the customer opening the store.
func (c CreateStoreCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// Name returns the display name of the store.
func (c CreateStoreCommand) Name() string {
	return c.name
}

// Description returns the free-text description of the store.
func (c CreateStoreCommand) Description() string {
	return c.description
}

func (c *CreateStoreCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *CreateStoreCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}

	c.ownerID = ownerID
	return nil
}

func (c *CreateStoreCommand) setName(name string) error {
	if name == "" {
		return ErrStoreNameIsRequired
	}

	c.name = name
	return nil
}
