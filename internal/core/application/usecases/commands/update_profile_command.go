package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateProfileCommandIsNotConstructed = errors.New(
	"UpdateProfileCommand must be created via NewUpdateProfileCommand constructor",
)

// UpdateProfileCommand represents a request to change a customer's display
// name and default delivery address. Email is immutable.
type UpdateProfileCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	address    string

	guard guard.ConstructorGuard
}

// NewUpdateProfileCommand creates a command to update a customer profile.
// The address may be empty.
func NewUpdateProfileCommand(customerID kernel.UUID, name, address string) (UpdateProfileCommand, error) {
	updateCommand := UpdateProfileCommand{
		address: address,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setCustomerID(customerID),
		updateCommand.setName(name),
	); err != nil {
		return UpdateProfileCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProfileCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProfileCommandIsNotConstructed)
}

// CustomerID returns the identifier of the account being updated.
func (c UpdateProfileCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the new display name.
func (c UpdateProfileCommand) Name() string {
	return c.name
}

// Address returns the new default delivery address.
func (c UpdateProfileCommand) Address() string {
	return c.address
}

func (c *UpdateProfileCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *UpdateProfileCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}
