package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrSignUpCommandIsNotConstructed = errors.New(
		"SignUpCommand must be created via NewSignUpCommand constructor",
	)
	ErrCustomerNameIsRequired = errors.New("customer name is required")
	ErrEmailIsRequired        = errors.New("email is required")
)

// SignUpCommand represents a request to register a new customer account.
//
// Example:
//
//	cmd, err := NewSignUpCommand(kernel.NewUUID(), "Jane Doe", "jane@example.com")
//	if err != nil {
//	    return fmt.Errorf("invalid account data: %w", err)
//	}
//
//	handler := NewSignUpCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("sign up failed: %w", err)
//	}
type SignUpCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	name       string
	email      string

	guard guard.ConstructorGuard
}

// NewSignUpCommand creates a command to register a customer.
// Validates that the identifier is valid and name and email are present.
func NewSignUpCommand(customerID kernel.UUID, name, email string) (SignUpCommand, error) {
	signUpCommand := SignUpCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		signUpCommand.setCustomerID(customerID),
		signUpCommand.setName(name),
		signUpCommand.setEmail(email),
	); err != nil {
		return SignUpCommand{}, err
	}

	return signUpCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c SignUpCommand) Validate() error {
	return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
}

// CustomerID returns the identifier assigned to the new account.
func (c SignUpCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Name returns the customer's display name.
func (c SignUpCommand) Name() string {
	return c.name
}

// Email returns the customer's email address.
func (c SignUpCommand) Email() string {
	return c.email
}

func (c *SignUpCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *SignUpCommand) setName(name string) error {
	if name == "" {
		return ErrCustomerNameIsRequired
	}

	c.name = name
	return nil
}

func (c *SignUpCommand) setEmail(email string) error {
	if email == "" {
		return ErrEmailIsRequired
	}

	c.email = email
	return nil
}
