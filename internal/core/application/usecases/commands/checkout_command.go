package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrCheckoutCommandIsNotConstructed = errors.New(
		"CheckoutCommand must be created via NewCheckoutCommand constructor",
	)
	ErrReceiverIsRequired        = errors.New("receiver is required")
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// CheckoutCommand represents a request to purchase the entire contents of
// the customer's cart. Encapsulates the delivery details every purchased
// item is shipped with.
//
// Example:
//
//	cmd, err := NewCheckoutCommand(customerID, "Jane Doe", "12 Elm Street")
//	if err != nil {
//	    return fmt.Errorf("invalid checkout data: %w", err)
//	}
//
//	handler := NewCheckoutCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("checkout failed: %w", err)
//	}
type CheckoutCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	receiver        string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewCheckoutCommand creates a command to purchase the customer's cart.
// Validates that the customer ID is valid and delivery details are present.
func NewCheckoutCommand(customerID kernel.UUID, receiver, deliveryAddress string) (CheckoutCommand, error) {
	checkoutCommand := CheckoutCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		checkoutCommand.setCustomerID(customerID),
		checkoutCommand.setReceiver(receiver),
		checkoutCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return CheckoutCommand{}, err
	}

	return checkoutCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCheckoutCommandIsNotConstructed if validation fails.
func (c CheckoutCommand) Validate() error {
	return c.guard.Validate(ErrCheckoutCommandIsNotConstructed)
}

// CustomerID returns the identifier of the purchasing customer.
func (c CheckoutCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Receiver returns the name of the person the items are shipped to.
func (c CheckoutCommand) Receiver() string {
	return c.receiver
}

// DeliveryAddress returns the address the items are shipped to.
func (c CheckoutCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *CheckoutCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CheckoutCommand) setReceiver(receiver string) error {
	if receiver == "" {
		return ErrReceiverIsRequired
	}

	c.receiver = receiver
	return nil
}

func (c *CheckoutCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
