package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrPlaceOrderCommandIsNotConstructed = errors.New(
		"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
	)
)

// PlaceOrderCommand represents a direct purchase of a single product,
// bypassing the cart. Buy-now follows the same reservation rules as
// checkout.
//
// Example:
//
//	cmd, err := NewPlaceOrderCommand(customerID, productID, 2, "Jane Doe", "12 Elm Street")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewPlaceOrderCommandHandler(uowFactory, publisher)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("purchase failed: %w", err)
//	}
type PlaceOrderCommand struct { //nolint:recvcheck //using for validation
	customerID      kernel.UUID
	productID       kernel.UUID
	quantity        int
	receiver        string
	deliveryAddress string

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand creates a command for a direct single-product purchase.
func NewPlaceOrderCommand(
	customerID, productID kernel.UUID,
	quantity int,
	receiver, deliveryAddress string,
) (PlaceOrderCommand, error) {
	placeOrderCommand := PlaceOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		placeOrderCommand.setCustomerID(customerID),
		placeOrderCommand.setProductID(productID),
		placeOrderCommand.setQuantity(quantity),
		placeOrderCommand.setReceiver(receiver),
		placeOrderCommand.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return PlaceOrderCommand{}, err
	}

	return placeOrderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrPlaceOrderCommandIsNotConstructed if validation fails.
func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

// CustomerID returns the identifier of the purchasing customer.
func (c PlaceOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the purchased product.
func (c PlaceOrderCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to purchase.
func (c PlaceOrderCommand) Quantity() int {
	return c.quantity
}

// Receiver returns the name of the person the items are shipped to.
func (c PlaceOrderCommand) Receiver() string {
	return c.receiver
}

// DeliveryAddress returns the address the items are shipped to.
func (c PlaceOrderCommand) DeliveryAddress() string {
	return c.deliveryAddress
}

func (c *PlaceOrderCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *PlaceOrderCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *PlaceOrderCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *PlaceOrderCommand) setReceiver(receiver string) error {
	if receiver == "" {
		return ErrReceiverIsRequired
	}

	c.receiver = receiver
	return nil
}

func (c *PlaceOrderCommand) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}

	c.deliveryAddress = deliveryAddress
	return nil
}
