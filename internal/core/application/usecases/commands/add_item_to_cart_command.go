package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddItemToCartCommandIsNotConstructed = errors.New(
		"AddItemToCartCommand must be created via NewAddItemToCartCommand constructor",
	)
	ErrQuantityIsInvalid = errors.New("quantity must be greater than 0")
)

// AddItemToCartCommand represents a request to put a product into the
// customer's cart. Adding a product that is already in the cart replaces
// its quantity rather than accumulating it.
type AddItemToCartCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.UUID
	productID  kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddItemToCartCommand creates a command to add a product to the cart.
// Validates that identifiers are valid and quantity is positive.
func NewAddItemToCartCommand(customerID, productID kernel.UUID, quantity int) (AddItemToCartCommand, error) {
	addCommand := AddItemToCartCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setCustomerID(customerID),
		addCommand.setProductID(productID),
		addCommand.setQuantity(quantity),
	); err != nil {
		return AddItemToCartCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddItemToCartCommand) Validate() error {
	return c.guard.Validate(ErrAddItemToCartCommandIsNotConstructed)
}

// CustomerID returns the identifier of the cart owner.
func (c AddItemToCartCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// ProductID returns the identifier of the product being added.
func (c AddItemToCartCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the desired quantity for the cart line.
func (c AddItemToCartCommand) Quantity() int {
	return c.quantity
}

func (c *AddItemToCartCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *AddItemToCartCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddItemToCartCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}
