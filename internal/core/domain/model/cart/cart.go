// Package cart contains the cart aggregate: one per customer, holding
// product references with quantities. It is distinct from the
// saved-for-later and wishlist sets kept on the customer aggregate.
package cart

import (
	"errors"
	"fmt"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrCartIsNotConstructed is returned when a Cart instance was not
	// created through NewCart or RestoreCart.
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

	// ErrCartIsEmpty is returned when checking out an empty cart.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// Line is one product reference with its requested quantity.
type Line struct {
	ProductID kernel.UUID
	Quantity  int
}

// Cart holds a customer's pending purchase intent.
type Cart struct {
	id         kernel.UUID
	customerID kernel.UUID
	lines      []Line
	touchedAt  time.Time

	isConstructed bool
}

// NewCart creates an empty cart for a customer.
func NewCart(id, customerID kernel.UUID, now time.Time) (*Cart, error) {
	c := &Cart{isConstructed: true, touchedAt: now}

	if err := errors.Join(
		c.setID(id),
		c.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCart reconstructs a cart with its lines from persistence.
func RestoreCart(id, customerID kernel.UUID, lines []Line, touchedAt time.Time) (*Cart, error) {
	c, err := NewCart(id, customerID, touchedAt)
	if err != nil {
		return nil, err
	}

	for _, line := range lines {
		if lineErr := errors.Join(line.ProductID.Validate(), validateQuantity(line.Quantity)); lineErr != nil {
			return nil, lineErr
		}
	}
	c.lines = lines

	return c, nil
}

// Validate ensures the instance was created through a constructor.
func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) ID() kernel.UUID         { return c.id }
func (c *Cart) CustomerID() kernel.UUID { return c.customerID }
func (c *Cart) TouchedAt() time.Time    { return c.touchedAt }

// Lines returns the cart contents. The slice must not be mutated by callers.
func (c *Cart) Lines() []Line {
	return c.lines
}

// IsEmpty reports whether the cart holds no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddItem puts a product into the cart. An existing line for the same
// product is overwritten with the new quantity.
func (c *Cart) AddItem(productID kernel.UUID, quantity int, now time.Time) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	if err := validateQuantity(quantity); err != nil {
		return err
	}

	for idx, line := range c.lines {
		if line.ProductID.IsEqual(productID) {
			c.lines[idx].Quantity = quantity
			c.touchedAt = now
			return nil
		}
	}

	c.lines = append(c.lines, Line{ProductID: productID, Quantity: quantity})
	c.touchedAt = now
	return nil
}

// RemoveItem drops a product's line from the cart. Removing a product
// that is not in the cart is a no-op, matching upstream behavior.
func (c *Cart) RemoveItem(productID kernel.UUID, now time.Time) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	for idx, line := range c.lines {
		if line.ProductID.IsEqual(productID) {
			c.lines = append(c.lines[:idx], c.lines[idx+1:]...)
			c.touchedAt = now
			return nil
		}
	}
	return nil
}

// Clear empties the cart.
func (c *Cart) Clear(now time.Time) {
	c.lines = nil
	c.touchedAt = now
}

func validateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	return nil
}

func (c *Cart) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Cart) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	c.customerID = customerID
	return nil
}
