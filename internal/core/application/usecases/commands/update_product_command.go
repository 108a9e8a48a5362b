package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrUpdateProductCommandIsNotConstructed = errors.New(
	"UpdateProductCommand must be created via NewUpdateProductCommand constructor",
)

// UpdateProductCommand represents a request to change a product listing:
// its display details, its price, and optionally a restock.
type UpdateProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	callerID    kernel.UUID
	name        string
	description string
	priceAmount int64
	restock     int

	guard guard.ConstructorGuard
}

// NewUpdateProductCommand creates a command to update a product listing.
// Restock is the number of units to add on top of the current stock;
// zero means no restock.
func NewUpdateProductCommand(
	productID, callerID kernel.UUID,
	name, description string,
	priceAmount int64,
	restock int,
) (UpdateProductCommand, error) {
	updateCommand := UpdateProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		updateCommand.setProductID(productID),
		updateCommand.setCallerID(callerID),
		updateCommand.setName(name),
		updateCommand.setPriceAmount(priceAmount),
		updateCommand.setRestock(restock),
	); err != nil {
		return UpdateProductCommand{}, err
	}

	return updateCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c UpdateProductCommand) Validate() error {
	return c.guard.Validate(ErrUpdateProductCommandIsNotConstructed)
}

// ProductID returns the identifier of the product being updated.
func (c UpdateProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// CallerID returns the identifier of the customer making the change.
func (c UpdateProductCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Name returns the new display name of the product.
func (c UpdateProductCommand) Name() string {
	return c.name
}

// Description returns the new description of the product.
func (c UpdateProductCommand) Description() string {
	return c.description
}

// PriceAmount returns the new unit price in minor currency units.
func (c UpdateProductCommand) PriceAmount() int64 {
	return c.priceAmount
}

// Restock returns the number of units to add to stock.
func (c UpdateProductCommand) Restock() int {
	return c.restock
}

func (c *UpdateProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *UpdateProductCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *UpdateProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *UpdateProductCommand) setPriceAmount(priceAmount int64) error {
	if priceAmount < 0 {
		return ErrPriceIsInvalid
	}

	c.priceAmount = priceAmount
	return nil
}

func (c *UpdateProductCommand) setRestock(restock int) error {
	if restock < 0 {
		return ErrStockIsInvalid
	}

	c.restock = restock
	return nil
}
