package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var (
	ErrAddProductCommandIsNotConstructed = errors.New(
		"AddProductCommand must be created via NewAddProductCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrPriceIsInvalid        = errors.New("price must not be negative")
	ErrStockIsInvalid        = errors.New("stock must not be negative")
)

// AddProductCommand represents a request to list a new product in a store,
// together with its initial inventory record.
//
// Example:
//
//	cmd, err := NewAddProductCommand(
//	    kernel.NewUUID(), kernel.NewUUID(), storeID, callerID,
//	    "Walnut desk", "Solid [walnut](https://example.com/wood) worktop", 45900, 12,
//	)
//	if err != nil {
//	    return fmt.Errorf("invalid product data: %w", err)
//	}
type AddProductCommand struct { //nolint:recvcheck //using for validation
	productID   kernel.UUID
	inventoryID kernel.UUID
	storeID     kernel.UUID
	callerID    kernel.UUID
	name        string
	description string
	priceAmount int64
	stock       int

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to list a product.
// Validates identifiers, requires a name, and rejects negative price or
// stock. Zero stock is allowed: the listing simply starts sold out.
func NewAddProductCommand(
	productID, inventoryID, storeID, callerID kernel.UUID,
	name, description string,
	priceAmount int64,
	stock int,
) (AddProductCommand, error) {
	addCommand := AddProductCommand{
		description: description,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addCommand.setProductID(productID),
		addCommand.setInventoryID(inventoryID),
		addCommand.setStoreID(storeID),
		addCommand.setCallerID(callerID),
		addCommand.setName(name),
		addCommand.setPriceAmount(priceAmount),
		addCommand.setStock(stock),
	); err != nil {
		return AddProductCommand{}, err
	}

	return addCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// ProductID returns the identifier assigned to the new product.
func (c AddProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// InventoryID returns the identifier assigned to the product's inventory record.
func (c AddProductCommand) InventoryID() kernel.UUID {
	return c.inventoryID
}

// StoreID returns the identifier of the store listing the product.
func (c AddProductCommand) StoreID() kernel.UUID {
	return c.storeID
}

// CallerID returns the identifier of the customer listing the product.
func (c AddProductCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Name returns the display name of the product.
func (c AddProductCommand) Name() string {
	return c.name
}

// Description returns the product description, possibly containing
// [text](url) link markup.
func (c AddProductCommand) Description() string {
	return c.description
}

// PriceAmount returns the unit price in minor currency units.
func (c AddProductCommand) PriceAmount() int64 {
	return c.priceAmount
}

// Stock returns the initial number of units available.
func (c AddProductCommand) Stock() int {
	return c.stock
}

func (c *AddProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *AddProductCommand) setInventoryID(inventoryID kernel.UUID) error {
	if err := inventoryID.Validate(); err != nil {
		return err
	}

	c.inventoryID = inventoryID
	return nil
}

func (c *AddProductCommand) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}

	c.storeID = storeID
	return nil
}

func (c *AddProductCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *AddProductCommand) setName(name string) error {
	if name == "" {
		return ErrProductNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddProductCommand) setPriceAmount(priceAmount int64) error {
	if priceAmount < 0 {
		return ErrPriceIsInvalid
	}

	c.priceAmount = priceAmount
	return nil
}

func (c *AddProductCommand) setStock(stock int) error {
	if stock < 0 {
		return ErrStockIsInvalid
	}

	c.stock = stock
	return nil
}
