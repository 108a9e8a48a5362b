// Package inventory contains the stock ledger for a single product.
// One Inventory record exists per product; checkout reserves stock and
// cancellation releases it. The record enforces stock >= 0 at all times.
package inventory

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrInventoryIsNotConstructed is returned when an Inventory instance was not
	// created through NewInventory or RestoreInventory.
	ErrInventoryIsNotConstructed = errors.New(
		"Inventory must be created via NewInventory or RestoreInventory constructor")

	// ErrInsufficientStock is returned when a reservation asks for more units
	// than are on hand. The caller must reject the whole purchase.
	ErrInsufficientStock = errors.New("insufficient stock")
)

// Inventory is the per-product stock ledger.
//
// Invariants:
//   - stock never goes below zero; Reserve fails first
//   - sold counts units reserved and not released back
//   - price is the current list price in minor units
type Inventory struct {
	id        kernel.UUID
	productID kernel.UUID
	stock     int
	price     kernel.Money
	sold      int

	isConstructed bool
}

// NewInventory creates the ledger for a newly listed product.
func NewInventory(id, productID kernel.UUID, stock int, price kernel.Money) (*Inventory, error) {
	inv := &Inventory{isConstructed: true}

	if err := errors.Join(
		inv.setID(id),
		inv.setProductID(productID),
		inv.setStock(stock),
	); err != nil {
		return nil, err
	}
	inv.price = price

	return inv, nil
}

// RestoreInventory reconstructs a ledger from persistence, including the
// sold counter.
func RestoreInventory(id, productID kernel.UUID, stock int, price kernel.Money, sold int) (*Inventory, error) {
	inv, err := NewInventory(id, productID, stock, price)
	if err != nil {
		return nil, err
	}

	if sold < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("sold",
			fmt.Errorf("%d is negative", sold))
	}
	inv.sold = sold

	return inv, nil
}

// Validate ensures the instance was created through a constructor.
func (i *Inventory) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrInventoryIsNotConstructed
	}
	return nil
}

func (i *Inventory) ID() kernel.UUID        { return i.id }
func (i *Inventory) ProductID() kernel.UUID { return i.productID }
func (i *Inventory) Stock() int             { return i.stock }
func (i *Inventory) Price() kernel.Money    { return i.price }
func (i *Inventory) Sold() int              { return i.sold }

// Reserve removes quantity units from stock for a purchase.
// Fails with ErrInsufficientStock before stock would go negative, leaving
// the ledger unchanged.
func (i *Inventory) Reserve(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	if i.stock < quantity {
		return ErrInsufficientStock
	}

	i.stock -= quantity
	i.sold += quantity
	return nil
}

// Release returns quantity units to stock after a cancellation.
func (i *Inventory) Release(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}

	i.stock += quantity
	if i.sold >= quantity {
		i.sold -= quantity
	} else {
		i.sold = 0
	}
	return nil
}

// ChangePrice sets a new list price. Existing order lines keep their
// price snapshots.
func (i *Inventory) ChangePrice(price kernel.Money) {
	i.price = price
}

// Restock adds units delivered by the store.
func (i *Inventory) Restock(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.stock += quantity
	return nil
}

func (i *Inventory) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Inventory) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	i.productID = productID
	return nil
}

func (i *Inventory) setStock(stock int) error {
	if stock < 0 {
		return errs.NewValueIsInvalidErrorWithCause("stock",
			fmt.Errorf("%d is negative", stock))
	}
	i.stock = stock
	return nil
}
