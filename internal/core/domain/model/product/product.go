// Package product contains the product aggregate. A product belongs to a
// store, references its inventory ledger, and is soft-deleted on removal:
// a deletion timestamp hides it from default reads without destroying
// purchase history.
package product

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through NewProduct or RestoreProduct.
	ErrProductIsNotConstructed = errors.New(
		"Product must be created via NewProduct or RestoreProduct constructor")

	// ErrNameIsRequired is returned when a product is listed without a name.
	ErrNameIsRequired = errors.New("name is required")

	// ErrProductIsDeleted is returned when mutating a soft-deleted product.
	ErrProductIsDeleted = errors.New("product is deleted")
)

// Product is a listed item of a store.
type Product struct {
	id          kernel.UUID
	storeID     kernel.UUID
	inventoryID kernel.UUID
	name        string
	description string
	deletedAt   *time.Time

	isConstructed bool
}

// NewProduct lists a new product under a store.
func NewProduct(id, storeID, inventoryID kernel.UUID, name, description string) (*Product, error) {
	p := &Product{isConstructed: true}

	if err := errors.Join(
		p.setID(id),
		p.setStoreID(storeID),
		p.setInventoryID(inventoryID),
		p.setName(name),
	); err != nil {
		return nil, err
	}
	p.description = description

	return p, nil
}

// RestoreProduct reconstructs a product from persistence, including its
// soft-delete marker.
func RestoreProduct(
	id, storeID, inventoryID kernel.UUID,
	name, description string,
	deletedAt *time.Time,
) (*Product, error) {
	p, err := NewProduct(id, storeID, inventoryID, name, description)
	if err != nil {
		return nil, err
	}
	p.deletedAt = deletedAt
	return p, nil
}

// Validate ensures the instance was created through a constructor.
func (p *Product) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrProductIsNotConstructed
	}
	return nil
}

func (p *Product) ID() kernel.UUID          { return p.id }
func (p *Product) StoreID() kernel.UUID     { return p.storeID }
func (p *Product) InventoryID() kernel.UUID { return p.inventoryID }
func (p *Product) Name() string             { return p.name }
func (p *Product) Description() string      { return p.description }
func (p *Product) DeletedAt() *time.Time    { return p.deletedAt }

// IsDeleted reports whether the product has been soft-deleted.
func (p *Product) IsDeleted() bool {
	return p.deletedAt != nil
}

// Update changes the listing's name and description.
func (p *Product) Update(name, description string) error {
	if p.IsDeleted() {
		return ErrProductIsDeleted
	}
	if err := p.setName(name); err != nil {
		return err
	}
	p.description = description
	return nil
}

// MarkDeleted soft-deletes the product. Deleting twice is a no-op.
func (p *Product) MarkDeleted(now time.Time) {
	if p.deletedAt == nil {
		p.deletedAt = &now
	}
}

func (p *Product) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Product) setStoreID(storeID kernel.UUID) error {
	if err := storeID.Validate(); err != nil {
		return err
	}
	p.storeID = storeID
	return nil
}

func (p *Product) setInventoryID(inventoryID kernel.UUID) error {
	if err := inventoryID.Validate(); err != nil {
		return err
	}
	p.inventoryID = inventoryID
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	p.name = name
	return nil
}
