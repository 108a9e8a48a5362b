package order

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root holding every purchased line of one customer.
// The model keeps at most one aggregate per customer: repeated purchases
// append lines to the same aggregate rather than creating new orders.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and customer identifier
//   - Line identifiers are unique within the aggregate
//   - Line status transitions are delegated to the Item state machine
type Order struct {
	id         kernel.UUID
	customerID kernel.UUID
	items      []*Item

	isConstructed bool
}

// NewOrder creates an empty aggregate for a customer's first purchase.
func NewOrder(id, customerID kernel.UUID) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setID(id),
		o.setCustomerID(customerID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs the aggregate with its lines from persistence.
func RestoreOrder(id, customerID kernel.UUID, items []*Item) (*Order, error) {
	o, err := NewOrder(id, customerID)
	if err != nil {
		return nil, err
	}

	for _, item := range items {
		if err = item.Validate(); err != nil {
			return nil, err
		}
	}
	o.items = items

	return o, nil
}

// Validate ensures the aggregate was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID         { return o.id }
func (o *Order) CustomerID() kernel.UUID { return o.customerID }

// Items returns the purchased lines. The slice must not be mutated by callers.
func (o *Order) Items() []*Item {
	return o.items
}

// Item returns the line with the given identifier.
func (o *Order) Item(itemID kernel.UUID) (*Item, error) {
	for _, item := range o.items {
		if item.ID().IsEqual(itemID) {
			return item, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("orderItemId", itemID.String())
}

// AddItem appends a purchased line to the aggregate.
func (o *Order) AddItem(item *Item) error {
	if err := item.Validate(); err != nil {
		return err
	}
	for _, existing := range o.items {
		if existing.ID().IsEqual(item.ID()) {
			return errs.NewConflictError("orderItemId")
		}
	}

	o.items = append(o.items, item)
	return nil
}

// CancelItem cancels the line with the given identifier.
// Returns the cancelled line so the caller can release its stock.
func (o *Order) CancelItem(itemID kernel.UUID) (*Item, error) {
	item, err := o.Item(itemID)
	if err != nil {
		return nil, err
	}

	if err = item.Cancel(); err != nil {
		return nil, err
	}

	return item, nil
}

// ContainsInventory reports whether any line references the given inventory.
// Used to mark reviews as verified purchases.
func (o *Order) ContainsInventory(inventoryID kernel.UUID) bool {
	for _, item := range o.items {
		if item.InventoryID().IsEqual(inventoryID) {
			return true
		}
	}
	return false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	o.customerID = customerID
	return nil
}
