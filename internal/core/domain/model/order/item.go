package order

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through NewItem or RestoreItem.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem or RestoreItem constructor")

	// ErrReceiverIsRequired is returned when a line is placed without a receiver name.
	ErrReceiverIsRequired = errors.New("receiver is required")

	// ErrDeliveryAddressIsRequired is returned when a line is placed without a delivery address.
	ErrDeliveryAddressIsRequired = errors.New("delivery address is required")
)

// Item is a single purchased line inside an order aggregate. It references
// exactly one product's inventory record and carries the quantity, a price
// snapshot taken at purchase time, and the delivery details.
//
// A line is created in Paid status; Cancel is its only mutation.
type Item struct {
	id              kernel.UUID
	inventoryID     kernel.UUID
	quantity        int
	price           kernel.Money
	status          Status
	receiver        string
	deliveryAddress string

	isConstructed bool
}

// NewItem creates a Paid line for a fresh purchase.
func NewItem(
	id, inventoryID kernel.UUID,
	quantity int,
	price kernel.Money,
	receiver, deliveryAddress string,
) (*Item, error) {
	item := &Item{
		status:        Paid,
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setInventoryID(inventoryID),
		item.setQuantity(quantity),
		item.setReceiver(receiver),
		item.setDeliveryAddress(deliveryAddress),
	); err != nil {
		return nil, err
	}
	item.price = price

	return item, nil
}

// RestoreItem reconstructs a line from persistence in its stored status.
func RestoreItem(
	id, inventoryID kernel.UUID,
	quantity int,
	price kernel.Money,
	status Status,
	receiver, deliveryAddress string,
) (*Item, error) {
	item, err := NewItem(id, inventoryID, quantity, price, receiver, deliveryAddress)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}
	item.status = status

	return item, nil
}

// Validate ensures the instance was created through a constructor.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) ID() kernel.UUID          { return i.id }
func (i *Item) InventoryID() kernel.UUID { return i.inventoryID }
func (i *Item) Quantity() int            { return i.quantity }
func (i *Item) Price() kernel.Money      { return i.price }
func (i *Item) Status() Status           { return i.status }
func (i *Item) Receiver() string         { return i.receiver }
func (i *Item) DeliveryAddress() string  { return i.deliveryAddress }

// Cancel moves the line to Cancelled. Only Paid lines are cancellable;
// the second cancellation fails with an invalid transition error.
func (i *Item) Cancel() error {
	newStatus, err := i.status.Cancel()
	if err != nil {
		return err
	}

	i.status = newStatus
	return nil
}

func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

func (i *Item) setInventoryID(inventoryID kernel.UUID) error {
	if err := inventoryID.Validate(); err != nil {
		return err
	}
	i.inventoryID = inventoryID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

func (i *Item) setReceiver(receiver string) error {
	if receiver == "" {
		return ErrReceiverIsRequired
	}
	i.receiver = receiver
	return nil
}

func (i *Item) setDeliveryAddress(deliveryAddress string) error {
	if deliveryAddress == "" {
		return ErrDeliveryAddressIsRequired
	}
	i.deliveryAddress = deliveryAddress
	return nil
}
