package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CheckoutCommandHandler converts the customer's cart into paid order items.
// Every cart line is priced at the current inventory price, stock is reserved
// with an oversell guard, and the cart is emptied. The whole operation is a
// single transaction: a failure on any line leaves cart and stock untouched.
//
// Example:
//
//	handler := NewCheckoutCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCheckoutCommand(customerID, "Jane Doe", "12 Elm Street")
//
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, cart.ErrCartIsEmpty):
//	    log.Println("Nothing to buy")
//	case errors.Is(err, inventory.ErrInsufficientStock):
//	    log.Println("Someone got there first")
//	case err != nil:
//	    log.Printf("Checkout failed: %v", err)
//	}
type CheckoutCommandHandler struct {
	uowFactory CheckoutUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCheckoutCommandHandler creates a handler for checkout operations.
// Requires a CheckoutUoWFactory for transactional persistence and an
// OrderEventPublisher for post-commit notifications.
func NewCheckoutCommandHandler(
	uowFactory CheckoutUoWFactory,
	publisher ports.OrderEventPublisher,
) CheckoutCommandHandler {
	return CheckoutCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the checkout command.
// Loads the cart, reserves stock for every line, snapshots current prices
// into new order items on the customer's order aggregate, and empties the
// cart. Publishes an order placed event after the transaction commits;
// publish failures are logged, never returned.
func (h CheckoutCommandHandler) Handle(ctx context.Context, cmd CheckoutCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return cart.ErrCartIsEmpty
	}
	if err != nil {
		return err
	}
	if customerCart.IsEmpty() {
		return cart.ErrCartIsEmpty
	}

	ordersRepo := uow.OrderRepository()
	aggregate, created, err := h.customerOrder(ctx, ordersRepo, cmd.CustomerID())
	if err != nil {
		return err
	}

	items, err := h.purchaseLines(ctx, uow, cmd, customerCart.Lines(), aggregate)
	if err != nil {
		return err
	}

	customerCart.Clear(time.Now())
	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	if created {
		err = ordersRepo.Add(ctx, aggregate)
	} else {
		err = ordersRepo.Update(ctx, aggregate)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderPlaced(ctx, aggregate, items); err != nil {
		slog.WarnContext(ctx, "failed to publish order placed event",
			"orderId", aggregate.ID().String(), "error", err)
	}

	return nil
}

func (h CheckoutCommandHandler) customerOrder(
	ctx context.Context,
	ordersRepo ports.OrderRepository,
	customerID kernel.UUID,
) (*order.Order, bool, error) {
	aggregate, err := ordersRepo.GetByCustomer(ctx, customerID)
	if errors.Is(err, errs.ErrObjectNotFound) {
		aggregate, err = order.NewOrder(kernel.NewUUID(), customerID)
		return aggregate, true, err
	}
	if err != nil {
		return nil, false, err
	}

	return aggregate, false, nil
}

func (h CheckoutCommandHandler) purchaseLines(
	ctx context.Context,
	uow CheckoutUoW,
	cmd CheckoutCommand,
	lines []cart.Line,
	aggregate *order.Order,
) ([]*order.Item, error) {
	productRepo := uow.ProductRepository()
	inventoryRepo := uow.InventoryRepository()

	items := make([]*order.Item, 0, len(lines))
	for _, line := range lines {
		listing, err := productRepo.Get(ctx, line.ProductID)
		if err != nil {
			return nil, err
		}
		if listing.IsDeleted() {
			return nil, errs.NewObjectNotFoundError("productId", line.ProductID.String())
		}

		stock, err := inventoryRepo.GetByProduct(ctx, listing.ID())
		if err != nil {
			return nil, err
		}

		if err = inventoryRepo.Reserve(ctx, stock.ID(), line.Quantity); err != nil {
			return nil, err
		}

		item, err := order.NewItem(
			kernel.NewUUID(), stock.ID(),
			line.Quantity, stock.Price(),
			cmd.Receiver(), cmd.DeliveryAddress(),
		)
		if err != nil {
			return nil, err
		}

		if err = aggregate.AddItem(item); err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	return items, nil
}
