package commands

import (
	"context"
	"errors"
	"log/slog"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/order"
	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// PlaceOrderCommandHandler handles direct single-product purchases.
// The product is priced at the current inventory price and stock is
// reserved with the same oversell guard as checkout; the cart is left
// alone.
type PlaceOrderCommandHandler struct {
	uowFactory PurchaseUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewPlaceOrderCommandHandler creates a handler for direct purchases.
// Requires a PurchaseUoWFactory for transactional persistence and an
// OrderEventPublisher for post-commit notifications.
func NewPlaceOrderCommandHandler(
	uowFactory PurchaseUoWFactory,
	publisher ports.OrderEventPublisher,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the direct purchase command.
// Reserves stock, snapshots the current price into a new paid item on the
// customer's order aggregate and publishes an order placed event after the
// transaction commits; publish failures are logged, never returned.
func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) error {
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

	listing, err := uow.ProductRepository().Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}
	if listing.IsDeleted() {
		return errs.NewObjectNotFoundError("productId", cmd.ProductID().String())
	}

	inventoryRepo := uow.InventoryRepository()
	stock, err := inventoryRepo.GetByProduct(ctx, listing.ID())
	if err != nil {
		return err
	}

	if err = inventoryRepo.Reserve(ctx, stock.ID(), cmd.Quantity()); err != nil {
		return err
	}

	ordersRepo := uow.OrderRepository()
	aggregate, created, err := h.customerOrder(ctx, ordersRepo, cmd.CustomerID())
	if err != nil {
		return err
	}

	item, err := order.NewItem(
		kernel.NewUUID(), stock.ID(),
		cmd.Quantity(), stock.Price(),
		cmd.Receiver(), cmd.DeliveryAddress(),
	)
	if err != nil {
		return err
	}

	if err = aggregate.AddItem(item); err != nil {
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

	if err = h.publisher.PublishOrderPlaced(ctx, aggregate, []*order.Item{item}); err != nil {
		slog.WarnContext(ctx, "failed to publish order placed event",
			"orderId", aggregate.ID().String(), "error", err)
	}

	return nil
}

func (h PlaceOrderCommandHandler) customerOrder(
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
