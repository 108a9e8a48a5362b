package commands

import (
	"context"
	"log/slog"

	"marketplace/internal/core/ports"
	"marketplace/internal/pkg/errs"
)

// CancelOrderItemCommandHandler handles the cancellation of purchased items.
// Cancelling an item flips its status and returns its units to inventory in
// the same transaction, so stock and order state never disagree.
//
// Example:
//
//	handler := NewCancelOrderItemCommandHandler(uowFactory, publisher)
//	cmd, _ := NewCancelOrderItemCommand(customerID, itemID)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("cancellation failed: %w", err)
//	}
type CancelOrderItemCommandHandler struct {
	uowFactory OrderUoWFactory
	publisher  ports.OrderEventPublisher
}

// NewCancelOrderItemCommandHandler creates a handler for item cancellation.
// Requires an OrderUoWFactory for transactional persistence and an
// OrderEventPublisher for post-commit notifications.
func NewCancelOrderItemCommandHandler(
	uowFactory OrderUoWFactory,
	publisher ports.OrderEventPublisher,
) CancelOrderItemCommandHandler {
	return CancelOrderItemCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle processes the cancellation command.
// Loads the aggregate owning the item, rejects callers who do not own it,
// cancels the item (cancelling an already cancelled item fails), releases
// the reserved stock, and persists the order. Publishes a cancellation
// event after commit; publish failures are logged, never returned.
func (h CancelOrderItemCommandHandler) Handle(ctx context.Context, cmd CancelOrderItemCommand) error {
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

	ordersRepo := uow.OrderRepository()
	aggregate, err := ordersRepo.GetByItem(ctx, cmd.ItemID())
	if err != nil {
		return err
	}
	if !aggregate.CustomerID().IsEqual(cmd.CustomerID()) {
		return errs.NewUnauthorizedError("orderItemId")
	}

	item, err := aggregate.CancelItem(cmd.ItemID())
	if err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	if err = inventoryRepo.Release(ctx, item.InventoryID(), item.Quantity()); err != nil {
		return err
	}

	if err = ordersRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if err = h.publisher.PublishOrderItemCancelled(ctx, aggregate, item); err != nil {
		slog.WarnContext(ctx, "failed to publish order item cancelled event",
			"orderItemId", item.ID().String(), "error", err)
	}

	return nil
}
