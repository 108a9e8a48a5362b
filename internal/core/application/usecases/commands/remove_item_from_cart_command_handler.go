package commands

import (
	"context"
	"time"
)

// RemoveItemFromCartCommandHandler handles dropping products from carts.
type RemoveItemFromCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveItemFromCartCommandHandler creates a handler for cart removals.
func NewRemoveItemFromCartCommandHandler(uowFactory CartUoWFactory) RemoveItemFromCartCommandHandler {
	return RemoveItemFromCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-from-cart command.
// A missing cart is an error; a missing line in an existing cart is not.
func (h RemoveItemFromCartCommandHandler) Handle(ctx context.Context, cmd RemoveItemFromCartCommand) error {
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
	if err != nil {
		return err
	}

	if err = customerCart.RemoveItem(cmd.ProductID(), time.Now()); err != nil {
		return err
	}

	if err = cartRepo.Update(ctx, customerCart); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
