package commands

import (
	"context"
	"time"
)

// RemoveProductCommandHandler handles delisting products.
type RemoveProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveProductCommandHandler creates a handler for product removal.
func NewRemoveProductCommandHandler(uowFactory CatalogUoWFactory) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product removal command.
// Removing an already deleted product succeeds; the operation is idempotent.
func (h RemoveProductCommandHandler) Handle(ctx context.Context, cmd RemoveProductCommand) error {
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

	productRepo := uow.ProductRepository()
	listing, err := productRepo.Get(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	owner, err := uow.StoreRepository().Get(ctx, listing.StoreID())
	if err != nil {
		return err
	}
	if err = owner.EnsureOwnedBy(cmd.CallerID()); err != nil {
		return err
	}

	listing.MarkDeleted(time.Now())

	if err = productRepo.Update(ctx, listing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
