package commands

import (
	"context"
	"time"
)

// RemoveStoreCommandHandler handles closing storefronts.
// The store and all of its products are soft deleted in one transaction;
// already purchased items keep referring to them for history.
type RemoveStoreCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewRemoveStoreCommandHandler creates a handler for store removal.
// Requires a CatalogUoWFactory because the deletion cascades to products.
func NewRemoveStoreCommandHandler(uowFactory CatalogUoWFactory) RemoveStoreCommandHandler {
	return RemoveStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store removal command.
func (h RemoveStoreCommandHandler) Handle(ctx context.Context, cmd RemoveStoreCommand) error {
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

	storeRepo := uow.StoreRepository()
	aggregate, err := storeRepo.Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	if err = aggregate.EnsureOwnedBy(cmd.CallerID()); err != nil {
		return err
	}

	now := time.Now()
	aggregate.MarkDeleted(now)

	if err = storeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	productRepo := uow.ProductRepository()
	listings, err := productRepo.GetAllByStore(ctx, cmd.StoreID())
	if err != nil {
		return err
	}

	for _, listing := range listings {
		listing.MarkDeleted(now)
		if err = productRepo.Update(ctx, listing); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
