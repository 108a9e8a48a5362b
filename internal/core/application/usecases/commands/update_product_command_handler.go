package commands

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
)

// UpdateProductCommandHandler handles product listing updates.
// Ownership is checked through the listing's store: only the store owner
// may change the listing, its price, or its stock.
type UpdateProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewUpdateProductCommandHandler creates a handler for product updates.
func NewUpdateProductCommandHandler(uowFactory CatalogUoWFactory) UpdateProductCommandHandler {
	return UpdateProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product update command.
// Price changes only affect future purchases; items already bought keep
// the price snapshotted at checkout.
func (h UpdateProductCommandHandler) Handle(ctx context.Context, cmd UpdateProductCommand) error {
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

	if err = listing.Update(cmd.Name(), cmd.Description()); err != nil {
		return err
	}

	price, err := kernel.NewMoney(cmd.PriceAmount())
	if err != nil {
		return err
	}

	inventoryRepo := uow.InventoryRepository()
	stock, err := inventoryRepo.GetByProduct(ctx, listing.ID())
	if err != nil {
		return err
	}

	stock.ChangePrice(price)
	if cmd.Restock() > 0 {
		if err = stock.Restock(cmd.Restock()); err != nil {
			return err
		}
	}

	if err = productRepo.Update(ctx, listing); err != nil {
		return err
	}

	if err = inventoryRepo.Update(ctx, stock); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
