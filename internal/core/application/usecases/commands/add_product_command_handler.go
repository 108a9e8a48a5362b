package commands

import (
	"context"

	"marketplace/internal/core/domain/model/inventory"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/product"
	"marketplace/internal/pkg/errs"
)

// AddProductCommandHandler handles listing new products.
// Creates the product and its inventory record together; a listing without
// stock tracking cannot exist.
type AddProductCommandHandler struct {
	uowFactory CatalogUoWFactory
}

// NewAddProductCommandHandler creates a handler for product listing.
// Requires a CatalogUoWFactory for transactional persistence.
func NewAddProductCommandHandler(uowFactory CatalogUoWFactory) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the product listing command.
// Verifies the store exists, is open, and belongs to the caller before
// creating the inventory record and the product.
func (h AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
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

	owner, err := uow.StoreRepository().Get(ctx, cmd.StoreID())
	if err != nil {
		return err
	}
	if owner.IsDeleted() {
		return errs.NewObjectNotFoundError("storeId", cmd.StoreID().String())
	}
	if err = owner.EnsureOwnedBy(cmd.CallerID()); err != nil {
		return err
	}

	price, err := kernel.NewMoney(cmd.PriceAmount())
	if err != nil {
		return err
	}

	stock, err := inventory.NewInventory(cmd.InventoryID(), cmd.ProductID(), cmd.Stock(), price)
	if err != nil {
		return err
	}

	listing, err := product.NewProduct(
		cmd.ProductID(), cmd.StoreID(), cmd.InventoryID(),
		cmd.Name(), cmd.Description(),
	)
	if err != nil {
		return err
	}

	if err = uow.InventoryRepository().Add(ctx, stock); err != nil {
		return err
	}

	if err = uow.ProductRepository().Add(ctx, listing); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
