package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

// AddItemToCartCommandHandler handles adding products to shopping carts.
// Creates the cart lazily on first use; a customer has exactly one cart.
type AddItemToCartCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewAddItemToCartCommandHandler creates a handler for cart additions.
// Requires a CartUoWFactory for transactional persistence.
func NewAddItemToCartCommandHandler(uowFactory CartUoWFactory) AddItemToCartCommandHandler {
	return AddItemToCartCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the add-to-cart command.
// Verifies the product exists and is not deleted, then upserts the cart
// line. Stock is not checked here; availability is decided at checkout.
func (h AddItemToCartCommandHandler) Handle(ctx context.Context, cmd AddItemToCartCommand) error {
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
	if listing.IsDeleted() {
		return errs.NewObjectNotFoundError("productId", cmd.ProductID().String())
	}

	now := time.Now()
	cartRepo := uow.CartRepository()

	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	created := false
	if errors.Is(err, errs.ErrObjectNotFound) {
		customerCart, err = cart.NewCart(kernel.NewUUID(), cmd.CustomerID(), now)
		created = true
	}
	if err != nil {
		return err
	}

	if err = customerCart.AddItem(cmd.ProductID(), cmd.Quantity(), now); err != nil {
		return err
	}

	if created {
		err = cartRepo.Add(ctx, customerCart)
	} else {
		err = cartRepo.Update(ctx, customerCart)
	}
	if err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
