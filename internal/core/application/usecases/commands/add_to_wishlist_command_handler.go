package commands

import (
	"context"
)

// AddToWishlistCommandHandler handles wishlist additions.
type AddToWishlistCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewAddToWishlistCommandHandler creates a handler for wishlist additions.
func NewAddToWishlistCommandHandler(uowFactory CustomerUoWFactory) AddToWishlistCommandHandler {
	return AddToWishlistCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the wishlist addition command.
func (h AddToWishlistCommandHandler) Handle(ctx context.Context, cmd AddToWishlistCommand) error {
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

	customerRepo := uow.CustomerRepository()
	account, err := customerRepo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if err = account.AddToWishlist(cmd.ProductID()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, account); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
