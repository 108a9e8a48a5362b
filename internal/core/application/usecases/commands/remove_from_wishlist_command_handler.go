package commands

import (
	"context"
)

// RemoveFromWishlistCommandHandler handles wishlist removals.
type RemoveFromWishlistCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRemoveFromWishlistCommandHandler creates a handler for wishlist removals.
func NewRemoveFromWishlistCommandHandler(uowFactory CustomerUoWFactory) RemoveFromWishlistCommandHandler {
	return RemoveFromWishlistCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the wishlist removal command.
func (h RemoveFromWishlistCommandHandler) Handle(ctx context.Context, cmd RemoveFromWishlistCommand) error {
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

	if err = account.RemoveFromWishlist(cmd.ProductID()); err != nil {
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
