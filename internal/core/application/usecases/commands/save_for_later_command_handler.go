package commands

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/pkg/errs"
)

// SaveForLaterCommandHandler moves products from the cart to the
// customer's saved-for-later list. Saving a product that is not in the
// cart still records it on the list.
type SaveForLaterCommandHandler struct {
	uowFactory SavedUoWFactory
}

// NewSaveForLaterCommandHandler creates a handler for save-for-later moves.
// Requires a SavedUoWFactory because the move spans cart and customer.
func NewSaveForLaterCommandHandler(uowFactory SavedUoWFactory) SaveForLaterCommandHandler {
	return SaveForLaterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the save-for-later command.
func (h SaveForLaterCommandHandler) Handle(ctx context.Context, cmd SaveForLaterCommand) error {
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

	if err = account.SaveForLater(cmd.ProductID()); err != nil {
		return err
	}

	if err = customerRepo.Update(ctx, account); err != nil {
		return err
	}

	cartRepo := uow.CartRepository()
	customerCart, err := cartRepo.GetByCustomer(ctx, cmd.CustomerID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		// nothing to move out of
	case err != nil:
		return err
	default:
		if err = customerCart.RemoveItem(cmd.ProductID(), time.Now()); err != nil {
			return err
		}
		if err = cartRepo.Update(ctx, customerCart); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
