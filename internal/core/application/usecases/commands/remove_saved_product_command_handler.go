package commands

import (
	"context"
)

// RemoveSavedProductCommandHandler handles dropping saved-for-later products.
type RemoveSavedProductCommandHandler struct {
	uowFactory CustomerUoWFactory
}

// NewRemoveSavedProductCommandHandler creates a handler for saved product removal.
func NewRemoveSavedProductCommandHandler(uowFactory CustomerUoWFactory) RemoveSavedProductCommandHandler {
	return RemoveSavedProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the saved product removal command.
func (h RemoveSavedProductCommandHandler) Handle(ctx context.Context, cmd RemoveSavedProductCommand) error {
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

	if err = account.RemoveSavedProduct(cmd.ProductID()); err != nil {
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
