package commands

import (
	"context"
)

// UpdateStoreCommandHandler handles storefront updates.
// The caller must own the store; anyone else gets an authorization error.
type UpdateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewUpdateStoreCommandHandler creates a handler for store updates.
func NewUpdateStoreCommandHandler(uowFactory StoreUoWFactory) UpdateStoreCommandHandler {
	return UpdateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store update command.
func (h UpdateStoreCommandHandler) Handle(ctx context.Context, cmd UpdateStoreCommand) error {
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

	if err = aggregate.Update(cmd.Name(), cmd.Description()); err != nil {
		return err
	}

	if err = storeRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
