package commands

import (
	"context"

	"marketplace/internal/core/domain/model/store"
)

// CreateStoreCommandHandler handles the business logic for opening stores.
type CreateStoreCommandHandler struct {
	uowFactory StoreUoWFactory
}

// NewCreateStoreCommandHandler creates a handler for store creation.
// Requires a StoreUoWFactory for transactional persistence.
func NewCreateStoreCommandHandler(uowFactory StoreUoWFactory) CreateStoreCommandHandler {
	return CreateStoreCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the store creation command.
func (h CreateStoreCommandHandler) Handle(ctx context.Context, cmd CreateStoreCommand) error {
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

	aggregate, err := store.NewStore(cmd.StoreID(), cmd.OwnerID(), cmd.Name(), cmd.Description())
	if err != nil {
		return err
	}

	if err = uow.StoreRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
