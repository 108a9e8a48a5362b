package commands

import (
	"context"
	"log/slog"
	"time"
)

// RemoveAbandonedCartsCommandHandler deletes carts that have sat untouched
// past the retention window. Runs from the cleanup job.
type RemoveAbandonedCartsCommandHandler struct {
	uowFactory CartUoWFactory
}

// NewRemoveAbandonedCartsCommandHandler creates a handler for cart cleanup.
func NewRemoveAbandonedCartsCommandHandler(uowFactory CartUoWFactory) RemoveAbandonedCartsCommandHandler {
	return RemoveAbandonedCartsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cart cleanup command.
// All stale carts are removed in one transaction.
func (h RemoveAbandonedCartsCommandHandler) Handle(ctx context.Context, cmd RemoveAbandonedCartsCommand) error {
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

	cartRepo := uow.CartRepository()
	cutoff := time.Now().Add(-cmd.OlderThan())

	stale, err := cartRepo.GetAllTouchedBefore(ctx, cutoff)
	if err != nil {
		return err
	}

	for _, abandoned := range stale {
		if err = cartRepo.Remove(ctx, abandoned.ID()); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if len(stale) > 0 {
		slog.InfoContext(ctx, "removed abandoned carts", "count", len(stale))
	}

	return nil
}
