package commands

import (
	"context"
)

// ReconcileRatingsCommandHandler rebuilds every rating summary from the
// live reviews in a single transaction.
type ReconcileRatingsCommandHandler struct {
	uowFactory SummaryUoWFactory
}

// NewReconcileRatingsCommandHandler creates a handler for summary
// reconciliation.
func NewReconcileRatingsCommandHandler(uowFactory SummaryUoWFactory) ReconcileRatingsCommandHandler {
	return ReconcileRatingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reconciliation command.
func (h ReconcileRatingsCommandHandler) Handle(ctx context.Context, cmd ReconcileRatingsCommand) error {
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

	if err := uow.SummaryRepository().RebuildAll(ctx); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
