package commands

import (
	"errors"

	"marketplace/internal/pkg/guard"
)

var ErrReconcileRatingsCommandIsNotConstructed = errors.New(
	"ReconcileRatingsCommand must be created via NewReconcileRatingsCommand constructor",
)

// ReconcileRatingsCommand triggers a full rebuild of every product's
// rating summary from the live reviews. Run periodically to correct any
// drift the incremental updates accumulated.
//
// Example:
//
//	cmd := NewReconcileRatingsCommand()
//	handler := NewReconcileRatingsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Rating reconciliation failed: %v", err)
//	}
type ReconcileRatingsCommand struct {
	guard guard.ConstructorGuard
}

// NewReconcileRatingsCommand creates a new command to trigger summary
// reconciliation. This is a parameterless command.
func NewReconcileRatingsCommand() ReconcileRatingsCommand {
	return ReconcileRatingsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *ReconcileRatingsCommand) Validate() error {
	return c.guard.Validate(
		ErrReconcileRatingsCommandIsNotConstructed,
	)
}
