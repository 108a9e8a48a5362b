package commands

import (
	"errors"
	"time"

	"marketplace/internal/pkg/guard"
)

var (
	ErrRemoveAbandonedCartsCommandIsNotConstructed = errors.New(
		"RemoveAbandonedCartsCommand must be created via NewRemoveAbandonedCartsCommand constructor",
	)
	ErrOlderThanIsInvalid = errors.New("olderThan must be greater than 0")
)

// RemoveAbandonedCartsCommand triggers the deletion of carts that have
// not been touched for the given duration.
type RemoveAbandonedCartsCommand struct { //nolint:recvcheck //using for validation
	olderThan time.Duration

	guard guard.ConstructorGuard
}

// NewRemoveAbandonedCartsCommand creates a command to delete stale carts.
// Validates that the retention window is positive.
func NewRemoveAbandonedCartsCommand(olderThan time.Duration) (RemoveAbandonedCartsCommand, error) {
	removeCommand := RemoveAbandonedCartsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := removeCommand.setOlderThan(olderThan); err != nil {
		return RemoveAbandonedCartsCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAbandonedCartsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAbandonedCartsCommandIsNotConstructed)
}

// OlderThan returns how long a cart must sit untouched before it is
// considered abandoned.
func (c RemoveAbandonedCartsCommand) OlderThan() time.Duration {
	return c.olderThan
}

func (c *RemoveAbandonedCartsCommand) setOlderThan(olderThan time.Duration) error {
	if olderThan <= 0 {
		return ErrOlderThanIsInvalid
	}

	c.olderThan = olderThan
	return nil
}
