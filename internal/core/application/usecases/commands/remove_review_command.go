package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrRemoveReviewCommandIsNotConstructed = errors.New(
	"RemoveReviewCommand must be created via NewRemoveReviewCommand constructor",
)

// RemoveReviewCommand represents a request to retract a review.
// Only the review author may retract it.
type RemoveReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	callerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveReviewCommand creates a command to retract a review.
func NewRemoveReviewCommand(reviewID, callerID kernel.UUID) (RemoveReviewCommand, error) {
	removeCommand := RemoveReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeCommand.setReviewID(reviewID),
		removeCommand.setCallerID(callerID),
	); err != nil {
		return RemoveReviewCommand{}, err
	}

	return removeCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveReviewCommand) Validate() error {
	return c.guard.Validate(ErrRemoveReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review being retracted.
func (c RemoveReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// CallerID returns the identifier of the customer retracting the review.
func (c RemoveReviewCommand) CallerID() kernel.UUID {
	return c.callerID
}

func (c *RemoveReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *RemoveReviewCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}
