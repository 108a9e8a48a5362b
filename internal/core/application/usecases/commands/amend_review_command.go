package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrAmendReviewCommandIsNotConstructed = errors.New(
	"AmendReviewCommand must be created via NewAmendReviewCommand constructor",
)

// AmendReviewCommand represents a request to change an existing review's
// rating and text. Only the review author may amend it.
type AmendReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID kernel.UUID
	callerID kernel.UUID
	rating   int
	content  string

	guard guard.ConstructorGuard
}

// NewAmendReviewCommand creates a command to amend a review.
func NewAmendReviewCommand(
	reviewID, callerID kernel.UUID,
	rating int,
	content string,
) (AmendReviewCommand, error) {
	amendCommand := AmendReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		amendCommand.setReviewID(reviewID),
		amendCommand.setCallerID(callerID),
		amendCommand.setRating(rating),
		amendCommand.setContent(content),
	); err != nil {
		return AmendReviewCommand{}, err
	}

	return amendCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c AmendReviewCommand) Validate() error {
	return c.guard.Validate(ErrAmendReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier of the review being amended.
func (c AmendReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// CallerID returns the identifier of the customer making the change.
func (c AmendReviewCommand) CallerID() kernel.UUID {
	return c.callerID
}

// Rating returns the new star rating.
func (c AmendReviewCommand) Rating() int {
	return c.rating
}

// Content returns the new review text.
func (c AmendReviewCommand) Content() string {
	return c.content
}

func (c *AmendReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *AmendReviewCommand) setCallerID(callerID kernel.UUID) error {
	if err := callerID.Validate(); err != nil {
		return err
	}

	c.callerID = callerID
	return nil
}

func (c *AmendReviewCommand) setRating(rating int) error {
	if rating < review.RatingMin || rating > review.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.RatingMin, review.RatingMax)
	}

	c.rating = rating
	return nil
}

func (c *AmendReviewCommand) setContent(content string) error {
	if len(content) > review.ContentMaxLen {
		return errs.NewValueIsOutOfRangeError("content", len(content), 0, review.ContentMaxLen)
	}

	c.content = content
	return nil
}
