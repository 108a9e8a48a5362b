package commands

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

var ErrCreateReviewCommandIsNotConstructed = errors.New(
	"CreateReviewCommand must be created via NewCreateReviewCommand constructor",
)

// CreateReviewCommand represents a request to review a product.
// A customer may hold at most one live review per product.
//
// Example:
//
//	cmd, err := NewCreateReviewCommand(kernel.NewUUID(), productID, customerID, 5, "Excellent")
//	if err != nil {
//	    return fmt.Errorf("invalid review data: %w", err)
//	}
//
//	handler := NewCreateReviewCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create review: %w", err)
//	}
type CreateReviewCommand struct { //nolint:recvcheck //using for validation
	reviewID   kernel.UUID
	productID  kernel.UUID
	customerID kernel.UUID
	rating     int
	content    string

	guard guard.ConstructorGuard
}

// NewCreateReviewCommand creates a command to review a product.
// Validates identifiers, the rating range, and the content length.
func NewCreateReviewCommand(
	reviewID, productID, customerID kernel.UUID,
	rating int,
	content string,
) (CreateReviewCommand, error) {
	reviewCommand := CreateReviewCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		reviewCommand.setReviewID(reviewID),
		reviewCommand.setProductID(productID),
		reviewCommand.setCustomerID(customerID),
		reviewCommand.setRating(rating),
		reviewCommand.setContent(content),
	); err != nil {
		return CreateReviewCommand{}, err
	}

	return reviewCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateReviewCommand) Validate() error {
	return c.guard.Validate(ErrCreateReviewCommandIsNotConstructed)
}

// ReviewID returns the identifier assigned to the new review.
func (c CreateReviewCommand) ReviewID() kernel.UUID {
	return c.reviewID
}

// ProductID returns the identifier of the reviewed product.
func (c CreateReviewCommand) ProductID() kernel.UUID {
	return c.productID
}

// CustomerID returns the identifier of the reviewing customer.
func (c CreateReviewCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// Rating returns the star rating.
func (c CreateReviewCommand) Rating() int {
	return c.rating
}

// Content returns the review text.
func (c CreateReviewCommand) Content() string {
	return c.content
}

func (c *CreateReviewCommand) setReviewID(reviewID kernel.UUID) error {
	if err := reviewID.Validate(); err != nil {
		return err
	}

	c.reviewID = reviewID
	return nil
}

func (c *CreateReviewCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}

	c.productID = productID
	return nil
}

func (c *CreateReviewCommand) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}

	c.customerID = customerID
	return nil
}

func (c *CreateReviewCommand) setRating(rating int) error {
	if rating < review.RatingMin || rating > review.RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, review.RatingMin, review.RatingMax)
	}

	c.rating = rating
	return nil
}

func (c *CreateReviewCommand) setContent(content string) error {
	if len(content) > review.ContentMaxLen {
		return errs.NewValueIsOutOfRangeError("content", len(content), 0, review.ContentMaxLen)
	}

	c.content = content
	return nil
}
