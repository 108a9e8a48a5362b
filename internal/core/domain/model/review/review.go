// Package review contains product reviews and the per-product rating
// summary. The summary is a running (mean rating, reviews count) pair
// updated incrementally as reviews arrive; a background job reconciles it
// from the source rows to correct any drift.
package review

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

const (
	// RatingMin and RatingMax bound the allowed overall rating.
	RatingMin = 1
	RatingMax = 5

	// ContentMaxLen bounds the review body length.
	ContentMaxLen = 500
)

var (
	// ErrReviewIsNotConstructed is returned when a Review instance was not
	// created through NewReview or RestoreReview.
	ErrReviewIsNotConstructed = errors.New(
		"Review must be created via NewReview or RestoreReview constructor")

	// ErrContentIsRequired is returned when a review carries no body.
	ErrContentIsRequired = errors.New("content is required")
)

// Review is a customer's opinion on one product.
type Review struct {
	id               kernel.UUID
	productID        kernel.UUID
	customerID       kernel.UUID
	rating           int
	content          string
	verifiedPurchase bool
	deletedAt        *time.Time

	isConstructed bool
}

// NewReview creates a review. Rating must lie in [RatingMin, RatingMax];
// content must be non-empty and at most ContentMaxLen characters.
func NewReview(
	id, productID, customerID kernel.UUID,
	rating int,
	content string,
	verifiedPurchase bool,
) (*Review, error) {
	r := &Review{
		verifiedPurchase: verifiedPurchase,
		isConstructed:    true,
	}

	if err := errors.Join(
		r.setID(id),
		r.setProductID(productID),
		r.setCustomerID(customerID),
		r.setRating(rating),
		r.setContent(content),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// RestoreReview reconstructs a review from persistence.
func RestoreReview(
	id, productID, customerID kernel.UUID,
	rating int,
	content string,
	verifiedPurchase bool,
	deletedAt *time.Time,
) (*Review, error) {
	r, err := NewReview(id, productID, customerID, rating, content, verifiedPurchase)
	if err != nil {
		return nil, err
	}
	r.deletedAt = deletedAt
	return r, nil
}

// Validate ensures the instance was created through a constructor.
func (r *Review) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrReviewIsNotConstructed
	}
	return nil
}

func (r *Review) ID() kernel.UUID         { return r.id }
func (r *Review) ProductID() kernel.UUID  { return r.productID }
func (r *Review) CustomerID() kernel.UUID { return r.customerID }
func (r *Review) Rating() int             { return r.rating }
func (r *Review) Content() string         { return r.content }
func (r *Review) VerifiedPurchase() bool  { return r.verifiedPurchase }
func (r *Review) DeletedAt() *time.Time   { return r.deletedAt }

// IsDeleted reports whether the review has been soft-deleted.
func (r *Review) IsDeleted() bool {
	return r.deletedAt != nil
}

// EnsureAuthoredBy returns an unauthorized error unless the caller wrote
// the review.
func (r *Review) EnsureAuthoredBy(callerID kernel.UUID) error {
	if !r.customerID.IsEqual(callerID) {
		return errs.NewUnauthorizedError("review")
	}
	return nil
}

// Amend replaces the rating and content of the caller's review.
// Returns the previous rating so the summary can be adjusted.
func (r *Review) Amend(rating int, content string) (int, error) {
	previous := r.rating
	if err := errors.Join(
		r.setRating(rating),
		r.setContent(content),
	); err != nil {
		return 0, err
	}
	return previous, nil
}

// MarkDeleted soft-deletes the review. Deleting an already deleted
// review keeps the original deletion time.
func (r *Review) MarkDeleted(now time.Time) {
	if r.deletedAt != nil {
		return
	}
	r.deletedAt = &now
}

func (r *Review) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Review) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	r.productID = productID
	return nil
}

func (r *Review) setCustomerID(customerID kernel.UUID) error {
	if err := customerID.Validate(); err != nil {
		return err
	}
	r.customerID = customerID
	return nil
}

func (r *Review) setRating(rating int) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	r.rating = rating
	return nil
}

func (r *Review) setContent(content string) error {
	if content == "" {
		return ErrContentIsRequired
	}
	if len(content) > ContentMaxLen {
		return errs.NewValueIsOutOfRangeError("content length", len(content), 1, ContentMaxLen)
	}
	r.content = content
	return nil
}
