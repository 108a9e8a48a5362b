package review

import (
	"errors"
	"fmt"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrSummaryIsNotConstructed is returned when a Summary instance was not
	// created through NewSummary or RestoreSummary.
	ErrSummaryIsNotConstructed = errors.New(
		"Summary must be created via NewSummary or RestoreSummary constructor")

	// ErrSummaryIsEmpty is returned when retracting from a summary with no reviews.
	ErrSummaryIsEmpty = errors.New("summary has no reviews")
)

// Summary is the per-product aggregate rating: a running weighted mean
// and the number of reviews it covers. A product with no reviews has
// rating 0 and count 0.
//
// The incremental formulas are the correct running-mean updates:
//
//	add:     (rating*count + new) / (count + 1)
//	amend:   (rating*count - old + new) / count
//	retract: (rating*count - old) / (count - 1)
type Summary struct {
	productID    kernel.UUID
	rating       float64
	reviewsCount int

	isConstructed bool
}

// NewSummary creates an empty summary for a newly listed product.
func NewSummary(productID kernel.UUID) (*Summary, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}
	return &Summary{productID: productID, isConstructed: true}, nil
}

// RestoreSummary reconstructs a summary from persistence.
func RestoreSummary(productID kernel.UUID, rating float64, reviewsCount int) (*Summary, error) {
	s, err := NewSummary(productID)
	if err != nil {
		return nil, err
	}

	if reviewsCount < 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("reviewsCount",
			fmt.Errorf("%d is negative", reviewsCount))
	}
	if reviewsCount == 0 && rating != 0 {
		return nil, errs.NewValueIsInvalidError("rating without reviews")
	}
	s.rating = rating
	s.reviewsCount = reviewsCount

	return s, nil
}

// Validate ensures the instance was created through a constructor.
func (s *Summary) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSummaryIsNotConstructed
	}
	return nil
}

func (s *Summary) ProductID() kernel.UUID { return s.productID }
func (s *Summary) Rating() float64        { return s.rating }
func (s *Summary) ReviewsCount() int      { return s.reviewsCount }

// Add folds a new review's rating into the running mean.
func (s *Summary) Add(rating int) error {
	if err := validateRating(rating); err != nil {
		return err
	}

	s.rating = (s.rating*float64(s.reviewsCount) + float64(rating)) / float64(s.reviewsCount+1)
	s.reviewsCount++
	return nil
}

// Amend replaces a previously counted rating with a new one. The count
// is unchanged.
func (s *Summary) Amend(oldRating, newRating int) error {
	if err := errors.Join(validateRating(oldRating), validateRating(newRating)); err != nil {
		return err
	}
	if s.reviewsCount == 0 {
		return ErrSummaryIsEmpty
	}

	s.rating += (float64(newRating) - float64(oldRating)) / float64(s.reviewsCount)
	return nil
}

// Retract removes a counted rating, used when a review is soft-deleted.
func (s *Summary) Retract(rating int) error {
	if err := validateRating(rating); err != nil {
		return err
	}
	if s.reviewsCount == 0 {
		return ErrSummaryIsEmpty
	}

	if s.reviewsCount == 1 {
		s.rating = 0
		s.reviewsCount = 0
		return nil
	}

	s.rating = (s.rating*float64(s.reviewsCount) - float64(rating)) / float64(s.reviewsCount-1)
	s.reviewsCount--
	return nil
}

func validateRating(rating int) error {
	if rating < RatingMin || rating > RatingMax {
		return errs.NewValueIsOutOfRangeError("rating", rating, RatingMin, RatingMax)
	}
	return nil
}
