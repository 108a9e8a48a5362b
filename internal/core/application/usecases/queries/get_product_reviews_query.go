package queries

import (
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/guard"
)

var ErrGetProductReviewsQueryIsNotConstructed = errors.New(
	"GetProductReviewsQuery must be created via NewGetProductReviewsQuery constructor",
)

// GetProductReviewsQuery retrieves the live reviews of a product,
// paginated, together with the product's rating summary.
type GetProductReviewsQuery struct {
	productID kernel.UUID
	limit     int
	offset    int

	guard guard.ConstructorGuard
}

// NewGetProductReviewsQuery creates a query for a product's reviews.
// Limit is clamped to a sane page size; negative offsets are treated as
// zero.
func NewGetProductReviewsQuery(productID kernel.UUID, limit, offset int) (GetProductReviewsQuery, error) {
	if err := productID.Validate(); err != nil {
		return GetProductReviewsQuery{}, err
	}

	if limit <= 0 || limit > searchLimitMax {
		limit = searchLimitDefault
	}
	if offset < 0 {
		offset = 0
	}

	return GetProductReviewsQuery{
		productID: productID,
		limit:     limit,
		offset:    offset,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetProductReviewsQuery) Validate() error {
	return q.guard.Validate(ErrGetProductReviewsQueryIsNotConstructed)
}

// ProductID returns the identifier of the reviewed product.
func (q GetProductReviewsQuery) ProductID() kernel.UUID {
	return q.productID
}

// Limit returns the page size.
func (q GetProductReviewsQuery) Limit() int {
	return q.limit
}

// Offset returns the number of reviews to skip.
func (q GetProductReviewsQuery) Offset() int {
	return q.offset
}

// GetProductReviewsQueryResponse represents a page of reviews in the
// read model.
type GetProductReviewsQueryResponse struct {
	Rating       float64
	ReviewsCount int
	Reviews      []ReviewResponse
}

// ReviewResponse represents one review with its author's display name.
type ReviewResponse struct {
	ID               kernel.UUID
	CustomerName     string
	Rating           int
	Content          string
	VerifiedPurchase bool
}
