package ports

import (
	"context"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
)

// ReviewRepository defines the persistence contract for product reviews.
type ReviewRepository interface {
	// Add persists a new review to storage.
	Add(ctx context.Context, aggregate *review.Review) error

	// Update persists changes to an existing review,
	// including soft deletion.
	Update(ctx context.Context, aggregate *review.Review) error

	// Get retrieves a review by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*review.Review, error)

	// GetByProductAndCustomer retrieves the review a customer left on a
	// product. Returns errs.ObjectNotFoundError when none exists; a
	// customer holds at most one live review per product.
	GetByProductAndCustomer(ctx context.Context, productID, customerID kernel.UUID) (*review.Review, error)
}

// SummaryRepository defines the persistence contract for per-product
// rating summaries, maintained incrementally on every review change.
type SummaryRepository interface {
	// Get retrieves the rating summary for a product. Returns
	// errs.ObjectNotFoundError for products that were never reviewed.
	Get(ctx context.Context, productID kernel.UUID) (*review.Summary, error)

	// Save upserts a rating summary.
	Save(ctx context.Context, aggregate *review.Summary) error

	// RebuildAll recomputes every summary from the live reviews,
	// correcting any drift the incremental updates accumulated.
	RebuildAll(ctx context.Context) error
}
