package queries

import (
	"context"
	"database/sql"
	"errors"

	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetProductReviewsQueryHandler retrieves review pages from the database.
// Soft-deleted reviews never appear; the summary reflects live reviews
// only.
type GetProductReviewsQueryHandler struct {
	db *gorm.DB
}

// NewGetProductReviewsQueryHandler creates a handler for review queries.
// Requires a GORM database connection for query execution.
func NewGetProductReviewsQueryHandler(db *gorm.DB) GetProductReviewsQueryHandler {
	return GetProductReviewsQueryHandler{db: db}
}

// Handle executes the review page query.
// Verified purchases are listed before unverified ones, newest first
// within each group.
func (h GetProductReviewsQueryHandler) Handle(
	ctx context.Context,
	query GetProductReviewsQuery,
) (GetProductReviewsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetProductReviewsQueryResponse{}, err
	}

	resp := GetProductReviewsQueryResponse{Reviews: make([]ReviewResponse, 0)}

	var rating sql.NullFloat64
	var reviewsCount sql.NullInt64
	row := h.db.WithContext(ctx).Raw(`
		SELECT rating, reviews_count
		FROM review_summaries
		WHERE product_id = ?
	`, query.ProductID().Bytes()).Row()

	err := row.Scan(&rating, &reviewsCount)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return resp, err
	}
	resp.Rating = rating.Float64
	resp.ReviewsCount = int(reviewsCount.Int64)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			r.id,
			c.name,
			r.rating,
			r.content,
			r.verified_purchase
		FROM reviews r
		JOIN customers c ON c.id = r.customer_id
		WHERE r.product_id = ? AND r.deleted_at IS NULL
		ORDER BY r.verified_purchase DESC, r.created_at DESC
		LIMIT ? OFFSET ?
	`, query.ProductID().Bytes(), query.Limit(), query.Offset()).Rows()
	if err != nil {
		return resp, err
	}
	defer rows.Close()

	for rows.Next() {
		var posted ReviewResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&posted.CustomerName,
			&posted.Rating,
			&posted.Content,
			&posted.VerifiedPurchase,
		)
		if err != nil {
			return resp, err
		}

		posted.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return resp, err
		}
		resp.Reviews = append(resp.Reviews, posted)
	}

	if err = rows.Err(); err != nil {
		return resp, err
	}

	return resp, nil
}
