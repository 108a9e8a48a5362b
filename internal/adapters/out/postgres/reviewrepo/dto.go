// Package reviewrepo provides data transfer objects and mapping functions for
// review persistence. It covers both the review aggregate and the per-product
// rating summary, which is a denormalized projection kept in step with the
// reviews inside the same transaction.
package reviewrepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"

	"github.com/google/uuid"
)

// ReviewDTO represents the database structure for persisting reviews.
// Deleted reviews stay as rows with deleted_at set so duplicate detection
// keeps working after removal.
type ReviewDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID        uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_product_customer"`
	CustomerID       uuid.UUID `gorm:"type:uuid;not null;index:idx_reviews_product_customer"`
	Rating           int       `gorm:"type:int;not null"`
	Content          string    `gorm:"type:text"`
	VerifiedPurchase bool      `gorm:"not null"`
	DeletedAt        *time.Time
	CreatedAt        time.Time `gorm:"autoCreateTime"`
}

// TableName specifies the database table name for review entities.
// Overrides GORM's default naming convention to use "reviews".
func (ReviewDTO) TableName() string {
	return "reviews"
}

// SummaryDTO represents the per-product aggregate rating row.
type SummaryDTO struct {
	ProductID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Rating       float64   `gorm:"type:double precision;not null"`
	ReviewsCount int       `gorm:"type:int;not null"`
}

// TableName specifies the database table name for rating summaries.
// Overrides GORM's default naming convention to use "review_summaries".
func (SummaryDTO) TableName() string {
	return "review_summaries"
}

// fromDomain converts a review domain aggregate to its database representation.
func fromDomain(aggregate *review.Review) ReviewDTO {
	return ReviewDTO{
		ID:               aggregate.ID().Bytes(),
		ProductID:        aggregate.ProductID().Bytes(),
		CustomerID:       aggregate.CustomerID().Bytes(),
		Rating:           aggregate.Rating(),
		Content:          aggregate.Content(),
		VerifiedPurchase: aggregate.VerifiedPurchase(),
		DeletedAt:        aggregate.DeletedAt(),
	}
}

// toDomain converts a database DTO to a review domain aggregate.
func toDomain(dto ReviewDTO) (*review.Review, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreReview(
		id, productID, customerID,
		dto.Rating, dto.Content, dto.VerifiedPurchase, dto.DeletedAt,
	)
}

// summaryFromDomain converts a rating summary to its database representation.
func summaryFromDomain(aggregate *review.Summary) SummaryDTO {
	return SummaryDTO{
		ProductID:    aggregate.ProductID().Bytes(),
		Rating:       aggregate.Rating(),
		ReviewsCount: aggregate.ReviewsCount(),
	}
}

// summaryToDomain converts a database DTO to a rating summary.
func summaryToDomain(dto SummaryDTO) (*review.Summary, error) {
	productID, err := kernel.UUIDFromBytes(dto.ProductID[:])
	if err != nil {
		return nil, err
	}

	return review.RestoreSummary(productID, dto.Rating, dto.ReviewsCount)
}
