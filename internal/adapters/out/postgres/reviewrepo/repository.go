package reviewrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/review"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormReviewRepository implements ReviewRepository using GORM.
type GormReviewRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormReviewRepository creates a new GORM review repository.
func NewGormReviewRepository(db *gorm.DB, tracker aggregateTracker) *GormReviewRepository {
	return &GormReviewRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new review to the database.
func (r *GormReviewRepository) Add(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing review to the database.
func (r *GormReviewRepository) Update(ctx context.Context, aggregate *review.Review) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&ReviewDTO{}).
		Where("id = ?", dto.ID).
		Select("rating", "content", "deleted_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a review by ID, including soft-deleted ones.
func (r *GormReviewRepository) Get(ctx context.Context, id kernel.UUID) (*review.Review, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("reviewId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByProductAndCustomer retrieves a customer's review of a product.
// A live review wins over a soft-deleted one; among deleted rows the most
// recent is returned.
func (r *GormReviewRepository) GetByProductAndCustomer(
	ctx context.Context,
	productID, customerID kernel.UUID,
) (*review.Review, error) {
	if err := errors.Join(productID.Validate(), customerID.Validate()); err != nil {
		return nil, err
	}

	var dto ReviewDTO
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND customer_id = ?", productID.Bytes(), customerID.Bytes()).
		Order("(deleted_at IS NULL) DESC, created_at DESC").
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GormSummaryRepository implements SummaryRepository using GORM.
type GormSummaryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormSummaryRepository creates a new GORM rating summary repository.
func NewGormSummaryRepository(db *gorm.DB, tracker aggregateTracker) *GormSummaryRepository {
	return &GormSummaryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves the rating summary of a product.
func (r *GormSummaryRepository) Get(ctx context.Context, productID kernel.UUID) (*review.Summary, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto SummaryDTO
	err := r.db.WithContext(ctx).First(&dto, "product_id = ?", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", productID.String())
		}
		return nil, err
	}

	return summaryToDomain(dto)
}

// Save upserts the rating summary of a product.
func (r *GormSummaryRepository) Save(ctx context.Context, aggregate *review.Summary) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := summaryFromDomain(aggregate)
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "product_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"rating", "reviews_count"}),
	}).Create(&dto).Error
	if err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ProductID(), aggregate)
	return nil
}

// RebuildAll recomputes every product's summary from its live reviews.
// The incremental running-mean updates accumulate floating point drift
// over many amendments; this ground-truth pass resets it. Summaries of
// products whose reviews are all deleted are removed entirely.
func (r *GormSummaryRepository) RebuildAll(ctx context.Context) error {
	err := r.db.WithContext(ctx).Exec(`
		INSERT INTO review_summaries (product_id, rating, reviews_count)
		SELECT product_id, AVG(rating), COUNT(*)
		FROM reviews
		WHERE deleted_at IS NULL
		GROUP BY product_id
		ON CONFLICT (product_id) DO UPDATE
		SET rating = EXCLUDED.rating, reviews_count = EXCLUDED.reviews_count`,
	).Error
	if err != nil {
		return err
	}

	return r.db.WithContext(ctx).Exec(`
		DELETE FROM review_summaries s
		WHERE NOT EXISTS (
			SELECT 1 FROM reviews r
			WHERE r.product_id = s.product_id AND r.deleted_at IS NULL
		)`,
	).Error
}
