package cartrepo

import (
	"context"
	"errors"
	"time"

	"marketplace/internal/core/domain/model/cart"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCartRepository implements CartRepository using GORM.
type GormCartRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCartRepository creates a new GORM cart repository.
func NewGormCartRepository(db *gorm.DB, tracker aggregateTracker) *GormCartRepository {
	return &GormCartRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new cart with its lines to the database.
func (r *GormCartRepository) Add(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lineDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if len(lineDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&lineDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing cart. Lines are replaced wholesale: the cart is
// small and its contents change shape on every mutation, so delete and
// re-insert is simpler than diffing.
func (r *GormCartRepository) Update(ctx context.Context, aggregate *cart.Cart) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, lineDTOs := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CartDTO{}).
		Where("id = ?", dto.ID).
		Select("touched_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.db.WithContext(ctx).Delete(&CartLineDTO{}, "cart_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(lineDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&lineDTOs).Error; err != nil {
			return err
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// GetByCustomer retrieves the cart of a customer.
func (r *GormCartRepository) GetByCustomer(ctx context.Context, customerID kernel.UUID) (*cart.Cart, error) {
	if err := customerID.Validate(); err != nil {
		return nil, err
	}

	var dto CartDTO
	err := r.db.WithContext(ctx).First(&dto, "customer_id = ?", customerID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", customerID.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetAllTouchedBefore retrieves carts not touched since the cutoff.
// Used by the abandoned-cart cleanup job.
func (r *GormCartRepository) GetAllTouchedBefore(ctx context.Context, cutoff time.Time) ([]*cart.Cart, error) {
	var dtos []CartDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "touched_at < ?", cutoff).Error; err != nil {
		return nil, err
	}

	carts := make([]*cart.Cart, 0, len(dtos))
	for _, dto := range dtos {
		c, err := r.load(ctx, dto)
		if err != nil {
			return nil, err
		}
		carts = append(carts, c)
	}

	return carts, nil
}

// Remove deletes a cart and its lines.
func (r *GormCartRepository) Remove(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	if err := r.db.WithContext(ctx).Delete(&CartLineDTO{}, "cart_id = ?", id.Bytes()).Error; err != nil {
		return err
	}
	return r.db.WithContext(ctx).Delete(&CartDTO{}, "id = ?", id.Bytes()).Error
}

// load fetches the lines of a cart row and assembles the aggregate.
func (r *GormCartRepository) load(ctx context.Context, dto CartDTO) (*cart.Cart, error) {
	var lineDTOs []CartLineDTO
	err := r.db.WithContext(ctx).Find(&lineDTOs, "cart_id = ?", dto.ID).Error
	if err != nil {
		return nil, err
	}

	return toDomain(dto, lineDTOs)
}
