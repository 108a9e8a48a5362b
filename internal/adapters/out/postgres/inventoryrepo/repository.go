package inventoryrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/inventory"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormInventoryRepository creates a new GORM inventory repository.
func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new inventory ledger to the database.
func (r *GormInventoryRepository) Add(ctx context.Context, aggregate *inventory.Inventory) error {
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

// Update saves an existing inventory ledger to the database.
func (r *GormInventoryRepository) Update(ctx context.Context, aggregate *inventory.Inventory) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&InventoryDTO{}).
		Where("id = ?", dto.ID).
		Select("stock", "price", "sold").
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

// Get retrieves an inventory ledger by ID.
func (r *GormInventoryRepository) Get(ctx context.Context, id kernel.UUID) (*inventory.Inventory, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto InventoryDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("inventoryId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByProduct retrieves the inventory ledger of a product.
func (r *GormInventoryRepository) GetByProduct(ctx context.Context, productID kernel.UUID) (*inventory.Inventory, error) {
	if err := productID.Validate(); err != nil {
		return nil, err
	}

	var dto InventoryDTO
	err := r.db.WithContext(ctx).First(&dto, "product_id = ?", productID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("productId", productID.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Reserve atomically removes quantity units from stock for a purchase.
// The decrement is guarded by the stock level in the same statement: when
// another transaction took the last units first, zero rows match and
// inventory.ErrInsufficientStock is returned.
func (r *GormInventoryRepository) Reserve(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).Exec(
		"UPDATE inventories SET stock = stock - ?, sold = sold + ? WHERE id = ? AND stock >= ?",
		quantity, quantity, id.Bytes(), quantity,
	)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return inventory.ErrInsufficientStock
	}
	return nil
}

// Release returns quantity units to stock after a cancellation. The sold
// counter floors at zero for ledgers restocked by the seller in between.
func (r *GormInventoryRepository) Release(ctx context.Context, id kernel.UUID, quantity int) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if quantity <= 0 {
		return errs.NewValueIsInvalidError("quantity")
	}

	result := r.db.WithContext(ctx).Exec(
		"UPDATE inventories SET stock = stock + ?, sold = GREATEST(sold - ?, 0) WHERE id = ?",
		quantity, quantity, id.Bytes(),
	)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("inventoryId", id.String())
	}
	return nil
}
