package customerrepo

import (
	"context"
	"errors"

	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements CustomerRepository using GORM.
type GormCustomerRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCustomerRepository creates a new GORM customer repository.
func NewGormCustomerRepository(db *gorm.DB, tracker aggregateTracker) *GormCustomerRepository {
	return &GormCustomerRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new customer account to the database.
func (r *GormCustomerRepository) Add(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, wishlistDTOs, savedDTOs := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}
	if err := r.replaceSets(ctx, dto, wishlistDTOs, savedDTOs); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing customer account. The wishlist and
// saved-for-later sets are replaced wholesale; both are small.
func (r *GormCustomerRepository) Update(ctx context.Context, aggregate *customer.Customer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto, wishlistDTOs, savedDTOs := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Select("name", "address").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	if err := r.replaceSets(ctx, dto, wishlistDTOs, savedDTOs); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a customer account by ID.
func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customerId", id.String())
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// GetByEmail retrieves a customer account by its normalized email address.
func (r *GormCustomerRepository) GetByEmail(ctx context.Context, email string) (*customer.Customer, error) {
	if email == "" {
		return nil, errs.NewValueIsRequiredError("email")
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("email", email)
		}
		return nil, err
	}

	return r.load(ctx, dto)
}

// load fetches the product sets of an account row and assembles the aggregate.
func (r *GormCustomerRepository) load(ctx context.Context, dto CustomerDTO) (*customer.Customer, error) {
	var wishlistDTOs []WishlistItemDTO
	if err := r.db.WithContext(ctx).Find(&wishlistDTOs, "customer_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	var savedDTOs []SavedProductDTO
	if err := r.db.WithContext(ctx).Find(&savedDTOs, "customer_id = ?", dto.ID).Error; err != nil {
		return nil, err
	}

	return toDomain(dto, wishlistDTOs, savedDTOs)
}

func (r *GormCustomerRepository) replaceSets(
	ctx context.Context,
	dto CustomerDTO,
	wishlistDTOs []WishlistItemDTO,
	savedDTOs []SavedProductDTO,
) error {
	if err := r.db.WithContext(ctx).Delete(&WishlistItemDTO{}, "customer_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(wishlistDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&wishlistDTOs).Error; err != nil {
			return err
		}
	}

	if err := r.db.WithContext(ctx).Delete(&SavedProductDTO{}, "customer_id = ?", dto.ID).Error; err != nil {
		return err
	}
	if len(savedDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&savedDTOs).Error; err != nil {
			return err
		}
	}

	return nil
}
