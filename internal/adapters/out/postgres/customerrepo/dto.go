// Package customerrepo provides data transfer objects and mapping functions for
// customer account persistence. The wishlist and saved-for-later sets live in
// their own join tables and are replaced wholesale on update.
package customerrepo

import (
	"marketplace/internal/core/domain/model/customer"
	"marketplace/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// CustomerDTO represents the database structure for persisting customer accounts.
type CustomerDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name    string    `gorm:"type:varchar(255);not null"`
	Email   string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Address string    `gorm:"type:text"`
}

// TableName specifies the database table name for customer entities.
// Overrides GORM's default naming convention to use "customers".
func (CustomerDTO) TableName() string {
	return "customers"
}

// WishlistItemDTO represents one wishlisted product of a customer.
type WishlistItemDTO struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for wishlist entries.
// Overrides GORM's default naming convention to use "wishlist_items".
func (WishlistItemDTO) TableName() string {
	return "wishlist_items"
}

// SavedProductDTO represents one saved-for-later product of a customer.
type SavedProductDTO struct {
	CustomerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ProductID  uuid.UUID `gorm:"type:uuid;primaryKey"`
}

// TableName specifies the database table name for saved-for-later entries.
// Overrides GORM's default naming convention to use "saved_products".
func (SavedProductDTO) TableName() string {
	return "saved_products"
}

// fromDomain converts a customer domain aggregate to its database representation.
func fromDomain(aggregate *customer.Customer) (CustomerDTO, []WishlistItemDTO, []SavedProductDTO) {
	customerID := aggregate.ID().Bytes()

	wishlist := make([]WishlistItemDTO, 0, len(aggregate.Wishlist()))
	for _, productID := range aggregate.Wishlist() {
		wishlist = append(wishlist, WishlistItemDTO{
			CustomerID: customerID,
			ProductID:  productID.Bytes(),
		})
	}

	saved := make([]SavedProductDTO, 0, len(aggregate.SavedForLater()))
	for _, productID := range aggregate.SavedForLater() {
		saved = append(saved, SavedProductDTO{
			CustomerID: customerID,
			ProductID:  productID.Bytes(),
		})
	}

	return CustomerDTO{
		ID:      customerID,
		Name:    aggregate.Name(),
		Email:   aggregate.Email(),
		Address: aggregate.Address(),
	}, wishlist, saved
}

// toDomain converts database DTOs to a customer domain aggregate.
func toDomain(dto CustomerDTO, wishlistDTOs []WishlistItemDTO, savedDTOs []SavedProductDTO) (*customer.Customer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	wishlist, err := productIDs(len(wishlistDTOs), func(i int) uuid.UUID { return wishlistDTOs[i].ProductID })
	if err != nil {
		return nil, err
	}

	saved, err := productIDs(len(savedDTOs), func(i int) uuid.UUID { return savedDTOs[i].ProductID })
	if err != nil {
		return nil, err
	}

	return customer.RestoreCustomer(id, dto.Name, dto.Email, dto.Address, wishlist, saved)
}

func productIDs(count int, at func(int) uuid.UUID) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, count)
	for i := 0; i < count; i++ {
		raw := at(i)
		id, err := kernel.UUIDFromBytes(raw[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}
