// Package storerepo provides data transfer objects and mapping functions for store persistence.
// This package implements the repository pattern for the store domain aggregate, handling
// the conversion between domain entities and database representations.
package storerepo

import (
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/store"

	"github.com/google/uuid"
)

// StoreDTO represents the database structure for persisting store aggregates.
// Soft deletion is modeled with a nullable deleted_at timestamp so closed
// stores remain readable for historical order views.
type StoreDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description string    `gorm:"type:text"`
	DeletedAt   *time.Time
}

// TableName specifies the database table name for store entities.
// Overrides GORM's default naming convention to use "stores".
func (StoreDTO) TableName() string {
	return "stores"
}

// fromDomain converts a store domain aggregate to its database representation.
func fromDomain(aggregate *store.Store) StoreDTO {
	return StoreDTO{
		ID:          aggregate.ID().Bytes(),
		OwnerID:     aggregate.OwnerID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		DeletedAt:   aggregate.DeletedAt(),
	}
}

// toDomain converts a database DTO to a store domain aggregate.
func toDomain(dto StoreDTO) (*store.Store, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	ownerID, err := kernel.UUIDFromBytes(dto.OwnerID[:])
	if err != nil {
		return nil, err
	}

	return store.RestoreStore(id, ownerID, dto.Name, dto.Description, dto.DeletedAt)
}
