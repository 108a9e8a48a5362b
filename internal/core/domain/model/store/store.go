// Package store contains the store aggregate. A store is owned by exactly
// one customer; every product or store mutation is gated on that ownership.
package store

import (
	"errors"
	"time"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrStoreIsNotConstructed is returned when a Store instance was not
	// created through NewStore or RestoreStore.
	ErrStoreIsNotConstructed = errors.New("Store must be created via NewStore or RestoreStore constructor")

	// ErrNameIsRequired is returned when a store is created without a name.
	ErrNameIsRequired = errors.New("name is required")

	// ErrStoreIsDeleted is returned when mutating a soft-deleted store.
	ErrStoreIsDeleted = errors.New("store is deleted")
)

// Store groups products under a single owner.
type Store struct {
	id          kernel.UUID
	ownerID     kernel.UUID
	name        string
	description string
	deletedAt   *time.Time

	isConstructed bool
}

// NewStore creates a store owned by the given customer.
func NewStore(id, ownerID kernel.UUID, name, description string) (*Store, error) {
	s := &Store{isConstructed: true}

	if err := errors.Join(
		s.setID(id),
		s.setOwnerID(ownerID),
		s.setName(name),
	); err != nil {
		return nil, err
	}
	s.description = description

	return s, nil
}

// RestoreStore reconstructs a store from persistence.
func RestoreStore(id, ownerID kernel.UUID, name, description string, deletedAt *time.Time) (*Store, error) {
	s, err := NewStore(id, ownerID, name, description)
	if err != nil {
		return nil, err
	}
	s.deletedAt = deletedAt
	return s, nil
}

// Validate ensures the instance was created through a constructor.
func (s *Store) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrStoreIsNotConstructed
	}
	return nil
}

func (s *Store) ID() kernel.UUID       { return s.id }
func (s *Store) OwnerID() kernel.UUID  { return s.ownerID }
func (s *Store) Name() string          { return s.name }
func (s *Store) Description() string   { return s.description }
func (s *Store) DeletedAt() *time.Time { return s.deletedAt }

// IsDeleted reports whether the store has been soft-deleted.
func (s *Store) IsDeleted() bool {
	return s.deletedAt != nil
}

// EnsureOwnedBy returns an unauthorized error unless the caller owns
// the store. Every owner-gated operation calls this first.
func (s *Store) EnsureOwnedBy(callerID kernel.UUID) error {
	if !s.ownerID.IsEqual(callerID) {
		return errs.NewUnauthorizedError("store")
	}
	return nil
}

// Update changes the store's name and description.
func (s *Store) Update(name, description string) error {
	if s.IsDeleted() {
		return ErrStoreIsDeleted
	}
	if err := s.setName(name); err != nil {
		return err
	}
	s.description = description
	return nil
}

// MarkDeleted soft-deletes the store. Deleting twice is a no-op.
func (s *Store) MarkDeleted(now time.Time) {
	if s.deletedAt == nil {
		s.deletedAt = &now
	}
}

func (s *Store) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Store) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	s.ownerID = ownerID
	return nil
}

func (s *Store) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	s.name = name
	return nil
}
