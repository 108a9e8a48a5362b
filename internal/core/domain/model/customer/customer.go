// Package customer contains the customer aggregate: account identity,
// delivery addresses, and the wishlist and saved-for-later product sets.
package customer

import (
	"errors"
	"strings"

	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/pkg/errs"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was not
	// created through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New(
		"Customer must be created via NewCustomer or RestoreCustomer constructor")

	// ErrNameIsRequired is returned when an account has no display name.
	ErrNameIsRequired = errors.New("name is required")

	// ErrEmailIsInvalid is returned when the email fails the minimal shape check.
	ErrEmailIsInvalid = errors.New("email is invalid")
)

// Customer is a registered account.
type Customer struct {
	id            kernel.UUID
	name          string
	email         string
	address       string
	wishlist      []kernel.UUID
	savedForLater []kernel.UUID

	isConstructed bool
}

// NewCustomer registers an account. Email uniqueness is enforced by the
// repository; here only the shape is checked.
func NewCustomer(id kernel.UUID, name, email string) (*Customer, error) {
	c := &Customer{isConstructed: true}

	if err := errors.Join(
		c.setID(id),
		c.setName(name),
		c.setEmail(email),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer reconstructs an account from persistence.
func RestoreCustomer(
	id kernel.UUID,
	name, email, address string,
	wishlist, savedForLater []kernel.UUID,
) (*Customer, error) {
	c, err := NewCustomer(id, name, email)
	if err != nil {
		return nil, err
	}
	c.address = address
	c.wishlist = wishlist
	c.savedForLater = savedForLater
	return c, nil
}

// Validate ensures the instance was created through a constructor.
func (c *Customer) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCustomerIsNotConstructed
	}
	return nil
}

func (c *Customer) ID() kernel.UUID { return c.id }
func (c *Customer) Name() string    { return c.name }
func (c *Customer) Email() string   { return c.email }
func (c *Customer) Address() string { return c.address }

// Wishlist returns the wishlisted product IDs. Callers must not mutate it.
func (c *Customer) Wishlist() []kernel.UUID { return c.wishlist }

// SavedForLater returns the saved-for-later product IDs. Callers must not mutate it.
func (c *Customer) SavedForLater() []kernel.UUID { return c.savedForLater }

// UpdateProfile changes the display name and delivery address.
func (c *Customer) UpdateProfile(name, address string) error {
	if err := c.setName(name); err != nil {
		return err
	}
	c.address = address
	return nil
}

// AddToWishlist records a product. Adding it twice is a no-op.
func (c *Customer) AddToWishlist(productID kernel.UUID) error {
	return addToSet(&c.wishlist, productID)
}

// RemoveFromWishlist drops a product; removing an absent one is a no-op.
func (c *Customer) RemoveFromWishlist(productID kernel.UUID) error {
	return removeFromSet(&c.wishlist, productID)
}

// SaveForLater records a product in the saved-for-later set.
func (c *Customer) SaveForLater(productID kernel.UUID) error {
	return addToSet(&c.savedForLater, productID)
}

// RemoveSavedProduct drops a product from the saved-for-later set.
func (c *Customer) RemoveSavedProduct(productID kernel.UUID) error {
	return removeFromSet(&c.savedForLater, productID)
}

func addToSet(set *[]kernel.UUID, productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	for _, id := range *set {
		if id.IsEqual(productID) {
			return nil
		}
	}
	*set = append(*set, productID)
	return nil
}

func removeFromSet(set *[]kernel.UUID, productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	for idx, id := range *set {
		if id.IsEqual(productID) {
			*set = append((*set)[:idx], (*set)[idx+1:]...)
			return nil
		}
	}
	return nil
}

func (c *Customer) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Customer) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Customer) setEmail(email string) error {
	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errs.NewValueIsInvalidErrorWithCause("email", ErrEmailIsInvalid)
	}
	c.email = strings.ToLower(email)
	return nil
}
