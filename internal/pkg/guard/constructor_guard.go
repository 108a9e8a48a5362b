// Package guard provides a defensive construction pattern for value objects.
// Embedding a ConstructorGuard in a struct makes zero-value instances
// detectable: only values produced by the designated constructor pass
// validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a value as having been created through its
// constructor function. The zero value fails validation.
//
// Example:
//
//	type SignUpCommand struct {
//	    email string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSignUpCommand(email string) (SignUpCommand, error) {
//	    if email == "" {
//	        return SignUpCommand{}, errs.NewValueIsRequiredError("email")
//	    }
//	    return SignUpCommand{email: email, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (c SignUpCommand) Validate() error {
//	    return c.guard.Validate(ErrSignUpCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as
// properly constructed. Call it in every constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil if the object was created through its constructor.
// Otherwise it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
