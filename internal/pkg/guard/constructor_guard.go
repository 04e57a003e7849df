// Package guard provides the constructor-guard pattern used by domain objects
// to detect zero-value instances that bypassed their constructor functions.
//
// Embedding a ConstructorGuard in a struct lets Validate methods distinguish
// objects built through the designated constructor from ones created as plain
// zero values, keeping domain invariants intact.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific
// validation error is supplied and the object was not constructed properly.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value fails validation, so any struct embedding a guard must be
// built via a constructor that calls NewConstructorGuard.
//
// Example:
//
//	type Payment struct {
//	    amount int
//	    guard  guard.ConstructorGuard
//	}
//
//	func NewPayment(amount int) (Payment, error) {
//	    if amount <= 0 {
//	        return Payment{}, errors.New("amount must be positive")
//	    }
//	    return Payment{amount: amount, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Payment) Validate() error {
//	    return p.guard.Validate(ErrPaymentIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the enclosing object as
// properly constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the enclosing object was built via its
// constructor. Otherwise it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
