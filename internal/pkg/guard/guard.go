// Package guard lets domain types tell a value built by its constructor apart
// from a zero value assembled by hand.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller supplies no error of its own.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in aggregates and value objects. Only constructors
// set it, so a zero value fails Validate.
//
// Example:
//
//	var ErrSupplierNotConstructed = errors.New("Supplier must be created via NewSupplier")
//
//	type Supplier struct {
//	    name  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSupplier(name string) Supplier {
//	    return Supplier{name: name, guard: guard.NewConstructorGuard()}
//	}
//
//	func (s Supplier) Validate() error {
//	    return s.guard.Validate(ErrSupplierNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard marks the enclosing value as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for constructed values. Otherwise it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
