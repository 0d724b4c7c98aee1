// Package guard provides ConstructorGuard, a marker embedded in value objects,
// entities and commands so that zero values created with a struct literal fail
// validation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing value was built by its constructor.
// The zero value reports "not constructed".
//
// Example:
//
//	type Slot struct {
//	    date  string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewSlot(date string) Slot {
//	    return Slot{date: date, guard: guard.NewConstructorGuard()}
//	}
//
//	func (s Slot) Validate() error {
//	    return s.guard.Validate(ErrSlotIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
