// Package guard provides the ConstructorGuard defensive pattern used to ensure
// value objects, commands, and queries are only created through their designated
// constructor functions.
//
// By embedding a ConstructorGuard in a struct, a zero-value instance can be
// distinguished from a properly constructed one: the guard's internal flag is only
// set by NewConstructorGuard, so Validate fails for anything built by direct
// struct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is the fallback error returned by Validate when a nil
// validation error is supplied. This ensures validation always fails with a
// meaningful message even if no specific error is provided.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed.
// Embed it in structs whose invariants are established by a constructor:
//
//	type SetItemFoundCommand struct {
//	    orderID kernel.UUID
//	    guard   guard.ConstructorGuard
//	}
//
//	func NewSetItemFoundCommand(orderID kernel.UUID) (SetItemFoundCommand, error) {
//	    ...
//	    return SetItemFoundCommand{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
//	}
//
// The zero value of ConstructorGuard fails validation.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
// Call it inside the constructor of the guarded type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guarded object was created through its
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
