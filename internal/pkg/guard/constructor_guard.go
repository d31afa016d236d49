// Package guard detects value objects and commands that were created as zero
// values instead of through their constructor.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded into structs whose zero value is not valid.
// Only NewConstructorGuard sets the flag, so a struct literal built outside
// the owning package fails Validate.
//
// Example:
//
//	type AssignOrdersCommand struct {
//	    guard guard.ConstructorGuard
//	}
//
//	func NewAssignOrdersCommand() AssignOrdersCommand {
//	    return AssignOrdersCommand{guard: guard.NewConstructorGuard()}
//	}
//
//	func (c AssignOrdersCommand) Validate() error {
//	    return c.guard.Validate(ErrAssignOrdersCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking its owner as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value, and nil otherwise.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
