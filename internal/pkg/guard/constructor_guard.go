// Package guard lets value objects, commands and queries detect that they were
// built through their constructor instead of as a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the caller does not
// supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded as a private field; only NewConstructorGuard
// produces a guard that validates.
//
//	type ReceiveLotCommand struct {
//	    lotID string
//	    guard guard.ConstructorGuard
//	}
//
//	func (c ReceiveLotCommand) Validate() error {
//	    return c.guard.Validate(ErrReceiveLotCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when nil)
// for a zero-value guard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
