// Package guard provides a lightweight mechanism to enforce that domain
// objects are created through their constructors rather than as zero values.
//
// A ConstructorGuard is embedded (by value) into commands, queries, and
// aggregates. The zero value of the guard is invalid; only the constructor
// of the owning type, by calling NewConstructorGuard, produces a valid one.
// Validate then distinguishes properly constructed objects from zero values.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no custom error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as constructed through its factory
// function. The zero value is invalid, which is the whole point: a struct
// literal or var declaration bypassing the constructor fails Validate.
//
// ConstructorGuard is immutable and safe for concurrent use.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard creates a valid guard. Call this only from the
// constructor of the owning type.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil if the guard was created via NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, or
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.constructed {
		return nil
	}
	if notConstructedErr == nil {
		return ErrDefaultConstructorGuard
	}
	return notConstructedErr
}
