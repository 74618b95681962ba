// Package guard provides a small helper for enforcing that domain objects
// are created through their constructor functions rather than as zero values.
//
// A ConstructorGuard is embedded (by value) into a struct; constructors set
// it with NewConstructorGuard, and Validate reports the supplied error for
// any instance that bypassed the constructor. This keeps validation logic in
// one place for commands, queries, and value objects alike.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a zero
// value and no object-specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks a struct as having been built by its constructor.
// The zero value is invalid; NewConstructorGuard returns a valid guard.
type ConstructorGuard struct {
	constructed bool
}

// NewConstructorGuard returns a guard marking its holder as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{constructed: true}
}

// Validate returns nil for a constructed guard. For a zero-value guard it
// returns notConstructed, or ErrDefaultConstructorGuard when notConstructed
// is nil.
func (g ConstructorGuard) Validate(notConstructed error) error {
	if g.constructed {
		return nil
	}
	if notConstructed != nil {
		return notConstructed
	}
	return ErrDefaultConstructorGuard
}
