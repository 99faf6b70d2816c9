// Released under an MIT license. See LICENSE.

// Package errmsg provides lispc's error value.
//
// Errors are ordinary values. They are produced by whatever detects a
// problem and travel back through normal returns. Nothing inspects an
// error beyond its type.
package errmsg

import (
	"fmt"

	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
)

// Name is the type name used in error messages.
const Name = "Error"

// T (errmsg) carries a formatted description of a failure.
type T struct {
	message string
}

type errmsg = T

// New creates an errmsg with a message formatted as by fmt.Sprintf.
func New(format string, args ...any) cell.I {
	return &errmsg{message: fmt.Sprintf(format, args...)}
}

// Copy returns e. An errmsg is never modified after it is created.
func (e *errmsg) Copy() cell.I {
	return e
}

// Equal returns true if c is an errmsg with the same message.
func (e *errmsg) Equal(c cell.I) bool {
	return Is(c) && e.message == To(c).message
}

// Message returns the message without the "Error: " prefix.
func (e *errmsg) Message() string {
	return e.message
}

// Name returns the type name for the errmsg e.
func (e *errmsg) Name() string {
	return Name
}

// String returns the printed form of the errmsg e.
func (e *errmsg) String() string {
	return "Error: " + e.message
}

// Is returns true if c is an errmsg.
func Is(c cell.I) bool {
	_, ok := c.(*errmsg)

	return ok
}

// To returns an *errmsg if c is an errmsg; Otherwise it panics.
func To(c cell.I) *errmsg {
	if t, ok := c.(*errmsg); ok {
		return t
	}

	panic("not an " + Name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t errmsg

	// The errmsg type is a cell.
	_ = cell.I(&t)
}
