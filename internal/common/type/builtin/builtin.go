// Released under an MIT license. See LICENSE.

// Package builtin provides lispc's primitive function type.
package builtin

import (
	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/env"
	"github.com/michaelmacinnis/lispc/internal/common/type/list"
)

// Name is the type name used in error messages. It is shared with closures.
const Name = "Function"

// Func is the signature for all primitive operations. A Func owns args and
// is responsible for checking their number and type.
type Func func(e *env.T, args *list.T) cell.I

// T (builtin) is a named reference to a primitive operation.
type T struct {
	id string
	fn Func
}

type builtin = T

// New creates a builtin identified by id.
func New(id string, fn Func) cell.I {
	return &builtin{id: id, fn: fn}
}

// Call invokes the primitive operation with the env e and arguments args.
func (b *builtin) Call(e *env.T, args *list.T) cell.I {
	return b.fn(e, args)
}

// Copy returns b. A builtin is never modified after it is created.
func (b *builtin) Copy() cell.I {
	return b
}

// Equal returns true if c is a builtin with the same id.
func (b *builtin) Equal(c cell.I) bool {
	return Is(c) && b.id == To(c).id
}

// ID returns the name the builtin was registered with.
func (b *builtin) ID() string {
	return b.id
}

// Name returns the type name for the builtin b.
func (b *builtin) Name() string {
	return Name
}

// String returns the printed form of the builtin b.
func (b *builtin) String() string {
	return "<builtin>"
}

// Is returns true if c is a builtin.
func Is(c cell.I) bool {
	_, ok := c.(*builtin)

	return ok
}

// To returns a *builtin if c is a builtin; Otherwise it panics.
func To(c cell.I) *builtin {
	if t, ok := c.(*builtin); ok {
		return t
	}

	panic("not a builtin")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t builtin

	// The builtin type is a cell.
	_ = cell.I(&t)
}
