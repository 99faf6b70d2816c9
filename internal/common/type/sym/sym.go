// Released under an MIT license. See LICENSE.

// Package sym provides lispc's symbol cell type.
package sym

import (
	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
)

// Name is the type name used in error messages.
const Name = "Symbol"

// T (sym) wraps Go's string type.
type T string

type sym = T

// New creates a sym cell.
func New(v string) cell.I {
	s := sym(v)

	return &s
}

// Copy returns s. A sym is never modified after it is created.
func (s *sym) Copy() cell.I {
	return s
}

// Equal returns true if c is a sym and wraps the same string.
func (s *sym) Equal(c cell.I) bool {
	return Is(c) && s.String() == To(c).String()
}

// Name returns the type name for the sym s.
func (s *sym) Name() string {
	return Name
}

// String returns the text of the sym s.
func (s *sym) String() string {
	return string(*s)
}

// Is returns true if c is a sym.
func Is(c cell.I) bool {
	_, ok := c.(*sym)

	return ok
}

// To returns a *sym if c is a sym; Otherwise it panics.
func To(c cell.I) *sym {
	if t, ok := c.(*sym); ok {
		return t
	}

	panic("not a " + Name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t sym

	// The sym type is a cell.
	_ = cell.I(&t)
}
