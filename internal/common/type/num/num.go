// Released under an MIT license. See LICENSE.

// Package num provides lispc's integer number type.
package num

import (
	"strconv"

	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/errmsg"
)

// Name is the type name used in error messages.
const Name = "Number"

// T (num) wraps Go's int64 type.
type T int64

type num = T

// New creates a new num cell.
func New(i int64) cell.I {
	n := num(i)

	return &n
}

// Parse creates a num from its decimal literal. A literal that does not
// fit in 64 bits produces an error cell instead.
func Parse(s string) cell.I {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errmsg.New("invalid number")
	}

	return New(i)
}

// Copy returns n. A num is never modified after it is created.
func (n *num) Copy() cell.I {
	return n
}

// Equal returns true if c is the same number as the num n.
func (n *num) Equal(c cell.I) bool {
	return Is(c) && n.Int() == To(c).Int()
}

// Int returns the value of the num n as an int64.
func (n *num) Int() int64 {
	return int64(*n)
}

// Name returns the type name for the num n.
func (n *num) Name() string {
	return Name
}

// String returns the decimal text of the num n.
func (n *num) String() string {
	return strconv.FormatInt(n.Int(), 10)
}

// Is returns true if c is a num.
func Is(c cell.I) bool {
	_, ok := c.(*num)

	return ok
}

// To returns a *num if c is a num; Otherwise it panics.
func To(c cell.I) *num {
	if t, ok := c.(*num); ok {
		return t
	}

	panic("not a " + Name)
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t num

	// The num type is a cell.
	_ = cell.I(&t)
}
