// Released under an MIT license. See LICENSE.

// Package closure provides lispc's user-defined function type.
package closure

import (
	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/builtin"
	"github.com/michaelmacinnis/lispc/internal/common/type/env"
	"github.com/michaelmacinnis/lispc/internal/common/type/errmsg"
	"github.com/michaelmacinnis/lispc/internal/common/type/list"
	"github.com/michaelmacinnis/lispc/internal/common/type/sym"
)

// Variadic is the formal parameter that collects any remaining arguments.
const Variadic = "&"

// Outcome is the result of binding arguments to a closure.
type Outcome int

// Binding outcomes.
const (
	// Failed means the arguments could not be bound. The closure is spent.
	Failed Outcome = iota

	// Partial means formals remain. The closure is a new function value.
	Partial

	// Saturated means every formal is bound and the body can be evaluated.
	Saturated
)

// T (closure) pairs formals and a body with the env that holds the
// arguments bound so far. The env belongs to the closure alone.
type T struct {
	body    *list.T
	env     *env.T
	formals *list.T
}

type closure = T

// New creates a closure. Formals must be a list of symbols.
func New(formals, body *list.T) cell.I {
	return &closure{
		body:    body.AsQuote(),
		env:     env.New(nil),
		formals: formals.AsQuote(),
	}
}

// Bind binds as many of args to the closure c's formals as possible.
// On Failed the returned cell is an error.
func (c *closure) Bind(args *list.T) (Outcome, cell.I) {
	provided, expected := args.Len(), c.formals.Len()

	for args.Len() > 0 {
		if c.formals.Len() == 0 {
			return Failed, errmsg.New(
				"too many arguments: got %d, expected %d",
				provided, expected,
			)
		}

		k := c.pop()
		if k == Variadic {
			if c.formals.Len() != 1 {
				return Failed, errmsg.New("invalid variadic form")
			}

			c.env.Put(c.pop(), list.Quote(args.Cells()...))

			return Saturated, nil
		}

		c.env.Put(k, args.Pop(0))
	}

	// Nothing left for '&' to collect.
	if c.formals.Len() > 0 && c.formal(0) == Variadic {
		if c.formals.Len() != 2 { //nolint:gomnd
			return Failed, errmsg.New("invalid variadic form")
		}

		c.pop()
		c.env.Put(c.pop(), list.Quote())
	}

	if c.formals.Len() > 0 {
		return Partial, nil
	}

	return Saturated, nil
}

// Body returns the body of the closure c.
func (c *closure) Body() *list.T {
	return c.body
}

// Copy returns a deep copy of the closure c, including its env.
func (c *closure) Copy() cell.I {
	return &closure{
		body:    c.body.Clone(),
		env:     c.env.Clone(),
		formals: c.formals.Clone(),
	}
}

// Env returns the env owned by the closure c.
func (c *closure) Env() *env.T {
	return c.env
}

// Equal returns true if c is a closure with the same formals and body.
func (c *closure) Equal(o cell.I) bool {
	return Is(o) && c.formals.Equal(To(o).formals) && c.body.Equal(To(o).body)
}

// Formals returns the formals of the closure c that are still unbound.
func (c *closure) Formals() *list.T {
	return c.formals
}

// Name returns the type name for the closure c.
func (c *closure) Name() string {
	return builtin.Name
}

// String returns the printed form of the closure c.
func (c *closure) String() string {
	return `(\ ` + c.formals.String() + " " + c.body.String() + ")"
}

func (c *closure) formal(i int) string {
	return sym.To(c.formals.Cell(i)).String()
}

func (c *closure) pop() string {
	return sym.To(c.formals.Pop(0)).String()
}

// Is returns true if c is a closure.
func Is(c cell.I) bool {
	_, ok := c.(*closure)

	return ok
}

// To returns a *closure if c is a closure; Otherwise it panics.
func To(c cell.I) *closure {
	if t, ok := c.(*closure); ok {
		return t
	}

	panic("not a closure")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t closure

	// The closure type is a cell.
	_ = cell.I(&t)
}
