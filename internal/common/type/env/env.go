// Released under an MIT license. See LICENSE.

// Package env provides lispc's environment type.
package env

import (
	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/struct/hash"
	"github.com/michaelmacinnis/lispc/internal/common/type/errmsg"
)

// T (env) maps names to values and links to an enclosing env.
// An env without an enclosing env is the global env.
type T struct {
	previous *T
	bindings *hash.T
}

type env = T

// New creates a new env enclosed by previous, which may be nil.
func New(previous *T) *env {
	return &env{
		previous: previous,
		bindings: hash.New(),
	}
}

// Clone creates a copy of the env e with a copy of every value.
// The clone shares e's enclosing env.
func (e *env) Clone() *env {
	return &env{
		previous: e.previous,
		bindings: e.bindings.Copy(),
	}
}

// Def associates the name k with a copy of v in the global env.
func (e *env) Def(k string, v cell.I) {
	e.Root().Put(k, v)
}

// Enclosing returns the enclosing env.
func (e *env) Enclosing() *env {
	return e.previous
}

// Lookup returns a copy of the value associated with the name k in the
// env e or the first env in its chain of enclosing envs that has one.
func (e *env) Lookup(k string) cell.I {
	for s := e; s != nil; s = s.previous {
		if v := s.bindings.Get(k); v != nil {
			return v.Copy()
		}
	}

	return errmsg.New("unbound symbol '%s'", k)
}

// Names returns the names defined directly in the env e.
func (e *env) Names() []string {
	return e.bindings.Names()
}

// Put associates the name k with a copy of v in the env e. Enclosing envs
// are never modified.
func (e *env) Put(k string, v cell.I) {
	e.bindings.Set(k, v.Copy())
}

// Root returns the global env at the end of e's chain of enclosing envs.
func (e *env) Root() *env {
	for e.previous != nil {
		e = e.previous
	}

	return e
}

// SetEnclosing makes previous the enclosing env for e.
func (e *env) SetEnclosing(previous *T) {
	e.previous = previous
}

// Size returns the number of names defined directly in the env e.
func (e *env) Size() int {
	return e.bindings.Size()
}
