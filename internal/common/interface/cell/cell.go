// Released under an MIT license. See LICENSE.

// Package cell defines the interface for all lispc values.
package cell

// I (cell) is the basic unit of storage in lispc.
//
// The set of types that satisfy I is closed: numbers, errors, symbols,
// builtins, closures and lists. Code that consumes a cell switches over
// those concrete types.
type I interface {
	// Copy returns a value that shares no mutable state with the original.
	Copy() I
	Equal(c I) bool
	Name() string
	String() string
}
