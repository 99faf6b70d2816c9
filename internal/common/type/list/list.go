// Released under an MIT license. See LICENSE.

// Package list provides lispc's two list types.
//
// An S-expression (call list) is evaluated as the application of its first
// element to the rest. A Q-expression (quote list) is never evaluated.
// Both share one representation and differ only in a tag, so converting
// one into the other is cheap.
package list

import (
	"strings"

	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
)

// Type names used in error messages.
const (
	CallName  = "S-Expression"
	QuoteName = "Q-Expression"
)

// T (list) is an ordered sequence of cells.
type T struct {
	cells  []cell.I
	quoted bool
}

type list = T

// Call creates a new call list composed of all of the elements in cells.
func Call(cells ...cell.I) *list {
	return &list{cells: cells}
}

// Quote creates a new quote list composed of all of the elements in cells.
func Quote(cells ...cell.I) *list {
	return &list{cells: cells, quoted: true}
}

// Append adds each cell in cells to the end of the list l.
func (l *list) Append(cells ...cell.I) *list {
	l.cells = append(l.cells, cells...)

	return l
}

// AsCall rewrites the list l as a call list and returns it.
func (l *list) AsCall() *list {
	l.quoted = false

	return l
}

// AsQuote rewrites the list l as a quote list and returns it.
func (l *list) AsQuote() *list {
	l.quoted = true

	return l
}

// Cell returns the i-th element of the list l.
func (l *list) Cell(i int) cell.I {
	return l.cells[i]
}

// Cells returns the elements of the list l. The slice is not a copy.
func (l *list) Cells() []cell.I {
	return l.cells
}

// Copy returns a deep copy of the list l.
func (l *list) Copy() cell.I {
	return l.Clone()
}

// Clone is Copy without the loss of the concrete type.
func (l *list) Clone() *list {
	c := &list{
		cells:  make([]cell.I, len(l.cells)),
		quoted: l.quoted,
	}

	for i, v := range l.cells {
		c.cells[i] = v.Copy()
	}

	return c
}

// Equal returns true if c is a list of the same kind with equal elements.
func (l *list) Equal(c cell.I) bool {
	if !Is(c) {
		return false
	}

	o := To(c)
	if l.quoted != o.quoted || len(l.cells) != len(o.cells) {
		return false
	}

	for i, v := range l.cells {
		if !v.Equal(o.cells[i]) {
			return false
		}
	}

	return true
}

// Join moves every element of o onto the end of the list l.
// The list o is left empty.
func (l *list) Join(o *list) *list {
	l.cells = append(l.cells, o.cells...)
	o.cells = nil

	return l
}

// Len returns the number of elements in the list l.
func (l *list) Len() int {
	return len(l.cells)
}

// Name returns the type name for the list l.
func (l *list) Name() string {
	if l.quoted {
		return QuoteName
	}

	return CallName
}

// Pop removes and returns the i-th element of the list l.
func (l *list) Pop(i int) cell.I {
	c := l.cells[i]

	l.cells = append(l.cells[:i:i], l.cells[i+1:]...)

	return c
}

// Quoted returns true if l is a quote list.
func (l *list) Quoted() bool {
	return l.quoted
}

// Set replaces the i-th element of the list l with c.
func (l *list) Set(i int, c cell.I) {
	l.cells[i] = c
}

// String returns the printed form of the list l.
func (l *list) String() string {
	start, end := "(", ")"
	if l.quoted {
		start, end = "{", "}"
	}

	s := make([]string, len(l.cells))
	for i, v := range l.cells {
		s[i] = v.String()
	}

	return start + strings.Join(s, " ") + end
}

// Functions specific to list.

// Is returns true if c is a list of either kind.
func Is(c cell.I) bool {
	_, ok := c.(*list)

	return ok
}

// IsCall returns true if c is a call list.
func IsCall(c cell.I) bool {
	l, ok := c.(*list)

	return ok && !l.quoted
}

// IsQuote returns true if c is a quote list.
func IsQuote(c cell.I) bool {
	l, ok := c.(*list)

	return ok && l.quoted
}

// To returns a *list if c is a list; Otherwise it panics.
func To(c cell.I) *list {
	if t, ok := c.(*list); ok {
		return t
	}

	panic("not a list")
}

// A compiler-checked list of interfaces this type satisfies. Never called.
func implements() { //nolint:deadcode,unused
	var t list

	// The list type is a cell.
	_ = cell.I(&t)
}
