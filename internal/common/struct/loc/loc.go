// Released under an MIT license. See LICENSE.

// Package loc provides the type used to track where tokens came from.
package loc

import (
	"strconv"
)

// T (loc) is a lexical location.
type T struct {
	Char int    // Column, counted in runes from 1.
	Line int    // Line number, counted from 1.
	Name string // Label for the source of this token.
}

type loc = T

// String returns the location as name:line:column.
func (l *loc) String() string {
	return l.Name + ":" + strconv.Itoa(l.Line) + ":" + strconv.Itoa(l.Char)
}
