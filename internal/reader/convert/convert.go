// Released under an MIT license. See LICENSE.

// Package convert turns syntax trees into lispc values.
package convert

import (
	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/list"
	"github.com/michaelmacinnis/lispc/internal/common/type/num"
	"github.com/michaelmacinnis/lispc/internal/common/type/sym"
	"github.com/michaelmacinnis/lispc/internal/reader/syntax"
)

// Cell converts the syntax tree n into a cell. Delimiters are dropped.
// A number too large to represent becomes an error cell.
func Cell(n *syntax.Node) cell.I {
	var l *list.T

	switch n.Tag {
	case syntax.Number:
		return num.Parse(n.Contents)
	case syntax.Symbol:
		return sym.New(n.Contents)
	case syntax.Call:
		l = list.Call()
	case syntax.Quote:
		l = list.Quote()
	default:
		panic("cannot convert " + n.Tag)
	}

	for _, c := range n.Children {
		if c.Tag == syntax.Delimiter {
			continue
		}

		l.Append(Cell(c))
	}

	return l
}
