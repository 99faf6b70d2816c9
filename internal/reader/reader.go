// Released under an MIT license. See LICENSE.

// Package reader turns lines of lispc source into values.
package reader

import (
	"errors"
	"strings"

	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/reader/convert"
	"github.com/michaelmacinnis/lispc/internal/reader/lexer"
	"github.com/michaelmacinnis/lispc/internal/reader/parser"
	"github.com/michaelmacinnis/lispc/internal/reader/syntax"
)

// T (reader) encapsulates the lispc lexer and parser. It holds on to
// lines that end inside brackets until the brackets are closed.
type T struct {
	line    int             // Line number of the first pending line.
	name    string          // Label used in error messages.
	pending strings.Builder // Lines not yet parsed.
	lines   int             // Number of pending lines.
}

type reader = T

// New creates a new reader for name.
func New(name string) *T {
	return &T{line: 1, name: name}
}

// Pending returns true if the reader holds an incomplete command.
func (r *reader) Pending() bool {
	return r.lines > 0
}

// Reset discards any incomplete command.
func (r *reader) Reset() {
	r.line += r.lines
	r.lines = 0
	r.pending.Reset()
}

// Scan reads text one line at a time and returns a cell for each complete
// command. An incomplete command is held until a later call completes it.
// If scan encounters a syntax error it discards the offending command and
// returns the error along with the commands read before it.
func (r *reader) Scan(text string) ([]cell.I, error) {
	text = strings.TrimSuffix(text, "\n")

	var cs []cell.I

	for _, line := range strings.Split(text, "\n") {
		c, err := r.scan(line)
		if err != nil {
			return cs, err
		}

		cs = append(cs, c...)
	}

	return cs, nil
}

func (r *reader) parse(line string) ([]*syntax.Node, error) {
	r.pending.WriteString(line)
	r.pending.WriteByte('\n')
	r.lines++

	l := lexer.New(r.name, r.line)
	l.Scan(r.pending.String())

	var ns []*syntax.Node

	err := parser.New(func(n *syntax.Node) {
		ns = append(ns, n)
	}, l.Token).Parse()
	if errors.Is(err, parser.ErrIncomplete) {
		return nil, nil
	}

	r.Reset()

	return ns, err
}

func (r *reader) scan(line string) ([]cell.I, error) {
	ns, err := r.parse(line)

	cs := make([]cell.I, len(ns))
	for i, n := range ns {
		cs[i] = convert.Cell(n)
	}

	return cs, err
}
