// Released under an MIT license. See LICENSE.

// Package parser provides a recursive descent parser for the lispc language.
//
// The grammar is:
//
//	<line> ::= <expr>* '\n'
//	<expr> ::= Number | Symbol | '(' <expr>* ')' | '{' <expr>* '}'
//
// Newlines inside brackets are treated as spaces. Each line is emitted as
// a call node.
package parser

import (
	"errors"
	"fmt"

	"github.com/michaelmacinnis/lispc/internal/common/struct/token"
	"github.com/michaelmacinnis/lispc/internal/reader/syntax"
)

// ErrIncomplete is returned when the input ends inside brackets.
var ErrIncomplete = errors.New("incomplete expression")

// T holds the state of the parser.
type T struct {
	ahead int                // Lookahead count.
	emit  func(*syntax.Node) // Function to call to emit a parsed line.
	item  func() *token.T    // Function to call to get another token.
	token *token.T           // Token lookahead.
}

// New creates a new parser.
// It connects a producer of tokens with a consumer of syntax trees.
func New(emit func(*syntax.Node), item func() *token.T) *T {
	return &T{emit: emit, item: item}
}

// Parse consumes tokens and emits syntax trees until there are no more
// tokens. Lines without expressions are not emitted.
func (p *T) Parse() (err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}

		switch r := r.(type) {
		case error:
			err = r
		case string:
			err = errors.New(r)
		default:
			panic(r)
		}
	}()

	for t := p.peek(); t != nil; t = p.peek() {
		n := p.line()
		if len(n.Children) > 0 {
			p.emit(n)
		}
	}

	return nil
}

func (p *T) consume() *token.T {
	if p.ahead == 0 {
		panic("nothing to consume")
	}

	t := p.token

	p.ahead = 0
	p.token = nil

	return t
}

func (p *T) peek() *token.T {
	if p.ahead > 0 {
		return p.token
	}

	t := p.item()

	p.token = t
	p.ahead = 1

	return t
}

func (p *T) unexpected(t *token.T) {
	panic(fmt.Errorf("%s: unexpected '%s'", t.Source(), t.Value()))
}

// T state functions.

// <line> ::= <expr>* '\n' .
func (p *T) line() *syntax.Node {
	n := syntax.Branch(syntax.Call, *p.peek().Source())

	for t := p.peek(); t != nil; t = p.peek() {
		if t.Is('\n') {
			p.consume()

			break
		}

		n.Add(p.expr())
	}

	return n
}

// <expr> ::= Number | Symbol | '(' <expr>* ')' | '{' <expr>* '}' .
func (p *T) expr() *syntax.Node {
	t := p.peek()

	switch {
	case t.Is(token.Number):
		p.consume()

		return syntax.Leaf(syntax.Number, t.Value(), *t.Source())
	case t.Is(token.Symbol):
		p.consume()

		return syntax.Leaf(syntax.Symbol, t.Value(), *t.Source())
	case t.Is('('):
		return p.list(syntax.Call, ')')
	case t.Is('{'):
		return p.list(syntax.Quote, '}')
	}

	p.unexpected(t)

	return nil
}

func (p *T) list(tag string, closing token.Class) *syntax.Node {
	t := p.consume()

	n := syntax.Branch(tag, *t.Source())
	n.Add(syntax.Leaf(syntax.Delimiter, t.Value(), *t.Source()))

	for {
		t = p.peek()

		switch {
		case t == nil:
			panic(ErrIncomplete)
		case t.Is('\n'):
			p.consume()
		case t.Is(closing):
			p.consume()

			return n.Add(syntax.Leaf(syntax.Delimiter, t.Value(), *t.Source()))
		default:
			n.Add(p.expr())
		}
	}
}
