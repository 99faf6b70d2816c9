// Released under an MIT license. See LICENSE.

// Package lexer provides a lexical scanner for the lispc language.
//
// The lispc lexer adapts the state function approach used by Go's
// text/template lexer and described in detail in Rob Pike's talk
// "Lexical Scanning in Go". See https://talks.golang.org/2011/lex.slide.
package lexer

import (
	"strings"
	"unicode/utf8"

	"github.com/michaelmacinnis/lispc/internal/common/struct/loc"
	"github.com/michaelmacinnis/lispc/internal/common/struct/token"
)

// T holds the state of the scanner.
type T struct {
	bytes string // Buffer being scanned.
	first int    // Index of the current token's first byte.
	index int    // Index of the current byte.
	runes int    // Column of the current rune.
	state action // Current action.

	source loc.T

	tokens chan *token.T
}

// New creates a new T. Label can be a file name or other identifier.
// Line is the line number of the first line scanned.
func New(label string, line int) *T {
	return &T{
		runes: 1,
		source: loc.T{
			Char: 1,
			Line: line,
			Name: label,
		},
		state:  skipWhitespace,
		tokens: make(chan *token.T, 2), //nolint:gomnd
	}
}

// Scan passes a text buffer to the lexer for scanning. The text is
// appended to anything not yet scanned.
func (l *T) Scan(text string) {
	l.bytes += text

	if l.state == nil {
		l.state = skipWhitespace
	}
}

// Text is used to return the text corresponding to the current token.
func (l *T) Text() string {
	return l.bytes[l.first:l.index]
}

// Token returns the next scanned token, or nil if no token is available.
func (l *T) Token() *token.T {
	for {
		select {
		case t := <-l.tokens:
			return t
		default:
			if l.state == nil {
				return nil
			}

			l.state = l.state(l)
		}
	}
}

type action func(*T) action

const eof = -1

// Characters that can be in a symbol or number.
const symbolic = "abcdefghijklmnopqrstuvwxyz" +
	"ABCDEFGHIJKLMNOPQRSTUVWXYZ" +
	"0123456789" +
	`_+-*/\=<>!&`

func (l *T) accept(r rune, w int) {
	if r == '\n' {
		// Because we update lines here, if we emit a newline
		// it will be reported as being part of the next line.
		// We fix this when emitting the newline.
		l.source.Line++
		l.runes = 1
	} else {
		l.runes++
	}

	l.index += w
}

func (l *T) emit(c token.Class, v string) {
	source := l.source
	if c == '\n' {
		// Report newline as part of previous line.
		source.Line--
	}

	l.tokens <- token.New(c, v, source)
	l.skip()
}

func (l *T) next() rune {
	r, w := l.peek()
	if r != eof {
		l.accept(r, w)
	}

	return r
}

func (l *T) peek() (rune, int) {
	if l.index >= len(l.bytes) {
		return eof, 0
	}

	return utf8.DecodeRuneInString(l.bytes[l.index:])
}

func (l *T) skip() {
	l.source.Char = l.runes
	l.first = l.index
}

// T states.

func scanSymbol(l *T) action {
	for {
		r, w := l.peek()
		if r == eof || !strings.ContainsRune(symbolic, r) {
			break
		}

		l.accept(r, w)
	}

	s := l.Text()
	if isNumber(s) {
		l.emit(token.Number, s)
	} else {
		l.emit(token.Symbol, s)
	}

	return skipWhitespace
}

func skipComment(l *T) action {
	for {
		r, w := l.peek()

		switch r {
		case eof:
			l.skip()

			return nil
		case '\n':
			l.skip()

			return skipWhitespace
		}

		l.accept(r, w)
	}
}

func skipWhitespace(l *T) action {
	for {
		r := l.next()

		switch r {
		case eof:
			return nil
		case '\r', '\t', ' ':
			l.skip()

			continue
		case '\n', '(', ')', '{', '}':
			l.emit(token.Class(r), l.Text())
		case ';':
			return skipComment
		default:
			if strings.ContainsRune(symbolic, r) {
				return scanSymbol
			}

			l.emit(token.Error, l.Text())
		}

		return skipWhitespace
	}
}

// Helper functions.

// isNumber returns true if s matches -?[0-9]+.
func isNumber(s string) bool {
	s = strings.TrimPrefix(s, "-")
	if s == "" {
		return false
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}
