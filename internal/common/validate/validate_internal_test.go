// Released under an MIT license. See LICENSE.

package validate

import (
	"testing"

	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/list"
	"github.com/michaelmacinnis/lispc/internal/common/type/num"
	"github.com/michaelmacinnis/lispc/internal/common/type/sym"
)

func expect(t *testing.T, got cell.I, want string) {
	t.Helper()

	switch {
	case want == "" && got != nil:
		t.Fatalf("expected no error; got %v", got)
	case want != "" && got == nil:
		t.Fatalf("expected %q; got no error", want)
	case want != "" && got.String() != want:
		t.Fatalf("expected %q; got %q", want, got)
	}
}

func TestFixed(t *testing.T) {
	args := list.Call(num.New(1))

	expect(t, Fixed("head", args, 1), "")
	expect(t, Fixed("head", args, 2),
		"Error: function 'head' passed incorrect number of arguments: got 1, expected 2")
}

func TestVariadic(t *testing.T) {
	expect(t, Variadic("+", list.Call(num.New(1)), 1), "")
	expect(t, Variadic("+", list.Call(), 1),
		"Error: function '+' passed too few arguments: got 0, expected at least 1")
}

func TestTypeAndAll(t *testing.T) {
	args := list.Call(num.New(1), list.Quote())

	expect(t, Type("+", args, 0, num.Is, num.Name), "")
	expect(t, All("+", args, num.Is, num.Name),
		"Error: function '+' passed incorrect type for argument 1: got Q-Expression, expected Number")
}

func TestNotEmpty(t *testing.T) {
	expect(t, NotEmpty("tail", list.Call(list.Quote(num.New(1))), 0), "")
	expect(t, NotEmpty("tail", list.Call(list.Quote()), 0),
		"Error: function 'tail' passed {} for argument 0")
}

func TestSymbols(t *testing.T) {
	expect(t, Symbols("def", list.Quote(sym.New("a"), sym.New("b"))), "")
	expect(t, Symbols("def", list.Quote(sym.New("a"), num.New(1))),
		"Error: function 'def' cannot define non-symbol: got Number, expected Symbol")
}

func TestFirst(t *testing.T) {
	calls := 0
	check := func(c cell.I) func() cell.I {
		return func() cell.I {
			calls++

			return c
		}
	}

	args := list.Call()
	err := Fixed("f", args, 1)

	expect(t, First(check(nil), check(err), check(num.New(0))), err.String())

	if calls != 2 {
		t.Fatalf("expected First to stop after the first error; made %d calls", calls)
	}
}
