// Released under an MIT license. See LICENSE.

package engine

import (
	"errors"
	"strings"
	"testing"

	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/reader/parser"
)

func setup(t *testing.T, opts ...Option) *T {
	t.Helper()

	e, err := New(opts...)
	if err != nil {
		t.Fatalf("cannot create engine: %v", err)
	}

	return e
}

// run evaluates src and returns the printed form of each result.
func run(t *testing.T, e *T, src string) []string {
	t.Helper()

	var out []string

	err := e.Run("test", strings.NewReader(src), func(c cell.I) {
		out = append(out, c.String())
	})
	if err != nil {
		t.Fatalf("%q: %v", src, err)
	}

	return out
}

type example struct {
	src  string
	want string
}

// check evaluates each example in order with the same engine. Each want is
// the printed form of the last result.
func check(t *testing.T, e *T, examples []example) {
	t.Helper()

	for _, ex := range examples {
		out := run(t, e, ex.src)
		if len(out) == 0 {
			t.Fatalf("%q: expected a result", ex.src)
		}

		if got := out[len(out)-1]; got != ex.want {
			t.Fatalf("%q: expected %q; got %q", ex.src, ex.want, got)
		}
	}
}

func TestArithmetic(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{"+ 1 2 3", "6"},
		{"- 10 1 2", "7"},
		{"- 5", "-5"},
		{"* 2 3 4", "24"},
		{"/ 7 2", "3"},
		{"/ -7 2", "-3"},
		{"+ 1 (* 2 3) (- 10 4)", "13"},
		{"/ 1 0", "Error: Division by zero!"},
		{"+ 1 {}", "Error: function '+' passed incorrect type for argument 1: got Q-Expression, expected Number"},
		{"+", "<builtin>"},
		{"(+)", "<builtin>"},
		{"9223372036854775808", "Error: invalid number"},
	})
}

func TestAtomsAndLists(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{"5", "5"},
		{"(5)", "5"},
		{"()", "()"},
		{"{}", "{}"},
		{"{1 2 (+ 3 4)}", "{1 2 (+ 3 4)}"},
		{"((+ 1 2))", "3"},
		{"1 2", "Error: expected function, got Number"},
		{"x", "Error: unbound symbol 'x'"},
		{"+ 1 x", "Error: unbound symbol 'x'"},
	})
}

func TestListFunctions(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{"list 1 2 3", "{1 2 3}"},
		{"list", "<builtin>"},
		{"(list)", "<builtin>"},
		{"head {1 2 3}", "{1}"},
		{"tail {1 2 3}", "{2 3}"},
		{"tail {1}", "{}"},
		{"join {1 2} {3} {}", "{1 2 3}"},
		{"eval {+ 1 2}", "3"},
		{"eval (head {(+ 1 2) 4})", "3"},
		{"eval {}", "()"},
		{"head {}", "Error: function 'head' passed {} for argument 0"},
		{"tail {}", "Error: function 'tail' passed {} for argument 0"},
		{"head {1} {2}", "Error: function 'head' passed incorrect number of arguments: got 2, expected 1"},
		{"head 1", "Error: function 'head' passed incorrect type for argument 0: got Number, expected Q-Expression"},
		{"join {1} 2", "Error: function 'join' passed incorrect type for argument 1: got Number, expected Q-Expression"},
		{"eval 1", "Error: function 'eval' passed incorrect type for argument 0: got Number, expected Q-Expression"},
	})
}

func TestDefinitions(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{"def {x y} 1 2", "()"},
		{"+ x y", "3"},
		{"def {a} {x y}", "()"},
		{"a", "{x y}"},
		{"def (head a) 10", "()"},
		{"x", "10"},
		{"= {z} 5", "()"},
		{"z", "5"},
		{"def {1} 2", "Error: function 'def' cannot define non-symbol: got Number, expected Symbol"},
		{"def {p q} 1", "Error: function 'def' passed mismatched symbols and values: got 2 symbols, expected 1"},
		{"p", "Error: unbound symbol 'p'"},
		{"def 1 2", "Error: function 'def' passed incorrect type for argument 0: got Number, expected Q-Expression"},
	})
}

func TestLambda(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{`\ {x y} {+ x y}`, `(\ {x y} {+ x y})`},
		{`(\ {x y} {+ x y}) 10 20`, "30"},
		{`def {add} (\ {x y} {+ x y})`, "()"},
		{"add 1 2", "3"},
		{"add 1", `(\ {y} {+ x y})`},
		{"(add 1) 2", "3"},
		{"add 1 2 3", "Error: too many arguments: got 3, expected 2"},
		{`\ {1} {1}`, `Error: function '\' cannot define non-symbol: got Number, expected Symbol`},
		{`\ {x} 1`, `Error: function '\' passed incorrect type for argument 1: got Number, expected Q-Expression`},
		{`\ {x}`, `Error: function '\' passed incorrect number of arguments: got 1, expected 2`},
	})
}

func TestCurryingCopies(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{`def {add} (\ {x y} {+ x y})`, "()"},
		{"def {inc} (add 1)", "()"},
		{"def {dec} (add -1)", "()"},
		{"inc 41", "42"},
		{"dec 41", "40"},
		{"inc 1", "2"},
		{"add 5 5", "10"},
	})
}

func TestVariadic(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{`def {f} (\ {x & xs} {xs})`, "()"},
		{"f 1 2 3", "{2 3}"},
		{"f 1", "{}"},
		{`(\ {&} {1}) 1`, "Error: invalid variadic form"},
		{`(\ {a & b} {a}) 1 2 3`, "1"},
		{`(\ {a & b} {b}) 1 2 3`, "{2 3}"},
		{`(\ {a & b} {b}) 1`, "{}"},
	})
}

func TestFirstErrorWins(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{"+ 1 (head {}) x", "Error: function 'head' passed {} for argument 0"},
		{"+ 1 x (head {})", "Error: unbound symbol 'x'"},
		{"list (/ 1 0) (tail {})", "Error: Division by zero!"},
		{"eval {1 2 3}", "Error: expected function, got Number"},
	})
}

func TestZeroFormals(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{`def {seven} (\ {} {7})`, "()"},
		{"seven", `(\ {} {7})`},
		{"eval {seven}", `(\ {} {7})`},
		{"seven 1", "Error: too many arguments: got 1, expected 0"},
	})
}

func TestLocalAndGlobal(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{`def {setlocal} (\ {v} {= {y} v})`, "()"},
		{"setlocal 1", "()"},
		{"y", "Error: unbound symbol 'y'"},
		{`def {setglobal} (\ {v} {def {y} v})`, "()"},
		{"setglobal 2", "()"},
		{"y", "2"},
	})
}

func TestDynamicScope(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{`def {h} (\ {_} {n})`, "()"},
		{`def {k} (\ {n} {h 0})`, "()"},
		{"k 7", "7"},
	})
}

func TestRedefineBuiltin(t *testing.T) {
	check(t, setup(t, WithoutPrelude()), []example{
		{"def {head} tail", "()"},
		{"head {1 2}", "{2}"},
	})
}

func TestPrelude(t *testing.T) {
	check(t, setup(t), []example{
		{"nil", "{}"},
		{"fun {add-together x y} {+ x y}", "()"},
		{"add-together 1 2", "3"},
		{"unpack + {1 2 3}", "6"},
		{"curry + {5 6 7}", "18"},
		{"pack head 5 6 7", "{5}"},
		{"uncurry head 5 6 7", "{5}"},
		{"first {1 2 3}", "1"},
		{"second {1 2 3}", "2"},
		{"third {1 2 3}", "3"},
		{"flip - 1 10", "9"},
		{"ghost + 1 2", "3"},
		{`def {neg} (\ {x} {- x})`, "()"},
		{`def {double} (\ {x} {* 2 x})`, "()"},
		{"comp neg double 5", "-10"},
	})
}

func TestMultiLine(t *testing.T) {
	e := setup(t, WithoutPrelude())

	out := run(t, e, "def {f} (\\ {x} {\n  + x 1\n})\nf 1\n\n; done\n")
	if strings.Join(out, "|") != "()|2" {
		t.Fatalf("expected ()|2; got %v", out)
	}
}

func TestIncomplete(t *testing.T) {
	e := setup(t, WithoutPrelude())

	err := e.Run("test", strings.NewReader("+ 1 (\n"), func(cell.I) {})
	if !errors.Is(err, parser.ErrIncomplete) {
		t.Fatalf("expected ErrIncomplete; got %v", err)
	}
}

func TestSyntaxError(t *testing.T) {
	e := setup(t, WithoutPrelude())

	var out []string

	err := e.Run("test", strings.NewReader("+ 1 2\n+ 1 )\n+ 3 4\n"), func(c cell.I) {
		out = append(out, c.String())
	})
	if err == nil || err.Error() != "test:2:5: unexpected ')'" {
		t.Fatalf("expected an error at test:2:5; got %v", err)
	}

	if strings.Join(out, "|") != "3" {
		t.Fatalf("expected only the first line to run; got %v", out)
	}
}

func TestBootFailure(t *testing.T) {
	for _, prelude := range []string{"head {}\n", "def {x} (\n"} {
		_, err := New(func(e *T) { e.prelude = prelude })
		if !errors.Is(err, ErrBoot) {
			t.Fatalf("%q: expected ErrBoot; got %v", prelude, err)
		}
	}
}

func TestGlobalNames(t *testing.T) {
	e := setup(t, WithoutPrelude())

	names := strings.Join(e.Global().Names(), " ")
	if names != `* + - / = \ def eval head join list tail` {
		t.Fatalf("unexpected builtins: %s", names)
	}
}
