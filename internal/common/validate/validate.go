// Released under an MIT license. See LICENSE.

// Package validate checks the arguments passed to builtins. Each check
// returns nil if the arguments are acceptable and an error cell otherwise.
package validate

import (
	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/errmsg"
	"github.com/michaelmacinnis/lispc/internal/common/type/list"
	"github.com/michaelmacinnis/lispc/internal/common/type/sym"
)

// Fixed checks that exactly n arguments were passed to the function f.
func Fixed(f string, args *list.T, n int) cell.I {
	if args.Len() != n {
		return errmsg.New(
			"function '%s' passed incorrect number of arguments: got %d, expected %d",
			f, args.Len(), n,
		)
	}

	return nil
}

// Variadic checks that no fewer than least arguments were passed to the function f.
func Variadic(f string, args *list.T, least int) cell.I {
	if args.Len() < least {
		return errmsg.New(
			"function '%s' passed too few arguments: got %d, expected at least %d",
			f, args.Len(), least,
		)
	}

	return nil
}

// Type checks that the i-th argument passed to the function f satisfies is.
// The name of the expected type is used to describe a mismatch.
func Type(f string, args *list.T, i int, is func(cell.I) bool, expected string) cell.I {
	if c := args.Cell(i); !is(c) {
		return errmsg.New(
			"function '%s' passed incorrect type for argument %d: got %s, expected %s",
			f, i, c.Name(), expected,
		)
	}

	return nil
}

// All checks every argument passed to the function f with Type.
func All(f string, args *list.T, is func(cell.I) bool, expected string) cell.I {
	for i := range args.Cells() {
		if err := Type(f, args, i, is, expected); err != nil {
			return err
		}
	}

	return nil
}

// NotEmpty checks that the i-th argument passed to the function f is a
// list with at least one element.
func NotEmpty(f string, args *list.T, i int) cell.I {
	if list.To(args.Cell(i)).Len() == 0 {
		return errmsg.New("function '%s' passed {} for argument %d", f, i)
	}

	return nil
}

// Symbols checks that every element of the list l is a symbol.
func Symbols(f string, l *list.T) cell.I {
	for _, c := range l.Cells() {
		if !sym.Is(c) {
			return errmsg.New(
				"function '%s' cannot define non-symbol: got %s, expected %s",
				f, c.Name(), sym.Name,
			)
		}
	}

	return nil
}

// First returns the first non-nil error among errs, or nil.
func First(errs ...func() cell.I) cell.I {
	for _, check := range errs {
		if err := check(); err != nil {
			return err
		}
	}

	return nil
}
