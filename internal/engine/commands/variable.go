// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/closure"
	"github.com/michaelmacinnis/lispc/internal/common/type/env"
	"github.com/michaelmacinnis/lispc/internal/common/type/errmsg"
	"github.com/michaelmacinnis/lispc/internal/common/type/list"
	"github.com/michaelmacinnis/lispc/internal/common/type/sym"
	"github.com/michaelmacinnis/lispc/internal/common/validate"
)

func def(e *env.T, args *list.T) cell.I {
	return bind("def", args, e.Def)
}

func lambda(_ *env.T, args *list.T) cell.I {
	err := validate.First(
		func() cell.I { return validate.Fixed(`\`, args, 2) },
		func() cell.I { return validate.Type(`\`, args, 0, list.IsQuote, list.QuoteName) },
		func() cell.I { return validate.Type(`\`, args, 1, list.IsQuote, list.QuoteName) },
		func() cell.I { return validate.Symbols(`\`, list.To(args.Cell(0))) },
	)
	if err != nil {
		return err
	}

	formals := list.To(args.Pop(0))
	body := list.To(args.Pop(0))

	return closure.New(formals, body)
}

func put(e *env.T, args *list.T) cell.I {
	return bind("=", args, e.Put)
}

// bind checks every argument before calling set for each symbol and value
// so that a failed check leaves the env untouched.
func bind(f string, args *list.T, set func(string, cell.I)) cell.I {
	err := validate.First(
		func() cell.I { return validate.Variadic(f, args, 1) },
		func() cell.I { return validate.Type(f, args, 0, list.IsQuote, list.QuoteName) },
		func() cell.I { return validate.Symbols(f, list.To(args.Cell(0))) },
	)
	if err != nil {
		return err
	}

	symbols := list.To(args.Pop(0))
	if symbols.Len() != args.Len() {
		return errmsg.New(
			"function '%s' passed mismatched symbols and values: got %d symbols, expected %d",
			f, symbols.Len(), args.Len(),
		)
	}

	for i, s := range symbols.Cells() {
		set(sym.To(s).String(), args.Cell(i))
	}

	return list.Call()
}
