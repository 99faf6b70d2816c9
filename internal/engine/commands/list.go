// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/env"
	"github.com/michaelmacinnis/lispc/internal/common/type/list"
	"github.com/michaelmacinnis/lispc/internal/common/validate"
	"github.com/michaelmacinnis/lispc/internal/engine/evaluate"
)

func evaluator(t *evaluate.T) func(*env.T, *list.T) cell.I {
	return func(e *env.T, args *list.T) cell.I {
		err := validate.First(
			func() cell.I { return validate.Fixed("eval", args, 1) },
			func() cell.I { return validate.Type("eval", args, 0, list.IsQuote, list.QuoteName) },
		)
		if err != nil {
			return err
		}

		return t.Eval(e, list.To(args.Pop(0)).AsCall())
	}
}

func head(_ *env.T, args *list.T) cell.I {
	if err := nonEmpty("head", args); err != nil {
		return err
	}

	l := list.To(args.Pop(0))

	return list.Quote(l.Cell(0))
}

func join(_ *env.T, args *list.T) cell.I {
	if err := validate.All("join", args, list.IsQuote, list.QuoteName); err != nil {
		return err
	}

	acc := list.Quote()
	for _, c := range args.Cells() {
		acc.Join(list.To(c))
	}

	return acc
}

func makeList(_ *env.T, args *list.T) cell.I {
	return args.AsQuote()
}

func tail(_ *env.T, args *list.T) cell.I {
	if err := nonEmpty("tail", args); err != nil {
		return err
	}

	l := list.To(args.Pop(0))
	l.Pop(0)

	return l
}

// nonEmpty checks that f was passed exactly one non-empty quote list.
func nonEmpty(f string, args *list.T) cell.I {
	return validate.First(
		func() cell.I { return validate.Fixed(f, args, 1) },
		func() cell.I { return validate.Type(f, args, 0, list.IsQuote, list.QuoteName) },
		func() cell.I { return validate.NotEmpty(f, args, 0) },
	)
}
