// Released under an MIT license. See LICENSE.

package commands

import (
	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/env"
	"github.com/michaelmacinnis/lispc/internal/common/type/errmsg"
	"github.com/michaelmacinnis/lispc/internal/common/type/list"
	"github.com/michaelmacinnis/lispc/internal/common/type/num"
	"github.com/michaelmacinnis/lispc/internal/common/validate"
)

func add(_ *env.T, args *list.T) cell.I {
	return fold("+", args, func(acc, n int64) (int64, cell.I) {
		return acc + n, nil
	})
}

func div(_ *env.T, args *list.T) cell.I {
	return fold("/", args, func(acc, n int64) (int64, cell.I) {
		if n == 0 {
			return 0, errmsg.New("Division by zero!")
		}

		return acc / n, nil
	})
}

func mul(_ *env.T, args *list.T) cell.I {
	return fold("*", args, func(acc, n int64) (int64, cell.I) {
		return acc * n, nil
	})
}

func sub(_ *env.T, args *list.T) cell.I {
	if args.Len() == 1 && num.Is(args.Cell(0)) {
		return num.New(-num.To(args.Cell(0)).Int())
	}

	return fold("-", args, func(acc, n int64) (int64, cell.I) {
		return acc - n, nil
	})
}

// fold checks that every argument is a number and then combines them from
// left to right with op. The first error op returns ends the fold.
func fold(f string, args *list.T, op func(acc, n int64) (int64, cell.I)) cell.I {
	err := validate.First(
		func() cell.I { return validate.Variadic(f, args, 1) },
		func() cell.I { return validate.All(f, args, num.Is, num.Name) },
	)
	if err != nil {
		return err
	}

	acc := num.To(args.Cell(0)).Int()

	for _, c := range args.Cells()[1:] {
		acc, err = op(acc, num.To(c).Int())
		if err != nil {
			return err
		}
	}

	return num.New(acc)
}
