// Released under an MIT license. See LICENSE.

// Package evaluate reduces lispc values.
//
// Evaluation is a plain recursive walk. Symbols are looked up, call lists
// are applied and everything else evaluates to itself.
package evaluate

import (
	"context"
	"log/slog"

	"github.com/michaelmacinnis/adapted"
	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/builtin"
	"github.com/michaelmacinnis/lispc/internal/common/type/closure"
	"github.com/michaelmacinnis/lispc/internal/common/type/env"
	"github.com/michaelmacinnis/lispc/internal/common/type/errmsg"
	"github.com/michaelmacinnis/lispc/internal/common/type/list"
	"github.com/michaelmacinnis/lispc/internal/common/type/num"
	"github.com/michaelmacinnis/lispc/internal/common/type/sym"
)

// T (evaluate) holds what evaluation needs beyond the value and its env.
// It is not safe for concurrent use.
type T struct {
	depth int
	log   *slog.Logger
}

// New creates a new evaluator. Applications are traced to log at debug level.
func New(log *slog.Logger) *T {
	if log == nil {
		log = slog.Default()
	}

	return &T{log: log}
}

// Apply applies the function f to args in the env e.
// Apply owns f and args.
func (t *T) Apply(e *env.T, f cell.I, args *list.T) cell.I {
	t.trace(f, args)

	t.depth++
	defer func() { t.depth-- }()

	switch f := f.(type) {
	case *builtin.T:
		return f.Call(e, args)

	case *closure.T:
		switch outcome, err := f.Bind(args); outcome {
		case closure.Failed:
			return err
		case closure.Partial:
			return f.Copy()
		case closure.Saturated:
		}

		f.Env().SetEnclosing(e)

		return t.Eval(f.Env(), f.Body().Clone().AsCall())
	}

	return errmsg.New("expected function, got %s", f.Name())
}

// Eval evaluates c in the env e. Eval owns c.
func (t *T) Eval(e *env.T, c cell.I) cell.I {
	switch c := c.(type) {
	case *sym.T:
		return e.Lookup(c.String())

	case *list.T:
		if c.Quoted() {
			return c
		}

		return t.call(e, c)

	case *builtin.T, *closure.T, *errmsg.T, *num.T:
		return c
	}

	panic("cannot evaluate " + c.Name())
}

func (t *T) call(e *env.T, l *list.T) cell.I {
	for i, c := range l.Cells() {
		l.Set(i, t.Eval(e, c))
	}

	for _, c := range l.Cells() {
		if errmsg.Is(c) {
			return c
		}
	}

	switch l.Len() {
	case 0:
		return l
	case 1:
		return l.Cell(0)
	}

	f := l.Pop(0)
	if !IsFunction(f) {
		return errmsg.New("expected function, got %s", f.Name())
	}

	return t.Apply(e, f, l)
}

func (t *T) trace(f cell.I, args *list.T) {
	ctx := context.Background()
	if !t.log.Enabled(ctx, slog.LevelDebug) {
		return
	}

	name := f.String()
	if b, ok := f.(*builtin.T); ok {
		name = b.ID()
	}

	t.log.LogAttrs(ctx, slog.LevelDebug, "apply",
		slog.Int("depth", t.depth),
		slog.String("function", adapted.CanonicalString(name)),
		slog.String("arguments", args.String()),
	)
}

// IsFunction returns true if c is a builtin or a closure.
func IsFunction(c cell.I) bool {
	switch c.(type) {
	case *builtin.T, *closure.T:
		return true
	}

	return false
}
