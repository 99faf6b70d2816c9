// Released under an MIT license. See LICENSE.

// Package engine provides an evaluator for parsed lispc code.
package engine

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/env"
	"github.com/michaelmacinnis/lispc/internal/common/type/errmsg"
	"github.com/michaelmacinnis/lispc/internal/engine/boot"
	"github.com/michaelmacinnis/lispc/internal/engine/commands"
	"github.com/michaelmacinnis/lispc/internal/engine/evaluate"
	"github.com/michaelmacinnis/lispc/internal/reader"
	"github.com/michaelmacinnis/lispc/internal/reader/parser"
)

// ErrBoot is returned by New when the prelude produces an error.
var ErrBoot = errors.New("prelude failed")

// T (engine) is a facade in front of the machinery for evaluating lispc
// code. It owns the global environment. It is not safe for concurrent use.
type T struct {
	bare    bool
	eval    *evaluate.T
	global  *env.T
	log     *slog.Logger
	prelude string
}

// Option configures a T.
type Option func(*T)

// WithLogger sets the logger used for tracing and diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(e *T) {
		e.log = log
	}
}

// WithoutPrelude skips evaluation of the prelude.
func WithoutPrelude() Option {
	return func(e *T) {
		e.bare = true
	}
}

// New creates a new T with a global environment that holds every builtin
// and, unless disabled, the definitions from the prelude.
func New(opts ...Option) (*T, error) {
	e := &T{global: env.New(nil), prelude: boot.Script()}

	for _, opt := range opts {
		opt(e)
	}

	if e.log == nil {
		e.log = slog.Default()
	}

	e.eval = evaluate.New(e.log)

	commands.RegisterAll(e.global, e.eval)

	if e.bare {
		return e, nil
	}

	var failed cell.I

	err := e.Run("boot", strings.NewReader(e.prelude), func(c cell.I) {
		if failed == nil && errmsg.Is(c) {
			failed = c
		}
	})
	if err == nil && failed != nil {
		err = errors.New(errmsg.To(failed).Message())
	}

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBoot, err)
	}

	return e, nil
}

// Evaluate evaluates the command c in the global environment.
func (e *T) Evaluate(c cell.I) cell.I {
	return e.eval.Eval(e.global, c)
}

// Global returns the global environment.
func (e *T) Global() *env.T {
	return e.global
}

// Run reads lines from r, evaluates each complete command and passes the
// result to emit. Name labels the source in error messages. Run stops at
// the first parse error.
func (e *T) Run(name string, r io.Reader, emit func(cell.I)) error {
	rd := reader.New(name)

	s := bufio.NewScanner(r)
	for s.Scan() {
		cs, err := rd.Scan(s.Text())
		for _, c := range cs {
			emit(e.Evaluate(c))
		}

		if err != nil {
			return err
		}
	}

	if err := s.Err(); err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}

	if rd.Pending() {
		return fmt.Errorf("%s: %w", name, parser.ErrIncomplete)
	}

	return nil
}
