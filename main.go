// Released under an MIT license. See LICENSE.

/*
Lispc is a small Lisp. It has numbers, symbols, functions and two kinds of
list: S-expressions, which are evaluated, and Q-expressions, which are not.

	lispc> + 1 2 3
	6
	lispc> def {add} (\ {a b} {+ a b})
	()
	lispc> def {inc} (add 1)
	()
	lispc> inc 41
	42
	lispc> head {1 2 3}
	{1}

Functions are curried: applied to fewer arguments than they expect they
return a new function waiting for the rest. A formal of & collects any
remaining arguments into a Q-expression.

Lispc is released under an MIT-style license.
*/
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/errmsg"
	"github.com/michaelmacinnis/lispc/internal/engine"
	"github.com/michaelmacinnis/lispc/internal/system/options"
	"github.com/michaelmacinnis/lispc/internal/ui"
)

func main() {
	options.Parse()

	level := slog.LevelInfo
	if options.Trace() {
		level = slog.LevelDebug
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))

	opts := []engine.Option{engine.WithLogger(log)}
	if options.Bare() {
		opts = append(opts, engine.WithoutPrelude())
	}

	e, err := engine.New(opts...)
	if err != nil {
		log.Error("cannot start", slog.Any("error", err))
		os.Exit(1)
	}

	if s := options.Expression(); s != "" {
		last, err := ui.Source(e, "-e", strings.NewReader(s), os.Stdout, true)
		os.Exit(status(last, err))
	}

	if options.Interactive() {
		ui.Run(e, os.Stdout, log)

		return
	}

	files := options.Files()
	if len(files) == 0 {
		files = []string{"-"}
	}

	for _, name := range files {
		if err := source(e, name); err != nil {
			log.Error("cannot run script", slog.String("file", name), slog.Any("error", err))
			os.Exit(1)
		}
	}
}

func source(e *engine.T, name string) error {
	if name == "-" {
		_, err := ui.Source(e, "stdin", os.Stdin, os.Stdout, false)

		return err
	}

	f, err := os.Open(name)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = ui.Source(e, name, f, os.Stdout, false)

	return err
}

func status(last cell.I, err error) int {
	switch {
	case err != nil:
		fmt.Fprintln(os.Stderr, err)

		return 1
	case last != nil && errmsg.Is(last):
		return 2 //nolint:gomnd
	}

	return 0
}
