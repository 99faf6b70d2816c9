// Released under an MIT license. See LICENSE.

// Package ui provides a command-line interface for the lispc language.
package ui

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
	"github.com/michaelmacinnis/lispc/internal/common/type/errmsg"
	"github.com/michaelmacinnis/lispc/internal/engine"
	"github.com/michaelmacinnis/lispc/internal/reader"
	"github.com/michaelmacinnis/lispc/internal/system/history"
	"github.com/peterh/liner"
)

// Prompts.
const (
	Continue = "....> "
	Prompt   = "lispc> "
)

// Run starts an interactive session that evaluates each command with e and
// prints the result to w. It returns when the user ends input.
func Run(e *engine.T, w io.Writer, log *slog.Logger) {
	cli := liner.NewLiner()
	defer cli.Close()

	cli.SetCtrlCAborts(true)
	cli.SetWordCompleter(Completer(e))

	if err := history.Load(cli.ReadHistory); err != nil {
		log.Warn("cannot load history", slog.Any("error", err))
	}

	defer func() {
		if err := history.Save(cli.WriteHistory); err != nil {
			log.Warn("cannot save history", slog.Any("error", err))
		}
	}()

	fmt.Fprintln(w, "lispc: press Ctrl+D to exit")

	r := reader.New("lispc")

	for {
		prompt := Prompt
		if r.Pending() {
			prompt = Continue
		}

		line, err := cli.Prompt(prompt)
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			r.Reset()

			continue
		default:
			fmt.Fprintln(w)

			return
		}

		if strings.TrimSpace(line) != "" {
			cli.AppendHistory(line)
		}

		cs, err := r.Scan(line)
		for _, c := range cs {
			fmt.Fprintln(w, e.Evaluate(c))
		}

		if err != nil {
			fmt.Fprintln(w, err)
		}
	}
}

// Completer returns a liner word completer for names in e's global
// environment.
func Completer(e *engine.T) liner.WordCompleter {
	return func(line string, pos int) (head string, cs []string, tail string) {
		// The position is counted in runes.
		runes := []rune(line)
		head = string(runes[:pos])
		tail = string(runes[pos:])

		start := strings.LastIndexAny(head, " \t(){}") + 1
		word := head[start:]
		head = head[:start]

		for _, name := range e.Global().Names() {
			if strings.HasPrefix(name, word) {
				cs = append(cs, name)
			}
		}

		sort.Strings(cs)

		return head, cs, tail
	}
}

// Source evaluates each command read from r with e. Results that are errors
// are written to w. If all is true every result is written. Source returns
// the last result, or nil if there was none.
func Source(e *engine.T, name string, r io.Reader, w io.Writer, all bool) (cell.I, error) {
	var last cell.I

	err := e.Run(name, r, func(c cell.I) {
		last = c

		if all || errmsg.Is(c) {
			fmt.Fprintln(w, c)
		}
	})

	return last, err
}
