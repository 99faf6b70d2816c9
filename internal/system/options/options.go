// Released under an MIT license. See LICENSE.

// Package options parses lispc's command line.
package options

import (
	"os"

	"github.com/docopt/docopt-go"
	"github.com/mattn/go-isatty"
)

// Version is printed by --version.
const Version = "lispc 0.1.0"

//nolint:gochecknoglobals
var (
	bare        bool
	expression  string
	files       []string
	interactive bool
	trace       bool
	usage       = `lispc

Usage:
  lispc [-bt] [FILE...]
  lispc [-bt] -e EXPRESSION
  lispc -h
  lispc -v

Arguments:
  FILE  Script to run, one command per line. Use - for stdin.

Options:
  -b, --bare                  Do not load the prelude.
  -e, --eval=EXPRESSION       Evaluate EXPRESSION, print the result and exit.
  -t, --trace                 Log every function application to stderr.
  -h, --help                  Display this help.
  -v, --version               Print lispc version.

If no FILE or EXPRESSION is given and lispc's stdin is a TTY, lispc starts
an interactive session. Otherwise commands are read from stdin.
`
)

// Bare returns true if the prelude should not be loaded.
func Bare() bool {
	return bare
}

// Expression returns the expression passed with --eval, if any.
func Expression() string {
	return expression
}

// Files returns the scripts to run, in order.
func Files() []string {
	return files
}

// Interactive returns true if lispc should start an interactive session.
func Interactive() bool {
	return interactive
}

// Parse parses os.Args. It exits after printing help or the version.
func Parse() {
	p := &docopt.Parser{
		HelpHandler:   docopt.PrintHelpAndExit,
		OptionsFirst:  false,
		SkipHelpFlags: false,
	}

	err := parse(p, os.Args[1:], isatty.IsTerminal(os.Stdin.Fd()) ||
		isatty.IsCygwinTerminal(os.Stdin.Fd()))
	if err != nil {
		// Error in the usage doc. This should never happen.
		panic(err.Error())
	}
}

// Trace returns true if function applications should be logged.
func Trace() bool {
	return trace
}

func parse(p *docopt.Parser, argv []string, terminal bool) error {
	opts, err := p.ParseArgs(usage, argv, Version)
	if err != nil {
		return err
	}

	bare, _ = opts.Bool("--bare")
	trace, _ = opts.Bool("--trace")
	expression, _ = opts.String("--eval")

	files, _ = opts["FILE"].([]string)

	interactive = terminal && expression == "" && len(files) == 0

	return nil
}
