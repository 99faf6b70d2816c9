// Released under an MIT license. See LICENSE.

// Package commands provides lispc's builtin functions.
package commands

import (
	"sort"

	"github.com/michaelmacinnis/lispc/internal/common/type/builtin"
	"github.com/michaelmacinnis/lispc/internal/common/type/env"
	"github.com/michaelmacinnis/lispc/internal/engine/evaluate"
)

// Functions returns every builtin function keyed by the name it is
// registered under. The eval builtin evaluates with t.
func Functions(t *evaluate.T) map[string]builtin.Func {
	return map[string]builtin.Func{
		// List functions.
		"eval": evaluator(t),
		"head": head,
		"join": join,
		"list": makeList,
		"tail": tail,

		// Mathematical functions.
		"*": mul,
		"+": add,
		"-": sub,
		"/": div,

		// Variable functions.
		"=":   put,
		"\\":  lambda,
		"def": def,
	}
}

// Register installs the builtin fn in the env e under name.
func Register(e *env.T, name string, fn builtin.Func) {
	e.Put(name, builtin.New(name, fn))
}

// RegisterAll installs every builtin from Functions in the env e.
func RegisterAll(e *env.T, t *evaluate.T) {
	m := Functions(t)

	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}

	sort.Strings(names)

	for _, k := range names {
		Register(e, k, m[k])
	}
}
