// Released under an MIT license. See LICENSE.

// Package boot provides the prelude evaluated when lispc starts.
package boot

import _ "embed" // Blank import required by embed.

//go:embed boot.lspc
var script string //nolint:gochecknoglobals

// Script returns the prelude for lispc.
func Script() string {
	return script
}
