// Released under an MIT license. See LICENSE.

// Package hash provides lispc's name to value mapping type.
package hash

import (
	"github.com/michaelmacinnis/lispc/internal/common/interface/cell"
)

// T (hash) maps names to values. Names are kept in the order in which
// they were first set.
type T struct {
	index map[string]int
	names []string
	cells []cell.I
}

type hash = T

// New creates a new hash.
func New() *hash {
	return &hash{index: map[string]int{}}
}

// Copy creates a new hash with a copy of every value.
func (h *hash) Copy() *hash {
	if h == nil {
		return nil
	}

	fresh := &hash{
		index: make(map[string]int, len(h.index)),
		names: make([]string, len(h.names)),
		cells: make([]cell.I, len(h.cells)),
	}

	copy(fresh.names, h.names)

	for i, v := range h.cells {
		fresh.cells[i] = v.Copy()
		fresh.index[h.names[i]] = i
	}

	return fresh
}

// Get retrieves the value associated with the name k in the hash h.
// It returns nil if there is no such value.
func (h *hash) Get(k string) cell.I {
	if h == nil {
		return nil
	}

	i, ok := h.index[k]
	if !ok {
		return nil
	}

	return h.cells[i]
}

// Names returns the names in the hash h in the order they were first set.
func (h *hash) Names() []string {
	names := make([]string, len(h.names))
	copy(names, h.names)

	return names
}

// Set associates the name k with the cell v in the hash h. An existing
// association is replaced in place.
func (h *hash) Set(k string, v cell.I) {
	if i, ok := h.index[k]; ok {
		h.cells[i] = v

		return
	}

	h.index[k] = len(h.names)
	h.names = append(h.names, k)
	h.cells = append(h.cells, v)
}

// Size returns the number of entries in the hash h.
func (h *hash) Size() int {
	return len(h.names)
}
