// Released under an MIT license. See LICENSE.

// Package syntax provides the tree produced by the lispc parser.
package syntax

import (
	"strings"

	"github.com/michaelmacinnis/lispc/internal/common/struct/loc"
)

// Node tags.
const (
	Call      = "call"
	Delimiter = "delimiter"
	Number    = "number"
	Quote     = "quote"
	Symbol    = "symbol"
)

// Node is a node in a syntax tree. Leaves have Contents. Call and quote
// nodes have Children, including the delimiters that enclose them.
type Node struct {
	Children []*Node
	Contents string
	Source   loc.T
	Tag      string
}

// Leaf creates a node without children.
func Leaf(tag, contents string, source loc.T) *Node {
	return &Node{Contents: contents, Source: source, Tag: tag}
}

// Branch creates a node that will hold children.
func Branch(tag string, source loc.T) *Node {
	return &Node{Source: source, Tag: tag}
}

// Add appends child to the children of n.
func (n *Node) Add(child *Node) *Node {
	n.Children = append(n.Children, child)

	return n
}

// String returns the text that n was parsed from, give or take whitespace.
func (n *Node) String() string {
	if len(n.Children) == 0 {
		return n.Contents
	}

	var b strings.Builder

	space := false

	for _, c := range n.Children {
		s := c.String()

		closing := c.Tag == Delimiter && (s == ")" || s == "}")
		if space && !closing {
			b.WriteByte(' ')
		}

		b.WriteString(s)

		space = !(c.Tag == Delimiter && !closing)
	}

	return b.String()
}
