// Package tree provides the static command tree for cloudsh completion.
// The tree is built once from the command table at startup, read-only
// afterwards, and rebuilt wholesale when the table reloads.
package tree

import (
	"iter"
	"strings"

	"github.com/cloudsh/cloudsh/internal/serrors"
)

// Node is a position in the command tree. The root has an empty label;
// every other node is keyed by one command token. Children keep
// insertion order so candidate enumeration is deterministic.
type Node struct {
	label    string
	children map[string]*Node
	order    []string
	params   []string
}

// NewRoot creates an empty tree root
func NewRoot() *Node {
	return &Node{children: make(map[string]*Node)}
}

// Label returns the command token this node represents (empty for the root)
func (n *Node) Label() string {
	return n.label
}

// Insert descends the tree along the tokens of command, creating nodes
// as needed, and returns the final node. Inserting the same command
// twice is a no-op that returns the existing node.
func (n *Node) Insert(command string) *Node {
	node := n
	for _, token := range strings.Fields(command) {
		child, ok := node.children[token]
		if !ok {
			child = &Node{label: token, children: make(map[string]*Node)}
			node.children[token] = child
			node.order = append(node.order, token)
		}
		node = child
	}
	return node
}

// Child looks up a direct child by exact label. A miss returns a
// NotFoundError; callers treat it as "input no longer matches any
// known command" and fall back to completion mode None.
func (n *Node) Child(label string) (*Node, error) {
	child, ok := n.children[label]
	if !ok {
		return nil, serrors.NewNotFoundError(label, "no child "+label)
	}
	return child, nil
}

// HasChild reports whether a direct child with the given label exists
func (n *Node) HasChild(label string) bool {
	_, ok := n.children[label]
	return ok
}

// IsLeaf reports whether the command-token sequence is complete at this
// node. Reaching a leaf switches completion away from Command mode.
func (n *Node) IsLeaf() bool {
	return len(n.children) == 0
}

// ChildLabels returns the labels of direct children in insertion order
func (n *Node) ChildLabels() []string {
	labels := make([]string, len(n.order))
	copy(labels, n.order)
	return labels
}

// DescendantLabels returns a restartable breadth-first sequence of
// every label reachable below this node.
func (n *Node) DescendantLabels() iter.Seq[string] {
	return func(yield func(string) bool) {
		queue := make([]*Node, 0, len(n.order))
		for _, label := range n.order {
			queue = append(queue, n.children[label])
		}
		for len(queue) > 0 {
			node := queue[0]
			queue = queue[1:]
			if !yield(node.label) {
				return
			}
			for _, label := range node.order {
				queue = append(queue, node.children[label])
			}
		}
	}
}

// SetParams attaches node-local parameter names (used for leaf nodes
// carrying their command's flags)
func (n *Node) SetParams(params []string) {
	n.params = params
}

// Params returns node-local parameter names, or nil
func (n *Node) Params() []string {
	return n.params
}
