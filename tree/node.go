package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"errors"
	"fmt"

	"github.com/npillmayer/tss/position"
)

/*
We manage a tree of mutable nodes. Each node carries a payload of type
parameter T. Nodes maintain a slice of children.

Trees are built and styled from a single goroutine; nodes do not lock.
*/

// ErrStopWalk may be returned by a walk function to end a walk early
// without an error.
var ErrStopWalk = errors.New("stop walk")

// Node is the base type our tree is built of.
type Node[T comparable] struct {
	parent   *Node[T]   // parent node of this node
	children []*Node[T] // ordered children, never nil entries
	Payload  T          // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T comparable](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node. The child is detached from a previous
// parent, if any. It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil {
		ch.Isolate()
		node.children = append(node.children, ch)
		ch.parent = node
	}
	return node
}

// InsertChildAt inserts a child node at position i, shifting children at
// later positions. Positions beyond the end append.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch == nil {
		return node
	}
	ch.Isolate()
	if i < 0 {
		i = 0
	}
	if i >= len(node.children) {
		return node.AddChild(ch)
	}
	node.children = append(node.children, nil)
	copy(node.children[i+1:], node.children[i:])
	node.children[i] = ch
	ch.parent = node
	return node
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	return node.parent
}

// Isolate removes a node from its parent. Later siblings move up one
// position. Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node == nil || node.parent == nil {
		return node
	}
	p := node.parent
	if i := p.IndexOfChild(node); i >= 0 {
		p.children = append(p.children[:i], p.children[i+1:]...)
	}
	node.parent = nil
	return node
}

// ChildCount returns the number of children-nodes for a node.
func (node *Node[T]) ChildCount() int {
	return len(node.children)
}

// Child returns the n-th child of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	if n < 0 || len(node.children) <= n {
		return nil, false
	}
	return node.children[n], true
}

// Children returns a copy of the slice of children of a node.
func (node *Node[T]) Children() []*Node[T] {
	return append([]*Node[T](nil), node.children...)
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	for i, child := range node.children {
		if ch == child {
			return i
		}
	}
	return -1
}

// Position returns the position of a node among its siblings. The root
// of a tree is an only child.
func (node *Node[T]) Position() position.Position {
	if node.parent == nil {
		return position.Single
	}
	i := node.parent.IndexOfChild(node)
	return position.Position{
		Index: i,
		Last:  i == node.parent.ChildCount()-1,
	}
}

// Walk calls f for node and all of its descendants in document order.
// An error returned by f ends the walk; ErrStopWalk ends it without error.
func (node *Node[T]) Walk(f func(n *Node[T], depth int) error) error {
	err := node.walk(f, 0)
	if errors.Is(err, ErrStopWalk) {
		return nil
	}
	return err
}

func (node *Node[T]) walk(f func(n *Node[T], depth int) error, depth int) error {
	if err := f(node, depth); err != nil {
		return err
	}
	for _, ch := range node.children {
		if err := ch.walk(f, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// Ancestors returns the chain of ancestors of a node, parent first.
func (node *Node[T]) Ancestors() []*Node[T] {
	var anc []*Node[T]
	for p := node.parent; p != nil; p = p.parent {
		anc = append(anc, p)
	}
	return anc
}
