package model

import (
	"strings"

	"github.com/benbjohnson/immutable"
)

// segmentComparer orders segments by their text so that child iteration is
// deterministic.
type segmentComparer struct{}

func (segmentComparer) Compare(a, b Segment) int {
	return strings.Compare(a.String(), b.String())
}

// Node is one document tree node: a NamedObject plus its children. The
// children map is a persistent structure with structural sharing, so Clone
// is O(1) and a snapshot is unaffected by later mutation of the original.
type Node struct {
	Base     NamedObject
	children *immutable.SortedMap[Segment, *Node]
}

// NewNode returns a childless node for obj.
func NewNode(obj NamedObject) *Node {
	return &Node{
		Base:     obj,
		children: immutable.NewSortedMap[Segment, *Node](segmentComparer{}),
	}
}

// Child returns the direct child named name.
func (n *Node) Child(name Segment) (*Node, bool) {
	return n.children.Get(name)
}

// AddChild inserts child into n's children map, keyed by the child's own
// final path segment. The child's path must be n's path extended by one
// segment; anything else reports ErrNotChild. An existing child with the
// same name is replaced.
func (n *Node) AddChild(child *Node) error {
	parent, name, ok := child.Base.Path.SplitLast()
	if !ok || parent != n.Base.Path {
		return ErrNotChild
	}
	n.children = n.children.Set(name, child)
	return nil
}

// RemoveChild removes the direct child named name. Removing an absent name
// is a no-op.
func (n *Node) RemoveChild(name Segment) {
	n.children = n.children.Delete(name)
}

// NumChildren returns the number of direct children.
func (n *Node) NumChildren() int {
	return n.children.Len()
}

// Children returns the direct children in name order.
func (n *Node) Children() []*Node {
	out := make([]*Node, 0, n.children.Len())
	for itr := n.children.Iterator(); !itr.Done(); {
		_, child, _ := itr.Next()
		out = append(out, child)
	}
	return out
}

// Walk visits n and every descendant depth-first, children in name order.
// The first error stops the walk and is returned.
func (n *Node) Walk(fn func(*Node) error) error {
	if err := fn(n); err != nil {
		return err
	}
	for itr := n.children.Iterator(); !itr.Done(); {
		_, child, _ := itr.Next()
		if err := child.Walk(fn); err != nil {
			return err
		}
	}
	return nil
}

// Clone returns a snapshot of n. The clone shares the current children map
// version with n; later AddChild or RemoveChild calls on either are
// invisible to the other. Descendant nodes are shared, not copied.
func (n *Node) Clone() *Node {
	c := *n
	return &c
}
