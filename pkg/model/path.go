package model

import (
	"fmt"
	"strings"

	"github.com/puzpuzpuz/xsync/v3"
)

// pathNode is one interned node in the global path tree. Exactly one
// *pathNode exists per (parent, name) pair, so handle equality is pointer
// equality.
type pathNode struct {
	parent *pathNode // nil for the root
	name   Segment   // zero for the root
}

// rootNode anchors the interning tree. Every path terminates here.
var rootNode = &pathNode{}

// pathKey identifies a node by its parent's identity and final segment.
type pathKey struct {
	parent *pathNode
	name   Segment
}

// pathTable is the process-wide interning table. It is safe for concurrent
// use and grows for the lifetime of the process; nodes are never evicted.
var pathTable = xsync.NewMapOf[pathKey, *pathNode]()

// intern returns the canonical node for (parent, name), creating it at
// most once even when racing goroutines ask for the same pair.
func intern(parent *pathNode, name Segment) *pathNode {
	node, _ := pathTable.LoadOrCompute(pathKey{parent: parent, name: name}, func() *pathNode {
		return &pathNode{parent: parent, name: name}
	})
	return node
}

// ModelPath is a handle to an interned document path. Handles obtained
// from Root, Join, and Parse are canonical: two handles for the same
// sequence of segments compare equal with ==, in O(1), and a ModelPath is
// a valid map key. The zero ModelPath is invalid; always start from Root
// or Parse.
type ModelPath struct {
	node *pathNode
}

// Root returns the root path, rendered as "/".
func Root() ModelPath {
	return ModelPath{node: rootNode}
}

// validSegment reports whether text may name a path segment.
func validSegment(text string) bool {
	return text != "" && !strings.Contains(text, "/")
}

// Join returns the child of p named text. Join panics when text is empty
// or contains a separator; malformed segments are a caller contract
// violation and never reach the interning table. Use Parse for untrusted
// input.
func (p ModelPath) Join(text string) ModelPath {
	if !validSegment(text) {
		panic(fmt.Sprintf("model: invalid path segment %q", text))
	}
	return ModelPath{node: intern(p.node, NewSegment(text))}
}

// Parent returns the path one level up. ok is false for the root.
func (p ModelPath) Parent() (ModelPath, bool) {
	if p.node == nil || p.node.parent == nil {
		return ModelPath{}, false
	}
	return ModelPath{node: p.node.parent}, true
}

// SplitLast splits p into its parent and final segment. ok is false for
// the root. SplitLast inverts Join: for any valid segment s,
// p.Join(s).SplitLast() yields (p, s, true).
func (p ModelPath) SplitLast() (ModelPath, Segment, bool) {
	if p.node == nil || p.node.parent == nil {
		return ModelPath{}, Segment{}, false
	}
	return ModelPath{node: p.node.parent}, p.node.name, true
}

// Name returns the final segment, the zero Segment for the root.
func (p ModelPath) Name() Segment {
	if p.node == nil {
		return Segment{}
	}
	return p.node.name
}

// IsRoot reports whether p is the root path.
func (p ModelPath) IsRoot() bool {
	return p.node == rootNode
}

// IsPrefix reports whether other is p or a descendant of p. The root is a
// prefix of every path. Runs in O(depth of other); the upward walk always
// terminates at the root.
func (p ModelPath) IsPrefix(other ModelPath) bool {
	for n := other.node; n != nil; n = n.parent {
		if n == p.node {
			return true
		}
	}
	return false
}

// String renders the canonical form: "/" for the root, otherwise the
// segments separated and led by "/".
func (p ModelPath) String() string {
	if p.node == nil || p.node.parent == nil {
		return "/"
	}
	var b strings.Builder
	p.node.render(&b)
	return b.String()
}

func (n *pathNode) render(b *strings.Builder) {
	if n.parent == nil {
		return
	}
	n.parent.render(b)
	b.WriteByte('/')
	b.WriteString(n.name.String())
}

// Parse resolves a path string to its canonical handle. "" and "/" are the
// root; input without a separator joins a single segment onto the root;
// anything else splits on the final separator and parses the prefix
// recursively. Empty segments report ErrMalformedPath. Parsing the
// canonical rendering of any path yields back the identical handle.
func Parse(s string) (ModelPath, error) {
	if s == "" || s == "/" {
		return Root(), nil
	}
	return parseFrom(s)
}

func parseFrom(s string) (ModelPath, error) {
	if s == "" {
		return Root(), nil
	}
	i := strings.LastIndexByte(s, '/')
	if i < 0 {
		return Root().Join(s), nil
	}
	name := s[i+1:]
	if name == "" {
		return ModelPath{}, fmt.Errorf("empty segment in %q: %w", s, ErrMalformedPath)
	}
	parent, err := parseFrom(s[:i])
	if err != nil {
		return ModelPath{}, err
	}
	return parent.Join(name), nil
}

// MustParse is Parse for known-good input; it panics on malformed paths.
func MustParse(s string) ModelPath {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}
