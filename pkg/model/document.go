package model

import (
	"fmt"
	"io"
	"sort"
)

// ShareGroup associates a set of objects by rowid. Membership is opaque to
// the document layer; the store persists it faithfully and nothing more.
type ShareGroup struct {
	ShareID   string  // UUID, assigned by the store on first save when empty.
	ObjectIDs []int64 // member objects by rowid.
}

// Document is a whole document tree plus its share groups. A Document and
// its nodes are confined to one goroutine.
type Document struct {
	Root        *Node
	ShareGroups []ShareGroup
}

// NewDocument returns a document holding only an unpersisted root node.
func NewDocument() *Document {
	return &Document{Root: NewNode(NamedObject{Path: Root()})}
}

// FindNode resolves path by recursive descent from the root. A missing
// intermediate yields (nil, false), never an error. The returned node is
// the document's own; mutations through it are visible in the tree.
func (d *Document) FindNode(path ModelPath) (*Node, bool) {
	parent, name, ok := path.SplitLast()
	if !ok {
		return d.Root, true
	}
	parentNode, ok := d.FindNode(parent)
	if !ok {
		return nil, false
	}
	return parentNode.Child(name)
}

// AddShareGroup appends a share group over the given object ids. The
// ShareID is left empty for the store to assign on save.
func (d *Document) AddShareGroup(objectIDs ...int64) {
	d.ShareGroups = append(d.ShareGroups, ShareGroup{ObjectIDs: objectIDs})
}

// Dump writes an indented rendering of the tree to w. The root prints as
// <root>; children follow in name order, indented two spaces per level.
func (d *Document) Dump(w io.Writer) {
	dumpNode(w, d.Root, 0)
}

func dumpNode(w io.Writer, n *Node, depth int) {
	label := n.Base.Name().String()
	if n.Base.Path.IsRoot() {
		label = "<root>"
	}
	fmt.Fprintf(w, "%*s%s\n", depth*2, "", label)
	for itr := n.children.Iterator(); !itr.Done(); {
		_, child, _ := itr.Next()
		dumpNode(w, child, depth+1)
	}
}

// BuildDocument assembles a document tree from flat rows. Rows sort by
// canonical path string, so parents always precede children and the root
// row comes first. A child row whose parent row is absent reports
// ErrMissingParent; two rows resolving to the same canonical path report
// ErrDuplicatePath. Both indicate a corrupt row set, not a caller bug, and
// leave the store untouched.
func BuildDocument(objects []NamedObject) (*Document, error) {
	sorted := make([]NamedObject, len(objects))
	copy(sorted, objects)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Path.String() < sorted[j].Path.String()
	})

	doc := NewDocument()
	seenRoot := false
	for _, obj := range sorted {
		if obj.Path.IsRoot() {
			if seenRoot {
				return nil, fmt.Errorf("second root row %d: %w", obj.ID, ErrDuplicatePath)
			}
			seenRoot = true
			doc.Root = NewNode(obj)
			continue
		}
		parentPath, name, _ := obj.Path.SplitLast()
		parent, ok := doc.FindNode(parentPath)
		if !ok {
			return nil, fmt.Errorf("attaching %q: %w", obj.Path, ErrMissingParent)
		}
		if _, exists := parent.Child(name); exists {
			return nil, fmt.Errorf("attaching %q: %w", obj.Path, ErrDuplicatePath)
		}
		if err := parent.AddChild(NewNode(obj)); err != nil {
			return nil, fmt.Errorf("attaching %q: %w", obj.Path, err)
		}
	}
	return doc, nil
}
