package model

import (
	"bytes"
	"errors"
	"testing"
)

func TestBuildDocumentShapesTree(t *testing.T) {
	// Deliberately unordered rows.
	objects := []NamedObject{
		{ID: 3, Path: MustParse("/node_a/node_b")},
		{ID: 1, Path: Root()},
		{ID: 4, Path: MustParse("/node_a/node_b/node_c")},
		{ID: 2, Path: MustParse("/node_a")},
		{ID: 5, Path: MustParse("/node_g")},
	}

	doc, err := BuildDocument(objects)
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}

	if doc.Root.Base.ID != 1 {
		t.Errorf("root id = %d, want 1", doc.Root.Base.ID)
	}
	if doc.Root.NumChildren() != 2 {
		t.Errorf("root has %d children, want 2", doc.Root.NumChildren())
	}

	b, ok := doc.FindNode(MustParse("/node_a/node_b"))
	if !ok || b.Base.ID != 3 {
		t.Fatalf("FindNode(/node_a/node_b) = %v, %v", b, ok)
	}
	if b.NumChildren() != 1 {
		t.Errorf("/node_a/node_b has %d children, want 1", b.NumChildren())
	}
}

func TestBuildDocumentMissingParent(t *testing.T) {
	objects := []NamedObject{
		{ID: 1, Path: Root()},
		{ID: 2, Path: MustParse("/node_a/node_b")}, // /node_a row absent
	}
	_, err := BuildDocument(objects)
	if !errors.Is(err, ErrMissingParent) {
		t.Fatalf("BuildDocument = %v, want ErrMissingParent", err)
	}
}

func TestBuildDocumentDuplicateRoot(t *testing.T) {
	objects := []NamedObject{
		{ID: 1, Path: Root()},
		{ID: 2, Path: Root()},
	}
	_, err := BuildDocument(objects)
	if !errors.Is(err, ErrDuplicatePath) {
		t.Fatalf("BuildDocument = %v, want ErrDuplicatePath", err)
	}
}

func TestBuildDocumentWithoutRootRow(t *testing.T) {
	doc, err := BuildDocument([]NamedObject{{ID: 7, Path: MustParse("/node_a")}})
	if err != nil {
		t.Fatalf("BuildDocument: %v", err)
	}
	if doc.Root.Base.ID != 0 {
		t.Errorf("synthesized root id = %d, want 0", doc.Root.Base.ID)
	}
	if _, ok := doc.FindNode(MustParse("/node_a")); !ok {
		t.Error("child of the synthesized root is missing")
	}
}

func TestFindNodeMissingIntermediate(t *testing.T) {
	doc, err := BuildDocument([]NamedObject{{ID: 1, Path: Root()}})
	if err != nil {
		t.Fatal(err)
	}
	if n, ok := doc.FindNode(MustParse("/ghost/leaf")); ok || n != nil {
		t.Errorf("FindNode through a missing intermediate = %v, %v", n, ok)
	}
}

func TestDumpRendering(t *testing.T) {
	objects := []NamedObject{
		{ID: 1, Path: Root()},
		{ID: 2, Path: MustParse("/node_a")},
		{ID: 3, Path: MustParse("/node_a/node_b")},
		{ID: 4, Path: MustParse("/node_g")},
	}
	doc, err := BuildDocument(objects)
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	doc.Dump(&buf)

	want := "<root>\n  node_a\n    node_b\n  node_g\n"
	if buf.String() != want {
		t.Errorf("Dump rendered:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestAddShareGroup(t *testing.T) {
	doc := NewDocument()
	doc.AddShareGroup(3, 5)
	if len(doc.ShareGroups) != 1 {
		t.Fatalf("ShareGroups = %d, want 1", len(doc.ShareGroups))
	}
	g := doc.ShareGroups[0]
	if g.ShareID != "" {
		t.Error("share id should stay empty until saved")
	}
	if len(g.ObjectIDs) != 2 || g.ObjectIDs[0] != 3 || g.ObjectIDs[1] != 5 {
		t.Errorf("ObjectIDs = %v", g.ObjectIDs)
	}
}
