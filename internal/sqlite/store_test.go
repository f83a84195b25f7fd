package sqlite

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/mesh-intelligence/arbor/pkg/model"
)

// testStore opens a store on a fresh temporary database.
func testStore(t *testing.T) *Store {
	t.Helper()
	s := openAt(t, filepath.Join(t.TempDir(), "arbor.db"))
	t.Cleanup(func() { s.Close() })
	return s
}

// openAt opens a store on the given database file.
func openAt(t *testing.T, path string) *Store {
	t.Helper()
	s, err := Open(model.Config{Path: path})
	if err != nil {
		t.Fatalf("Open(%s): %v", path, err)
	}
	return s
}

func TestOpenValidatesConfig(t *testing.T) {
	if _, err := Open(model.Config{}); !errors.Is(err, model.ErrMissingPath) {
		t.Errorf("Open with empty path = %v, want ErrMissingPath", err)
	}
}

func TestOpenEmptyStore(t *testing.T) {
	s := testStore(t)

	doc, err := s.OpenDocument()
	if err != nil {
		t.Fatalf("OpenDocument: %v", err)
	}
	if !doc.Root.Base.Path.IsRoot() {
		t.Error("document root is not at the root path")
	}
	if doc.Root.Base.ID == 0 {
		t.Error("root row should carry a rowid")
	}
	if doc.Root.NumChildren() != 0 {
		t.Errorf("fresh store has %d root children, want 0", doc.Root.NumChildren())
	}
	if len(doc.ShareGroups) != 0 {
		t.Errorf("fresh store has %d share groups, want 0", len(doc.ShareGroups))
	}
}

func TestOpenIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "arbor.db")

	s1 := openAt(t, path)
	doc1, err := s1.OpenDocument()
	if err != nil {
		t.Fatal(err)
	}
	rootID := doc1.Root.Base.ID
	if err := s1.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopening applies the schema again without disturbing the rows.
	s2 := openAt(t, path)
	defer s2.Close()
	doc2, err := s2.OpenDocument()
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	if doc2.Root.Base.ID != rootID {
		t.Errorf("root row changed across reopen: %d != %d", doc2.Root.Base.ID, rootID)
	}

	var roots int
	if err := s2.db.QueryRow(`SELECT COUNT(*) FROM named_objects WHERE path IS NULL`).Scan(&roots); err != nil {
		t.Fatal(err)
	}
	if roots != 1 {
		t.Errorf("found %d root rows, want 1", roots)
	}
}

func TestOperationsAfterClose(t *testing.T) {
	s := openAt(t, filepath.Join(t.TempDir(), "arbor.db"))
	doc, err := s.OpenDocument()
	if err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	if _, err := s.OpenDocument(); !errors.Is(err, model.ErrStoreClosed) {
		t.Errorf("OpenDocument after close = %v, want ErrStoreClosed", err)
	}
	if err := s.WriteDocument(doc); !errors.Is(err, model.ErrStoreClosed) {
		t.Errorf("WriteDocument after close = %v, want ErrStoreClosed", err)
	}
	if _, err := s.CreateNode(doc, model.MustParse("/x")); !errors.Is(err, model.ErrStoreClosed) {
		t.Errorf("CreateNode after close = %v, want ErrStoreClosed", err)
	}

	// Verify idempotent.
	if err := s.Close(); err != nil {
		t.Errorf("second Close = %v", err)
	}
}
