package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	sqlite3 "modernc.org/sqlite"
	lib "modernc.org/sqlite/lib"

	"github.com/mesh-intelligence/arbor/pkg/model"
)

// isUniqueViolation reports whether err is a SQLITE_CONSTRAINT failure.
// The path column's UNIQUE constraint is the last line of defense when two
// stores race on one file; the violation surfaces as a path collision.
func isUniqueViolation(err error) bool {
	var serr *sqlite3.Error
	if !errors.As(err, &serr) {
		return false
	}
	switch serr.Code() {
	case lib.SQLITE_CONSTRAINT, lib.SQLITE_CONSTRAINT_UNIQUE, lib.SQLITE_CONSTRAINT_PRIMARYKEY:
		return true
	}
	return false
}

// OpenDocument loads every named_objects row, assembles the tree, and
// attaches the share groups. Rows with a NULL or empty path are the root;
// every other path string must parse cleanly.
func (s *Store) OpenDocument() (*model.Document, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(`SELECT id, path FROM named_objects`)
	if err != nil {
		return nil, fmt.Errorf("loading objects: %w", err)
	}
	defer rows.Close()

	var objects []model.NamedObject
	for rows.Next() {
		var id int64
		var path sql.NullString
		if err := rows.Scan(&id, &path); err != nil {
			return nil, fmt.Errorf("scanning object row: %w", err)
		}

		p := model.Root()
		if path.Valid && path.String != "" {
			parsed, err := model.Parse(path.String)
			if err != nil {
				return nil, fmt.Errorf("row %d: %w", id, err)
			}
			p = parsed
		}
		objects = append(objects, model.NamedObject{ID: id, Path: p})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("loading objects: %w", err)
	}

	doc, err := model.BuildDocument(objects)
	if err != nil {
		return nil, err
	}

	groups, err := s.loadShareGroups()
	if err != nil {
		return nil, err
	}
	doc.ShareGroups = groups

	s.log.WithFields(logrus.Fields{
		"objects":      len(objects),
		"share_groups": len(groups),
	}).Debug("document loaded")
	return doc, nil
}

// WriteDocument writes every node's (name, path) row back by id, then
// rewrites the share groups. The root row keeps a NULL path. Row updates
// are individually atomic; a failure part way through aborts the walk and
// leaves earlier updates in place.
func (s *Store) WriteDocument(doc *model.Document) error {
	if err := s.guard(); err != nil {
		return err
	}

	nodes := 0
	err := doc.Root.Walk(func(n *model.Node) error {
		path := sql.NullString{}
		if !n.Base.Path.IsRoot() {
			path = sql.NullString{String: n.Base.Path.String(), Valid: true}
		}
		if _, err := s.db.Exec(
			`UPDATE named_objects SET name = ?, path = ? WHERE id = ?`,
			n.Base.Name().String(), path, n.Base.ID,
		); err != nil {
			return fmt.Errorf("writing node %q: %w", n.Base.Path, err)
		}
		nodes++
		return nil
	})
	if err != nil {
		return err
	}

	if err := s.SaveShareGroups(doc); err != nil {
		return err
	}

	s.log.WithField("nodes", nodes).Debug("document written")
	return nil
}

// CreateNode inserts a row for path and attaches the new node under its
// parent. The parent is resolved before the insert, so a failed create
// leaves no orphan row behind.
func (s *Store) CreateNode(doc *model.Document, path model.ModelPath) (*model.Node, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	parentPath, name, ok := path.SplitLast()
	if !ok {
		// The root always exists.
		return nil, fmt.Errorf("creating %q: %w", path, model.ErrPathCollision)
	}

	parent, found := doc.FindNode(parentPath)
	if !found {
		return nil, fmt.Errorf("creating %q: parent not found: %w", path, model.ErrMissingParent)
	}
	if _, exists := parent.Child(name); exists {
		return nil, fmt.Errorf("creating %q: %w", path, model.ErrPathCollision)
	}

	res, err := s.db.Exec(
		`INSERT INTO named_objects (name, path, parent) VALUES (?, ?, NULL)`,
		name.String(), path.String(),
	)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, fmt.Errorf("creating %q: %w", path, model.ErrPathCollision)
		}
		return nil, fmt.Errorf("creating %q: %w", path, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("creating %q: %w", path, err)
	}

	node := model.NewNode(model.NamedObject{ID: id, Path: path})
	if err := parent.AddChild(node); err != nil {
		return nil, fmt.Errorf("creating %q: %w", path, err)
	}

	s.log.WithFields(logrus.Fields{"id": id, "path": path.String()}).Debug("node created")
	return node, nil
}

// CreatePath creates path along with any missing ancestors and returns the
// leaf node. Existing ancestors are reused; the leaf itself must not
// already exist.
func (s *Store) CreatePath(doc *model.Document, path model.ModelPath) (*model.Node, error) {
	if err := s.guard(); err != nil {
		return nil, err
	}

	if path.IsRoot() {
		return nil, fmt.Errorf("creating %q: %w", path, model.ErrPathCollision)
	}
	parentPath, _, _ := path.SplitLast()
	if err := s.ensurePath(doc, parentPath); err != nil {
		return nil, err
	}
	return s.CreateNode(doc, path)
}

// ensurePath creates every missing node from the root down to path.
func (s *Store) ensurePath(doc *model.Document, path model.ModelPath) error {
	if _, ok := doc.FindNode(path); ok {
		return nil
	}
	parentPath, _, ok := path.SplitLast()
	if !ok {
		return nil
	}
	if err := s.ensurePath(doc, parentPath); err != nil {
		return err
	}
	_, err := s.CreateNode(doc, path)
	return err
}

// DeleteNode removes path's node and its whole subtree. The rows and their
// share-group memberships are deleted in one transaction; the subtree is
// then detached from its parent.
func (s *Store) DeleteNode(doc *model.Document, path model.ModelPath) error {
	if err := s.guard(); err != nil {
		return err
	}

	if path.IsRoot() {
		return fmt.Errorf("deleting %q: %w", path, model.ErrRootNode)
	}
	node, ok := doc.FindNode(path)
	if !ok {
		return fmt.Errorf("deleting %q: %w", path, model.ErrNotFound)
	}

	var ids []int64
	_ = node.Walk(func(n *model.Node) error {
		ids = append(ids, n.Base.ID)
		return nil
	})

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("deleting %q: %w", path, err)
	}
	defer tx.Rollback()

	for _, id := range ids {
		if _, err := tx.Exec(`DELETE FROM named_objects WHERE id = ?`, id); err != nil {
			return fmt.Errorf("deleting %q: %w", path, err)
		}
		if _, err := tx.Exec(`DELETE FROM share_groups WHERE obj_id = ?`, id); err != nil {
			return fmt.Errorf("deleting %q: %w", path, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("deleting %q: %w", path, err)
	}

	parentPath, name, _ := path.SplitLast()
	if parent, ok := doc.FindNode(parentPath); ok {
		parent.RemoveChild(name)
	}

	// Keep the in-memory share groups consistent with the deleted rows.
	deleted := make(map[int64]bool, len(ids))
	for _, id := range ids {
		deleted[id] = true
	}
	for gi := range doc.ShareGroups {
		g := &doc.ShareGroups[gi]
		kept := g.ObjectIDs[:0]
		for _, id := range g.ObjectIDs {
			if !deleted[id] {
				kept = append(kept, id)
			}
		}
		g.ObjectIDs = kept
	}

	s.log.WithFields(logrus.Fields{"path": path.String(), "nodes": len(ids)}).Debug("subtree deleted")
	return nil
}
