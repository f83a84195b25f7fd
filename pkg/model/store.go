package model

// DocumentStore is the persistence surface for documents. A store owns one
// backing database; documents loaded from it carry the row ids needed to
// write back.
type DocumentStore interface {
	// OpenDocument loads the full tree and the share groups. A fresh store
	// yields a document holding only the root node. Corrupt row sets
	// report ErrMissingParent or ErrDuplicatePath.
	OpenDocument() (*Document, error)

	// WriteDocument writes every node's (name, path) row back by id, then
	// rewrites the share groups. Row updates are individually atomic; a
	// failure part way through leaves earlier updates in place and is
	// returned wrapped.
	WriteDocument(doc *Document) error

	// CreateNode inserts a row for path and attaches the new node under
	// its parent. Returns ErrMissingParent when the parent is not in the
	// tree and ErrPathCollision when the path already exists.
	CreateNode(doc *Document, path ModelPath) (*Node, error)

	// CreatePath is CreateNode plus creation of any missing ancestors.
	// The leaf itself must not already exist.
	CreatePath(doc *Document, path ModelPath) (*Node, error)

	// DeleteNode removes path's node and its whole subtree: the rows and
	// their share-group memberships go in one transaction, then the
	// subtree is detached from its parent. Returns ErrNotFound for absent
	// paths and ErrRootNode for the root.
	DeleteNode(doc *Document, path ModelPath) error

	// SaveShareGroups rewrites the share_groups table from doc, assigning
	// ids to groups that lack one.
	SaveShareGroups(doc *Document) error

	// Close releases the backing database. Further operations return
	// ErrStoreClosed. Idempotent: multiple calls succeed.
	Close() error
}
