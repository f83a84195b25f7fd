// Package sqlite provides the public API for the SQLite document store.
// This package exposes the factory function for opening stores while
// keeping implementation details internal.
package sqlite

import (
	"github.com/mesh-intelligence/arbor/internal/sqlite"
	"github.com/mesh-intelligence/arbor/pkg/model"
)

// Open opens the document store at cfg.Path, creating the database file,
// the schema, and the root row when missing.
//
// Example:
//
//	store, err := sqlite.Open(model.Config{Path: "arbor.db"})
//	if err != nil {
//	    return err
//	}
//	defer store.Close()
//	doc, err := store.OpenDocument()
func Open(cfg model.Config) (model.DocumentStore, error) {
	return sqlite.Open(cfg)
}
