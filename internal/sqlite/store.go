// Package sqlite implements the SQLite-backed document store. One Store
// maps to one database file; Open prepares the schema and the root row,
// and the store's operations load, extend, and flush whole document trees.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/arbor/pkg/model"
)

// Store persists documents to a single SQLite database file.
type Store struct {
	mu     sync.RWMutex
	closed bool
	db     *sql.DB
	log    *logrus.Logger
}

var _ model.DocumentStore = (*Store)(nil)

// Open opens the database at cfg.Path, creating the file, the schema, and
// the root row when missing. Opening an already-populated database leaves
// its rows untouched.
func Open(cfg model.Config) (*Store, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = logrus.New()
	}

	// Create the parent directory if needed.
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("creating store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", cfg.Path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db, log: logger}
	if err := s.ensureSchema(); err != nil {
		db.Close()
		return nil, err
	}

	s.log.WithField("path", cfg.Path).Debug("store opened")
	return s, nil
}

// ensureSchema applies the DDL and inserts the root row if absent.
func (s *Store) ensureSchema() error {
	for _, stmt := range schemaDDL {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("applying schema: %w", err)
		}
	}
	for _, stmt := range indexDDL {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("applying indexes: %w", err)
		}
	}

	res, err := s.db.Exec(insertRootRow)
	if err != nil {
		return fmt.Errorf("ensuring root row: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n > 0 {
		s.log.Info("initialized empty document store")
	}
	return nil
}

// guard returns ErrStoreClosed once the store has been closed.
func (s *Store) guard() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		return model.ErrStoreClosed
	}
	return nil
}

// Close releases the database. After Close, all operations return
// ErrStoreClosed. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return nil // idempotent
	}
	s.closed = true

	if err := s.db.Close(); err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	s.log.Debug("store closed")
	return nil
}
