// Package sqlite implements the SQLite storage backend for the Nextis
// dashboard: the clients table with its extra-data JSON channel, the
// contact-message inbox, and uploaded source-file bookkeeping.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// dbFileName is the SQLite database file inside the data directory.
const dbFileName = "nextis.db"

// Store implements client-record storage over SQLite. All access is
// guarded by an RWMutex; read operations share the lock.
type Store struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
}

// NewStore creates an unattached store; call Attach with a Config to
// open the database.
func NewStore() *Store {
	return &Store{}
}

// Attach opens (or creates) the database under the configured data
// directory and ensures the schema exists. The database file persists
// between runs. Returns ErrAlreadyAttached if called twice.
func (s *Store) Attach(config types.Config) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return types.ErrAlreadyAttached
	}
	if err := config.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(config.DataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(config.DataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	for _, ddl := range schemaDDL {
		if _, err := db.Exec(ddl); err != nil {
			db.Close()
			return fmt.Errorf("initializing schema: %w", err)
		}
	}

	s.db = db
	s.config = config
	s.attached = true
	return nil
}

// Detach closes the database. Idempotent; after Detach all operations
// return ErrStoreDetached.
func (s *Store) Detach() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.attached {
		return nil
	}
	if err := s.db.Close(); err != nil {
		return err
	}
	s.db = nil
	s.attached = false
	return nil
}

// checkAttached returns ErrStoreDetached when the store is not attached.
// The caller must hold the lock.
func (s *Store) checkAttached() error {
	if !s.attached {
		return types.ErrStoreDetached
	}
	return nil
}
