package sqlite

import (
	"database/sql"
	"fmt"

	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// RegisterSourceFile records an uploaded spreadsheet under its original
// name. Re-uploading a name replaces the previous registration.
func (s *Store) RegisterSourceFile(name, storedName string, size int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return err
	}
	if name == "" {
		return types.ErrNameRequired
	}

	if _, err := s.db.Exec(
		`INSERT INTO source_files (name, stored_name, size) VALUES (?, ?, ?)
		 ON CONFLICT(name) DO UPDATE SET stored_name = excluded.stored_name,
		 size = excluded.size, uploaded_at = datetime('now')`,
		name, storedName, size); err != nil {
		return fmt.Errorf("registering source file %q: %w", name, err)
	}
	return nil
}

// ListSourceFiles returns the registered uploads, newest first.
func (s *Store) ListSourceFiles() ([]types.SourceFile, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT name, size, uploaded_at FROM source_files ORDER BY uploaded_at DESC, name")
	if err != nil {
		return nil, fmt.Errorf("listing source files: %w", err)
	}
	defer rows.Close()

	out := []types.SourceFile{}
	for rows.Next() {
		var f types.SourceFile
		if err := rows.Scan(&f.Name, &f.Size, &f.Modified); err != nil {
			return nil, fmt.Errorf("scanning source file: %w", err)
		}
		out = append(out, f)
	}
	return out, rows.Err()
}

// DeleteSourceFile removes an upload registration together with every
// client row it produced, and returns the stored name so the caller can
// unlink the file on disk. Returns ErrNotFound for an unknown name.
func (s *Store) DeleteSourceFile(name string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return "", err
	}

	var storedName string
	err := s.db.QueryRow("SELECT stored_name FROM source_files WHERE name = ?", name).Scan(&storedName)
	if err == sql.ErrNoRows {
		return "", types.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("looking up source file %q: %w", name, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM clients WHERE source_file = ?", name); err != nil {
		return "", fmt.Errorf("deleting clients of %q: %w", name, err)
	}
	if _, err := tx.Exec("DELETE FROM source_files WHERE name = ?", name); err != nil {
		return "", fmt.Errorf("deleting source file %q: %w", name, err)
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing delete: %w", err)
	}
	return storedName, nil
}
