package sqlite

import (
	"fmt"
	"strings"

	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// AddMessage stores one contact-form message. The name is required.
func (s *Store) AddMessage(name, phone, message string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return 0, err
	}
	if strings.TrimSpace(name) == "" {
		return 0, types.ErrNameRequired
	}

	res, err := s.db.Exec(
		"INSERT INTO contact_messages (name, phone, message) VALUES (?, ?, ?)",
		name, phone, message)
	if err != nil {
		return 0, fmt.Errorf("inserting contact message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading insert id: %w", err)
	}
	return id, nil
}

// ListMessages returns every pending contact message, newest first.
func (s *Store) ListMessages() ([]types.ContactMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAttached(); err != nil {
		return nil, err
	}

	rows, err := s.db.Query(
		"SELECT id, name, phone, message, created_at FROM contact_messages ORDER BY id DESC")
	if err != nil {
		return nil, fmt.Errorf("listing contact messages: %w", err)
	}
	defer rows.Close()

	out := []types.ContactMessage{}
	for rows.Next() {
		var m types.ContactMessage
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Message, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning contact message: %w", err)
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

// DeleteMessage dismisses one contact message. Returns ErrNotFound for
// an unknown id.
func (s *Store) DeleteMessage(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return err
	}
	if id <= 0 {
		return types.ErrInvalidID
	}

	res, err := s.db.Exec("DELETE FROM contact_messages WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting contact message %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting contact message %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}
