package sqlite

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/BasharMawase/Nextis-Admin/pkg/types"
)

// clientColumns is the select list for client rows, in scan order.
const clientColumns = "id, business_name, location, phone, anydesk, source_file, extra_data, created_at"

// fixedClientColumns are the payload keys promoted to real columns on
// update; everything else goes to the extra-data channel.
var fixedClientColumns = map[string]bool{
	types.FieldBusinessName: true,
	types.FieldLocation:     true,
	types.FieldPhone:        true,
	types.FieldAnyDesk:      true,
	types.FieldSourceFile:   true,
}

// scanner abstracts *sql.Row and *sql.Rows for scanClient.
type scanner interface {
	Scan(dest ...any) error
}

// scanClient hydrates one client row into a Record. NULL columns become
// nil values, matching the wire format of the original backend.
func scanClient(sc scanner) (types.Record, error) {
	var (
		id                                                  int64
		name, location, phone, anydesk, sourceFile, extraData sql.NullString
		createdAt                                           string
	)
	if err := sc.Scan(&id, &name, &location, &phone, &anydesk, &sourceFile, &extraData, &createdAt); err != nil {
		return nil, err
	}

	rec := types.Record{
		types.FieldID:        id,
		types.FieldCreatedAt: createdAt,
	}
	put := func(key string, v sql.NullString) {
		if v.Valid {
			rec[key] = v.String
		} else {
			rec[key] = nil
		}
	}
	put(types.FieldBusinessName, name)
	put(types.FieldLocation, location)
	put(types.FieldPhone, phone)
	put(types.FieldAnyDesk, anydesk)
	put(types.FieldSourceFile, sourceFile)
	put(types.FieldExtraData, extraData)
	return rec, nil
}

// InsertClient adds one client row. The business name is required.
func (s *Store) InsertClient(nc types.NewClient) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return 0, err
	}
	if nc.BusinessName == "" {
		return 0, types.ErrNameRequired
	}

	res, err := s.db.Exec(
		`INSERT INTO clients (business_name, location, phone, anydesk, source_file, extra_data)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		nc.BusinessName, nc.Location, nc.Phone, nc.AnyDesk, nc.SourceFile, nc.ExtraData)
	if err != nil {
		return 0, fmt.Errorf("inserting client: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading insert id: %w", err)
	}
	return id, nil
}

// InsertClients adds a batch of staged rows in one transaction and
// returns the number inserted. Rows without a business name are
// inserted as-is; spreadsheet sources legitimately carry unnamed rows.
func (s *Store) InsertClients(rows []types.NewClient) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(
		`INSERT INTO clients (business_name, location, phone, anydesk, source_file, extra_data)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, nc := range rows {
		if _, err := stmt.Exec(nc.BusinessName, nc.Location, nc.Phone, nc.AnyDesk, nc.SourceFile, nc.ExtraData); err != nil {
			return 0, fmt.Errorf("inserting client row: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("committing insert: %w", err)
	}
	return len(rows), nil
}

// GetClient retrieves one client row without extra-data merging.
func (s *Store) GetClient(id int64) (types.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAttached(); err != nil {
		return nil, err
	}
	if id <= 0 {
		return nil, types.ErrInvalidID
	}

	rec, err := scanClient(s.db.QueryRow(
		"SELECT "+clientColumns+" FROM clients WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, types.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting client %d: %w", id, err)
	}
	return rec, nil
}

// UpdateClient applies a flat field map to a client row: fixed keys
// update their columns, every other key replaces the extra-data object.
// Returns ErrNotFound for an unknown id.
func (s *Store) UpdateClient(id int64, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return err
	}
	if id <= 0 {
		return types.ErrInvalidID
	}

	var exists int
	err := s.db.QueryRow("SELECT 1 FROM clients WHERE id = ?", id).Scan(&exists)
	if err == sql.ErrNoRows {
		return types.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("checking client %d: %w", id, err)
	}

	set := make([]string, 0, len(fixedClientColumns)+1)
	args := make([]any, 0, len(fixedClientColumns)+2)
	extra := make(map[string]string)

	for key, value := range fields {
		if fixedClientColumns[key] {
			set = append(set, key+" = ?")
			args = append(args, value)
		} else {
			extra[key] = value
		}
	}

	extraJSON, err := json.Marshal(extra)
	if err != nil {
		return fmt.Errorf("marshaling extra data: %w", err)
	}
	set = append(set, "extra_data = ?")
	args = append(args, string(extraJSON))
	args = append(args, id)

	if _, err := s.db.Exec(
		"UPDATE clients SET "+strings.Join(set, ", ")+" WHERE id = ?", args...); err != nil {
		return fmt.Errorf("updating client %d: %w", id, err)
	}
	return nil
}

// DeleteClient removes a client row. Returns ErrNotFound for an unknown id.
func (s *Store) DeleteClient(id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.checkAttached(); err != nil {
		return err
	}
	if id <= 0 {
		return types.ErrInvalidID
	}

	res, err := s.db.Exec("DELETE FROM clients WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("deleting client %d: %w", id, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("deleting client %d: %w", id, err)
	}
	if n == 0 {
		return types.ErrNotFound
	}
	return nil
}

// ListPage returns one page of the full record set, newest first. Each
// record's extra-data object is merged into the record so dynamic
// columns surface in the matrix; the raw extra-data string is kept too.
func (s *Store) ListPage(page, limit int) (types.PageResult, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAttached(); err != nil {
		return types.PageResult{}, err
	}

	page = types.ClampPage(page)
	if limit <= 0 {
		limit = types.DefaultPageSize
	}

	var total int
	if err := s.db.QueryRow("SELECT COUNT(*) FROM clients").Scan(&total); err != nil {
		return types.PageResult{}, fmt.Errorf("counting clients: %w", err)
	}

	rows, err := s.db.Query(
		"SELECT "+clientColumns+" FROM clients ORDER BY id DESC LIMIT ? OFFSET ?",
		limit, (page-1)*limit)
	if err != nil {
		return types.PageResult{}, fmt.Errorf("listing clients: %w", err)
	}
	defer rows.Close()

	data := make([]types.Record, 0, limit)
	for rows.Next() {
		rec, err := scanClient(rows)
		if err != nil {
			return types.PageResult{}, fmt.Errorf("scanning client: %w", err)
		}
		for k, v := range rec.ExtraFields() {
			rec[k] = v
		}
		data = append(data, rec)
	}
	if err := rows.Err(); err != nil {
		return types.PageResult{}, fmt.Errorf("listing clients: %w", err)
	}

	return types.PageResult{Data: data, Total: total, Page: page, PerPage: limit}, nil
}

// ListByLocation returns every record for one location, without
// extra-data merging; consumers parse the channel themselves.
func (s *Store) ListByLocation(location string) ([]types.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAttached(); err != nil {
		return nil, err
	}
	if location == "" {
		return []types.Record{}, nil
	}
	return s.queryClients("SELECT "+clientColumns+" FROM clients WHERE location = ?", location)
}

// searchLimit caps free-text search results.
const searchLimit = 20

// SearchClients runs a substring search over business names.
func (s *Store) SearchClients(query string) ([]types.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := s.checkAttached(); err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return []types.Record{}, nil
	}
	return s.queryClients(
		"SELECT "+clientColumns+" FROM clients WHERE business_name LIKE ? LIMIT ?",
		"%"+query+"%", searchLimit)
}

// queryClients runs a client select and hydrates all rows.
// The caller must hold the lock.
func (s *Store) queryClients(query string, args ...any) ([]types.Record, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying clients: %w", err)
	}
	defer rows.Close()

	out := []types.Record{}
	for rows.Next() {
		rec, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning client: %w", err)
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ClientDetails aggregates one record into a flat field/value list: the
// promoted columns first, then every extra-data entry. Returns
// ErrNotFound for an unknown id.
func (s *Store) ClientDetails(id int64) ([]types.DetailField, error) {
	rec, err := s.GetClient(id)
	if err != nil {
		return nil, err
	}

	fields := []types.DetailField{
		{Field: types.FieldBusinessName, Value: rec.StringField(types.FieldBusinessName)},
		{Field: types.FieldLocation, Value: rec.StringField(types.FieldLocation)},
		{Field: types.FieldPhone, Value: rec.StringField(types.FieldPhone)},
		{Field: types.FieldAnyDesk, Value: rec.StringField(types.FieldAnyDesk)},
		{Field: types.FieldSourceFile, Value: rec.StringField(types.FieldSourceFile)},
		{Field: types.FieldCreatedAt, Value: rec.StringField(types.FieldCreatedAt)},
	}

	extra := rec.ExtraFields()
	keys := make([]string, 0, len(extra))
	for k := range extra {
		keys = append(keys, k)
	}
	// Stable output order for the extended section.
	sort.Strings(keys)
	for _, k := range keys {
		fields = append(fields, types.DetailField{Field: k, Value: extra[k]})
	}
	return fields, nil
}
