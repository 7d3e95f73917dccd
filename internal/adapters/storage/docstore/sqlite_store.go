package docstore

import (
	"context"
	"database/sql"

	"gymdesk/internal/adapters/storage"
)

// SQLiteStore implements Store over the single collection table.
type SQLiteStore struct {
	db storage.SQLDB
}

// NewSQLiteStore creates a new SQLiteStore.
func NewSQLiteStore(db storage.SQLDB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// Compile-time check that *SQLiteStore satisfies Store.
var _ Store = (*SQLiteStore)(nil)

// GetRaw retrieves a collection's raw payload.
// POST: ok=false when the collection has never been written
func (s *SQLiteStore) GetRaw(ctx context.Context, name string) (string, bool, error) {
	row := s.db.QueryRowContext(ctx, "SELECT payload FROM collection WHERE name = ?", name)
	var payload string
	err := row.Scan(&payload)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return payload, true, nil
}

// SetRaw fully replaces a collection's payload.
// POST: Collection holds exactly payload
func (s *SQLiteStore) SetRaw(ctx context.Context, name, payload string) error {
	_, err := s.db.ExecContext(ctx,
		"INSERT INTO collection (name, payload) VALUES (?, ?) ON CONFLICT(name) DO UPDATE SET payload=excluded.payload",
		name, payload,
	)
	return err
}

// Delete removes a collection.
func (s *SQLiteStore) Delete(ctx context.Context, name string) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM collection WHERE name = ?", name)
	return err
}

// Names lists every stored collection name, sorted.
func (s *SQLiteStore) Names(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "SELECT name FROM collection ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, rows.Err()
}
