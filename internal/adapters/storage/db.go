package storage

import (
	"database/sql"
	"fmt"
)

// Open opens the SQLite database at path with WAL mode, busy timeout and
// normal synchronous writes. The caller owns the returned handle.
// PRE: the "sqlite" driver is registered (modernc.org/sqlite)
// POST: Returns an open, pinged connection or an error
func Open(path string) (*sql.DB, error) {
	dsn := path + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	return db, nil
}

// InitDB initializes the database schema. The whole document store lives in
// one table: collection name to raw JSON payload, exactly as serialized.
// PRE: db is a valid database connection
// POST: The collection table exists
func InitDB(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS collection (
		name TEXT PRIMARY KEY,
		payload TEXT NOT NULL
	);
	`
	if _, err := db.Exec(schema); err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}
