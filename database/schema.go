package database

import (
	"context"
	"database/sql"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`,

	`CREATE TABLE IF NOT EXISTS devices (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		lat REAL NOT NULL CHECK (lat BETWEEN -90 AND 90),
		lng REAL NOT NULL CHECK (lng BETWEEN -180 AND 180)
	)`,

	`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		device_id INTEGER NOT NULL,
		text TEXT NOT NULL,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP,
		FOREIGN KEY (device_id) REFERENCES devices(id)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notes_device ON notes(device_id, id DESC)`,
}

// EnsureSchema creates the users, devices and notes tables when they are
// missing. Existing tables are left untouched.
func (s *Store) EnsureSchema() error {
	_, err := WithTx(s, func(tx *sql.Tx) (struct{}, error) {
		for _, query := range schema {
			if _, err := tx.ExecContext(context.Background(), query); err != nil {
				return struct{}{}, err
			}
		}
		return struct{}{}, nil
	})
	if err != nil {
		return &SetupError{Op: "ensure schema", Err: err}
	}
	return nil
}
