package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "github.com/mattn/go-sqlite3"
)

// Store owns the single physical connection of the process. Every
// operation runs under mu, so at most one caller touches conn at a time.
type Store struct {
	mu   sync.Mutex
	db   *sql.DB
	conn *sql.Conn
}

// Open creates the database file (and its directory) if needed and pins
// one connection with foreign-key enforcement switched on.
func Open(dbPath string) (*Store, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, &SetupError{Op: "create database directory", Err: err}
	}

	db, err := sql.Open("sqlite3", dbPath+"?_foreign_keys=on&_busy_timeout=5000")
	if err != nil {
		return nil, &SetupError{Op: "open database", Err: err}
	}

	// Enable WAL mode so readers of the file outside the process are not blocked
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, &SetupError{Op: "enable WAL mode", Err: err}
	}

	s, err := NewStore(db)
	if err != nil {
		db.Close()
		return nil, err
	}

	if err := s.enableForeignKeys(); err != nil {
		s.Close()
		return nil, err
	}

	return s, nil
}

// NewStore pins one connection of an already opened pool. The pool is
// capped at that connection for the lifetime of the store.
func NewStore(db *sql.DB) (*Store, error) {
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	conn, err := db.Conn(context.Background())
	if err != nil {
		return nil, &SetupError{Op: "acquire connection", Err: err}
	}

	return &Store{db: db, conn: conn}, nil
}

func (s *Store) enableForeignKeys() error {
	_, err := WithConn(s, func(conn *sql.Conn) (struct{}, error) {
		ctx := context.Background()
		if _, err := conn.ExecContext(ctx, "PRAGMA foreign_keys=ON"); err != nil {
			return struct{}{}, err
		}
		var enabled int
		if err := conn.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&enabled); err != nil {
			return struct{}{}, err
		}
		if enabled != 1 {
			return struct{}{}, fmt.Errorf("foreign_keys pragma reports %d", enabled)
		}
		return struct{}{}, nil
	})
	if err != nil {
		return &SetupError{Op: "enable foreign keys", Err: err}
	}
	return nil
}

// WithConn runs op with exclusive access to the connection. The lock is
// released on every exit path, including a panic inside op. op must not
// keep conn after it returns.
func WithConn[T any](s *Store, op func(conn *sql.Conn) (T, error)) (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		var zero T
		return zero, ErrStoreClosed
	}
	return op(s.conn)
}

// WithTx is WithConn inside a transaction that commits when op succeeds
// and rolls back otherwise.
func WithTx[T any](s *Store, op func(tx *sql.Tx) (T, error)) (T, error) {
	return WithConn(s, func(conn *sql.Conn) (T, error) {
		var zero T

		tx, err := conn.BeginTx(context.Background(), nil)
		if err != nil {
			return zero, err
		}
		defer tx.Rollback()

		v, err := op(tx)
		if err != nil {
			return zero, err
		}
		if err := tx.Commit(); err != nil {
			return zero, err
		}
		return v, nil
	})
}

// Close waits for the in-flight operation, then releases the connection
// and the pool. Operations issued afterwards fail with ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}

	connErr := s.conn.Close()
	s.conn = nil
	if err := s.db.Close(); err != nil {
		return err
	}
	return connErr
}
