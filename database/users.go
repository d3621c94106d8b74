package database

import (
	"context"
	"database/sql"
	"errors"

	"digital-weather/models"

	"github.com/mattn/go-sqlite3"
)

// ==================== USER OPERATIONS ====================

// CreateUser inserts a user row and returns its id
func (r *Repository) CreateUser(username, passwordHash string) (int64, error) {
	id, err := WithConn(r.store, func(conn *sql.Conn) (int64, error) {
		res, err := conn.ExecContext(context.Background(), `
			INSERT INTO users (username, password_hash)
			VALUES (?, ?)
		`, username, passwordHash)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	})
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintUnique) {
			return 0, ErrDuplicateUsername
		}
		return 0, storeError("create user", err)
	}
	return id, nil
}

// GetUserByUsername retrieves a user including the stored password hash
func (r *Repository) GetUserByUsername(username string) (*models.User, error) {
	user, err := WithConn(r.store, func(conn *sql.Conn) (*models.User, error) {
		var user models.User
		err := conn.QueryRowContext(context.Background(), `
			SELECT id, username, password_hash, created_at
			FROM users WHERE username = ?
		`, username).Scan(&user.ID, &user.Username, &user.PasswordHash, &user.CreatedAt)
		if err != nil {
			return nil, err
		}
		return &user, nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, storeError("get user", err)
	}
	return user, nil
}

// ListUsers returns every user ordered by id, without password hashes
func (r *Repository) ListUsers() ([]models.User, error) {
	users, err := WithConn(r.store, func(conn *sql.Conn) ([]models.User, error) {
		rows, err := conn.QueryContext(context.Background(), `
			SELECT id, username, created_at
			FROM users
			ORDER BY id ASC
		`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		users := make([]models.User, 0)
		for rows.Next() {
			var user models.User
			if err := rows.Scan(&user.ID, &user.Username, &user.CreatedAt); err != nil {
				return nil, err
			}
			users = append(users, user)
		}
		return users, rows.Err()
	})
	if err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}
