package database

import (
	"context"
	"database/sql"

	"digital-weather/models"

	"github.com/mattn/go-sqlite3"
)

// ==================== NOTE OPERATIONS ====================

// CreateNote inserts a note for an existing device. A zero CreatedAt is
// filled by the column default; ID and CreatedAt are set on success.
func (r *Repository) CreateNote(note *models.Note) error {
	stored, err := WithTx(r.store, func(tx *sql.Tx) (models.Note, error) {
		ctx := context.Background()

		var (
			res sql.Result
			err error
		)
		if note.CreatedAt.IsZero() {
			res, err = tx.ExecContext(ctx,
				`INSERT INTO notes (device_id, text) VALUES (?, ?)`,
				note.DeviceID, note.Text)
		} else {
			res, err = tx.ExecContext(ctx,
				`INSERT INTO notes (device_id, text, created_at) VALUES (?, ?, ?)`,
				note.DeviceID, note.Text, note.CreatedAt.UTC())
		}
		if err != nil {
			return models.Note{}, err
		}

		id, err := res.LastInsertId()
		if err != nil {
			return models.Note{}, err
		}

		stored := models.Note{ID: id, DeviceID: note.DeviceID, Text: note.Text}
		err = tx.QueryRowContext(ctx, `SELECT created_at FROM notes WHERE id = ?`, id).Scan(&stored.CreatedAt)
		return stored, err
	})
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintForeignKey) {
			return ErrDeviceNotFound
		}
		return storeError("create note", err)
	}

	*note = stored
	return nil
}

// ListNotesByDevice returns the notes of a device, newest (highest id) first
func (r *Repository) ListNotesByDevice(deviceID int64) ([]models.Note, error) {
	notes, err := WithConn(r.store, func(conn *sql.Conn) ([]models.Note, error) {
		rows, err := conn.QueryContext(context.Background(), `
			SELECT id, device_id, text, created_at
			FROM notes
			WHERE device_id = ?
			ORDER BY id DESC
		`, deviceID)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		notes := make([]models.Note, 0)
		for rows.Next() {
			var note models.Note
			if err := rows.Scan(&note.ID, &note.DeviceID, &note.Text, &note.CreatedAt); err != nil {
				return nil, err
			}
			notes = append(notes, note)
		}
		return notes, rows.Err()
	})
	if err != nil {
		return nil, storeError("list notes", err)
	}
	return notes, nil
}

// UpdateNote replaces the text of a note. It reports false when no note
// has that id; nothing is created in that case.
func (r *Repository) UpdateNote(noteID int64, text string) (bool, error) {
	updated, err := WithConn(r.store, func(conn *sql.Conn) (bool, error) {
		res, err := conn.ExecContext(context.Background(),
			`UPDATE notes SET text = ? WHERE id = ?`, text, noteID)
		if err != nil {
			return false, err
		}
		n, err := res.RowsAffected()
		return n > 0, err
	})
	if err != nil {
		return false, storeError("update note", err)
	}
	return updated, nil
}

// DeleteNote removes a note and reports whether one existed
func (r *Repository) DeleteNote(noteID int64) (bool, error) {
	deleted, err := WithConn(r.store, func(conn *sql.Conn) (bool, error) {
		res, err := conn.ExecContext(context.Background(), `DELETE FROM notes WHERE id = ?`, noteID)
		if err != nil {
			return false, err
		}
		n, err := res.RowsAffected()
		return n > 0, err
	})
	if err != nil {
		return false, storeError("delete note", err)
	}
	return deleted, nil
}
