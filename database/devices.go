package database

import (
	"context"
	"database/sql"

	"digital-weather/models"

	"github.com/mattn/go-sqlite3"
)

// ==================== DEVICE OPERATIONS ====================

// ValidCoordinates reports whether lat is within [-90, 90] and lng within
// [-180, 180]. NaN is rejected.
func ValidCoordinates(lat, lng float64) bool {
	return lat >= -90 && lat <= 90 && lng >= -180 && lng <= 180
}

// CreateDevice inserts a device and returns its generated id
func (r *Repository) CreateDevice(lat, lng float64) (int64, error) {
	if !ValidCoordinates(lat, lng) {
		return 0, ErrInvalidCoordinates
	}

	id, err := WithConn(r.store, func(conn *sql.Conn) (int64, error) {
		res, err := conn.ExecContext(context.Background(),
			`INSERT INTO devices (lat, lng) VALUES (?, ?)`, lat, lng)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	})
	if err != nil {
		if isConstraint(err, sqlite3.ErrConstraintCheck) {
			return 0, ErrInvalidCoordinates
		}
		return 0, storeError("create device", err)
	}
	return id, nil
}

// CreateDevices inserts a batch in a single transaction. Either every
// device is stored or none is.
func (r *Repository) CreateDevices(devices []models.Device) ([]int64, error) {
	for _, d := range devices {
		if !ValidCoordinates(d.Lat, d.Lng) {
			return nil, ErrInvalidCoordinates
		}
	}

	ids, err := WithTx(r.store, func(tx *sql.Tx) ([]int64, error) {
		ctx := context.Background()
		stmt, err := tx.PrepareContext(ctx, `INSERT INTO devices (lat, lng) VALUES (?, ?)`)
		if err != nil {
			return nil, err
		}
		defer stmt.Close()

		ids := make([]int64, 0, len(devices))
		for _, d := range devices {
			res, err := stmt.ExecContext(ctx, d.Lat, d.Lng)
			if err != nil {
				return nil, err
			}
			id, err := res.LastInsertId()
			if err != nil {
				return nil, err
			}
			ids = append(ids, id)
		}
		return ids, nil
	})
	if err != nil {
		return nil, storeError("create devices", err)
	}
	return ids, nil
}

// ListDevices returns all devices in insertion (id) order
func (r *Repository) ListDevices() ([]models.Device, error) {
	devices, err := WithConn(r.store, func(conn *sql.Conn) ([]models.Device, error) {
		rows, err := conn.QueryContext(context.Background(), `
			SELECT id, lat, lng
			FROM devices
			ORDER BY id ASC
		`)
		if err != nil {
			return nil, err
		}
		defer rows.Close()

		// Initialize with empty slice to avoid returning nil
		devices := make([]models.Device, 0)
		for rows.Next() {
			var d models.Device
			if err := rows.Scan(&d.ID, &d.Lat, &d.Lng); err != nil {
				return nil, err
			}
			devices = append(devices, d)
		}
		return devices, rows.Err()
	})
	if err != nil {
		return nil, storeError("list devices", err)
	}
	return devices, nil
}

func (r *Repository) CountDevices() (int, error) {
	count, err := WithConn(r.store, func(conn *sql.Conn) (int, error) {
		var n int
		err := conn.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM devices`).Scan(&n)
		return n, err
	})
	if err != nil {
		return 0, storeError("count devices", err)
	}
	return count, nil
}
