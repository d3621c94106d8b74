package services

import (
	"errors"

	"digital-weather/database"
)

// Common service-level errors
var (
	// Auth errors. ErrUserNotFound and ErrWrongPassword never leave
	// Login; callers only see ErrInvalidCredentials.
	ErrUserNotFound       = database.ErrUserNotFound
	ErrWrongPassword      = errors.New("wrong password")
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrDuplicateUsername  = database.ErrDuplicateUsername

	// Device errors
	ErrDeviceNotFound     = database.ErrDeviceNotFound
	ErrInvalidCoordinates = database.ErrInvalidCoordinates
)
