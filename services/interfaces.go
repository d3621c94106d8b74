package services

import "digital-weather/models"

// UserRepository defines the interface for user data access
type UserRepository interface {
	CreateUser(username, passwordHash string) (int64, error)
	GetUserByUsername(username string) (*models.User, error)
	ListUsers() ([]models.User, error)
}

// DeviceRepository defines the interface for device data access
type DeviceRepository interface {
	CreateDevice(lat, lng float64) (int64, error)
	CreateDevices(devices []models.Device) ([]int64, error)
	ListDevices() ([]models.Device, error)
}

// NoteRepository defines the interface for note data access
type NoteRepository interface {
	CreateNote(note *models.Note) error
	ListNotesByDevice(deviceID int64) ([]models.Note, error)
	UpdateNote(noteID int64, text string) (bool, error)
	DeleteNote(noteID int64) (bool, error)
}
