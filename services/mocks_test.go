package services

import (
	"io"
	"log/slog"

	"digital-weather/models"

	"github.com/stretchr/testify/mock"
)

// ==================== MOCKS ====================

// MockUserRepository is a mock implementation of UserRepository interface
type MockUserRepository struct {
	mock.Mock
}

var _ UserRepository = (*MockUserRepository)(nil)

func (m *MockUserRepository) CreateUser(username, passwordHash string) (int64, error) {
	args := m.Called(username, passwordHash)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserRepository) GetUserByUsername(username string) (*models.User, error) {
	args := m.Called(username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ListUsers() ([]models.User, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

// MockDeviceRepository is a mock implementation of DeviceRepository interface
type MockDeviceRepository struct {
	mock.Mock
}

var _ DeviceRepository = (*MockDeviceRepository)(nil)

func (m *MockDeviceRepository) CreateDevice(lat, lng float64) (int64, error) {
	args := m.Called(lat, lng)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeviceRepository) CreateDevices(devices []models.Device) ([]int64, error) {
	args := m.Called(devices)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

func (m *MockDeviceRepository) ListDevices() ([]models.Device, error) {
	args := m.Called()
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Device), args.Error(1)
}

// MockNoteRepository is a mock implementation of NoteRepository interface
type MockNoteRepository struct {
	mock.Mock
}

var _ NoteRepository = (*MockNoteRepository)(nil)

func (m *MockNoteRepository) CreateNote(note *models.Note) error {
	args := m.Called(note)
	return args.Error(0)
}

func (m *MockNoteRepository) ListNotesByDevice(deviceID int64) ([]models.Note, error) {
	args := m.Called(deviceID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Note), args.Error(1)
}

func (m *MockNoteRepository) UpdateNote(noteID int64, text string) (bool, error) {
	args := m.Called(noteID, text)
	return args.Bool(0), args.Error(1)
}

func (m *MockNoteRepository) DeleteNote(noteID int64) (bool, error) {
	args := m.Called(noteID)
	return args.Bool(0), args.Error(1)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
