package handlers_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"digital-weather/app"
	"digital-weather/database"
	"digital-weather/geo"
	"digital-weather/handlers"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// setupTestDB creates a temporary test database and returns app with all dependencies
func setupTestDB(t *testing.T) (*app.App, *database.Store, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "digital-weather-handlers-*")
	require.NoError(t, err, "Failed to create temp directory")

	store, err := database.Open(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err, "Failed to open test database")
	require.NoError(t, store.EnsureSchema(), "Failed to create schema")

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	application := app.New(database.NewRepository(store), geo.NewGrid(0, 10, 0, 10, 2), bcrypt.MinCost, logger)

	cleanup := func() {
		store.Close()
		os.RemoveAll(tmpDir)
	}

	return application, store, cleanup
}

// setupTestApp creates a test Fiber app with the API routes
func setupTestApp(a *app.App) *fiber.App {
	fiberApp := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError
			if e, ok := err.(*fiber.Error); ok {
				code = e.Code
			}
			return c.Status(code).JSON(fiber.Map{
				"error": err.Error(),
			})
		},
	})

	fiberApp.Get("/health", handlers.Health(a))
	fiberApp.Post("/api/auth/register", handlers.Register(a))
	fiberApp.Post("/api/auth/login", handlers.Login(a))
	fiberApp.Post("/api/devices", handlers.AddDevice(a))
	fiberApp.Get("/api/devices", handlers.ListDevices(a))
	fiberApp.Get("/api/devices/heatmap", handlers.Heatmap(a))
	fiberApp.Post("/api/devices/:id/notes", handlers.AddNote(a))
	fiberApp.Get("/api/devices/:id/notes", handlers.ListNotes(a))
	fiberApp.Put("/api/notes/:id", handlers.UpdateNote(a))
	fiberApp.Delete("/api/notes/:id", handlers.DeleteNote(a))

	return fiberApp
}

// doJSON sends body (raw string or value to marshal) and decodes the response object
func doJSON(t *testing.T, fiberApp *fiber.App, method, path string, body interface{}) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := fiberApp.Test(req, -1)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp.StatusCode, decoded
}

func TestRegisterAndLogin(t *testing.T) {
	application, _, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	creds := map[string]string{"username": "alice", "password": "password123"}

	status, body := doJSON(t, fiberApp, http.MethodPost, "/api/auth/register", creds)
	assert.Equal(t, http.StatusCreated, status)
	assert.Equal(t, "User registered successfully", body["message"])

	tests := []struct {
		name           string
		path           string
		requestBody    interface{}
		expectedStatus int
		expectedError  string
		validateBody   func(t *testing.T, body map[string]interface{})
	}{
		{
			name:           "Duplicate username",
			path:           "/api/auth/register",
			requestBody:    creds,
			expectedStatus: http.StatusConflict,
			expectedError:  "Username already exists",
		},
		{
			name:           "Invalid JSON body",
			path:           "/api/auth/register",
			requestBody:    "{not json",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid request body",
		},
		{
			name:           "Short password",
			path:           "/api/auth/register",
			requestBody:    map[string]string{"username": "bob", "password": "short"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Validation failed",
			validateBody: func(t *testing.T, body map[string]interface{}) {
				details := body["details"].([]interface{})
				require.Len(t, details, 1)
				assert.Equal(t, "password", details[0].(map[string]interface{})["field"])
			},
		},
		{
			name:           "Login success",
			path:           "/api/auth/login",
			requestBody:    creds,
			expectedStatus: http.StatusOK,
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, true, body["success"])
			},
		},
		{
			name:           "Wrong password",
			path:           "/api/auth/login",
			requestBody:    map[string]string{"username": "alice", "password": "wrong-password"},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid username or password",
		},
		{
			name:           "Unknown user gets the same answer",
			path:           "/api/auth/login",
			requestBody:    map[string]string{"username": "mallory", "password": "password123"},
			expectedStatus: http.StatusUnauthorized,
			expectedError:  "Invalid username or password",
			validateBody: func(t *testing.T, body map[string]interface{}) {
				assert.Equal(t, false, body["success"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, fiberApp, http.MethodPost, tt.path, tt.requestBody)

			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedError != "" {
				assert.Contains(t, body["error"], tt.expectedError)
			}
			if tt.validateBody != nil {
				tt.validateBody(t, body)
			}
		})
	}
}

func TestAddDevice(t *testing.T) {
	application, _, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	tests := []struct {
		name           string
		requestBody    interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Valid device",
			requestBody:    map[string]float64{"lat": 40.7128, "lng": -74.0060},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Origin is valid",
			requestBody:    map[string]float64{"lat": 0, "lng": 0},
			expectedStatus: http.StatusCreated,
		},
		{
			name:           "Latitude out of range",
			requestBody:    map[string]float64{"lat": 91, "lng": 0},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Validation failed",
		},
		{
			name:           "Missing longitude",
			requestBody:    map[string]float64{"lat": 10},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Validation failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, fiberApp, http.MethodPost, "/api/devices", tt.requestBody)

			assert.Equal(t, tt.expectedStatus, status)
			if tt.expectedError != "" {
				assert.Contains(t, body["error"], tt.expectedError)
			} else {
				assert.Greater(t, body["id"], float64(0))
			}
		})
	}
}

func TestListDevices_GeoJSON(t *testing.T) {
	application, _, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	resp, err := fiberApp.Test(httptest.NewRequest(http.MethodGet, "/api/devices", nil), -1)
	require.NoError(t, err)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[]}`, string(data))

	_, err = application.Repo.CreateDevice(40.7128, -74.0060)
	require.NoError(t, err)

	resp, err = fiberApp.Test(httptest.NewRequest(http.MethodGet, "/api/devices", nil), -1)
	require.NoError(t, err)
	data, err = io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"FeatureCollection","features":[
		{"type":"Feature","geometry":{"type":"Point","coordinates":[-74.006,40.7128]},"properties":{"id":1}}
	]}`, string(data))
}

func TestHeatmap(t *testing.T) {
	application, _, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	for _, p := range [][2]float64{{9.5, 0.5}, {0.5, 9.5}, {50, 50}} {
		_, err := application.Repo.CreateDevice(p[0], p[1])
		require.NoError(t, err)
	}

	status, body := doJSON(t, fiberApp, http.MethodGet, "/api/devices/heatmap", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), body["grid_size"])
	assert.Equal(t, []interface{}{float64(1), float64(0), float64(0), float64(1)}, body["counts"])
}

func TestNotesLifecycle(t *testing.T) {
	application, _, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	deviceID, err := application.Repo.CreateDevice(1, 1)
	require.NoError(t, err)
	require.Equal(t, int64(1), deviceID)

	status, body := doJSON(t, fiberApp, http.MethodPost, "/api/devices/1/notes", map[string]string{"text": "first"})
	require.Equal(t, http.StatusCreated, status)
	firstID := body["id"].(float64)

	status, body = doJSON(t, fiberApp, http.MethodPost, "/api/devices/1/notes", map[string]string{"text": "second"})
	require.Equal(t, http.StatusCreated, status)
	secondID := body["id"].(float64)
	assert.Greater(t, secondID, firstID)

	status, body = doJSON(t, fiberApp, http.MethodGet, "/api/devices/1/notes", nil)
	require.Equal(t, http.StatusOK, status)
	notes := body["notes"].([]interface{})
	require.Len(t, notes, 2)
	assert.Equal(t, "second", notes[0].(map[string]interface{})["text"], "newest first")

	status, body = doJSON(t, fiberApp, http.MethodPut, "/api/notes/1", map[string]string{"text": "edited"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["updated"])

	status, body = doJSON(t, fiberApp, http.MethodPut, "/api/notes/999", map[string]string{"text": "edited"})
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["updated"])

	status, body = doJSON(t, fiberApp, http.MethodDelete, "/api/notes/1", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, true, body["deleted"])

	status, body = doJSON(t, fiberApp, http.MethodDelete, "/api/notes/1", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, false, body["deleted"])
}

func TestNotes_Errors(t *testing.T) {
	application, _, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	tests := []struct {
		name           string
		method         string
		path           string
		requestBody    interface{}
		expectedStatus int
		expectedError  string
	}{
		{
			name:           "Unknown device",
			method:         http.MethodPost,
			path:           "/api/devices/42/notes",
			requestBody:    map[string]string{"text": "orphan"},
			expectedStatus: http.StatusNotFound,
			expectedError:  "Device not found",
		},
		{
			name:           "Non-numeric device id",
			method:         http.MethodPost,
			path:           "/api/devices/abc/notes",
			requestBody:    map[string]string{"text": "x"},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid device id",
		},
		{
			name:           "Blank text",
			method:         http.MethodPut,
			path:           "/api/notes/1",
			requestBody:    map[string]string{"text": "   "},
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Validation failed",
		},
		{
			name:           "Zero note id",
			method:         http.MethodDelete,
			path:           "/api/notes/0",
			expectedStatus: http.StatusBadRequest,
			expectedError:  "Invalid note id",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doJSON(t, fiberApp, tt.method, tt.path, tt.requestBody)

			assert.Equal(t, tt.expectedStatus, status)
			assert.Contains(t, body["error"], tt.expectedError)
		})
	}

	status, body := doJSON(t, fiberApp, http.MethodGet, "/api/devices/42/notes", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Empty(t, body["notes"])
	assert.NotNil(t, body["notes"], "unknown device lists as an empty array")
}

func TestStoreFailure(t *testing.T) {
	application, store, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	require.NoError(t, store.Close())

	status, body := doJSON(t, fiberApp, http.MethodGet, "/api/devices", nil)
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Failed to list devices", body["error"])

	status, body = doJSON(t, fiberApp, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, status)
	assert.Equal(t, "unavailable", body["status"])
}

func TestHealth(t *testing.T) {
	application, _, cleanup := setupTestDB(t)
	defer cleanup()
	fiberApp := setupTestApp(application)

	status, body := doJSON(t, fiberApp, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, float64(0), body["devices"])
}
