package app

import (
	"log/slog"

	"digital-weather/database"
	"digital-weather/geo"
	"digital-weather/services"
	"digital-weather/validator"
)

// App holds all application dependencies
// This struct is the central point for dependency injection
type App struct {
	Repo      *database.Repository
	Auth      *services.AuthService
	Devices   *services.DeviceService
	Notes     *services.NoteService
	Validator *validator.Validator
	Logger    *slog.Logger
}

// New creates a new App instance with all dependencies
func New(repo *database.Repository, grid geo.Grid, bcryptCost int, logger *slog.Logger) *App {
	return &App{
		Repo:      repo,
		Auth:      services.NewAuthService(repo, bcryptCost, logger),
		Devices:   services.NewDeviceService(repo, grid, logger),
		Notes:     services.NewNoteService(repo),
		Validator: validator.New(),
		Logger:    logger,
	}
}
