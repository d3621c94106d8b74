package setup

import (
	"log/slog"

	"digital-weather/app"
	"digital-weather/config"
	"digital-weather/database"
)

// InitDatabase opens the SQLite store and makes sure the schema exists.
// Any error here is a *database.SetupError and should stop the process.
func InitDatabase(dbPath string, logger *slog.Logger) (*database.Store, error) {
	store, err := database.Open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := store.EnsureSchema(); err != nil {
		store.Close()
		return nil, err
	}

	logger.Info("database initialized", "path", dbPath)
	return store, nil
}

// InitApp initializes the application with all dependencies
func InitApp(store *database.Store, cfg *config.Config, logger *slog.Logger) *app.App {
	repo := database.NewRepository(store)

	application := app.New(repo, cfg.Grid(), cfg.BcryptCost, logger)
	logger.Info("application initialized",
		"grid_size", cfg.HeatmapGridSize,
		"bcrypt_cost", cfg.BcryptCost,
	)

	return application
}

// Shutdown releases the store
func Shutdown(store *database.Store, logger *slog.Logger) {
	logger.Info("shutting down services...")

	if store != nil {
		if err := store.Close(); err != nil {
			logger.Error("failed to close database", "error", err)
			return
		}
		logger.Info("database closed")
	}
}
