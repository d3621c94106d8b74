package config

import (
	"fmt"
	"os"
	"strconv"

	"digital-weather/geo"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string
	DBPath      string
	LogLevel    string
	CORSOrigins string
	BcryptCost  int

	HeatmapGridSize int
	HeatmapMinLat   float64
	HeatmapMaxLat   float64
	HeatmapMinLng   float64
	HeatmapMaxLng   float64
}

var AppConfig *Config

// Load reads .env (if any) and the process environment into AppConfig
func Load() error {
	_ = godotenv.Load()

	cfg := &Config{
		Port:        GetEnv("PORT", "1420"),
		Env:         GetEnv("ENV", "development"),
		DBPath:      GetEnv("DB_PATH", "./data/digital-weather.db"),
		LogLevel:    GetEnv("LOG_LEVEL", "info"),
		CORSOrigins: GetEnv("CORS_ORIGINS", "*"),
		BcryptCost:  GetEnvInt("BCRYPT_COST", 10),

		HeatmapGridSize: GetEnvInt("HEATMAP_GRID_SIZE", geo.DefaultGridSize),
		HeatmapMinLat:   GetEnvFloat("HEATMAP_MIN_LAT", geo.DefaultMinLat),
		HeatmapMaxLat:   GetEnvFloat("HEATMAP_MAX_LAT", geo.DefaultMaxLat),
		HeatmapMinLng:   GetEnvFloat("HEATMAP_MIN_LNG", geo.DefaultMinLng),
		HeatmapMaxLng:   GetEnvFloat("HEATMAP_MAX_LNG", geo.DefaultMaxLng),
	}

	if err := cfg.validate(); err != nil {
		return err
	}

	AppConfig = cfg
	return nil
}

func (c *Config) validate() error {
	if c.HeatmapGridSize <= 0 {
		return fmt.Errorf("HEATMAP_GRID_SIZE must be positive, got %d", c.HeatmapGridSize)
	}
	if c.HeatmapMinLat >= c.HeatmapMaxLat {
		return fmt.Errorf("HEATMAP_MIN_LAT (%v) must be below HEATMAP_MAX_LAT (%v)", c.HeatmapMinLat, c.HeatmapMaxLat)
	}
	if c.HeatmapMinLng >= c.HeatmapMaxLng {
		return fmt.Errorf("HEATMAP_MIN_LNG (%v) must be below HEATMAP_MAX_LNG (%v)", c.HeatmapMinLng, c.HeatmapMaxLng)
	}
	return nil
}

// Grid is the heatmap grid described by the HEATMAP_* settings
func (c *Config) Grid() geo.Grid {
	return geo.NewGrid(c.HeatmapMinLat, c.HeatmapMaxLat, c.HeatmapMinLng, c.HeatmapMaxLng, c.HeatmapGridSize)
}

func GetEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// GetEnvInt falls back to defaultValue when the variable is unset or not an integer
func GetEnvInt(key string, defaultValue int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return defaultValue
}

func GetEnvFloat(key string, defaultValue float64) float64 {
	if f, err := strconv.ParseFloat(os.Getenv(key), 64); err == nil {
		return f
	}
	return defaultValue
}
