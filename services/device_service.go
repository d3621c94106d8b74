package services

import (
	"log/slog"
	"math/rand/v2"

	"digital-weather/geo"
	"digital-weather/models"

	"github.com/paulmach/orb/geojson"
)

// DeviceService handles device placement and the geospatial views
type DeviceService struct {
	repo   DeviceRepository
	grid   geo.Grid
	logger *slog.Logger
}

// NewDeviceService creates a new device service using grid for heatmaps
// and seeding bounds
func NewDeviceService(repo DeviceRepository, grid geo.Grid, logger *slog.Logger) *DeviceService {
	return &DeviceService{
		repo:   repo,
		grid:   grid,
		logger: logger,
	}
}

// Add stores a device and returns its id
func (ds *DeviceService) Add(lat, lng float64) (int64, error) {
	return ds.repo.CreateDevice(lat, lng)
}

// List returns every device as a GeoJSON FeatureCollection
func (ds *DeviceService) List() (*geojson.FeatureCollection, error) {
	devices, err := ds.repo.ListDevices()
	if err != nil {
		return nil, err
	}
	return geo.ToDocument(devices), nil
}

// Heatmap counts devices per tile of the configured grid
func (ds *DeviceService) Heatmap() (*models.HeatmapResponse, error) {
	devices, err := ds.repo.ListDevices()
	if err != nil {
		return nil, err
	}

	return &models.HeatmapResponse{
		GridSize: ds.grid.Size,
		Counts:   ds.grid.Counts(devices),
	}, nil
}

// Seed generates up to n clustered devices inside the grid bounds and
// stores them in one batch
func (ds *DeviceService) Seed(rng *rand.Rand, clusters []geo.Cluster, n int) ([]int64, error) {
	devices := geo.Generate(rng, clusters, n, ds.grid.Bound)

	ids, err := ds.repo.CreateDevices(devices)
	if err != nil {
		return nil, err
	}

	ds.logger.Info("devices seeded", "requested", n, "inserted", len(ids))
	return ids, nil
}
