package models

// Device is a georeferenced point. Coordinates are stored lat-first.
type Device struct {
	ID  int64   `json:"id"`
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Pointers so a missing field is distinguishable from 0.
type CreateDeviceRequest struct {
	Lat *float64 `json:"lat" validate:"required,latitude"`
	Lng *float64 `json:"lng" validate:"required,longitude"`
}

type HeatmapResponse struct {
	GridSize int   `json:"grid_size"`
	Counts   []int `json:"counts"`
}
