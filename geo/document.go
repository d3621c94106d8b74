// Package geo turns device rows into geospatial views: the GeoJSON
// FeatureCollection served to the map, heatmap tile counts, and
// synthetic device placement for seeding.
package geo

import (
	"digital-weather/models"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Point converts a lat/lng pair into an orb.Point, which is ordered
// longitude first.
func Point(lat, lng float64) orb.Point {
	return orb.Point{lng, lat}
}

// ToDocument builds a FeatureCollection with one Point feature per device,
// in the order given. Each feature carries the device id in its properties.
func ToDocument(devices []models.Device) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, d := range devices {
		f := geojson.NewFeature(Point(d.Lat, d.Lng))
		f.Properties["id"] = d.ID
		fc.Append(f)
	}
	return fc
}
