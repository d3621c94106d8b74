package geo

import (
	"digital-weather/models"

	"github.com/paulmach/orb"
)

// Campus bounds covered by the heatmap image.
const (
	DefaultMinLat   = 35.3030
	DefaultMaxLat   = 35.3120
	DefaultMinLng   = -80.7365
	DefaultMaxLng   = -80.7275
	DefaultGridSize = 10
)

// Grid splits a bounding box into Size x Size tiles. Row 0 is the
// northern edge and column 0 the western edge; tile ids run row-major.
type Grid struct {
	Bound orb.Bound
	Size  int
}

func NewGrid(minLat, maxLat, minLng, maxLng float64, size int) Grid {
	return Grid{
		Bound: orb.Bound{Min: Point(minLat, minLng), Max: Point(maxLat, maxLng)},
		Size:  size,
	}
}

func DefaultGrid() Grid {
	return NewGrid(DefaultMinLat, DefaultMaxLat, DefaultMinLng, DefaultMaxLng, DefaultGridSize)
}

// Tile returns the tile id containing the point, or false when the point
// lies outside the grid. Points on the southern or eastern edge fall in
// the last row or column.
func (g Grid) Tile(lat, lng float64) (int, bool) {
	if g.Size <= 0 || !g.Bound.Contains(Point(lat, lng)) {
		return 0, false
	}

	latSpan := g.Bound.Top() - g.Bound.Bottom()
	lngSpan := g.Bound.Right() - g.Bound.Left()
	if latSpan <= 0 || lngSpan <= 0 {
		return 0, false
	}

	row := clamp(int((g.Bound.Top()-lat)/latSpan*float64(g.Size)), g.Size)
	col := clamp(int((lng-g.Bound.Left())/lngSpan*float64(g.Size)), g.Size)

	return row*g.Size + col, true
}

// Counts tallies devices per tile. Devices outside the grid are ignored.
func (g Grid) Counts(devices []models.Device) []int {
	if g.Size <= 0 {
		return []int{}
	}

	counts := make([]int, g.Size*g.Size)
	for _, d := range devices {
		if tile, ok := g.Tile(d.Lat, d.Lng); ok {
			counts[tile]++
		}
	}
	return counts
}

func clamp(i, size int) int {
	if i < 0 {
		return 0
	}
	if i >= size {
		return size - 1
	}
	return i
}
