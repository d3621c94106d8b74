package geo

import (
	"math"
	"math/rand/v2"

	"digital-weather/models"

	"github.com/paulmach/orb"
)

// Cluster is a weighted disc around which synthetic devices are placed.
// Radius is in degrees.
type Cluster struct {
	Name   string
	Center orb.Point
	Radius float64
	Weight float64
}

// CampusClusters approximates foot traffic around the campus buildings.
var CampusClusters = []Cluster{
	{"Atkins Library", Point(35.3079, -80.7335), 0.00020, 0.12},
	{"Popp Martin Student Union", Point(35.3090, -80.7352), 0.00020, 0.10},
	{"Woodward Hall", Point(35.3086, -80.7350), 0.00018, 0.08},
	{"Barnhardt Student Activity Center", Point(35.3080, -80.7355), 0.00020, 0.08},
	{"Belk Gymnasium", Point(35.3072, -80.7360), 0.00018, 0.07},
	{"Fretwell Hall", Point(35.3087, -80.7318), 0.00018, 0.07},
	{"Kennedy Hall", Point(35.3084, -80.7328), 0.00015, 0.06},
	{"McEniry Hall", Point(35.3084, -80.7323), 0.00015, 0.06},
	{"Robinson Hall", Point(35.3057, -80.7295), 0.00020, 0.05},
	{"Belk Hall", Point(35.3113, -80.7360), 0.00015, 0.05},
	{"Wallis Hall", Point(35.3115, -80.7350), 0.00015, 0.04},
	{"Cameron Hall", Point(35.3088, -80.7330), 0.00015, 0.05},
	{"Smith Hall", Point(35.3085, -80.7332), 0.00015, 0.04},
	{"Denny Hall", Point(35.3082, -80.7325), 0.00015, 0.04},
	{"Garinger Hall", Point(35.3081, -80.7320), 0.00015, 0.04},
	{"Rowe Hall", Point(35.3080, -80.7312), 0.00015, 0.03},
	{"Storrs Hall", Point(35.3079, -80.7308), 0.00015, 0.03},
	{"Macy Hall", Point(35.3083, -80.7324), 0.00014, 0.03},
	{"Friday Hall", Point(35.3084, -80.7321), 0.00014, 0.03},
	{"King & Reese", Point(35.3081, -80.7338), 0.00013, 0.02},
	{"Oak / Elm / Maple / Pine", Point(35.3089, -80.7320), 0.00020, 0.05},
}

// Generate draws n candidate points: a cluster is picked by weight, then a
// point uniformly inside its disc. Candidates outside bound are dropped,
// so fewer than n devices may be returned. Returned devices have no id.
func Generate(rng *rand.Rand, clusters []Cluster, n int, bound orb.Bound) []models.Device {
	total := 0.0
	for _, c := range clusters {
		total += c.Weight
	}
	if total <= 0 || n <= 0 {
		return []models.Device{}
	}

	devices := make([]models.Device, 0, n)
	for i := 0; i < n; i++ {
		c := pick(rng, clusters, total)

		r := c.Radius * math.Sqrt(rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		p := Point(c.Center.Lat()+r*math.Cos(theta), c.Center.Lon()+r*math.Sin(theta))

		if !bound.Contains(p) {
			continue
		}
		devices = append(devices, models.Device{Lat: p.Lat(), Lng: p.Lon()})
	}
	return devices
}

func pick(rng *rand.Rand, clusters []Cluster, total float64) Cluster {
	x := rng.Float64() * total
	for _, c := range clusters {
		if x < c.Weight {
			return c
		}
		x -= c.Weight
	}
	return clusters[len(clusters)-1]
}
