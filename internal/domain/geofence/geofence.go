// Package geofence decides whether a patient has left the circular safe zone
// around their home coordinate.
package geofence

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"alzassist/internal/domain/entity"
)

const (
	// EarthRadiusMeters is the mean earth radius used by Haversine.
	EarthRadiusMeters = 6371000.0

	// DefaultRadiusMeters is used when the configured radius is not positive.
	DefaultRadiusMeters = 500.0
)

// Haversine returns the great-circle distance between a and b in meters.
func Haversine(a, b entity.Coordinate) float64 {
	lat1 := toRadians(a.Lat)
	lat2 := toRadians(b.Lat)
	dLat := toRadians(b.Lat - a.Lat)
	dLng := toRadians(b.Lng - a.Lng)

	sinLat := math.Sin(dLat / 2)
	sinLng := math.Sin(dLng / 2)
	h := sinLat*sinLat + math.Cos(lat1)*math.Cos(lat2)*sinLng*sinLng

	return 2 * EarthRadiusMeters * math.Atan2(math.Sqrt(h), math.Sqrt(1-h))
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}

// Result is the outcome of one evaluation.
type Result struct {
	Outside        bool
	DistanceMeters float64
}

// RoundedMeters is the distance rounded to the nearest meter.
func (r Result) RoundedMeters() int {
	return int(math.Round(r.DistanceMeters))
}

// Evaluator compares a coordinate against a home coordinate using a fixed radius.
type Evaluator struct {
	radius float64
}

// NewEvaluator creates an evaluator. A non-positive radius falls back to DefaultRadiusMeters.
func NewEvaluator(radiusMeters float64) *Evaluator {
	if radiusMeters <= 0 || math.IsNaN(radiusMeters) {
		radiusMeters = DefaultRadiusMeters
	}

	return &Evaluator{radius: radiusMeters}
}

// Radius returns the configured radius in meters.
func (e *Evaluator) Radius() float64 {
	return e.radius
}

// Evaluate reports whether current lies strictly farther than the radius from home.
func (e *Evaluator) Evaluate(current, home entity.Coordinate) Result {
	distance := Haversine(current, home)

	return Result{
		Outside:        distance > e.radius,
		DistanceMeters: distance,
	}
}

// Bound returns the bounding box that encloses the fence around home.
func (e *Evaluator) Bound(home entity.Coordinate) orb.Bound {
	return geo.NewBoundAroundPoint(home.Point(), e.radius)
}

// Ring approximates the fence circle as a closed ring with the given number of segments.
func (e *Evaluator) Ring(home entity.Coordinate, segments int) orb.Ring {
	if segments < 8 {
		segments = 8
	}

	ring := make(orb.Ring, 0, segments+1)
	for i := 0; i < segments; i++ {
		bearing := 360 * float64(i) / float64(segments)
		ring = append(ring, geo.PointAtBearingAndDistance(home.Point(), bearing, e.radius))
	}
	ring = append(ring, ring[0])

	return ring
}
