package geofence

import (
	"math"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"github.com/stretchr/testify/assert"

	"alzassist/internal/domain/entity"
)

// metersNorth returns the coordinate d meters due north of c on the R=6371 km sphere.
func metersNorth(c entity.Coordinate, d float64) entity.Coordinate {
	return entity.Coordinate{Lat: c.Lat + d/EarthRadiusMeters*180/math.Pi, Lng: c.Lng}
}

func TestHaversine(t *testing.T) {
	home := entity.Coordinate{Lat: 37.7749, Lng: -122.4194}

	tests := []struct {
		name     string
		a, b     entity.Coordinate
		expected float64
		delta    float64
	}{
		{
			name:     "identical points",
			a:        home,
			b:        home,
			expected: 0,
			delta:    0,
		},
		{
			name:     "one hundredth degree of latitude",
			a:        entity.Coordinate{Lat: 37.7849, Lng: -122.4194},
			b:        home,
			expected: 1112,
			delta:    1,
		},
		{
			name:     "quarter meridian",
			a:        entity.Coordinate{Lat: 0, Lng: 0},
			b:        entity.Coordinate{Lat: 90, Lng: 0},
			expected: math.Pi / 2 * EarthRadiusMeters,
			delta:    0.001,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.expected, Haversine(tt.a, tt.b), tt.delta)
		})
	}
}

func TestHaversine_Symmetric(t *testing.T) {
	pairs := [][2]entity.Coordinate{
		{{Lat: 37.7749, Lng: -122.4194}, {Lat: 37.7849, Lng: -122.4094}},
		{{Lat: -33.8688, Lng: 151.2093}, {Lat: 51.5074, Lng: -0.1278}},
		{{Lat: 0, Lng: 179.9}, {Lat: 0, Lng: -179.9}},
	}

	for _, p := range pairs {
		assert.InDelta(t, Haversine(p[0], p[1]), Haversine(p[1], p[0]), 1e-6)
	}
}

func TestHaversine_MatchesOrb(t *testing.T) {
	a := entity.Coordinate{Lat: 25.0330, Lng: 121.5654}
	b := entity.Coordinate{Lat: 25.0478, Lng: 121.5170}

	scaled := geo.DistanceHaversine(a.Point(), b.Point()) * EarthRadiusMeters / orb.EarthRadius
	assert.InDelta(t, scaled, Haversine(a, b), 1e-6)
}

func TestEvaluator_Threshold(t *testing.T) {
	home := entity.Coordinate{Lat: 37.7749, Lng: -122.4194}
	evaluator := NewEvaluator(500)

	tests := []struct {
		name    string
		current entity.Coordinate
		outside bool
	}{
		{name: "at home", current: home, outside: false},
		{name: "499 meters", current: metersNorth(home, 499), outside: false},
		{name: "501 meters", current: metersNorth(home, 501), outside: true},
		{name: "far away", current: entity.Coordinate{Lat: 37.7849, Lng: -122.4194}, outside: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := evaluator.Evaluate(tt.current, home)
			assert.Equal(t, tt.outside, result.Outside)
		})
	}
}

func TestEvaluator_ExactRadiusDoesNotTrigger(t *testing.T) {
	home := entity.Coordinate{Lat: 10, Lng: 10}
	current := entity.Coordinate{Lat: 10.01, Lng: 10}

	exact := Haversine(current, home)
	result := NewEvaluator(exact).Evaluate(current, home)

	assert.False(t, result.Outside)
	assert.Equal(t, exact, result.DistanceMeters)
}

func TestEvaluator_DefaultRadius(t *testing.T) {
	assert.Equal(t, DefaultRadiusMeters, NewEvaluator(0).Radius())
	assert.Equal(t, DefaultRadiusMeters, NewEvaluator(-10).Radius())
	assert.Equal(t, 250.0, NewEvaluator(250).Radius())
}

func TestResult_RoundedMeters(t *testing.T) {
	assert.Equal(t, 1112, Result{DistanceMeters: 1111.95}.RoundedMeters())
	assert.Equal(t, 0, Result{DistanceMeters: 0.4}.RoundedMeters())
	assert.Equal(t, 501, Result{DistanceMeters: 500.5}.RoundedMeters())
}

func TestEvaluator_Bound(t *testing.T) {
	home := entity.Coordinate{Lat: 37.7749, Lng: -122.4194}
	evaluator := NewEvaluator(500)

	bound := evaluator.Bound(home)
	assert.True(t, bound.Contains(home.Point()))
	assert.False(t, bound.Contains(entity.Coordinate{Lat: 37.7849, Lng: -122.4194}.Point()))
}

func TestEvaluator_Ring(t *testing.T) {
	home := entity.Coordinate{Lat: 37.7749, Lng: -122.4194}
	evaluator := NewEvaluator(500)

	ring := evaluator.Ring(home, 16)
	assert.Len(t, ring, 17)
	assert.True(t, ring.Closed())
	for _, p := range ring {
		assert.InDelta(t, 500, geo.DistanceHaversine(home.Point(), p), 1)
	}
}
