package impl

import (
	"io"
	"log/slog"
	"math"

	"alzassist/config"
	"alzassist/internal/domain/entity"
	"alzassist/internal/domain/geofence"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Geofence: &config.GeofenceConfig{
			RadiusMeters:      500,
			FanOutConcurrency: 2,
		},
		Location: &config.LocationConfig{
			HistoryDefaultLimit: 50,
			HistoryMaxLimit:     500,
		},
	}
}

// metersNorth returns the coordinate the given distance due north of origin.
func metersNorth(origin entity.Coordinate, meters float64) entity.Coordinate {
	deltaLat := meters / geofence.EarthRadiusMeters * 180 / math.Pi

	return entity.Coordinate{Lat: origin.Lat + deltaLat, Lng: origin.Lng}
}

func ptr[T any](v T) *T {
	return &v
}
