// Package geo implements great-circle distance on a spherical Earth.
package geo

import (
	"math"

	"storelocator/internal/domain/entity"

	"github.com/paulmach/orb"
	orbgeo "github.com/paulmach/orb/geo"
	"github.com/pkg/errors"
)

// EarthRadiusMeters is the mean Earth radius used by the haversine formula.
const EarthRadiusMeters = 6371000.0

// Bounding boxes are widened so the pre-filter never drops points that orb's
// Earth radius or degree/radian rounding would place just outside.
const (
	boundPadding       = 1.01
	boundPaddingMeters = 1.0
)

// DistanceMeters returns the haversine distance between a and b.
// Out-of-range coordinates are rejected rather than clamped.
func DistanceMeters(a, b entity.Coordinates) (float64, error) {
	if err := a.Validate(); err != nil {
		return 0, errors.Wrap(err, "origin")
	}
	if err := b.Validate(); err != nil {
		return 0, errors.Wrap(err, "destination")
	}

	return haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude), nil
}

func haversine(lat1, lng1, lat2, lng2 float64) float64 {
	lat1Rad := lat1 * math.Pi / 180
	lat2Rad := lat2 * math.Pi / 180
	deltaLat := (lat2 - lat1) * math.Pi / 180
	deltaLng := (lng2 - lng1) * math.Pi / 180

	a := math.Sin(deltaLat/2)*math.Sin(deltaLat/2) +
		math.Cos(lat1Rad)*math.Cos(lat2Rad)*
			math.Sin(deltaLng/2)*math.Sin(deltaLng/2)
	// Rounding can push a marginally above 1 for antipodal points.
	a = math.Min(1, math.Max(0, a))
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return EarthRadiusMeters * c
}

// BoundAround returns a box containing every point within radiusMeters of center.
func BoundAround(center entity.Coordinates, radiusMeters float64) orb.Bound {
	return orbgeo.NewBoundAroundPoint(center.Point(), radiusMeters*boundPadding+boundPaddingMeters)
}
