package entity

import (
	"math"

	domainerrors "storelocator/internal/domain/errors"

	"github.com/paulmach/orb"
)

var (
	// ErrPartialCoordinates is returned when only one of latitude/longitude is set.
	ErrPartialCoordinates = domainerrors.ErrInvalidCoordinates.WrapMessage("latitude and longitude must be set together")
	// ErrCoordinatesOutOfRange is returned for latitude/longitude outside the WGS 84 range.
	ErrCoordinatesOutOfRange = domainerrors.ErrInvalidCoordinates.WrapMessage("latitude must be within [-90,90] and longitude within [-180,180]")
)

// Coordinates is a WGS 84 position in degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Validate rejects NaN, infinities and out-of-range values.
func (c Coordinates) Validate() error {
	if math.IsNaN(c.Latitude) || math.IsNaN(c.Longitude) ||
		math.IsInf(c.Latitude, 0) || math.IsInf(c.Longitude, 0) {
		return ErrCoordinatesOutOfRange
	}

	if c.Latitude < -90 || c.Latitude > 90 || c.Longitude < -180 || c.Longitude > 180 {
		return ErrCoordinatesOutOfRange
	}

	return nil
}

// Point converts the coordinates into an orb point (longitude first).
func (c Coordinates) Point() orb.Point {
	return orb.Point{c.Longitude, c.Latitude}
}
