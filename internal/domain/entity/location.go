// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
)

// LocationKind distinguishes retail stores from pickup points.
type LocationKind string

const (
	LocationKindStore  LocationKind = "store"
	LocationKindPickup LocationKind = "pickup"
)

// Location is a physical retail or pickup point.
// It is owned by the external source and treated as read-only by the directory.
type Location struct {
	ID        string       `json:"id" yaml:"id"`                 // Identifier assigned by the source.
	Name      string       `json:"name" yaml:"name"`             // Full display name.
	ShortName string       `json:"shortName" yaml:"shortName"`   // Compact display name.
	Kind      LocationKind `json:"kind,omitempty" yaml:"kind"`   // store or pickup.
	Phone     string       `json:"phone,omitempty" yaml:"phone"` // Contact phone, free-form.
	Address   Address      `json:"address" yaml:"address"`
	Schedule  Schedule     `json:"schedule" yaml:"schedule"`
}

// Address holds the structured postal fields of a location.
// Coordinates are optional but never partial.
type Address struct {
	City      string   `json:"city" yaml:"city"`
	Region    string   `json:"region" yaml:"region"`
	Street    string   `json:"street" yaml:"street"`
	House     string   `json:"house" yaml:"house"`
	Latitude  *float64 `json:"latitude,omitempty" yaml:"latitude"`
	Longitude *float64 `json:"longitude,omitempty" yaml:"longitude"`
}

// StreetLine joins street and house the way they are shown to customers.
func (a Address) StreetLine() string {
	return strings.TrimSpace(a.Street + " " + a.House)
}

// Coordinates returns the address position when both components are present.
func (a Address) Coordinates() (Coordinates, bool) {
	if a.Latitude == nil || a.Longitude == nil {
		return Coordinates{}, false
	}

	return Coordinates{Latitude: *a.Latitude, Longitude: *a.Longitude}, true
}

// Validate checks the no-partial-coordinate invariant and the coordinate ranges.
func (a Address) Validate() error {
	if (a.Latitude == nil) != (a.Longitude == nil) {
		return ErrPartialCoordinates
	}

	if coords, ok := a.Coordinates(); ok {
		return coords.Validate()
	}

	return nil
}

// Clone returns a deep copy so cached values cannot be mutated through callers.
func (l *Location) Clone() *Location {
	if l == nil {
		return nil
	}

	cloned := *l
	if l.Address.Latitude != nil {
		lat := *l.Address.Latitude
		cloned.Address.Latitude = &lat
	}
	if l.Address.Longitude != nil {
		lng := *l.Address.Longitude
		cloned.Address.Longitude = &lng
	}
	cloned.Schedule = l.Schedule.Clone()

	return &cloned
}
