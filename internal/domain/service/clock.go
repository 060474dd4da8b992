package service

import "time"

// Clock supplies the current instant and the wall-clock interpretation of instants.
// Schedule resolution never reads the system clock directly.
type Clock interface {
	// Now returns the current instant in the clock's location
	Now() time.Time

	// DayOfWeek returns the local weekday of t
	DayOfWeek(t time.Time) time.Weekday

	// Location returns the wall-clock zone all stores share
	Location() *time.Location
}
