package entity

import (
	"time"

	"cloud.google.com/go/civil"
)

// StatusSource names the part of a schedule that produced a verdict.
type StatusSource string

const (
	StatusSourceException StatusSource = "exception"
	StatusSourceWeekly    StatusSource = "weekly"
	StatusSourceNone      StatusSource = "none"
)

// TodayStatus is the open/closed verdict for one instant.
// It is derived per query and never cached.
type TodayStatus struct {
	IsOpen    bool         `json:"isOpen"`
	OpenTime  *civil.Time  `json:"openTime,omitempty"`
	CloseTime *civil.Time  `json:"closeTime,omitempty"`
	Source    StatusSource `json:"source"`
}

// DayInfo is one row of the weekly timetable prepared for display.
type DayInfo struct {
	Day          time.Weekday `json:"day"`
	Name         string       `json:"name"`
	Open         string       `json:"open,omitempty"`  // "HH:mm"
	Close        string       `json:"close,omitempty"` // "HH:mm"
	IsWorkingDay bool         `json:"isWorkingDay"`
	IsToday      bool         `json:"isToday"`
}

// RankedLocation is a location decorated with query-time data.
type RankedLocation struct {
	Location       *Location   `json:"location"`
	DistanceMeters *float64    `json:"distanceMeters,omitempty"` // set only when a user position was supplied
	Status         TodayStatus `json:"status"`
}

// CityGroup is a set of locations sharing the same city and region.
type CityGroup struct {
	City      string           `json:"city"`
	Region    string           `json:"region"`
	Locations []RankedLocation `json:"locations"`
}
