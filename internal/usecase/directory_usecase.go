package usecase

import (
	"context"
	"time"

	"storelocator/internal/domain/entity"
)

// SearchInput represents the criteria of a directory search.
// Latitude and Longitude must be given together or not at all.
type SearchInput struct {
	City      string     `json:"city"`
	Region    string     `json:"region"`
	Text      string     `json:"q"`
	OpenNow   bool       `json:"open_now"`
	Latitude  *float64   `json:"lat,omitempty"`
	Longitude *float64   `json:"lng,omitempty"`
	Sort      string     `json:"sort"`
	At        *time.Time `json:"at,omitempty"` // defaults to now
}

// NearbyInput represents a radius search around a user position.
type NearbyInput struct {
	Latitude     float64    `json:"lat"`
	Longitude    float64    `json:"lng"`
	RadiusMeters float64    `json:"radius"`
	At           *time.Time `json:"at,omitempty"` // defaults to now
}

// DirectoryUsecase defines the interface for store directory use cases.
// Results served from the last good directory after a failed refresh come
// with an error for which domainerrors.IsStale reports true; the results are
// still usable.
type DirectoryUsecase interface {
	List(ctx context.Context, forceRefresh bool) ([]*entity.Location, error)
	Find(ctx context.Context, id string) (*entity.Location, error)
	Search(ctx context.Context, input *SearchInput) ([]entity.RankedLocation, error)
	SearchGrouped(ctx context.Context, input *SearchInput) ([]entity.CityGroup, error)
	Nearby(ctx context.Context, input *NearbyInput) ([]entity.RankedLocation, error)
	StatusOf(ctx context.Context, id string, at *time.Time) (entity.TodayStatus, error)
	WeeklySchedule(ctx context.Context, id string) ([]entity.DayInfo, error)
	Invalidate(ctx context.Context)
}
