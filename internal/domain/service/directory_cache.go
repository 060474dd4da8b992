package service

import (
	"context"
	"time"

	"storelocator/internal/domain/entity"
)

// DirectorySnapshot is a point-in-time copy of the cached directory.
type DirectorySnapshot struct {
	Locations   []*entity.Location
	Loaded      bool
	RefreshedAt time.Time
}

// DirectoryCache is the read-through cache in front of the location source.
// Returned locations are shared and must not be modified.
type DirectoryCache interface {
	// RefreshAll reloads every location. On failure with a previous directory
	// available it returns that directory together with a *StaleError.
	RefreshAll(ctx context.Context, pageSize int) ([]*entity.Location, error)

	// GetByID returns a cached location or fetches and caches it.
	GetByID(ctx context.Context, id string) (*entity.Location, error)

	// Invalidate drops the cached directory without fetching.
	Invalidate()

	// Snapshot returns the cached directory without fetching.
	Snapshot() DirectorySnapshot
}
