// Package directory keeps a read-through cache of the location source.
package directory

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"storelocator/config"
	domainerrors "storelocator/internal/domain/errors"
	"storelocator/internal/domain/entity"
	"storelocator/internal/domain/repository"
	"storelocator/internal/domain/service"
	"storelocator/internal/errors"
	"storelocator/internal/infra/metrics"

	"go.uber.org/fx"
	"golang.org/x/sync/singleflight"
)

const (
	DefaultPageSize = 100

	refreshKey  = "all"
	idKeyPrefix = "id:"

	// maxPages bounds a refresh against sources that never report an empty page.
	maxPages = 10_000
)

// Params defines the dependencies of the cache
type Params struct {
	fx.In

	Source  repository.LocationSource
	Config  *config.Config
	Clock   service.Clock
	Logger  *slog.Logger
	Metrics *metrics.Metrics `optional:"true"`
}

var _ service.DirectoryCache = (*Cache)(nil)

// Cache holds the last successfully fetched directory and an id index over it.
// Locations handed out are shared and must be treated as read-only.
type Cache struct {
	source   repository.LocationSource
	clock    service.Clock
	logger   *slog.Logger
	metrics  *metrics.Metrics
	pageSize int

	group singleflight.Group

	mu          sync.RWMutex
	locations   []*entity.Location
	index       map[string]*entity.Location
	loaded      bool
	refreshedAt time.Time
	// generation advances on Invalidate so fetches started earlier are not installed.
	generation uint64
}

// New creates an empty cache over params.Source.
func New(params Params) *Cache {
	pageSize := DefaultPageSize
	if params.Config != nil && params.Config.Directory != nil && params.Config.Directory.PageSize > 0 {
		pageSize = params.Config.Directory.PageSize
	}

	logger := params.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Cache{
		source:   params.Source,
		clock:    params.Clock,
		logger:   logger,
		metrics:  params.Metrics,
		pageSize: pageSize,
		index:    make(map[string]*entity.Location),
	}
}

// RefreshAll reloads the whole directory from the source and returns it.
// Concurrent calls share one fetch. When the fetch fails and a previous
// directory exists, that directory is returned with a *StaleError; without one
// the failure is returned as is. A pageSize <= 0 uses the configured size.
func (c *Cache) RefreshAll(ctx context.Context, pageSize int) ([]*entity.Location, error) {
	if pageSize <= 0 {
		pageSize = c.pageSize
	}

	result := c.group.DoChan(refreshKey, func() (any, error) {
		return c.refresh(context.WithoutCancel(ctx), pageSize)
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-result:
		if res.Err == nil {
			return copyLocations(res.Val.([]*entity.Location)), nil
		}

		return c.fallback(res.Err)
	}
}

func (c *Cache) refresh(ctx context.Context, pageSize int) ([]*entity.Location, error) {
	c.mu.RLock()
	generation := c.generation
	c.mu.RUnlock()

	started := time.Now()
	fetched, err := c.fetchAll(ctx, pageSize)
	c.metrics.ObserveRefresh(time.Since(started))
	if err != nil {
		c.logger.Warn("directory refresh failed",
			slog.Any("error", err),
			slog.Duration("elapsed", time.Since(started)),
		)
		return nil, err
	}

	index := make(map[string]*entity.Location, len(fetched))
	for _, location := range fetched {
		index[location.ID] = location
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.generation != generation {
		c.logger.Debug("discarding refresh started before invalidation")
		return fetched, nil
	}

	c.locations = fetched
	c.index = index
	c.loaded = true
	c.refreshedAt = c.clock.Now()
	c.metrics.SetCachedLocations(len(fetched))

	c.logger.Info("directory refreshed",
		slog.Int("count", len(fetched)),
		slog.Duration("elapsed", time.Since(started)),
	)

	return fetched, nil
}

// fetchAll pages through the source until total items are collected or a page comes back empty.
func (c *Cache) fetchAll(ctx context.Context, pageSize int) ([]*entity.Location, error) {
	var (
		all  []*entity.Location
		seen = make(map[string]struct{})
	)

	for page := 1; page <= maxPages; page++ {
		result, err := c.source.FetchPage(ctx, repository.PageRequest{
			Sort:     repository.SortByName,
			Page:     page,
			PageSize: pageSize,
		})
		if err != nil {
			c.metrics.SourceFetch("page", metrics.OutcomeError)
			return nil, errors.Wrapf(err, "fetch page %d", page)
		}
		c.metrics.SourceFetch("page", metrics.OutcomeSuccess)

		if result == nil || len(result.Items) == 0 {
			break
		}

		for _, location := range result.Items {
			if location == nil {
				continue
			}
			if _, dup := seen[location.ID]; dup {
				continue
			}
			seen[location.ID] = struct{}{}

			if err := location.Address.Validate(); err != nil {
				c.logger.Warn("location has invalid coordinates",
					slog.String("location_id", location.ID),
					slog.Any("error", err),
				)
			}
			all = append(all, location)
		}

		if len(all) >= result.Total {
			break
		}
	}

	if all == nil {
		all = []*entity.Location{}
	}

	return all, nil
}

// fallback serves the previous directory when one exists.
func (c *Cache) fallback(err error) ([]*entity.Location, error) {
	if !errors.Is(err, domainerrors.ErrSourceUnavailable) {
		err = errors.Wrap(domainerrors.ErrSourceUnavailable, err.Error())
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.loaded {
		return nil, err
	}

	c.metrics.StaleResponse()

	return copyLocations(c.locations), domainerrors.NewStaleError(err)
}

// GetByID returns the cached location or fetches it from the source.
// A fetched location is added to the cache once; unknown ids leave the cache untouched.
func (c *Cache) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	if location, ok := c.lookup(id); ok {
		c.metrics.CacheHit()
		return location, nil
	}
	c.metrics.CacheMiss()

	result := c.group.DoChan(idKeyPrefix+id, func() (any, error) {
		return c.fetchOne(context.WithoutCancel(ctx), id)
	})

	select {
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case res := <-result:
		if res.Err != nil {
			return nil, res.Err
		}

		return res.Val.(*entity.Location), nil
	}
}

func (c *Cache) fetchOne(ctx context.Context, id string) (*entity.Location, error) {
	// A flight that starts right after another one installed the id must not fetch again.
	if location, ok := c.lookup(id); ok {
		return location, nil
	}

	c.mu.RLock()
	generation := c.generation
	c.mu.RUnlock()

	location, err := c.source.FetchByID(ctx, id)
	switch {
	case errors.Is(err, domainerrors.ErrLocationNotFound):
		c.metrics.SourceFetch("by_id", metrics.OutcomeNotFound)
		return nil, err
	case err != nil:
		c.metrics.SourceFetch("by_id", metrics.OutcomeError)
		return nil, err
	case location == nil:
		c.metrics.SourceFetch("by_id", metrics.OutcomeNotFound)
		return nil, errors.Wrapf(domainerrors.ErrLocationNotFound, "location %s", id)
	case location.ID != id:
		// Lookups are keyed by the requested id.
		c.metrics.SourceFetch("by_id", metrics.OutcomeError)
		return nil, errors.Wrapf(domainerrors.ErrSourceUnavailable,
			"source answered location %q for id %q", location.ID, id)
	}
	c.metrics.SourceFetch("by_id", metrics.OutcomeSuccess)

	c.mu.Lock()
	defer c.mu.Unlock()

	if existing, ok := c.index[location.ID]; ok {
		return existing, nil
	}
	if c.generation != generation {
		return location, nil
	}

	c.locations = append(c.locations, location)
	c.index[location.ID] = location
	c.metrics.SetCachedLocations(len(c.locations))

	return location, nil
}

func (c *Cache) lookup(id string) (*entity.Location, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	location, ok := c.index[id]

	return location, ok
}

// Invalidate drops the cached directory without fetching.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.locations = nil
	c.index = make(map[string]*entity.Location)
	c.loaded = false
	c.refreshedAt = time.Time{}
	c.generation++
	c.mu.Unlock()

	// Later refreshes must not join a flight that started before the invalidation.
	c.group.Forget(refreshKey)
	c.metrics.SetCachedLocations(0)
}

// Snapshot returns the current contents without touching the source.
func (c *Cache) Snapshot() service.DirectorySnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return service.DirectorySnapshot{
		Locations:   copyLocations(c.locations),
		Loaded:      c.loaded,
		RefreshedAt: c.refreshedAt,
	}
}

func copyLocations(locations []*entity.Location) []*entity.Location {
	out := make([]*entity.Location, len(locations))
	copy(out, locations)

	return out
}
