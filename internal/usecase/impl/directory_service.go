// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "storelocator/internal/delivery/context"
	"storelocator/internal/domain/entity"
	domainerrors "storelocator/internal/domain/errors"
	"storelocator/internal/domain/query"
	"storelocator/internal/domain/schedule"
	"storelocator/internal/domain/service"
	"storelocator/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// directoryService implements the DirectoryUsecase interface.
type directoryService struct {
	cache    service.DirectoryCache
	engine   *query.Engine
	resolver *schedule.Resolver
	clock    service.Clock
	logger   *slog.Logger
}

// DirectoryServiceParams holds dependencies for DirectoryService, injected by Fx.
type DirectoryServiceParams struct {
	fx.In

	Cache    service.DirectoryCache
	Engine   *query.Engine
	Resolver *schedule.Resolver
	Clock    service.Clock
	Logger   *slog.Logger
}

// NewDirectoryService is the constructor for directoryService.
func NewDirectoryService(params DirectoryServiceParams) usecase.DirectoryUsecase {
	return &directoryService{
		cache:    params.Cache,
		engine:   params.Engine,
		resolver: params.Resolver,
		clock:    params.Clock,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *directoryService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// List returns the whole directory, refreshing it when forced or not loaded yet.
func (srv *directoryService) List(ctx context.Context, forceRefresh bool) ([]*entity.Location, error) {
	return srv.locations(ctx, forceRefresh)
}

// locations serves the cached directory, loading it on first use.
// A stale result is returned together with its *StaleError.
func (srv *directoryService) locations(ctx context.Context, forceRefresh bool) ([]*entity.Location, error) {
	if !forceRefresh {
		if snapshot := srv.cache.Snapshot(); snapshot.Loaded {
			return snapshot.Locations, nil
		}
	}

	locations, err := srv.cache.RefreshAll(ctx, 0)
	if err != nil {
		if domainerrors.IsStale(err) {
			srv.log(ctx).Warn("Serving stale directory", slog.Any("error", err))

			return locations, err
		}
		srv.log(ctx).Error("Failed to load directory", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to load directory")
	}

	return locations, nil
}

// Find returns a copy of the location with the given id.
func (srv *directoryService) Find(ctx context.Context, id string) (*entity.Location, error) {
	if id == "" {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("location id is required")
	}

	location, err := srv.cache.GetByID(ctx, id)
	if err != nil {
		if !errors.Is(err, domainerrors.ErrLocationNotFound) {
			srv.log(ctx).Error("Failed to find location", slog.String("location_id", id), slog.Any("error", err))
		}

		return nil, errors.Wrapf(err, "failed to find location %s", id)
	}

	return location.Clone(), nil
}

// Search filters and ranks the directory.
func (srv *directoryService) Search(ctx context.Context, input *usecase.SearchInput) ([]entity.RankedLocation, error) {
	criteria, err := srv.parseSearch(input)
	if err != nil {
		return nil, err
	}

	locations, err := srv.locations(ctx, false)
	if err != nil && !domainerrors.IsStale(err) {
		return nil, err
	}

	ranked := srv.engine.Query(locations, criteria.filter, criteria.user, criteria.sort, criteria.at)

	srv.log(ctx).Debug("Directory search completed",
		slog.Int("candidates", len(locations)),
		slog.Int("matches", len(ranked)),
		slog.String("sort", string(criteria.sort)),
	)

	return ranked, err
}

// SearchGrouped runs Search and groups the matches by city.
func (srv *directoryService) SearchGrouped(ctx context.Context, input *usecase.SearchInput) ([]entity.CityGroup, error) {
	criteria, err := srv.parseSearch(input)
	if err != nil {
		return nil, err
	}

	ranked, err := srv.Search(ctx, input)
	if err != nil && !domainerrors.IsStale(err) {
		return nil, err
	}

	return srv.engine.GroupByCity(ranked, criteria.sort), err
}

// Nearby returns the locations within the requested radius, nearest first.
func (srv *directoryService) Nearby(ctx context.Context, input *usecase.NearbyInput) ([]entity.RankedLocation, error) {
	if input == nil {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("nearby input is required")
	}

	user := entity.Coordinates{Latitude: input.Latitude, Longitude: input.Longitude}
	if err := user.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid user position")
	}

	locations, err := srv.locations(ctx, false)
	if err != nil && !domainerrors.IsStale(err) {
		return nil, err
	}

	ranked, rankErr := srv.engine.WithinRadius(locations, user, input.RadiusMeters, srv.instant(input.At))
	if rankErr != nil {
		return nil, rankErr
	}

	return ranked, err
}

// StatusOf resolves whether a location is open at the given instant (now when nil).
// A malformed schedule yields a closed verdict and a logged diagnostic.
func (srv *directoryService) StatusOf(ctx context.Context, id string, at *time.Time) (entity.TodayStatus, error) {
	location, err := srv.Find(ctx, id)
	if err != nil {
		return entity.TodayStatus{}, err
	}

	status, err := srv.resolver.Resolve(location.Schedule, srv.instant(at))
	if err != nil {
		srv.log(ctx).Warn("Malformed schedule", slog.String("location_id", id), slog.Any("error", err))
	}

	return status, nil
}

// WeeklySchedule returns the location's timetable prepared for display.
func (srv *directoryService) WeeklySchedule(ctx context.Context, id string) ([]entity.DayInfo, error) {
	location, err := srv.Find(ctx, id)
	if err != nil {
		return nil, err
	}

	days, err := srv.resolver.WeeklyDisplay(location.Schedule, srv.clock.Now())
	if err != nil {
		srv.log(ctx).Warn("Malformed schedule", slog.String("location_id", id), slog.Any("error", err))
	}

	return days, nil
}

// Invalidate drops the cached directory; the next read refetches it.
func (srv *directoryService) Invalidate(ctx context.Context) {
	srv.cache.Invalidate()
	srv.log(ctx).Info("Directory cache invalidated")
}

type searchCriteria struct {
	filter query.Filter
	user   *entity.Coordinates
	sort   query.SortKey
	at     time.Time
}

func (srv *directoryService) parseSearch(input *usecase.SearchInput) (*searchCriteria, error) {
	if input == nil {
		input = &usecase.SearchInput{}
	}

	sortKey, err := query.ParseSortKey(input.Sort)
	if err != nil {
		return nil, err
	}

	var user *entity.Coordinates
	switch {
	case input.Latitude != nil && input.Longitude != nil:
		user = &entity.Coordinates{Latitude: *input.Latitude, Longitude: *input.Longitude}
		if err := user.Validate(); err != nil {
			return nil, errors.Wrap(err, "invalid user position")
		}
	case input.Latitude != nil || input.Longitude != nil:
		return nil, errors.Wrap(entity.ErrPartialCoordinates, "invalid user position")
	}

	return &searchCriteria{
		filter: query.Filter{
			City:    input.City,
			Region:  input.Region,
			Text:    input.Text,
			OpenNow: input.OpenNow,
		},
		user: user,
		sort: sortKey,
		at:   srv.instant(input.At),
	}, nil
}

func (srv *directoryService) instant(at *time.Time) time.Time {
	if at != nil {
		return *at
	}

	return srv.clock.Now()
}
