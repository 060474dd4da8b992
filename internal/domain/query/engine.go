// Package query filters, ranks and groups directory locations.
package query

import (
	"cmp"
	"log/slog"
	"math"
	"slices"
	"strings"
	"time"

	domainerrors "storelocator/internal/domain/errors"
	"storelocator/internal/domain/entity"
	"storelocator/internal/domain/geo"
	"storelocator/internal/domain/schedule"
	"storelocator/internal/errors"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortKey selects the ordering of query results.
type SortKey string

const (
	SortByName      SortKey = "name"
	SortByDistance  SortKey = "distance"
	SortByOpenFirst SortKey = "openFirst"
)

// ParseSortKey maps a request value onto a SortKey. Empty means name.
func ParseSortKey(raw string) (SortKey, error) {
	switch SortKey(strings.TrimSpace(raw)) {
	case "", SortByName:
		return SortByName, nil
	case SortByDistance:
		return SortByDistance, nil
	case SortByOpenFirst:
		return SortByOpenFirst, nil
	default:
		return "", domainerrors.ErrValidationFailed.WrapMessage("unknown sort key " + raw)
	}
}

// Filter narrows a query. Empty fields and a false OpenNow match everything.
// All set criteria must hold.
type Filter struct {
	City    string
	Region  string
	Text    string
	OpenNow bool
}

// Engine evaluates queries over a snapshot of locations. It holds no
// selection state and is safe for concurrent use.
type Engine struct {
	resolver *schedule.Resolver
	locale   language.Tag
	logger   *slog.Logger
}

// NewEngine creates an engine ordering names by the collation rules of locale.
func NewEngine(resolver *schedule.Resolver, locale language.Tag, logger *slog.Logger) *Engine {
	if logger == nil {
		logger = slog.Default()
	}

	return &Engine{
		resolver: resolver,
		locale:   locale,
		logger:   logger,
	}
}

// Query returns the locations matching filter, decorated with their status at
// instant at and, when user is given, their distance from it.
func (e *Engine) Query(
	locations []*entity.Location,
	filter Filter,
	user *entity.Coordinates,
	sortKey SortKey,
	at time.Time,
) []entity.RankedLocation {
	origin := e.validOrigin(user)
	matcher := newMatcher(filter)

	ranked := make([]entity.RankedLocation, 0, len(locations))
	for _, location := range locations {
		if location == nil || !matcher.matches(location) {
			continue
		}

		status := e.status(location, at)
		if filter.OpenNow && !status.IsOpen {
			continue
		}

		ranked = append(ranked, entity.RankedLocation{
			Location:       location,
			DistanceMeters: e.distance(location, origin),
			Status:         status,
		})
	}

	e.sort(ranked, sortKey, e.newCollator())

	return ranked
}

// GroupByCity buckets ranked locations by city and region. Groups are ordered
// by region then city, and each group's locations by sortKey.
func (e *Engine) GroupByCity(ranked []entity.RankedLocation, sortKey SortKey) []entity.CityGroup {
	type groupKey struct{ region, city string }

	index := make(map[groupKey]int)
	groups := make([]entity.CityGroup, 0)

	for _, item := range ranked {
		if item.Location == nil {
			continue
		}

		address := item.Location.Address
		key := groupKey{
			region: strings.ToLower(strings.TrimSpace(address.Region)),
			city:   strings.ToLower(strings.TrimSpace(address.City)),
		}

		pos, ok := index[key]
		if !ok {
			pos = len(groups)
			index[key] = pos
			groups = append(groups, entity.CityGroup{
				City:   strings.TrimSpace(address.City),
				Region: strings.TrimSpace(address.Region),
			})
		}
		groups[pos].Locations = append(groups[pos].Locations, item)
	}

	collator := e.newCollator()
	slices.SortStableFunc(groups, func(a, b entity.CityGroup) int {
		if c := collator.CompareString(a.Region, b.Region); c != 0 {
			return c
		}

		return collator.CompareString(a.City, b.City)
	})

	for i := range groups {
		e.sort(groups[i].Locations, sortKey, collator)
	}

	return groups
}

// WithinRadius returns the locations no farther than radiusMeters from user,
// nearest first. Locations without usable coordinates are left out.
func (e *Engine) WithinRadius(
	locations []*entity.Location,
	user entity.Coordinates,
	radiusMeters float64,
	at time.Time,
) ([]entity.RankedLocation, error) {
	if err := user.Validate(); err != nil {
		return nil, errors.Wrap(err, "user position")
	}
	if radiusMeters < 0 || math.IsNaN(radiusMeters) || math.IsInf(radiusMeters, 0) {
		return nil, domainerrors.ErrValidationFailed.WrapMessage("radius must be a finite non-negative number")
	}

	bound := geo.BoundAround(user, radiusMeters)
	// Boxes crossing the antimeridian come back wrapped or out of range and
	// cannot be tested with a plain min/max comparison.
	usePrefilter := bound.Min.Lon() <= bound.Max.Lon() &&
		bound.Min.Lon() >= -180 && bound.Max.Lon() <= 180 &&
		bound.Min.Lat() >= -90 && bound.Max.Lat() <= 90

	ranked := make([]entity.RankedLocation, 0)
	for _, location := range locations {
		if location == nil {
			continue
		}

		coords, ok := location.Address.Coordinates()
		if !ok {
			continue
		}
		if usePrefilter && !bound.Contains(coords.Point()) {
			continue
		}

		distance := e.distance(location, &user)
		if distance == nil || *distance > radiusMeters {
			continue
		}

		ranked = append(ranked, entity.RankedLocation{
			Location:       location,
			DistanceMeters: distance,
			Status:         e.status(location, at),
		})
	}

	e.sort(ranked, SortByDistance, e.newCollator())

	return ranked, nil
}

// newCollator returns a fresh collator; collators are not safe for concurrent use.
func (e *Engine) newCollator() *collate.Collator {
	return collate.New(e.locale, collate.IgnoreCase)
}

func (e *Engine) validOrigin(user *entity.Coordinates) *entity.Coordinates {
	if user == nil {
		return nil
	}
	if err := user.Validate(); err != nil {
		e.logger.Debug("ignoring invalid user position", slog.Any("error", err))
		return nil
	}

	return user
}

func (e *Engine) status(location *entity.Location, at time.Time) entity.TodayStatus {
	status, err := e.resolver.Resolve(location.Schedule, at)
	if err != nil {
		e.logger.Warn("malformed schedule",
			slog.String("location_id", location.ID),
			slog.Any("error", err),
		)
	}

	return status
}

func (e *Engine) distance(location *entity.Location, origin *entity.Coordinates) *float64 {
	if origin == nil {
		return nil
	}

	if err := location.Address.Validate(); err != nil {
		e.logger.Debug("location is not rankable by distance",
			slog.String("location_id", location.ID),
			slog.Any("error", err),
		)
		return nil
	}

	coords, ok := location.Address.Coordinates()
	if !ok {
		return nil
	}

	meters, err := geo.DistanceMeters(*origin, coords)
	if err != nil {
		e.logger.Debug("distance rejected",
			slog.String("location_id", location.ID),
			slog.Any("error", err),
		)
		return nil
	}

	return &meters
}

func (e *Engine) sort(ranked []entity.RankedLocation, sortKey SortKey, collator *collate.Collator) {
	byName := func(a, b entity.RankedLocation) int {
		if c := collator.CompareString(a.Location.Name, b.Location.Name); c != 0 {
			return c
		}

		return cmp.Compare(a.Location.ID, b.Location.ID)
	}

	switch sortKey {
	case SortByDistance:
		slices.SortStableFunc(ranked, func(a, b entity.RankedLocation) int {
			switch {
			case a.DistanceMeters == nil && b.DistanceMeters == nil:
				return byName(a, b)
			case a.DistanceMeters == nil:
				return 1
			case b.DistanceMeters == nil:
				return -1
			}
			if c := cmp.Compare(*a.DistanceMeters, *b.DistanceMeters); c != 0 {
				return c
			}

			return byName(a, b)
		})
	case SortByOpenFirst:
		slices.SortStableFunc(ranked, func(a, b entity.RankedLocation) int {
			if a.Status.IsOpen != b.Status.IsOpen {
				if a.Status.IsOpen {
					return -1
				}
				return 1
			}

			return byName(a, b)
		})
	default:
		slices.SortStableFunc(ranked, byName)
	}
}

type matcher struct {
	city   string
	region string
	text   string
}

func newMatcher(filter Filter) matcher {
	return matcher{
		city:   strings.ToLower(strings.TrimSpace(filter.City)),
		region: strings.ToLower(strings.TrimSpace(filter.Region)),
		text:   strings.ToLower(strings.TrimSpace(filter.Text)),
	}
}

func (m matcher) matches(location *entity.Location) bool {
	address := location.Address

	if m.city != "" && strings.ToLower(strings.TrimSpace(address.City)) != m.city {
		return false
	}
	if m.region != "" && strings.ToLower(strings.TrimSpace(address.Region)) != m.region {
		return false
	}
	if m.text == "" {
		return true
	}

	for _, field := range []string{location.Name, location.ShortName, address.StreetLine()} {
		if strings.Contains(strings.ToLower(field), m.text) {
			return true
		}
	}

	return false
}
