package query

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"storelocator/internal/domain/entity"
	"storelocator/internal/domain/schedule"
	"storelocator/internal/infra/clock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

// Monday noon.
var queryTime = time.Date(2024, time.January, 1, 12, 0, 0, 0, time.UTC)

func newTestEngine(t *testing.T, locale language.Tag) *Engine {
	t.Helper()

	resolver := schedule.NewResolver(clock.NewFixed(queryTime, time.UTC))

	return NewEngine(resolver, locale, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func ptr[T any](v T) *T {
	return &v
}

func openMonday() entity.Schedule {
	return entity.Schedule{Weekly: []entity.WeeklyHours{
		{Day: time.Monday, OpenTime: "09:00:00", CloseTime: "21:00:00"},
	}}
}

func closedMonday() entity.Schedule {
	return entity.Schedule{Weekly: []entity.WeeklyHours{
		{Day: time.Monday, OpenTime: entity.Midnight, CloseTime: entity.Midnight},
	}}
}

func newLocation(id, name, city, region string, lat, lng *float64, sched entity.Schedule) *entity.Location {
	return &entity.Location{
		ID:        id,
		Name:      name,
		ShortName: name,
		Address: entity.Address{
			City:      city,
			Region:    region,
			Street:    "Tverskaya",
			House:     "1",
			Latitude:  lat,
			Longitude: lng,
		},
		Schedule: sched,
	}
}

func fixtures() []*entity.Location {
	return []*entity.Location{
		newLocation("spb", "Nevsky", "Saint Petersburg", "Leningrad Oblast", ptr(59.9343), ptr(30.3351), openMonday()),
		newLocation("msk", "Kremlin", "Moscow", "Moscow Oblast", ptr(55.7558), ptr(37.6173), openMonday()),
		newLocation("nocoords", "Arbat", "Moscow", "Moscow Oblast", nil, nil, closedMonday()),
		newLocation("kzn", "Bauman", "Kazan", "Tatarstan", ptr(55.7963), ptr(49.1088), closedMonday()),
	}
}

func ids(ranked []entity.RankedLocation) []string {
	out := make([]string, 0, len(ranked))
	for _, item := range ranked {
		out = append(out, item.Location.ID)
	}

	return out
}

func TestParseSortKey(t *testing.T) {
	tests := []struct {
		raw     string
		want    SortKey
		wantErr bool
	}{
		{raw: "", want: SortByName},
		{raw: "name", want: SortByName},
		{raw: "distance", want: SortByDistance},
		{raw: "openFirst", want: SortByOpenFirst},
		{raw: "rating", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := ParseSortKey(tt.raw)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEngine_Query_DistanceRanksNearestFirst(t *testing.T) {
	engine := newTestEngine(t, language.English)
	user := &entity.Coordinates{Latitude: 55.80, Longitude: 37.70}

	ranked := engine.Query(fixtures(), Filter{}, user, SortByDistance, queryTime)

	require.Len(t, ranked, 4)
	assert.Equal(t, []string{"msk", "spb", "kzn", "nocoords"}, ids(ranked))

	require.NotNil(t, ranked[0].DistanceMeters)
	assert.InDelta(t, 7134, *ranked[0].DistanceMeters, 50)
	require.NotNil(t, ranked[1].DistanceMeters)
	assert.InDelta(t, 634000, *ranked[1].DistanceMeters, 6000)
	assert.Nil(t, ranked[3].DistanceMeters)
}

func TestEngine_Query_NoUserPositionHasNoDistance(t *testing.T) {
	engine := newTestEngine(t, language.English)

	ranked := engine.Query(fixtures(), Filter{}, nil, SortByDistance, queryTime)

	// Without a position every location is unrankable and falls back to name order.
	assert.Equal(t, []string{"nocoords", "kzn", "msk", "spb"}, ids(ranked))
	for _, item := range ranked {
		assert.Nil(t, item.DistanceMeters)
	}
}

func TestEngine_Query_InvalidUserPositionIsIgnored(t *testing.T) {
	engine := newTestEngine(t, language.English)
	user := &entity.Coordinates{Latitude: 123, Longitude: 0}

	ranked := engine.Query(fixtures(), Filter{}, user, SortByDistance, queryTime)

	require.Len(t, ranked, 4)
	for _, item := range ranked {
		assert.Nil(t, item.DistanceMeters)
	}
}

func TestEngine_Query_OutOfRangeLocationSortsLast(t *testing.T) {
	engine := newTestEngine(t, language.English)
	locations := []*entity.Location{
		newLocation("broken", "Aaa", "Moscow", "Moscow Oblast", ptr(95.0), ptr(37.0), openMonday()),
		newLocation("msk", "Kremlin", "Moscow", "Moscow Oblast", ptr(55.7558), ptr(37.6173), openMonday()),
	}

	ranked := engine.Query(locations, Filter{}, &entity.Coordinates{Latitude: 55.8, Longitude: 37.7}, SortByDistance, queryTime)

	assert.Equal(t, []string{"msk", "broken"}, ids(ranked))
	assert.Nil(t, ranked[1].DistanceMeters)
}

func TestEngine_Query_Filters(t *testing.T) {
	engine := newTestEngine(t, language.English)

	tests := []struct {
		name   string
		filter Filter
		want   []string
	}{
		{name: "no filter", filter: Filter{}, want: []string{"nocoords", "kzn", "msk", "spb"}},
		{name: "city is case-insensitive", filter: Filter{City: "moscow"}, want: []string{"nocoords", "msk"}},
		{name: "city is exact", filter: Filter{City: "Mosc"}, want: []string{}},
		{name: "region", filter: Filter{Region: "TATARSTAN"}, want: []string{"kzn"}},
		{name: "text matches name", filter: Filter{Text: "krem"}, want: []string{"msk"}},
		{name: "text matches street and house", filter: Filter{Text: "tverskaya 1"}, want: []string{"nocoords", "kzn", "msk", "spb"}},
		{name: "open now", filter: Filter{OpenNow: true}, want: []string{"msk", "spb"}},
		{name: "filters are combined", filter: Filter{City: "Moscow", OpenNow: true}, want: []string{"msk"}},
		{name: "nothing matches", filter: Filter{City: "Moscow", Region: "Tatarstan"}, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ranked := engine.Query(fixtures(), tt.filter, nil, SortByName, queryTime)
			assert.Equal(t, tt.want, ids(ranked))
		})
	}
}

func TestEngine_Query_OpenFirst(t *testing.T) {
	engine := newTestEngine(t, language.English)

	ranked := engine.Query(fixtures(), Filter{}, nil, SortByOpenFirst, queryTime)

	assert.Equal(t, []string{"msk", "spb", "nocoords", "kzn"}, ids(ranked))
	assert.True(t, ranked[0].Status.IsOpen)
	assert.Equal(t, entity.StatusSourceWeekly, ranked[0].Status.Source)
	assert.False(t, ranked[3].Status.IsOpen)
}

func TestEngine_Query_MalformedScheduleIsClosed(t *testing.T) {
	engine := newTestEngine(t, language.English)
	locations := []*entity.Location{
		newLocation("bad", "Broken", "Moscow", "Moscow Oblast", nil, nil, entity.Schedule{Weekly: []entity.WeeklyHours{
			{Day: time.Monday, OpenTime: "nine", CloseTime: "21:00:00"},
		}}),
		newLocation("msk", "Kremlin", "Moscow", "Moscow Oblast", nil, nil, openMonday()),
	}

	ranked := engine.Query(locations, Filter{}, nil, SortByName, queryTime)

	require.Len(t, ranked, 2)
	assert.Equal(t, "bad", ranked[0].Location.ID)
	assert.False(t, ranked[0].Status.IsOpen)
	assert.Equal(t, entity.StatusSourceNone, ranked[0].Status.Source)
}

func TestEngine_Query_LocaleAwareNames(t *testing.T) {
	engine := newTestEngine(t, language.Russian)
	locations := []*entity.Location{
		newLocation("3", "Ясенево", "Москва", "", nil, nil, entity.Schedule{}),
		newLocation("1", "арбат", "Москва", "", nil, nil, entity.Schedule{}),
		newLocation("2", "Бутово", "Москва", "", nil, nil, entity.Schedule{}),
	}

	ranked := engine.Query(locations, Filter{City: "МОСКВА"}, nil, SortByName, queryTime)

	assert.Equal(t, []string{"1", "2", "3"}, ids(ranked))
}

func TestEngine_Query_SkipsNilLocations(t *testing.T) {
	engine := newTestEngine(t, language.English)

	ranked := engine.Query([]*entity.Location{nil, fixtures()[0]}, Filter{}, nil, SortByName, queryTime)

	assert.Equal(t, []string{"spb"}, ids(ranked))
}

func TestEngine_GroupByCity(t *testing.T) {
	engine := newTestEngine(t, language.English)
	locations := append(fixtures(),
		newLocation("msk2", "Arbat Second", "MOSCOW", "Moscow Oblast", nil, nil, openMonday()),
	)

	ranked := engine.Query(locations, Filter{}, nil, SortByName, queryTime)
	groups := engine.GroupByCity(ranked, SortByOpenFirst)

	require.Len(t, groups, 3)

	assert.Equal(t, "Saint Petersburg", groups[0].City)
	assert.Equal(t, "Leningrad Oblast", groups[0].Region)

	assert.Equal(t, "Moscow", groups[1].City)
	assert.Equal(t, "Moscow Oblast", groups[1].Region)
	assert.Equal(t, []string{"msk2", "msk", "nocoords"}, ids(groups[1].Locations))

	assert.Equal(t, "Kazan", groups[2].City)
	assert.Equal(t, []string{"kzn"}, ids(groups[2].Locations))
}

func TestEngine_GroupByCity_Empty(t *testing.T) {
	engine := newTestEngine(t, language.English)

	assert.Empty(t, engine.GroupByCity(nil, SortByName))
}

func TestEngine_WithinRadius(t *testing.T) {
	engine := newTestEngine(t, language.English)
	user := entity.Coordinates{Latitude: 55.80, Longitude: 37.70}

	t.Run("only nearby locations", func(t *testing.T) {
		ranked, err := engine.WithinRadius(fixtures(), user, 10_000, queryTime)
		require.NoError(t, err)

		assert.Equal(t, []string{"msk"}, ids(ranked))
		assert.LessOrEqual(t, *ranked[0].DistanceMeters, 10_000.0)
		assert.True(t, ranked[0].Status.IsOpen)
	})

	t.Run("ascending by distance", func(t *testing.T) {
		ranked, err := engine.WithinRadius(fixtures(), user, 1_000_000, queryTime)
		require.NoError(t, err)

		require.Equal(t, []string{"msk", "spb", "kzn"}, ids(ranked))
		for i := 1; i < len(ranked); i++ {
			assert.LessOrEqual(t, *ranked[i-1].DistanceMeters, *ranked[i].DistanceMeters)
		}
	})

	t.Run("zero radius keeps exact matches", func(t *testing.T) {
		at := entity.Coordinates{Latitude: 55.7558, Longitude: 37.6173}
		ranked, err := engine.WithinRadius(fixtures(), at, 0, queryTime)
		require.NoError(t, err)

		assert.Equal(t, []string{"msk"}, ids(ranked))
	})

	t.Run("across the antimeridian", func(t *testing.T) {
		locations := []*entity.Location{
			newLocation("east", "East", "Anadyr", "", ptr(65.0), ptr(179.99), entity.Schedule{}),
		}
		ranked, err := engine.WithinRadius(locations, entity.Coordinates{Latitude: 65.0, Longitude: -179.99}, 5_000, queryTime)
		require.NoError(t, err)

		assert.Equal(t, []string{"east"}, ids(ranked))
	})

	t.Run("invalid user position", func(t *testing.T) {
		_, err := engine.WithinRadius(fixtures(), entity.Coordinates{Latitude: -91}, 1000, queryTime)
		assert.Error(t, err)
	})

	t.Run("negative radius", func(t *testing.T) {
		_, err := engine.WithinRadius(fixtures(), user, -1, queryTime)
		assert.Error(t, err)
	})
}
