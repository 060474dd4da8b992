package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	domainerrors "storelocator/internal/domain/errors"
	"storelocator/internal/domain/entity"
	"storelocator/internal/domain/repository"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const seedYAML = `
locations:
  - id: "3"
    name: Nevsky
    shortName: Nevsky
    kind: store
    address:
      city: Saint Petersburg
      region: Leningrad Oblast
      street: Nevsky prospekt
      house: "28"
      latitude: 59.9343
      longitude: 30.3351
    schedule:
      weekly:
        - day: 1
          openTime: "10:00:00"
          closeTime: "22:00:00"
  - id: "1"
    name: Kremlin
    shortName: Kremlin
    kind: pickup
    address:
      city: Moscow
      region: Moscow Oblast
      street: Tverskaya
      house: "1"
      latitude: 55.7558
      longitude: 37.6173
    schedule:
      weekly:
        - day: 1
          openTime: "09:00:00"
          closeTime: "21:00:00"
      exceptions:
        - date: 2024-01-01
          isClosed: true
        - date: 2024-01-02
          openTime: "12:00:00"
          closeTime: "18:00:00"
  - id: "2"
    name: Arbat
    address:
      city: moscow
      region: Moscow Oblast
      street: Arbat
      house: "10"
  - name: no id
`

func writeSeed(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "stores.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestFileSource_FetchPage(t *testing.T) {
	src, err := NewFileSource(writeSeed(t, seedYAML), discardLogger())
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("all pages", func(t *testing.T) {
		first, err := src.FetchPage(ctx, repository.PageRequest{Sort: repository.SortByName, Page: 1, PageSize: 2})
		require.NoError(t, err)
		assert.Equal(t, 3, first.Total)
		require.Len(t, first.Items, 2)
		assert.Equal(t, "2", first.Items[0].ID)
		assert.Equal(t, "1", first.Items[1].ID)

		second, err := src.FetchPage(ctx, repository.PageRequest{Sort: repository.SortByName, Page: 2, PageSize: 2})
		require.NoError(t, err)
		require.Len(t, second.Items, 1)
		assert.Equal(t, "3", second.Items[0].ID)

		beyond, err := src.FetchPage(ctx, repository.PageRequest{Page: 5, PageSize: 2})
		require.NoError(t, err)
		assert.Empty(t, beyond.Items)
		assert.Equal(t, 3, beyond.Total)
	})

	t.Run("filter by city", func(t *testing.T) {
		page, err := src.FetchPage(ctx, repository.PageRequest{
			Filter:   repository.SourceFilter{City: "MOSCOW"},
			Page:     1,
			PageSize: 10,
		})
		require.NoError(t, err)
		assert.Equal(t, 2, page.Total)
	})

	t.Run("filter by text", func(t *testing.T) {
		page, err := src.FetchPage(ctx, repository.PageRequest{
			Filter:   repository.SourceFilter{Text: "nevsky prospekt 28"},
			Page:     1,
			PageSize: 10,
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "3", page.Items[0].ID)
	})
}

func TestFileSource_DecodesSchedule(t *testing.T) {
	src, err := NewFileSource(writeSeed(t, seedYAML), discardLogger())
	require.NoError(t, err)

	location, err := src.FetchByID(context.Background(), "1")
	require.NoError(t, err)

	assert.Equal(t, entity.LocationKindPickup, location.Kind)
	require.Len(t, location.Schedule.Weekly, 1)
	assert.Equal(t, time.Monday, location.Schedule.Weekly[0].Day)
	assert.Equal(t, "09:00:00", location.Schedule.Weekly[0].OpenTime)

	require.Len(t, location.Schedule.Exceptions, 2)
	assert.Equal(t, "2024-01-01", location.Schedule.Exceptions[0].Date.String())
	assert.True(t, location.Schedule.Exceptions[0].IsClosed)
	require.NotNil(t, location.Schedule.Exceptions[1].OpenTime)
	assert.Equal(t, "12:00:00", *location.Schedule.Exceptions[1].OpenTime)

	coords, ok := location.Address.Coordinates()
	require.True(t, ok)
	assert.InDelta(t, 37.6173, coords.Longitude, 1e-9)
}

func TestFileSource_FetchByID_NotFound(t *testing.T) {
	src, err := NewFileSource(writeSeed(t, seedYAML), discardLogger())
	require.NoError(t, err)

	_, err = src.FetchByID(context.Background(), "404")
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

func TestFileSource_Unavailable(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		src, err := NewFileSource(filepath.Join(t.TempDir(), "absent.yaml"), discardLogger())
		require.NoError(t, err)

		_, err = src.FetchPage(context.Background(), repository.PageRequest{Page: 1, PageSize: 10})
		assert.True(t, errors.Is(err, domainerrors.ErrSourceUnavailable))
	})

	t.Run("invalid yaml", func(t *testing.T) {
		src, err := NewFileSource(writeSeed(t, "locations: [:"), discardLogger())
		require.NoError(t, err)

		_, err = src.FetchByID(context.Background(), "1")
		assert.True(t, errors.Is(err, domainerrors.ErrSourceUnavailable))
	})
}

func TestNewFileSource_RequiresPath(t *testing.T) {
	_, err := NewFileSource(" ", discardLogger())
	assert.Error(t, err)
}
