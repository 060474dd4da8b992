package directory

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"storelocator/config"
	domainerrors "storelocator/internal/domain/errors"
	"storelocator/internal/domain/entity"
	"storelocator/internal/domain/repository"
	"storelocator/internal/errors"
	"storelocator/internal/infra/clock"
	"storelocator/internal/infra/metrics"
	mockRepo "storelocator/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var refreshTime = time.Date(2024, time.January, 1, 9, 30, 0, 0, time.UTC)

func newTestCache(t *testing.T, source repository.LocationSource, pageSize int) *Cache {
	t.Helper()

	return New(Params{
		Source:  source,
		Config:  &config.Config{Directory: &config.DirectoryConfig{PageSize: pageSize}},
		Clock:   clock.NewFixed(refreshTime, time.UTC),
		Logger:  slog.New(slog.NewTextHandler(io.Discard, nil)),
		Metrics: metrics.New(),
	})
}

func loc(id string) *entity.Location {
	return &entity.Location{ID: id, Name: "Store " + id}
}

func pageReq(page, size int) repository.PageRequest {
	return repository.PageRequest{Sort: repository.SortByName, Page: page, PageSize: size}
}

func locationIDs(locations []*entity.Location) []string {
	out := make([]string, 0, len(locations))
	for _, location := range locations {
		out = append(out, location.ID)
	}

	return out
}

func TestCache_RefreshAll_PagesUntilTotal(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 2)
	ctx := context.Background()

	source.EXPECT().FetchPage(mock.Anything, pageReq(1, 2)).
		Return(&repository.Page{Items: []*entity.Location{loc("a"), loc("b")}, Total: 3}, nil).Once()
	source.EXPECT().FetchPage(mock.Anything, pageReq(2, 2)).
		Return(&repository.Page{Items: []*entity.Location{loc("c")}, Total: 3}, nil).Once()

	locations, err := cache.RefreshAll(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, locationIDs(locations))

	snapshot := cache.Snapshot()
	assert.True(t, snapshot.Loaded)
	assert.Equal(t, refreshTime, snapshot.RefreshedAt)
	assert.Len(t, snapshot.Locations, 3)
}

func TestCache_RefreshAll_StopsOnEmptyPage(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 2)

	// The source over-reports its total; the empty page ends the scan.
	source.EXPECT().FetchPage(mock.Anything, pageReq(1, 2)).
		Return(&repository.Page{Items: []*entity.Location{loc("a"), loc("b")}, Total: 10}, nil).Once()
	source.EXPECT().FetchPage(mock.Anything, pageReq(2, 2)).
		Return(&repository.Page{Items: nil, Total: 10}, nil).Once()

	locations, err := cache.RefreshAll(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, locationIDs(locations))
}

func TestCache_RefreshAll_DropsDuplicateIDsAcrossPages(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 2)

	source.EXPECT().FetchPage(mock.Anything, pageReq(1, 2)).
		Return(&repository.Page{Items: []*entity.Location{loc("a"), loc("b")}, Total: 3}, nil).Once()
	source.EXPECT().FetchPage(mock.Anything, pageReq(2, 2)).
		Return(&repository.Page{Items: []*entity.Location{loc("b"), loc("c")}, Total: 3}, nil).Once()

	locations, err := cache.RefreshAll(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, locationIDs(locations))
}

func TestCache_RefreshAll_EmptyDirectory(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 50)

	source.EXPECT().FetchPage(mock.Anything, pageReq(1, 50)).
		Return(&repository.Page{Total: 0}, nil).Once()

	locations, err := cache.RefreshAll(context.Background(), 0)
	require.NoError(t, err)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
	assert.True(t, cache.Snapshot().Loaded)
}

func TestCache_RefreshAll_FailureWithoutPriorState(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 2)

	source.EXPECT().FetchPage(mock.Anything, mock.Anything).
		Return(nil, domainerrors.ErrSourceUnavailable.WrapMessage("connection refused")).Once()

	locations, err := cache.RefreshAll(context.Background(), 0)
	require.Error(t, err)
	assert.Nil(t, locations)
	assert.True(t, errors.Is(err, domainerrors.ErrSourceUnavailable))
	assert.False(t, domainerrors.IsStale(err))
	assert.False(t, cache.Snapshot().Loaded)
}

func TestCache_RefreshAll_FailureServesStaleDirectory(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 2)
	ctx := context.Background()

	source.EXPECT().FetchPage(mock.Anything, pageReq(1, 2)).
		Return(&repository.Page{Items: []*entity.Location{loc("a")}, Total: 1}, nil).Once()
	_, err := cache.RefreshAll(ctx, 0)
	require.NoError(t, err)

	source.EXPECT().FetchPage(mock.Anything, pageReq(1, 2)).
		Return(nil, errors.New("dial tcp: i/o timeout")).Once()

	locations, err := cache.RefreshAll(ctx, 0)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStale(err))
	assert.True(t, errors.Is(err, domainerrors.ErrSourceUnavailable))
	assert.Equal(t, []string{"a"}, locationIDs(locations))

	// The previous directory is kept.
	assert.Equal(t, []string{"a"}, locationIDs(cache.Snapshot().Locations))
}

func TestCache_RefreshAll_ConcurrentCallsShareOneFetch(t *testing.T) {
	source := &blockingSource{
		release: make(chan struct{}),
		started: make(chan struct{}),
		page:    &repository.Page{Items: []*entity.Location{loc("a"), loc("b")}, Total: 2},
	}
	cache := newTestCache(t, source, 10)
	ctx := context.Background()

	const callers = 8
	var wg sync.WaitGroup
	results := make([][]*entity.Location, callers)
	errs := make([]error, callers)

	wg.Add(1)
	go func() {
		defer wg.Done()
		results[0], errs[0] = cache.RefreshAll(ctx, 0)
	}()
	<-source.started

	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = cache.RefreshAll(ctx, 0)
		}(i)
	}
	// Give the other callers time to join the in-flight refresh.
	time.Sleep(50 * time.Millisecond)
	close(source.release)
	wg.Wait()

	assert.EqualValues(t, 1, source.pageCalls.Load())
	for i := 0; i < callers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, []string{"a", "b"}, locationIDs(results[i]))
	}
}

func TestCache_RefreshAll_WaiterHonoursOwnContext(t *testing.T) {
	source := &blockingSource{
		release: make(chan struct{}),
		started: make(chan struct{}),
		page:    &repository.Page{Items: []*entity.Location{loc("a")}, Total: 1},
	}
	cache := newTestCache(t, source, 10)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		_, err := cache.RefreshAll(ctx, 0)
		done <- err
	}()

	<-source.started
	cancel()

	err := <-done
	assert.ErrorIs(t, err, context.Canceled)

	// The shared fetch is not cancelled and still fills the cache.
	close(source.release)
	assert.Eventually(t, func() bool {
		return cache.Snapshot().Loaded
	}, time.Second, 5*time.Millisecond)
}

func TestCache_GetByID_HitDoesNotFetch(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 10)
	ctx := context.Background()

	source.EXPECT().FetchPage(mock.Anything, pageReq(1, 10)).
		Return(&repository.Page{Items: []*entity.Location{loc("a")}, Total: 1}, nil).Once()
	_, err := cache.RefreshAll(ctx, 0)
	require.NoError(t, err)

	location, err := cache.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "a", location.ID)
}

func TestCache_GetByID_MissFetchesAndInsertsOnce(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 10)
	ctx := context.Background()

	source.EXPECT().FetchByID(mock.Anything, "x").Return(loc("x"), nil).Once()

	first, err := cache.GetByID(ctx, "x")
	require.NoError(t, err)
	second, err := cache.GetByID(ctx, "x")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, []string{"x"}, locationIDs(cache.Snapshot().Locations))
	// A single-id insert does not mark the full directory as loaded.
	assert.False(t, cache.Snapshot().Loaded)
}

func TestCache_GetByID_ConcurrentMissesFetchOnce(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 10)
	ctx := context.Background()

	release := make(chan struct{})
	source.EXPECT().FetchByID(mock.Anything, "x").
		Run(func(context.Context, string) { <-release }).
		Return(loc("x"), nil).Once()

	const callers = 10
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			location, err := cache.GetByID(ctx, "x")
			assert.NoError(t, err)
			assert.Equal(t, "x", location.ID)
		}()
	}
	time.Sleep(20 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, []string{"x"}, locationIDs(cache.Snapshot().Locations))
}

func TestCache_GetByID_NotFoundLeavesCacheUnchanged(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 10)

	source.EXPECT().FetchByID(mock.Anything, "missing").
		Return(nil, domainerrors.ErrLocationNotFound).Once()

	location, err := cache.GetByID(context.Background(), "missing")
	assert.Nil(t, location)
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
	assert.Empty(t, cache.Snapshot().Locations)
}

func TestCache_GetByID_NilResultIsNotFound(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 10)

	source.EXPECT().FetchByID(mock.Anything, "ghost").Return(nil, nil).Once()

	_, err := cache.GetByID(context.Background(), "ghost")
	assert.True(t, errors.Is(err, domainerrors.ErrLocationNotFound))
}

func TestCache_GetByID_RejectsMismatchedID(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 10)
	ctx := context.Background()

	// The source answers with a canonical id other than the one asked for.
	source.EXPECT().FetchByID(mock.Anything, "MSK-1").Return(loc("msk-1"), nil).Twice()

	for i := 0; i < 2; i++ {
		location, err := cache.GetByID(ctx, "MSK-1")
		assert.Nil(t, location)
		assert.True(t, errors.Is(err, domainerrors.ErrSourceUnavailable))
	}
	assert.Empty(t, cache.Snapshot().Locations)
}

func TestCache_Invalidate_DiscardsRefreshStartedBefore(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 10)
	ctx := context.Background()

	started := make(chan struct{})
	release := make(chan struct{})
	source.EXPECT().FetchPage(mock.Anything, pageReq(1, 10)).
		Run(func(context.Context, repository.PageRequest) {
			close(started)
			<-release
		}).
		Return(&repository.Page{Items: []*entity.Location{loc("old")}, Total: 1}, nil).Once()
	source.EXPECT().FetchPage(mock.Anything, pageReq(1, 10)).
		Return(&repository.Page{Items: []*entity.Location{loc("new")}, Total: 1}, nil).Once()

	type outcome struct {
		locations []*entity.Location
		err       error
	}
	earlier := make(chan outcome, 1)
	go func() {
		locations, err := cache.RefreshAll(ctx, 0)
		earlier <- outcome{locations: locations, err: err}
	}()
	<-started

	cache.Invalidate()

	// A refresh after the invalidation starts its own fetch instead of joining the old one.
	locations, err := cache.RefreshAll(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"new"}, locationIDs(locations))

	close(release)
	old := <-earlier
	require.NoError(t, old.err)
	assert.Equal(t, []string{"old"}, locationIDs(old.locations))

	snapshot := cache.Snapshot()
	assert.True(t, snapshot.Loaded)
	assert.Equal(t, []string{"new"}, locationIDs(snapshot.Locations))

	location, err := cache.GetByID(ctx, "new")
	require.NoError(t, err)
	assert.Equal(t, "new", location.ID)
}

func TestCache_Invalidate(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 10)
	ctx := context.Background()

	source.EXPECT().FetchPage(mock.Anything, pageReq(1, 10)).
		Return(&repository.Page{Items: []*entity.Location{loc("a")}, Total: 1}, nil).Twice()

	_, err := cache.RefreshAll(ctx, 0)
	require.NoError(t, err)

	cache.Invalidate()

	snapshot := cache.Snapshot()
	assert.False(t, snapshot.Loaded)
	assert.Empty(t, snapshot.Locations)
	assert.True(t, snapshot.RefreshedAt.IsZero())

	// Invalidation itself does not fetch; the next refresh does.
	_, err = cache.RefreshAll(ctx, 0)
	require.NoError(t, err)
	assert.True(t, cache.Snapshot().Loaded)
}

func TestCache_Snapshot_IsACopy(t *testing.T) {
	source := mockRepo.NewMockLocationSource(t)
	cache := newTestCache(t, source, 10)

	source.EXPECT().FetchPage(mock.Anything, pageReq(1, 10)).
		Return(&repository.Page{Items: []*entity.Location{loc("a"), loc("b")}, Total: 2}, nil).Once()
	_, err := cache.RefreshAll(context.Background(), 0)
	require.NoError(t, err)

	snapshot := cache.Snapshot()
	snapshot.Locations[0] = loc("z")

	assert.Equal(t, []string{"a", "b"}, locationIDs(cache.Snapshot().Locations))
}

// blockingSource holds every page request until release is closed.
type blockingSource struct {
	release   chan struct{}
	started   chan struct{}
	once      sync.Once
	page      *repository.Page
	pageCalls atomic.Int32
}

func (s *blockingSource) FetchPage(context.Context, repository.PageRequest) (*repository.Page, error) {
	s.pageCalls.Add(1)
	s.once.Do(func() { close(s.started) })
	<-s.release

	return s.page, nil
}

func (s *blockingSource) FetchByID(context.Context, string) (*entity.Location, error) {
	return nil, domainerrors.ErrLocationNotFound
}
