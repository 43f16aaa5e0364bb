package catalog

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/internal/service/catalog/models"
	"github.com/quickcourt/QC-BookingService/pkg/ptr"
)

type fakeCatalogRepo struct {
	listings []*domain.CourtListing
	sports   []*domain.Sport
	calls    int
	err      error
}

func (f *fakeCatalogRepo) FindCourtsBySport(ctx context.Context, sportPattern string) ([]*domain.CourtListing, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.listings, nil
}

func (f *fakeCatalogRepo) ListSports(ctx context.Context) ([]*domain.Sport, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sports, nil
}

type fakeCache struct {
	store    map[string][]*domain.CourtListing
	readErr  error
	writeErr error
}

func newFakeCache() *fakeCache {
	return &fakeCache{store: map[string][]*domain.CourtListing{}}
}

func (f *fakeCache) GetCourts(ctx context.Context, sportPattern string) ([]*domain.CourtListing, error) {
	if f.readErr != nil {
		return nil, f.readErr
	}
	return f.store[sportPattern], nil
}

func (f *fakeCache) SaveCourts(ctx context.Context, sportPattern string, listings []*domain.CourtListing) error {
	if f.writeErr != nil {
		return f.writeErr
	}
	f.store[sportPattern] = listings
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func badmintonListing() *domain.CourtListing {
	return &domain.CourtListing{
		CourtID:             1,
		CourtName:           "Court 1",
		PricePerHour:        60,
		OperatingHoursStart: "06:00",
		OperatingHoursEnd:   "22:00",
		VenueID:             1,
		VenueName:           "Sports Complex A",
		SportName:           "Badminton",
	}
}

func TestSearchCourts_ReturnsCourtsWithDisplayDate(t *testing.T) {
	repo := &fakeCatalogRepo{listings: []*domain.CourtListing{badmintonListing()}}
	svc := NewService(repo, nil, nopLogger{})

	date := time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC)
	resp, err := svc.SearchCourts(context.Background(), &models.SearchCourtsRequest{
		SportName: "badminton",
		Date:      ptr.Ptr(date),
	})

	require.NoError(t, err)
	assert.Equal(t, "2025-08-11", resp.Date)
	require.Len(t, resp.Courts, 1)
	assert.Equal(t, "Court 1", resp.Courts[0].CourtName)
	assert.Equal(t, 60.0, resp.Courts[0].PricePerHour)
}

func TestSearchCourts_EmptyResultIsNotError(t *testing.T) {
	svc := NewService(&fakeCatalogRepo{}, nil, nopLogger{})

	resp, err := svc.SearchCourts(context.Background(), &models.SearchCourtsRequest{SportName: "curling"})

	require.NoError(t, err)
	assert.Empty(t, resp.Courts)
}

func TestSearchCourts_EmptySportRejected(t *testing.T) {
	svc := NewService(&fakeCatalogRepo{}, nil, nopLogger{})

	_, err := svc.SearchCourts(context.Background(), &models.SearchCourtsRequest{SportName: "  "})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSearchCourts_SecondCallServedFromCache(t *testing.T) {
	repo := &fakeCatalogRepo{listings: []*domain.CourtListing{badmintonListing()}}
	cache := newFakeCache()
	svc := NewService(repo, cache, nopLogger{})

	req := &models.SearchCourtsRequest{SportName: "badminton"}

	_, err := svc.SearchCourts(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 1, repo.calls)

	_, err = svc.SearchCourts(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.calls, "second search should hit the cache")
}

func TestSearchCourts_CacheFailureFallsBackToRepository(t *testing.T) {
	repo := &fakeCatalogRepo{listings: []*domain.CourtListing{badmintonListing()}}
	cache := newFakeCache()
	cache.readErr = errors.New("connection refused")
	cache.writeErr = errors.New("connection refused")
	svc := NewService(repo, cache, nopLogger{})

	resp, err := svc.SearchCourts(context.Background(), &models.SearchCourtsRequest{SportName: "badminton"})

	require.NoError(t, err)
	assert.Len(t, resp.Courts, 1)
	assert.Equal(t, 1, repo.calls)
}

func TestSearchCourts_RepositoryFailure(t *testing.T) {
	svc := NewService(&fakeCatalogRepo{err: errors.New("connection reset")}, nil, nopLogger{})

	_, err := svc.SearchCourts(context.Background(), &models.SearchCourtsRequest{SportName: "badminton"})

	assert.ErrorIs(t, err, ErrInternal)
}

func TestListSports(t *testing.T) {
	svc := NewService(&fakeCatalogRepo{sports: []*domain.Sport{
		{ID: 1, Name: "Badminton"},
		{ID: 2, Name: "Tennis"},
	}}, nil, nopLogger{})

	resp, err := svc.ListSports(context.Background())

	require.NoError(t, err)
	require.Len(t, resp.Sports, 2)
	assert.Equal(t, "Badminton", resp.Sports[0].Name)
}
