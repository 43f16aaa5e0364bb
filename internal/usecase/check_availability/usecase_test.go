package check_availability

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	storage "github.com/quickcourt/QC-BookingService/internal/infra/storage/catalog"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

type fakeBookingRepo struct {
	bookings []*domain.Booking
	err      error
}

func (f *fakeBookingRepo) GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.bookings, nil
}

type fakeCatalogRepo struct {
	court *domain.Court
	err   error
}

func (f *fakeCatalogRepo) GetCourtByID(ctx context.Context, id int64) (*domain.Court, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.court, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func request(start, end string) *Request {
	return &Request{
		CourtID:   1,
		Date:      time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString(start),
		EndTime:   types.TimeString(end),
	}
}

func TestExecute_FreeSlotIsAvailable(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{court: &domain.Court{ID: 1, IsActive: true}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), request("18:00", "19:00"))

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_OverlappingBookingMakesSlotUnavailable(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{
			{StartTime: "18:30", EndTime: "19:30", Status: domain.StatusConfirmed},
		}},
		&fakeCatalogRepo{court: &domain.Court{ID: 1, IsActive: true}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), request("18:00", "19:00"))

	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestExecute_AbuttingBookingKeepsSlotAvailable(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{
			{StartTime: "17:00", EndTime: "18:00", Status: domain.StatusConfirmed},
		}},
		&fakeCatalogRepo{court: &domain.Court{ID: 1, IsActive: true}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), request("18:00", "19:00"))

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_CancelledBookingKeepsSlotAvailable(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{bookings: []*domain.Booking{
			{StartTime: "18:00", EndTime: "19:00", Status: domain.StatusCancelled},
		}},
		&fakeCatalogRepo{court: &domain.Court{ID: 1, IsActive: true}},
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), request("18:00", "19:00"))

	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{err: storage.ErrCourtNotFound},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), request("18:00", "19:00"))

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_InvalidRangeRejected(t *testing.T) {
	uc := NewUseCase(
		&fakeBookingRepo{},
		&fakeCatalogRepo{court: &domain.Court{ID: 1, IsActive: true}},
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), request("19:00", "18:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)

	_, err = uc.Execute(context.Background(), request("18:00", "18:00"))
	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}
