package book_for_sport

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	createBooking "github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

type fakeCatalogRepo struct {
	listings []*domain.CourtListing
	err      error
}

func (f *fakeCatalogRepo) FindCourtsBySport(ctx context.Context, sportPattern string) ([]*domain.CourtListing, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.listings, nil
}

// fakeCreator возвращает заранее заданную ошибку для каждого корта;
// корты без ошибки бронируются успешно
type fakeCreator struct {
	errsByCourt map[int64]error
	attempts    []int64
}

func (f *fakeCreator) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	f.attempts = append(f.attempts, req.CourtID)
	if err := f.errsByCourt[req.CourtID]; err != nil {
		return nil, err
	}
	return &createBooking.Response{
		ID:         200 + req.CourtID,
		UserID:     req.UserID,
		CourtID:    req.CourtID,
		Date:       req.Date,
		StartTime:  req.StartTime,
		EndTime:    req.EndTime,
		TotalPrice: 60,
		Status:     string(domain.StatusConfirmed),
	}, nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func listing(courtID int64, price float64) *domain.CourtListing {
	return &domain.CourtListing{
		CourtID:      courtID,
		CourtName:    "Court",
		PricePerHour: price,
		VenueName:    "Sports Complex A",
		SportName:    "Badminton",
	}
}

func request() *Request {
	return &Request{
		UserID:    7,
		Sport:     "badminton",
		Date:      time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("18:00"),
		EndTime:   types.TimeString("19:00"),
	}
}

func TestExecute_BooksCheapestCourtFirst(t *testing.T) {
	creator := &fakeCreator{errsByCourt: map[int64]error{}}
	uc := NewUseCase(
		&fakeCatalogRepo{listings: []*domain.CourtListing{
			listing(3, 90),
			listing(1, 60),
			listing(2, 70),
		}},
		creator,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, int64(1), resp.CourtID)
	assert.Equal(t, []int64{1}, creator.attempts)
}

func TestExecute_EqualPriceTieBrokenByCourtID(t *testing.T) {
	creator := &fakeCreator{errsByCourt: map[int64]error{}}
	uc := NewUseCase(
		&fakeCatalogRepo{listings: []*domain.CourtListing{
			listing(5, 60),
			listing(2, 60),
		}},
		creator,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, int64(2), resp.CourtID)
}

func TestExecute_SkipsBusyCourts(t *testing.T) {
	creator := &fakeCreator{errsByCourt: map[int64]error{
		1: createBooking.ErrSlotNotAvailable,
		2: createBooking.ErrOutsideOperatingHours,
	}}
	uc := NewUseCase(
		&fakeCatalogRepo{listings: []*domain.CourtListing{
			listing(1, 60),
			listing(2, 70),
			listing(3, 90),
		}},
		creator,
		nopLogger{},
	)

	resp, err := uc.Execute(context.Background(), request())

	require.NoError(t, err)
	assert.Equal(t, int64(3), resp.CourtID)
	assert.Equal(t, []int64{1, 2, 3}, creator.attempts)
}

func TestExecute_NoCourtsFound(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{}, &fakeCreator{}, nopLogger{})

	_, err := uc.Execute(context.Background(), request())

	assert.ErrorIs(t, err, ErrNoCourtsFound)
}

func TestExecute_AllCourtsBusy(t *testing.T) {
	creator := &fakeCreator{errsByCourt: map[int64]error{
		1: createBooking.ErrSlotNotAvailable,
		2: createBooking.ErrSlotNotAvailable,
	}}
	uc := NewUseCase(
		&fakeCatalogRepo{listings: []*domain.CourtListing{
			listing(1, 60),
			listing(2, 70),
		}},
		creator,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), request())

	assert.ErrorIs(t, err, ErrNoCourtAvailable)
}

func TestExecute_UserErrorAbortsIteration(t *testing.T) {
	creator := &fakeCreator{errsByCourt: map[int64]error{
		1: createBooking.ErrUserNotApproved,
	}}
	uc := NewUseCase(
		&fakeCatalogRepo{listings: []*domain.CourtListing{
			listing(1, 60),
			listing(2, 70),
		}},
		creator,
		nopLogger{},
	)

	_, err := uc.Execute(context.Background(), request())

	assert.ErrorIs(t, err, createBooking.ErrUserNotApproved)
	assert.Equal(t, []int64{1}, creator.attempts)
}

func TestExecute_CatalogFailureWrappedAsInternal(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{err: errors.New("connection reset")}, &fakeCreator{}, nopLogger{})

	_, err := uc.Execute(context.Background(), request())

	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_EmptySportRejected(t *testing.T) {
	uc := NewUseCase(&fakeCatalogRepo{}, &fakeCreator{}, nopLogger{})

	req := request()
	req.Sport = "   "

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidInput)
}
