package create_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	storage "github.com/quickcourt/QC-BookingService/internal/infra/storage/catalog"
	"github.com/quickcourt/QC-BookingService/internal/integrations/userservice"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Фейки зависимостей

type fakeBookingRepo struct {
	existing  []*domain.Booking
	created   *domain.Booking
	createErr error
	getErr    error
}

func (f *fakeBookingRepo) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *b
	out.ID = 101
	out.CreatedAt = time.Now()
	out.UpdatedAt = out.CreatedAt
	f.created = &out
	return &out, nil
}

func (f *fakeBookingRepo) GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.existing, nil
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

type fakeUserClient struct {
	user *userservice.User
	err  error
}

func (f *fakeUserClient) VerifyUser(ctx context.Context, userID int64) (*userservice.User, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.user, nil
}

type fakeTxManager struct{}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func activeCourt() *domain.Court {
	return &domain.Court{
		ID:                  1,
		VenueID:             1,
		SportID:             1,
		Name:                "Court 1",
		PricePerHour:        60,
		OperatingHoursStart: "06:00",
		OperatingHoursEnd:   "22:00",
		IsActive:            true,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:    7,
		CourtID:   1,
		Date:      time.Date(2025, 8, 11, 0, 0, 0, 0, time.UTC),
		StartTime: types.TimeString("18:00"),
		EndTime:   types.TimeString("19:00"),
	}
}

func newTestUseCase(bookingRepo *fakeBookingRepo, catalogRepo *fakeCatalogRepo, userClient *fakeUserClient) *UseCase {
	return NewUseCase(bookingRepo, catalogRepo, userClient, &fakeTxManager{}, nopLogger{})
}

func approvedUser() *fakeUserClient {
	return &fakeUserClient{user: &userservice.User{ID: 7, IsApproved: true}}
}

func TestExecute_CreatesBookingWithHourlyPrice(t *testing.T) {
	repo := &fakeBookingRepo{}
	uc := newTestUseCase(repo, &fakeCatalogRepo{court: activeCourt()}, approvedUser())

	resp, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ID)
	assert.Equal(t, 60.0, resp.TotalPrice)
	assert.Equal(t, string(domain.StatusConfirmed), resp.Status)
	require.NotNil(t, repo.created)
	assert.Equal(t, domain.StatusConfirmed, repo.created.Status)
}

func TestExecute_FractionalHoursPricedProportionally(t *testing.T) {
	req := validRequest()
	req.EndTime = types.TimeString("19:30")

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{court: activeCourt()}, approvedUser())

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, 90.0, resp.TotalPrice)
}

func TestExecute_RejectsOverlappingSlot(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{StartTime: "18:30", EndTime: "19:30", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, &fakeCatalogRepo{court: activeCourt()}, approvedUser())

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Nil(t, repo.created)
}

func TestExecute_AbuttingSlotAllowed(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{StartTime: "17:00", EndTime: "18:00", Status: domain.StatusConfirmed},
			{StartTime: "19:00", EndTime: "20:00", Status: domain.StatusConfirmed},
		},
	}
	uc := newTestUseCase(repo, &fakeCatalogRepo{court: activeCourt()}, approvedUser())

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_CancelledBookingDoesNotBlockSlot(t *testing.T) {
	repo := &fakeBookingRepo{
		existing: []*domain.Booking{
			{StartTime: "18:00", EndTime: "19:00", Status: domain.StatusCancelled},
		},
	}
	uc := newTestUseCase(repo, &fakeCatalogRepo{court: activeCourt()}, approvedUser())

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_CourtNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{err: storage.ErrCourtNotFound}, approvedUser())

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCourtNotFound)
}

func TestExecute_InactiveCourtRejected(t *testing.T) {
	court := activeCourt()
	court.IsActive = false

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{court: court}, approvedUser())

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrCourtInactive)
}

func TestExecute_OutsideOperatingHours(t *testing.T) {
	req := validRequest()
	req.StartTime = types.TimeString("21:30")
	req.EndTime = types.TimeString("22:30")

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{court: activeCourt()}, approvedUser())

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrOutsideOperatingHours)
}

func TestExecute_InvalidTimeRange(t *testing.T) {
	req := validRequest()
	req.StartTime = types.TimeString("19:00")
	req.EndTime = types.TimeString("18:00")

	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{court: activeCourt()}, approvedUser())

	_, err := uc.Execute(context.Background(), req)

	assert.ErrorIs(t, err, ErrInvalidTimeRange)
}

func TestExecute_UserNotFound(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{court: activeCourt()},
		&fakeUserClient{err: userservice.ErrUserNotFound})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestExecute_UserNotApproved(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{court: activeCourt()},
		&fakeUserClient{err: userservice.ErrUserNotApproved})

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrUserNotApproved)
}

func TestExecute_UserServiceDegradedDoesNotBlock(t *testing.T) {
	uc := newTestUseCase(&fakeBookingRepo{}, &fakeCatalogRepo{court: activeCourt()},
		&fakeUserClient{err: userservice.ErrServiceDegraded})

	_, err := uc.Execute(context.Background(), validRequest())

	require.NoError(t, err)
}

func TestExecute_RepositoryFailureWrappedAsInternal(t *testing.T) {
	repo := &fakeBookingRepo{createErr: errors.New("connection reset")}
	uc := newTestUseCase(repo, &fakeCatalogRepo{court: activeCourt()}, approvedUser())

	_, err := uc.Execute(context.Background(), validRequest())

	assert.ErrorIs(t, err, ErrInternal)
}
