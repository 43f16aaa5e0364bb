package bookings

import (
	"context"
	"fmt"

	"github.com/quickcourt/QC-BookingService/internal/service/bookings/models"
)

// Service сервис отмены и истории бронирований
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// Cancel отменяет бронирование пользователя. Операция идемпотентна:
// повторная отмена, отмена чужого или несуществующего бронирования —
// это no-op с Cancelled=false, а не ошибка. Ошибка возвращается только
// при сбое хранилища.
func (s *Service) Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error) {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%d", req.BookingID, req.UserID)

	if req.BookingID <= 0 || req.UserID <= 0 {
		s.logger.Warn("Cancel: invalid input booking_id=%d user_id=%d", req.BookingID, req.UserID)
		return nil, fmt.Errorf("%w: bookingId and userId must be positive", ErrInvalidInput)
	}

	cancelled, err := s.bookingRepo.CancelByOwner(ctx, req.BookingID, req.UserID)
	if err != nil {
		s.logger.Error("Cancel: repository error for booking id=%d: %v", req.BookingID, err)
		return nil, fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if cancelled {
		s.logger.Info("Cancel: successfully cancelled booking id=%d", req.BookingID)
	} else {
		s.logger.Info("Cancel: no-op for booking id=%d, user=%d (not found, not owned or already cancelled)",
			req.BookingID, req.UserID)
	}

	return &models.CancelBookingResponse{
		BookingID: req.BookingID,
		Cancelled: cancelled,
	}, nil
}

// GetUserBookings возвращает историю бронирований пользователя (любой
// статус), отсортированную от самых свежих. Пустая история — не ошибка.
func (s *Service) GetUserBookings(ctx context.Context, userID int64) (*models.BookingListResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%d", userID)

	if userID <= 0 {
		s.logger.Warn("GetUserBookings: invalid user_id=%d", userID)
		return nil, fmt.Errorf("%w: userId must be positive", ErrInvalidInput)
	}

	details, err := s.bookingRepo.GetDetailsByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("GetUserBookings: successfully fetched %d bookings for user=%d", len(details), userID)
	return models.FromDomainBookingDetails(details), nil
}
