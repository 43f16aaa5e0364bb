package check_availability

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	catalogRepo "github.com/quickcourt/QC-BookingService/internal/infra/storage/catalog"
)

// UseCase use case проверки доступности слота.
// Проверка только советует: между ней и созданием бронирования слот
// может занять другой пользователь. Создание защищено собственной
// атомарной проверкой в сериализуемой транзакции.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute выполняет проверку доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckAvailability: court=%d, date=%s, window=%s-%s",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckAvailability: validation failed: %v", err)
		return nil, err
	}

	// Проверяем существование корта
	if _, err := uc.catalogRepo.GetCourtByID(ctx, req.CourtID); err != nil {
		if errors.Is(err, catalogRepo.ErrCourtNotFound) {
			uc.logger.Warn("CheckAvailability: court id=%d not found", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("CheckAvailability: failed to get court id=%d: %v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	bookings, err := uc.bookingRepo.GetByCourtAndDate(ctx, req.CourtID, req.Date)
	if err != nil {
		uc.logger.Error("CheckAvailability: failed to get bookings: %v", err)
		return nil, fmt.Errorf("%w: failed to get bookings: %v", ErrInternal, err)
	}

	requested := domain.TimeRange{Start: req.StartTime, End: req.EndTime}
	available := !requested.HasConflict(bookings)

	uc.logger.Info("CheckAvailability: court=%d, date=%s, window=%s-%s, available=%v",
		req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime, available)

	return &Response{
		CourtID:   req.CourtID,
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
		Available: available,
	}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidTimeRange, err)
	}
	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidTimeRange, err)
	}

	// Начало должно быть строго раньше конца; некорректный диапазон —
	// это ошибка, а не "занято" и не "свободно"
	if !req.StartTime.IsBefore(req.EndTime) {
		return fmt.Errorf("%w: startTime must be before endTime", ErrInvalidTimeRange)
	}

	return nil
}
