package create_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	storage "github.com/quickcourt/QC-BookingService/internal/infra/storage/catalog"
	"github.com/quickcourt/QC-BookingService/internal/integrations/userservice"
)

// UseCase создания бронирования.
//
// Проверка занятости и вставка выполняются в одной serializable
// транзакции: между проверкой пересечений и записью никто не может
// занять тот же слот.
type UseCase struct {
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	userClient  UserServiceClient
	txManager   TransactionManager
	logger      Logger
}

func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	userClient UserServiceClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		userClient:  userClient,
		txManager:   txManager,
		logger:      logger,
	}
}

// Execute создает бронирование слота на корте.
//
// Шаги:
// 1. Валидация входных данных
// 2. Проверка пользователя через UserService (с graceful degradation)
// 3. Проверка существования и активности корта, часов работы
// 4. В serializable-транзакции: проверка пересечений + вставка
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("[create_booking.Execute] Некорректный запрос: %v", err)
		return nil, err
	}

	if err := uc.verifyUser(ctx, req.UserID); err != nil {
		return nil, err
	}

	court, err := uc.checkCourt(ctx, req)
	if err != nil {
		return nil, err
	}

	requested := domain.TimeRange{Start: req.StartTime, End: req.EndTime}

	price, err := domain.SlotPrice(court.PricePerHour, requested)
	if err != nil {
		uc.logger.Error("[create_booking.Execute] Ошибка расчета цены: courtID=%d, err=%v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to calculate price: %v", ErrInternal, err)
	}

	var created *domain.Booking

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		existing, err := uc.bookingRepo.GetByCourtAndDate(txCtx, req.CourtID, req.Date)
		if err != nil {
			return fmt.Errorf("failed to get bookings for court %d: %w", req.CourtID, err)
		}

		if requested.HasConflict(existing) {
			return ErrSlotNotAvailable
		}

		created, err = uc.bookingRepo.Create(txCtx, &domain.Booking{
			UserID:     req.UserID,
			CourtID:    req.CourtID,
			Date:       req.Date,
			StartTime:  req.StartTime,
			EndTime:    req.EndTime,
			TotalPrice: price,
			Status:     domain.StatusConfirmed,
		})
		if err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Info("[create_booking.Execute] Слот занят: courtID=%d, date=%s, slot=%s-%s",
				req.CourtID, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("[create_booking.Execute] Ошибка транзакции: courtID=%d, err=%v", req.CourtID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	uc.logger.Info("[create_booking.Execute] Бронирование создано: bookingID=%d, userID=%d, courtID=%d, price=%.2f",
		created.ID, created.UserID, created.CourtID, created.TotalPrice)

	return &Response{
		ID:         created.ID,
		UserID:     created.UserID,
		CourtID:    created.CourtID,
		Date:       created.Date,
		StartTime:  created.StartTime,
		EndTime:    created.EndTime,
		TotalPrice: created.TotalPrice,
		Status:     string(created.Status),
		CreatedAt:  created.CreatedAt,
		UpdatedAt:  created.UpdatedAt,
	}, nil
}

// verifyUser проверяет пользователя через UserService. При недоступности
// сервиса бронирование не блокируем: пишем warning и продолжаем.
func (uc *UseCase) verifyUser(ctx context.Context, userID int64) error {
	_, err := uc.userClient.VerifyUser(ctx, userID)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, userservice.ErrUserNotFound):
		uc.logger.Warn("[create_booking.verifyUser] Пользователь не найден: userID=%d", userID)
		return ErrUserNotFound
	case errors.Is(err, userservice.ErrUserNotApproved):
		uc.logger.Warn("[create_booking.verifyUser] Пользователь не одобрен: userID=%d", userID)
		return ErrUserNotApproved
	case errors.Is(err, userservice.ErrServiceDegraded):
		uc.logger.Warn("[create_booking.verifyUser] UserService недоступен, продолжаем без проверки: userID=%d", userID)
		return nil
	default:
		uc.logger.Error("[create_booking.verifyUser] Ошибка проверки пользователя: userID=%d, err=%v", userID, err)
		return fmt.Errorf("%w: failed to verify user: %v", ErrInternal, err)
	}
}

// checkCourt загружает корт и проверяет, что он активен и запрошенное
// окно лежит в часах работы
func (uc *UseCase) checkCourt(ctx context.Context, req *Request) (*domain.Court, error) {
	court, err := uc.catalogRepo.GetCourtByID(ctx, req.CourtID)
	if err != nil {
		if errors.Is(err, storage.ErrCourtNotFound) {
			uc.logger.Warn("[create_booking.checkCourt] Корт не найден: courtID=%d", req.CourtID)
			return nil, ErrCourtNotFound
		}
		uc.logger.Error("[create_booking.checkCourt] Ошибка получения корта: courtID=%d, err=%v", req.CourtID, err)
		return nil, fmt.Errorf("%w: failed to get court: %v", ErrInternal, err)
	}

	if !court.IsActive {
		uc.logger.Warn("[create_booking.checkCourt] Корт неактивен: courtID=%d", req.CourtID)
		return nil, ErrCourtInactive
	}

	requested := domain.TimeRange{Start: req.StartTime, End: req.EndTime}
	if !court.IsWithinOperatingHours(requested) {
		uc.logger.Warn("[create_booking.checkCourt] Слот вне часов работы: courtID=%d, slot=%s-%s, hours=%s-%s",
			req.CourtID, req.StartTime, req.EndTime, court.OperatingHoursStart, court.OperatingHoursEnd)
		return nil, ErrOutsideOperatingHours
	}

	return court, nil
}
