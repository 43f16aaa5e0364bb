package book_for_sport

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
)

// UseCase бронирования первого свободного корта по виду спорта.
//
// Кандидаты перебираются от дешевых к дорогим; каждый претендент
// проходит через обычный usecase создания бронирования, так что все
// проверки занятости и атомарность сохраняются.
type UseCase struct {
	catalogRepo    CatalogRepository
	bookingCreator BookingCreator
	logger         Logger
}

func NewUseCase(catalogRepo CatalogRepository, bookingCreator BookingCreator, logger Logger) *UseCase {
	return &UseCase{
		catalogRepo:    catalogRepo,
		bookingCreator: bookingCreator,
		logger:         logger,
	}
}

// Execute находит корты по виду спорта и бронирует первый свободный.
//
// Различаются два исхода без бронирования:
// - ErrNoCourtsFound: по виду спорта нет ни одного корта
// - ErrNoCourtAvailable: корты есть, но все заняты в запрошенное окно
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if err := uc.validateRequest(req); err != nil {
		uc.logger.Warn("[book_for_sport.Execute] Некорректный запрос: %v", err)
		return nil, err
	}

	courts, err := uc.catalogRepo.FindCourtsBySport(ctx, strings.TrimSpace(req.Sport))
	if err != nil {
		uc.logger.Error("[book_for_sport.Execute] Ошибка поиска кортов: sport=%q, err=%v", req.Sport, err)
		return nil, fmt.Errorf("%w: failed to find courts: %v", ErrInternal, err)
	}

	if len(courts) == 0 {
		uc.logger.Info("[book_for_sport.Execute] Корты не найдены: sport=%q", req.Sport)
		return nil, ErrNoCourtsFound
	}

	// Дешевые корты пробуем первыми; при равной цене порядок
	// детерминирован по ID
	sort.Slice(courts, func(i, j int) bool {
		if courts[i].PricePerHour != courts[j].PricePerHour {
			return courts[i].PricePerHour < courts[j].PricePerHour
		}
		return courts[i].CourtID < courts[j].CourtID
	})

	for _, court := range courts {
		created, err := uc.bookingCreator.Execute(ctx, &create_booking.Request{
			UserID:    req.UserID,
			CourtID:   court.CourtID,
			Date:      req.Date,
			StartTime: req.StartTime,
			EndTime:   req.EndTime,
		})
		if err != nil {
			if uc.isSkippable(err) {
				uc.logger.Info("[book_for_sport.Execute] Корт недоступен, пробуем следующий: courtID=%d, reason=%v",
					court.CourtID, err)
				continue
			}
			uc.logger.Error("[book_for_sport.Execute] Ошибка создания бронирования: courtID=%d, err=%v",
				court.CourtID, err)
			return nil, err
		}

		uc.logger.Info("[book_for_sport.Execute] Бронирование создано: bookingID=%d, courtID=%d, sport=%q",
			created.ID, court.CourtID, req.Sport)

		return &Response{
			BookingID:  created.ID,
			UserID:     created.UserID,
			CourtID:    court.CourtID,
			CourtName:  court.CourtName,
			VenueName:  court.VenueName,
			SportName:  court.SportName,
			Date:       created.Date,
			StartTime:  created.StartTime,
			EndTime:    created.EndTime,
			TotalPrice: created.TotalPrice,
			Status:     created.Status,
			CreatedAt:  created.CreatedAt,
		}, nil
	}

	uc.logger.Info("[book_for_sport.Execute] Все корты заняты: sport=%q, date=%s, slot=%s-%s",
		req.Sport, req.Date.Format(domain.DateFormat), req.StartTime, req.EndTime)

	return nil, ErrNoCourtAvailable
}

// isSkippable возвращает true для ошибок, из-за которых стоит перейти
// к следующему кандидату, а не прерывать перебор
func (uc *UseCase) isSkippable(err error) bool {
	return errors.Is(err, create_booking.ErrSlotNotAvailable) ||
		errors.Is(err, create_booking.ErrOutsideOperatingHours) ||
		errors.Is(err, create_booking.ErrCourtInactive) ||
		errors.Is(err, create_booking.ErrCourtNotFound)
}

func (uc *UseCase) validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive, got %d", ErrInvalidInput, req.UserID)
	}

	if strings.TrimSpace(req.Sport) == "" {
		return fmt.Errorf("%w: sport is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	slot := domain.TimeRange{Start: req.StartTime, End: req.EndTime}
	if !slot.IsValid() {
		return fmt.Errorf("%w: startTime %s must be before endTime %s",
			ErrInvalidInput, req.StartTime, req.EndTime)
	}

	return nil
}
