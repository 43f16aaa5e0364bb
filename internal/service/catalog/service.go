package catalog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/internal/service/catalog/models"
)

// Service сервис справочника кортов
type Service struct {
	catalogRepo  CatalogRepository
	cache        CourtCache
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса справочника.
// cache может быть nil — тогда кэширование выключено.
func NewService(
	catalogRepo CatalogRepository,
	cache CourtCache,
	logger Logger,
) *Service {
	return &Service{
		catalogRepo:  catalogRepo,
		cache:        cache,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// SearchCourts ищет корты по подстроке названия вида спорта.
// Возвращаются только пригодные для бронирования корты (активный корт,
// активная и одобренная площадка). Пустой список — валидный результат,
// не ошибка. Порядок выдачи не гарантируется.
//
// Дата из запроса не фильтрует результат: корты не разбиты по датам,
// она лишь подставляется в ответ как дата отображения слотов.
// Если дата не указана, используется сегодняшняя.
func (s *Service) SearchCourts(ctx context.Context, req *models.SearchCourtsRequest) (*models.CourtListResponse, error) {
	pattern := strings.TrimSpace(req.SportName)
	if pattern == "" {
		s.logger.Warn("SearchCourts: empty sport name")
		return nil, fmt.Errorf("%w: sportName is required", ErrInvalidInput)
	}

	displayDate := s.timeProvider.Now()
	if req.Date != nil {
		displayDate = *req.Date
	}

	listings, err := s.findCourts(ctx, pattern)
	if err != nil {
		s.logger.Error("SearchCourts: repository error for sport=%q: %v", pattern, err)
		return nil, fmt.Errorf("%w: SearchCourts - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SearchCourts: found %d courts for sport=%q", len(listings), pattern)
	return models.FromDomainCourtListings(displayDate, listings), nil
}

// findCourts читает справочник через кэш (cache-aside).
// Ошибки кэша не фатальны: логируются, и поиск уходит в БД.
func (s *Service) findCourts(ctx context.Context, pattern string) ([]*domain.CourtListing, error) {
	if s.cache != nil {
		cached, err := s.cache.GetCourts(ctx, pattern)
		if err != nil {
			s.logger.Warn("SearchCourts: cache read failed for sport=%q: %v", pattern, err)
		} else if cached != nil {
			s.logger.Info("SearchCourts: cache hit for sport=%q", pattern)
			return cached, nil
		}
	}

	listings, err := s.catalogRepo.FindCourtsBySport(ctx, pattern)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SaveCourts(ctx, pattern, listings); err != nil {
			s.logger.Warn("SearchCourts: cache write failed for sport=%q: %v", pattern, err)
		}
	}

	return listings, nil
}

// ListSports возвращает все виды спорта из справочника
func (s *Service) ListSports(ctx context.Context) (*models.SportListResponse, error) {
	sports, err := s.catalogRepo.ListSports(ctx)
	if err != nil {
		s.logger.Error("ListSports: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListSports - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ListSports: fetched %d sports", len(sports))
	return models.FromDomainSports(sports), nil
}

// WarmupCache прогревает кэш по списку видов спорта при старте сервиса
func (s *Service) WarmupCache(ctx context.Context, timeout time.Duration) {
	if s.cache == nil {
		return
	}

	warmupCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	sports, err := s.catalogRepo.ListSports(warmupCtx)
	if err != nil {
		s.logger.Warn("WarmupCache: failed to list sports: %v", err)
		return
	}

	for _, sport := range sports {
		if _, err := s.findCourts(warmupCtx, sport.Name); err != nil {
			s.logger.Warn("WarmupCache: failed for sport=%q: %v", sport.Name, err)
		}
	}

	s.logger.Info("WarmupCache: warmed %d sports", len(sports))
}
