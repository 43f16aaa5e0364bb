package catalog

import (
	"context"
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

// CatalogRepository интерфейс репозитория справочных данных
type CatalogRepository interface {
	FindCourtsBySport(ctx context.Context, sportPattern string) ([]*domain.CourtListing, error)
	ListSports(ctx context.Context) ([]*domain.Sport, error)
}

// CourtCache интерфейс кэша результатов поиска кортов.
// Может быть nil — тогда поиск всегда идет в БД.
type CourtCache interface {
	GetCourts(ctx context.Context, sportPattern string) ([]*domain.CourtListing, error)
	SaveCourts(ctx context.Context, sportPattern string, listings []*domain.CourtListing) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
