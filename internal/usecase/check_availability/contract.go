package check_availability

import (
	"context"
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	GetCourtByID(ctx context.Context, id int64) (*domain.Court, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
