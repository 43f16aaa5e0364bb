package book_for_sport

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
)

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	FindCourtsBySport(ctx context.Context, sportPattern string) ([]*domain.CourtListing, error)
}

// BookingCreator интерфейс usecase создания бронирования
type BookingCreator interface {
	Execute(ctx context.Context, req *create_booking.Request) (*create_booking.Response, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
