package bookings

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetDetailsByUserID(ctx context.Context, userID int64) ([]*domain.BookingDetail, error)
	CancelByOwner(ctx context.Context, bookingID, userID int64) (bool, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
