package create_booking

import (
	"context"
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/internal/integrations/userservice"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	GetByCourtAndDate(ctx context.Context, courtID int64, date time.Time) ([]*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория справочника
type CatalogRepository interface {
	GetCourtByID(ctx context.Context, id int64) (*domain.Court, error)
}

// UserServiceClient интерфейс клиента для UserService
type UserServiceClient interface {
	VerifyUser(ctx context.Context, userID int64) (*userservice.User, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
