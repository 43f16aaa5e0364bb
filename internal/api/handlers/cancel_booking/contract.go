package cancel_booking

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/service/bookings/models"
)

type BookingService interface {
	Cancel(ctx context.Context, req *models.CancelBookingRequest) (*models.CancelBookingResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
