package cancel_booking

import "github.com/quickcourt/QC-BookingService/internal/service/bookings/models"

// CancelBookingRequest HTTP request model
type CancelBookingRequest struct {
	UserID int64 `json:"userId"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *CancelBookingRequest) ToServiceRequest(bookingID int64) *models.CancelBookingRequest {
	return &models.CancelBookingRequest{
		BookingID: bookingID,
		UserID:    r.UserID,
	}
}
