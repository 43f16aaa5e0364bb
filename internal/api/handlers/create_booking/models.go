package create_booking

import (
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	createBooking "github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	UserID    int64  `json:"userId"`
	CourtID   int64  `json:"courtId"`
	Date      string `json:"date"`      // "2025-08-11"
	StartTime string `json:"startTime"` // "18:00"
	EndTime   string `json:"endTime"`   // "19:00"
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	CourtID    int64   `json:"courtId"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
	UpdatedAt  string  `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	date, err := time.Parse(domain.DateFormat, r.Date)
	if err != nil {
		return nil, err
	}

	startTime, err := types.NewTimeStringFromString(r.StartTime)
	if err != nil {
		return nil, err
	}

	endTime, err := types.NewTimeStringFromString(r.EndTime)
	if err != nil {
		return nil, err
	}

	return &createBooking.Request{
		UserID:    r.UserID,
		CourtID:   r.CourtID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:         resp.ID,
		UserID:     resp.UserID,
		CourtID:    resp.CourtID,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:  resp.UpdatedAt.Format(time.RFC3339),
	}
}
