package models

import (
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

// Request модели

// CancelBookingRequest запрос на отмену бронирования
type CancelBookingRequest struct {
	BookingID int64 `json:"bookingId"`
	UserID    int64 `json:"userId"`
}

// Response модели

// CancelBookingResponse результат отмены. Cancelled=false означает, что
// бронирование не найдено, принадлежит другому пользователю или уже
// отменено — эти случаи намеренно не различаются.
type CancelBookingResponse struct {
	BookingID int64 `json:"bookingId"`
	Cancelled bool  `json:"cancelled"`
}

// BookingDetailResponse бронирование с денормализованными данными для истории
type BookingDetailResponse struct {
	ID         int64   `json:"id"`
	UserID     int64   `json:"userId"`
	CourtID    int64   `json:"courtId"`
	Date       string  `json:"date"`      // "2025-08-11"
	StartTime  string  `json:"startTime"` // "18:00"
	EndTime    string  `json:"endTime"`   // "19:00"
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`

	CourtName    string `json:"courtName"`
	VenueName    string `json:"venueName"`
	VenueAddress string `json:"venueAddress"`
	SportName    string `json:"sportName"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком бронирований
type BookingListResponse struct {
	Bookings []BookingDetailResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBookingDetail конвертирует domain модель в DTO
func FromDomainBookingDetail(d *domain.BookingDetail) BookingDetailResponse {
	resp := BookingDetailResponse{
		ID:           d.ID,
		UserID:       d.UserID,
		CourtID:      d.CourtID,
		Date:         d.Date.Format(domain.DateFormat),
		StartTime:    d.StartTime.String(),
		EndTime:      d.EndTime.String(),
		TotalPrice:   d.TotalPrice,
		Status:       string(d.Status),
		CourtName:    d.CourtName,
		VenueName:    d.VenueName,
		VenueAddress: d.VenueAddress,
		SportName:    d.SportName,
		CreatedAt:    d.CreatedAt,
		UpdatedAt:    d.UpdatedAt,
	}

	if d.CancelledAt != nil {
		cancelledStr := d.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingDetails конвертирует список domain моделей в DTO
func FromDomainBookingDetails(details []*domain.BookingDetail) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingDetailResponse, len(details)),
	}
	for i, detail := range details {
		resp.Bookings[i] = FromDomainBookingDetail(detail)
	}
	return resp
}
