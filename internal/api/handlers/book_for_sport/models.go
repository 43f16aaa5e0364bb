package book_for_sport

import (
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
	bookForSport "github.com/quickcourt/QC-BookingService/internal/usecase/book_for_sport"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// BookForSportRequest HTTP request model
type BookForSportRequest struct {
	UserID    int64  `json:"userId"`
	Sport     string `json:"sport"`
	Date      string `json:"date"`      // "2025-08-11"
	StartTime string `json:"startTime"` // "18:00"
	EndTime   string `json:"endTime"`   // "19:00"
}

// BookForSportResponse HTTP response model
type BookForSportResponse struct {
	BookingID  int64   `json:"bookingId"`
	UserID     int64   `json:"userId"`
	CourtID    int64   `json:"courtId"`
	CourtName  string  `json:"courtName"`
	VenueName  string  `json:"venueName"`
	SportName  string  `json:"sportName"`
	Date       string  `json:"date"`
	StartTime  string  `json:"startTime"`
	EndTime    string  `json:"endTime"`
	TotalPrice float64 `json:"totalPrice"`
	Status     string  `json:"status"`
	CreatedAt  string  `json:"createdAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *BookForSportRequest) ToUseCaseRequest() (*bookForSport.Request, error) {
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

	return &bookForSport.Request{
		UserID:    r.UserID,
		Sport:     r.Sport,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *bookForSport.Response) *BookForSportResponse {
	return &BookForSportResponse{
		BookingID:  resp.BookingID,
		UserID:     resp.UserID,
		CourtID:    resp.CourtID,
		CourtName:  resp.CourtName,
		VenueName:  resp.VenueName,
		SportName:  resp.SportName,
		Date:       resp.Date.Format(domain.DateFormat),
		StartTime:  resp.StartTime.String(),
		EndTime:    resp.EndTime.String(),
		TotalPrice: resp.TotalPrice,
		Status:     resp.Status,
		CreatedAt:  resp.CreatedAt.Format(time.RFC3339),
	}
}
