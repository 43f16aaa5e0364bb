package check_availability

import (
	"github.com/quickcourt/QC-BookingService/internal/domain"
	checkAvailability "github.com/quickcourt/QC-BookingService/internal/usecase/check_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	CourtID   int64  `json:"courtId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkAvailability.Response) *AvailabilityResponse {
	return &AvailabilityResponse{
		CourtID:   resp.CourtID,
		Date:      resp.Date.Format(domain.DateFormat),
		StartTime: resp.StartTime.String(),
		EndTime:   resp.EndTime.String(),
		Available: resp.Available,
	}
}
