package create_booking

import (
	"fmt"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

// validateRequest проверяет корректность входных данных запроса
func (uc *UseCase) validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is nil", ErrInvalidInput)
	}

	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive, got %d", ErrInvalidInput, req.UserID)
	}

	if req.CourtID <= 0 {
		return fmt.Errorf("%w: courtID must be positive, got %d", ErrInvalidInput, req.CourtID)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.StartTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid startTime: %v", ErrInvalidInput, err)
	}

	if err := req.EndTime.Validate(); err != nil {
		return fmt.Errorf("%w: invalid endTime: %v", ErrInvalidInput, err)
	}

	slot := domain.TimeRange{Start: req.StartTime, End: req.EndTime}
	if !slot.IsValid() {
		return fmt.Errorf("%w: startTime %s must be before endTime %s",
			ErrInvalidTimeRange, req.StartTime, req.EndTime)
	}

	return nil
}
