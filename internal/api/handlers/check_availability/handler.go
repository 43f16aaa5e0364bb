package check_availability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/domain"
	checkAvailability "github.com/quickcourt/QC-BookingService/internal/usecase/check_availability"
	"github.com/quickcourt/QC-BookingService/pkg/types"
)

const (
	msgInvalidCourtID   = "некорректный ID корта"
	msgInvalidDate      = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidTime      = "некорректный формат времени, ожидается HH:MM"
	msgInvalidTimeRange = "время начала должно быть раньше времени конца"
	msgCourtNotFound    = "корт не найден"
)

type Handler struct {
	useCase CheckAvailabilityUseCase
	logger  Logger
}

func NewHandler(useCase CheckAvailabilityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts/{courtId}/availability?date={date}&startTime={startTime}&endTime={endTime}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	courtID, err := strconv.ParseInt(vars["courtId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid court ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCourtID)
		return
	}

	query := r.URL.Query()

	date, err := time.Parse(domain.DateFormat, query.Get("date"))
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	startTime, err := types.NewTimeStringFromString(query.Get("startTime"))
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid startTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	endTime, err := types.NewTimeStringFromString(query.Get("endTime"))
	if err != nil {
		h.logger.Warn("GET /courts/{id}/availability - Invalid endTime: %v", err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &checkAvailability.Request{
		CourtID:   courtID,
		Date:      date,
		StartTime: startTime,
		EndTime:   endTime,
	})
	if err != nil {
		switch {
		case errors.Is(err, checkAvailability.ErrCourtNotFound):
			h.logger.Warn("GET /courts/{id}/availability - Court not found: court_id=%d", courtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, checkAvailability.ErrInvalidTimeRange):
			h.logger.Warn("GET /courts/{id}/availability - Invalid time range: court_id=%d", courtID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, checkAvailability.ErrInvalidInput):
			h.logger.Warn("GET /courts/{id}/availability - Invalid input: court_id=%d", courtID)
			handlers.RespondBadRequest(w, msgInvalidTime)

		default:
			h.logger.Error("GET /courts/{id}/availability - Failed to check availability: court_id=%d, error=%v",
				courtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
