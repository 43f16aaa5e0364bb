package create_booking

import (
	"errors"
	"net/http"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	createBooking "github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgInvalidTimeRange   = "время начала должно быть раньше времени конца"
	msgSlotNotAvailable   = "выбранный временной слот недоступен"
	msgCourtNotFound      = "корт не найден"
	msgCourtInactive      = "корт не принимает бронирования"
	msgUserNotFound       = "пользователь не найден"
	msgUserNotApproved    = "аккаунт пользователя не подтвержден"
	msgOutsideHours       = "слот выходит за часы работы корта"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: user_id=%d, court_id=%d", req.UserID, req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrCourtNotFound):
			h.logger.Warn("POST /bookings - Court not found: court_id=%d", req.CourtID)
			handlers.RespondNotFound(w, msgCourtNotFound)

		case errors.Is(err, createBooking.ErrCourtInactive):
			h.logger.Warn("POST /bookings - Court inactive: court_id=%d", req.CourtID)
			handlers.RespondError(w, http.StatusConflict, msgCourtInactive)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrUserNotApproved):
			h.logger.Warn("POST /bookings - User not approved: user_id=%d", req.UserID)
			handlers.RespondForbidden(w, msgUserNotApproved)

		case errors.Is(err, createBooking.ErrOutsideOperatingHours):
			h.logger.Warn("POST /bookings - Outside operating hours: user_id=%d, court_id=%d", req.UserID, req.CourtID)
			handlers.RespondBadRequest(w, msgOutsideHours)

		case errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings - Invalid time range: user_id=%d, court_id=%d", req.UserID, req.CourtID)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: user_id=%d, court_id=%d", req.UserID, req.CourtID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, court_id=%d, error=%v",
				req.UserID, req.CourtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, court_id=%d",
		result.ID, req.UserID, req.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
