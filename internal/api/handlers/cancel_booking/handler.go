package cancel_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings"
)

const (
	msgInvalidBookingID   = "некорректный ID бронирования"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
//
// Отмена идемпотентна: повторная отмена, чужое или несуществующее
// бронирование возвращают 200 с cancelled=false, не ошибку.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	bookingID, err := strconv.ParseInt(vars["bookingId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	var req CancelBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Cancel(r.Context(), req.ToServiceRequest(bookingID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid input: booking_id=%d, user_id=%d",
				bookingID, req.UserID)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v",
				bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Cancel processed: booking_id=%d, user_id=%d, cancelled=%t",
		bookingID, req.UserID, result.Cancelled)
	handlers.RespondJSON(w, http.StatusOK, result)
}
