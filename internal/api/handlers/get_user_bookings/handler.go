package get_user_bookings

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/service/bookings"
)

const (
	msgInvalidUserID = "некорректный ID пользователя"
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

// Handle GET /api/v1/users/{userId}/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)

	userID, err := strconv.ParseInt(vars["userId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /users/{id}/bookings - Invalid user ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUserID)
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /users/{id}/bookings - Invalid input: user_id=%d", userID)
			handlers.RespondBadRequest(w, msgInvalidUserID)

		default:
			h.logger.Error("GET /users/{id}/bookings - Failed to get bookings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /users/{id}/bookings - Bookings retrieved: user_id=%d, count=%d", userID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
