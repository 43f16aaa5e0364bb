package book_for_sport

import (
	"errors"
	"net/http"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	bookForSport "github.com/quickcourt/QC-BookingService/internal/usecase/book_for_sport"
	createBooking "github.com/quickcourt/QC-BookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDateOrTime  = "некорректный формат даты или времени, ожидается YYYY-MM-DD и HH:MM"
	msgNoCourtsFound      = "корты по запрошенному виду спорта не найдены"
	msgNoCourtAvailable   = "нет свободных кортов в запрошенное время"
	msgUserNotFound       = "пользователь не найден"
	msgUserNotApproved    = "аккаунт пользователя не подтвержден"
	msgInvalidInput       = "некорректные данные запроса"
)

type Handler struct {
	useCase BookForSportUseCase
	logger  Logger
}

func NewHandler(useCase BookForSportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings/by-sport
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BookForSportRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings/by-sport - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings/by-sport - Failed to parse request: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateOrTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, bookForSport.ErrNoCourtsFound):
			h.logger.Warn("POST /bookings/by-sport - No courts found: sport=%q", req.Sport)
			handlers.RespondNotFound(w, msgNoCourtsFound)

		case errors.Is(err, bookForSport.ErrNoCourtAvailable):
			h.logger.Warn("POST /bookings/by-sport - No court available: sport=%q, user_id=%d", req.Sport, req.UserID)
			handlers.RespondError(w, http.StatusConflict, msgNoCourtAvailable)

		case errors.Is(err, createBooking.ErrUserNotFound):
			h.logger.Warn("POST /bookings/by-sport - User not found: user_id=%d", req.UserID)
			handlers.RespondNotFound(w, msgUserNotFound)

		case errors.Is(err, createBooking.ErrUserNotApproved):
			h.logger.Warn("POST /bookings/by-sport - User not approved: user_id=%d", req.UserID)
			handlers.RespondForbidden(w, msgUserNotApproved)

		case errors.Is(err, bookForSport.ErrInvalidInput), errors.Is(err, createBooking.ErrInvalidInput),
			errors.Is(err, createBooking.ErrInvalidTimeRange):
			h.logger.Warn("POST /bookings/by-sport - Invalid input: user_id=%d, sport=%q", req.UserID, req.Sport)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings/by-sport - Failed to book: user_id=%d, sport=%q, error=%v",
				req.UserID, req.Sport, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/by-sport - Booking created successfully: booking_id=%d, user_id=%d, court_id=%d",
		result.BookingID, req.UserID, result.CourtID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
