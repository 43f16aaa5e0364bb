package search_courts

import (
	"errors"
	"net/http"
	"time"

	"github.com/quickcourt/QC-BookingService/internal/api/handlers"
	"github.com/quickcourt/QC-BookingService/internal/domain"
	"github.com/quickcourt/QC-BookingService/internal/service/catalog"
	"github.com/quickcourt/QC-BookingService/internal/service/catalog/models"
)

const (
	msgMissingSport = "параметр sport обязателен"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/courts?sport={sport}&date={date}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	sport := r.URL.Query().Get("sport")
	if sport == "" {
		h.logger.Warn("GET /courts - Missing sport parameter")
		handlers.RespondBadRequest(w, msgMissingSport)
		return
	}

	req := &models.SearchCourtsRequest{SportName: sport}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := time.Parse(domain.DateFormat, dateStr)
		if err != nil {
			h.logger.Warn("GET /courts - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.SearchCourts(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /courts - Invalid input: sport=%q", sport)
			handlers.RespondBadRequest(w, msgMissingSport)

		default:
			h.logger.Error("GET /courts - Failed to search courts: sport=%q, error=%v", sport, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /courts - Courts found: sport=%q, count=%d", sport, len(result.Courts))
	handlers.RespondJSON(w, http.StatusOK, result)
}
