package models

import (
	"time"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

// Request модели

// SearchCourtsRequest запрос на поиск кортов по виду спорта
type SearchCourtsRequest struct {
	SportName string     `json:"sportName"`
	Date      *time.Time `json:"date,omitempty"` // Только для отображения, не фильтрует результат
}

// Response модели

// CourtListingResponse строка результата поиска кортов
type CourtListingResponse struct {
	CourtID             int64   `json:"courtId"`
	CourtName           string  `json:"courtName"`
	PricePerHour        float64 `json:"pricePerHour"`
	OperatingHoursStart string  `json:"operatingHoursStart"`
	OperatingHoursEnd   string  `json:"operatingHoursEnd"`
	VenueID             int64   `json:"venueId"`
	VenueName           string  `json:"venueName"`
	VenueAddress        string  `json:"venueAddress"`
	ShortLocation       string  `json:"shortLocation"`
	SportName           string  `json:"sportName"`
}

// CourtListResponse ответ со списком кортов
type CourtListResponse struct {
	Date   string                 `json:"date"` // Дата для отображения слотов
	Courts []CourtListingResponse `json:"courts"`
}

// SportResponse вид спорта из справочника
type SportResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// SportListResponse ответ со списком видов спорта
type SportListResponse struct {
	Sports []SportResponse `json:"sports"`
}

// Методы конвертации

// FromDomainCourtListing конвертирует domain модель в DTO
func FromDomainCourtListing(l *domain.CourtListing) CourtListingResponse {
	return CourtListingResponse{
		CourtID:             l.CourtID,
		CourtName:           l.CourtName,
		PricePerHour:        l.PricePerHour,
		OperatingHoursStart: l.OperatingHoursStart.String(),
		OperatingHoursEnd:   l.OperatingHoursEnd.String(),
		VenueID:             l.VenueID,
		VenueName:           l.VenueName,
		VenueAddress:        l.VenueAddress,
		ShortLocation:       l.ShortLocation,
		SportName:           l.SportName,
	}
}

// FromDomainCourtListings конвертирует список domain моделей в DTO
func FromDomainCourtListings(date time.Time, listings []*domain.CourtListing) *CourtListResponse {
	resp := &CourtListResponse{
		Date:   date.Format(domain.DateFormat),
		Courts: make([]CourtListingResponse, len(listings)),
	}
	for i, listing := range listings {
		resp.Courts[i] = FromDomainCourtListing(listing)
	}
	return resp
}

// FromDomainSports конвертирует список видов спорта в DTO
func FromDomainSports(sports []*domain.Sport) *SportListResponse {
	resp := &SportListResponse{
		Sports: make([]SportResponse, len(sports)),
	}
	for i, sport := range sports {
		resp.Sports[i] = SportResponse{ID: sport.ID, Name: sport.Name}
	}
	return resp
}
