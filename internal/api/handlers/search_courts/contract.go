package search_courts

import (
	"context"

	"github.com/quickcourt/QC-BookingService/internal/service/catalog/models"
)

type CatalogService interface {
	SearchCourts(ctx context.Context, req *models.SearchCourtsRequest) (*models.CourtListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
