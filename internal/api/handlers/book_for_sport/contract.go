package book_for_sport

import (
	"context"

	bookForSport "github.com/quickcourt/QC-BookingService/internal/usecase/book_for_sport"
)

type BookForSportUseCase interface {
	Execute(ctx context.Context, req *bookForSport.Request) (*bookForSport.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
