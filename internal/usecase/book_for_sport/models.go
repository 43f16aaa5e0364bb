package book_for_sport

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Request модель запроса на бронирование первого свободного корта
type Request struct {
	UserID    int64            // ID пользователя
	Sport     string           // Название вида спорта (подстрока, без учета регистра)
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Начало слота
	EndTime   types.TimeString // Конец слота
}

// Response модель ответа: созданное бронирование и данные выбранного корта
type Response struct {
	BookingID int64

	UserID    int64
	CourtID   int64
	CourtName string
	VenueName string
	SportName string

	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	TotalPrice float64
	Status     string

	CreatedAt time.Time
}
