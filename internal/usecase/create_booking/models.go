package create_booking

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Request модель запроса на создание бронирования
type Request struct {
	UserID    int64            // ID пользователя
	CourtID   int64            // ID корта
	Date      time.Time        // Дата бронирования (без времени)
	StartTime types.TimeString // Начало слота (например, "18:00")
	EndTime   types.TimeString // Конец слота (например, "19:30")
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID        int64            // ID созданного бронирования
	UserID    int64            // ID пользователя
	CourtID   int64            // ID корта
	Date      time.Time        // Дата бронирования
	StartTime types.TimeString // Начало слота
	EndTime   types.TimeString // Конец слота

	// Итоговая цена: почасовая цена корта на момент бронирования,
	// умноженная на длительность в часах
	TotalPrice float64

	Status string // Статус бронирования

	CreatedAt time.Time
	UpdatedAt time.Time
}
