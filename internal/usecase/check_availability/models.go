package check_availability

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// Request модель запроса на проверку доступности слота
type Request struct {
	CourtID   int64            // ID корта
	Date      time.Time        // Дата (без времени)
	StartTime types.TimeString // Начало интервала (например, "18:00")
	EndTime   types.TimeString // Конец интервала (например, "19:00")
}

// Response модель ответа с результатом проверки
type Response struct {
	CourtID   int64
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	// Available = true, если ни одно неотмененное бронирование корта
	// на эту дату не пересекается с запрошенным интервалом
	Available bool
}
