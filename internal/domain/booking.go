package domain

import (
	"time"

	"github.com/quickcourt/QC-BookingService/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// Booking represents a court booking in the system
type Booking struct {
	ID      int64
	UserID  int64
	CourtID int64

	// Дата бронирования (без времени) и полуоткрытый интервал [StartTime, EndTime)
	Date      time.Time
	StartTime types.TimeString
	EndTime   types.TimeString

	// Итоговая цена: price_per_hour корта на момент бронирования,
	// умноженная на длительность в часах. Вычисляется, не задается снаружи.
	TotalPrice float64

	Status      BookingStatus
	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// IsCancelled returns true if the booking has been cancelled
func (b *Booking) IsCancelled() bool {
	return b.Status == StatusCancelled
}

// Range возвращает временной интервал бронирования
func (b *Booking) Range() TimeRange {
	return TimeRange{Start: b.StartTime, End: b.EndTime}
}

// BookingDetail бронирование с денормализованными данными корта и площадки
// для отображения истории
type BookingDetail struct {
	Booking

	CourtName    string
	VenueName    string
	VenueAddress string
	SportName    string
}
