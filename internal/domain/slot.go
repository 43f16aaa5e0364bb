package domain

import "github.com/quickcourt/QC-BookingService/pkg/types"

// TimeRange полуоткрытый временной интервал [Start, End) в пределах одних суток
type TimeRange struct {
	Start types.TimeString
	End   types.TimeString
}

// IsValid возвращает true, если начало строго раньше конца
func (r TimeRange) IsValid() bool {
	return r.Start.IsBefore(r.End)
}

// Overlaps проверяет пересечение двух полуоткрытых интервалов.
// Интервалы пересекаются, только если каждый начинается строго раньше,
// чем заканчивается другой. Граничащие интервалы (конец одного равен
// началу другого) не пересекаются.
//
// Примеры:
// - [18:00, 19:00) и [18:30, 19:30) → пересекаются
// - [18:00, 19:00) и [19:00, 20:00) → НЕ пересекаются (граничат)
func (r TimeRange) Overlaps(other TimeRange) bool {
	return r.Start.IsBefore(other.End) && other.Start.IsBefore(r.End)
}

// DurationMinutes возвращает длительность интервала в минутах
func (r TimeRange) DurationMinutes() (int, error) {
	return r.Start.MinutesUntil(r.End)
}

// HasConflict проверяет, пересекается ли интервал хотя бы с одним
// активным бронированием из списка. Отмененные бронирования слот
// не занимают.
func (r TimeRange) HasConflict(bookings []*Booking) bool {
	for _, booking := range bookings {
		if !booking.IsActive() {
			continue
		}
		if r.Overlaps(booking.Range()) {
			return true
		}
	}
	return false
}
