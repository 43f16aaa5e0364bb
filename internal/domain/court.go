package domain

import "github.com/quickcourt/QC-BookingService/pkg/types"

// Sport вид спорта. Справочные данные, имя уникально.
type Sport struct {
	ID   int64
	Name string
}

// Venue спортивная площадка. Принадлежит внешней подсистеме управления
// объектами; ядро бронирования только читает флаги is_active/is_approved.
type Venue struct {
	ID            int64
	Name          string
	Address       string
	ShortLocation string
	IsApproved    bool
	IsActive      bool
}

// Court корт. Принадлежит ровно одной площадке и предлагает ровно один
// вид спорта.
type Court struct {
	ID      int64
	VenueID int64
	SportID int64
	Name    string

	PricePerHour float64

	// Часы работы корта; бронирование вне окна отклоняется
	OperatingHoursStart types.TimeString
	OperatingHoursEnd   types.TimeString

	IsActive bool
}

// OperatingRange возвращает окно работы корта
func (c *Court) OperatingRange() TimeRange {
	return TimeRange{Start: c.OperatingHoursStart, End: c.OperatingHoursEnd}
}

// IsWithinOperatingHours проверяет, что запрошенное окно целиком лежит
// внутри часов работы корта
func (c *Court) IsWithinOperatingHours(r TimeRange) bool {
	if c.OperatingHoursStart.IsZero() || c.OperatingHoursEnd.IsZero() {
		return true
	}
	return !r.Start.IsBefore(c.OperatingHoursStart) && !r.End.IsAfter(c.OperatingHoursEnd)
}

// CourtListing строка результата поиска кортов: корт с данными площадки
// и вида спорта. Порядок выдачи не гарантируется.
type CourtListing struct {
	CourtID             int64
	CourtName           string
	PricePerHour        float64
	OperatingHoursStart types.TimeString
	OperatingHoursEnd   types.TimeString

	VenueID       int64
	VenueName     string
	VenueAddress  string
	ShortLocation string

	SportName string
}
