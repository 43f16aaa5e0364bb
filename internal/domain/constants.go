package domain

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// MinutesPerHour используется при пересчете длительности слота в часы
// для вычисления цены
const MinutesPerHour = 60.0
