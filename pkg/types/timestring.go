package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// Формат времени слотов: часы и минуты без секунд
const timeLayout = "15:04"

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени
	ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")
)

// TimeString время в формате "HH:MM" (wall-clock, без даты и таймзоны).
// Строковое представление с ведущими нулями сравнивается лексикографически
// так же, как и хронологически, поэтому IsBefore/IsAfter не требуют парсинга.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString создает TimeString из строки с валидацией формата
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// String возвращает строковое представление "HH:MM"
func (t TimeString) String() string {
	return string(t)
}

// IsZero возвращает true для пустого значения
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение соответствует формату "HH:MM"
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	// time.Parse допускает часы без ведущего нуля ("9:30"),
	// но лексикографическое сравнение требует канонической записи
	if parsed.Format(timeLayout) != string(t) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsBefore возвращает true, если t строго раньше other
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter возвращает true, если t строго позже other
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// minutesOfDay возвращает количество минут с начала суток
func (t TimeString) minutesOfDay() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время через m минут.
// Выход за границу суток считается ошибкой: слоты бронирования не
// пересекают полночь.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.minutesOfDay()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("%w: %q + %d minutes is out of day range", ErrInvalidTimeString, string(t), m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// MinutesUntil возвращает количество минут от t до other.
// Отрицательный результат означает, что other раньше t.
func (t TimeString) MinutesUntil(other TimeString) (int, error) {
	from, err := t.minutesOfDay()
	if err != nil {
		return 0, err
	}
	to, err := other.minutesOfDay()
	if err != nil {
		return 0, err
	}
	return to - from, nil
}

// Value реализует driver.Valuer для записи в БД
func (t TimeString) Value() (driver.Value, error) {
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

// Scan реализует sql.Scanner для чтения из БД.
// Поддерживает строки, []byte и time.Time (колонки типа TIME).
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		return t.scanString(v)
	case []byte:
		return t.scanString(string(v))
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: unsupported source type %T", ErrInvalidTimeString, src)
	}
}

func (t *TimeString) scanString(s string) error {
	// Колонки TIME отдают значение с секундами ("18:00:00")
	if len(s) > len(timeLayout) {
		s = s[:len(timeLayout)]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}
