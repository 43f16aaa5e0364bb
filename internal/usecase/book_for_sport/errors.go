package book_for_sport

import "errors"

var (
	// ErrNoCourtsFound возвращается, когда по запрошенному виду спорта
	// не нашлось ни одного корта
	ErrNoCourtsFound = errors.New("book_for_sport: no courts found for sport")

	// ErrNoCourtAvailable возвращается, когда корты есть, но все заняты
	// в запрошенное окно
	ErrNoCourtAvailable = errors.New("book_for_sport: no court available for requested slot")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("book_for_sport: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("book_for_sport: internal error")
)
