package create_booking

import "errors"

var (
	// ErrCourtNotFound возвращается, когда корт не найден
	ErrCourtNotFound = errors.New("create_booking: court not found")

	// ErrCourtInactive возвращается, когда корт отключен и не принимает
	// бронирования
	ErrCourtInactive = errors.New("create_booking: court is not active")

	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("create_booking: user not found")

	// ErrUserNotApproved возвращается, когда аккаунт пользователя
	// не одобрен администратором
	ErrUserNotApproved = errors.New("create_booking: user is not approved")

	// ErrInvalidTimeRange возвращается, когда время начала не раньше
	// времени конца или формат времени некорректен
	ErrInvalidTimeRange = errors.New("create_booking: invalid time range")

	// ErrOutsideOperatingHours возвращается, когда запрошенное окно
	// выходит за часы работы корта
	ErrOutsideOperatingHours = errors.New("create_booking: requested window is outside operating hours")

	// ErrSlotNotAvailable возвращается, когда слот пересекается с
	// существующим неотмененным бронированием
	ErrSlotNotAvailable = errors.New("create_booking: slot is not available")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
