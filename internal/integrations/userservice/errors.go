package userservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("userservice client: user not found")

	// ErrUserNotApproved возвращается, когда аккаунт пользователя
	// не одобрен администратором
	ErrUserNotApproved = errors.New("userservice client: user is not approved")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("userservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("userservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation.
	// Указывает, что UserService недоступен: бронирование продолжается
	// без проверки аккаунта, инцидент фиксируется в логе.
	ErrServiceDegraded = errors.New("userservice unavailable: graceful degradation applied")
)
