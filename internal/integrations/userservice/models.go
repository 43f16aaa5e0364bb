package userservice

// User модель пользователя из UserService
type User struct {
	ID         int64  `json:"id"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	Role       string `json:"role"` // "player", "facility", "admin"
	IsApproved bool   `json:"is_approved"`
}

// ErrorResponse модель ошибки от UserService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
