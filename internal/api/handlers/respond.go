package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
)

// ErrorResponse стандартный формат ошибки API
type ErrorResponse struct {
	Error string `json:"error"`
}

// DecodeJSON декодирует тело запроса в структуру
func DecodeJSON(r *http.Request, v interface{}) error {
	defer r.Body.Close()

	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(v); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}

	return nil
}

// RespondJSON отправляет JSON-ответ с указанным статусом
func RespondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if payload != nil {
		// Ошибку записи в соединение здесь уже не вернуть клиенту
		_ = json.NewEncoder(w).Encode(payload)
	}
}

// RespondError отправляет ошибку с указанным статусом
func RespondError(w http.ResponseWriter, status int, message string) {
	RespondJSON(w, status, ErrorResponse{Error: message})
}

// RespondBadRequest отправляет 400 Bad Request
func RespondBadRequest(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusBadRequest, message)
}

// RespondUnauthorized отправляет 401 Unauthorized
func RespondUnauthorized(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusUnauthorized, message)
}

// RespondForbidden отправляет 403 Forbidden
func RespondForbidden(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusForbidden, message)
}

// RespondNotFound отправляет 404 Not Found
func RespondNotFound(w http.ResponseWriter, message string) {
	RespondError(w, http.StatusNotFound, message)
}

// RespondInternalError отправляет 500 Internal Server Error
func RespondInternalError(w http.ResponseWriter) {
	RespondError(w, http.StatusInternalServerError, "внутренняя ошибка сервера")
}
