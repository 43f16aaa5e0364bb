package middleware

import (
	"encoding/json"
	"net/http"
	"strconv"
)

const userIDHeader = "X-User-ID"

// Auth требует заголовок X-User-ID с положительным числовым ID.
// Аутентификацию выполняет API gateway; здесь только проверяем,
// что заголовок проставлен и корректен.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		raw := r.Header.Get(userIDHeader)
		if raw == "" {
			respondUnauthorized(w, "отсутствует заголовок X-User-ID")
			return
		}

		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || userID <= 0 {
			respondUnauthorized(w, "некорректный заголовок X-User-ID")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func respondUnauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
