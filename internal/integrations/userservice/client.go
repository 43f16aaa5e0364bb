package userservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с UserService.
// Регистрация, подтверждение email и одобрение аккаунтов живут в
// отдельном сервисе; ядру бронирования нужен только статус пользователя.
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента UserService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetUser получает пользователя по ID
func (c *Client) GetUser(ctx context.Context, userID int64) (*User, error) {
	url := fmt.Sprintf("%s/internal/users/%d", c.baseURL, userID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid user ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrUserNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var user User
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &user, nil
}

// VerifyUser проверяет, что пользователь существует и одобрен,
// с graceful degradation: при недоступности UserService возвращает
// ErrServiceDegraded, и бронирование может продолжиться без проверки.
func (c *Client) VerifyUser(ctx context.Context, userID int64) (*User, error) {
	user, err := c.GetUser(ctx, userID)
	if err != nil {
		// Бизнес-ошибка "не найден" пробрасывается дальше
		if err == ErrUserNotFound {
			c.log.Warn("User id=%d not found in UserService", userID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность, timeout, ошибки
		// парсинга) применяем graceful degradation.
		// Уровень ERROR, чтобы быстрее заметить проблему.
		c.log.Error("UserService unavailable, applying graceful degradation for user_id=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: user_id=%d, error=%v", ErrServiceDegraded, userID, err)
	}

	if !user.IsApproved {
		c.log.Warn("User id=%d is not approved", userID)
		return nil, ErrUserNotApproved
	}

	return user, nil
}
