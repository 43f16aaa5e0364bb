package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/quickcourt/QC-BookingService/internal/domain"
)

// CourtCache redis-кэш результатов поиска кортов. Справочник кортов
// меняется редко, поэтому cache-aside с коротким TTL снимает основную
// читающую нагрузку с PostgreSQL.
type CourtCache struct {
	client *redis.Client
	ttl    time.Duration
}

// New создает кэш поверх redis-клиента
func New(addr, password string, db int, ttl time.Duration) *CourtCache {
	rdb := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &CourtCache{client: rdb, ttl: ttl}
}

// Ping проверяет доступность redis
func (c *CourtCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close закрывает соединение с redis
func (c *CourtCache) Close() error {
	return c.client.Close()
}

// Ключ нормализуется к нижнему регистру: поиск нечувствителен к регистру,
// поэтому "Tennis" и "tennis" — один и тот же результат
func courtsKey(sportPattern string) string {
	return fmt.Sprintf("cache:courts:sport:%s", strings.ToLower(sportPattern))
}

// GetCourts возвращает закэшированный результат поиска.
// (nil, nil) означает промах кэша.
func (c *CourtCache) GetCourts(ctx context.Context, sportPattern string) ([]*domain.CourtListing, error) {
	val, err := c.client.Get(ctx, courtsKey(sportPattern)).Result()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var listings []*domain.CourtListing
	if err := json.Unmarshal([]byte(val), &listings); err != nil {
		return nil, err
	}
	return listings, nil
}

// SaveCourts сохраняет результат поиска с TTL
func (c *CourtCache) SaveCourts(ctx context.Context, sportPattern string, listings []*domain.CourtListing) error {
	data, err := json.Marshal(listings)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, courtsKey(sportPattern), data, c.ttl).Err()
}
