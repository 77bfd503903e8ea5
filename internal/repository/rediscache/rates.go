// Package rediscache хранит прайс-лист поставщика в Redis между перезапусками
package rediscache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/go-redis/redis/v8"
)

// RatesKey - ключ прайс-листа поставщика
const RatesKey = "storefront:provider:services"

// RatesCache реализует domain.RatesCache
type RatesCache struct {
	client redis.Cmdable
	ttl    time.Duration
}

// NewRatesCache создает кэш прайс-листа с заданным временем жизни
func NewRatesCache(client redis.Cmdable, ttl time.Duration) *RatesCache {
	return &RatesCache{client: client, ttl: ttl}
}

// NewClient подключается к Redis и проверяет соединение
func NewClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close() //nolint:errcheck // соединение не установлено
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

// GetRates возвращает сохраненный прайс-лист. false означает промах кэша.
func (c *RatesCache) GetRates(ctx context.Context) ([]domain.ProviderService, bool, error) {
	data, err := c.client.Get(ctx, RatesKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("cache: failed to get provider rates: %w", err)
	}

	var rates []domain.ProviderService
	if err := json.Unmarshal(data, &rates); err != nil {
		return nil, false, fmt.Errorf("cache: failed to decode provider rates: %w", err)
	}

	return rates, true, nil
}

// SetRates сохраняет прайс-лист
func (c *RatesCache) SetRates(ctx context.Context, rates []domain.ProviderService) error {
	data, err := json.Marshal(rates)
	if err != nil {
		return fmt.Errorf("cache: failed to encode provider rates: %w", err)
	}

	if err := c.client.Set(ctx, RatesKey, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache: failed to store provider rates: %w", err)
	}

	return nil
}
