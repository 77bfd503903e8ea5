package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/avc/engagement-storefront/internal/domain"
	"go.uber.org/zap"
)

// CatalogService хранит каталог услуг и обновляет цены по прайс-листу поставщика
type CatalogService struct {
	mu      sync.RWMutex
	base    *domain.Catalog
	current *domain.Catalog

	provider domain.ProviderClient
	cache    domain.RatesCache // может быть nil
	logger   *zap.Logger
}

// NewCatalogService создает CatalogService. До первого Refresh действуют цены base.
func NewCatalogService(base *domain.Catalog, provider domain.ProviderClient, cache domain.RatesCache, logger *zap.Logger) *CatalogService {
	return &CatalogService{
		base:     base,
		current:  base,
		provider: provider,
		cache:    cache,
		logger:   logger,
	}
}

// Catalog возвращает текущий каталог. Возвращаемое значение не изменяется.
func (s *CatalogService) Catalog() *domain.Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Refresh применяет прайс-лист поставщика к базовому каталогу.
// Прайс-лист берется из кеша, а при промахе запрашивается у поставщика и кешируется.
func (s *CatalogService) Refresh(ctx context.Context) error {
	rates, err := s.loadRates(ctx)
	if err != nil {
		return err
	}

	updated := s.base.WithProviderRates(rates)
	if err := updated.Validate(); err != nil {
		return fmt.Errorf("catalog service: provider rates rejected: %w", err)
	}

	s.mu.Lock()
	s.current = updated
	s.mu.Unlock()

	s.logger.Info("Catalog rates refreshed", zap.Int("provider_services", len(rates)))
	return nil
}

func (s *CatalogService) loadRates(ctx context.Context) ([]domain.ProviderService, error) {
	if s.cache != nil {
		rates, ok, err := s.cache.GetRates(ctx)
		if err != nil {
			s.logger.Warn("Failed to read cached provider rates", zap.Error(err))
		} else if ok {
			return rates, nil
		}
	}

	rates, err := s.provider.Services(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog service: failed to fetch provider services: %w", err)
	}

	if s.cache != nil {
		if err := s.cache.SetRates(ctx, rates); err != nil {
			s.logger.Warn("Failed to cache provider rates", zap.Error(err))
		}
	}

	return rates, nil
}
