package app

import (
	"context"
	"fmt"

	"github.com/avc/engagement-storefront/internal/config"
	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/avc/engagement-storefront/internal/handlers"
	"github.com/avc/engagement-storefront/internal/repository/memory"
	"github.com/avc/engagement-storefront/internal/repository/postgres"
	"github.com/avc/engagement-storefront/internal/repository/rediscache"
	"go.uber.org/zap"
)

// storage содержит репозитории и проверки их доступности
type storage struct {
	accounts domain.AccountRepository
	ledger   domain.LedgerRepository
	orders   domain.OrderRepository
	deposits domain.DepositRepository
	checks   []handlers.HealthCheck
	close    func()
}

// initStorage подключает PostgreSQL и применяет миграции.
// Без DATABASE_URI данные хранятся в памяти процесса.
func initStorage(ctx context.Context, databaseURI string, logger *zap.Logger) (*storage, error) {
	if databaseURI == "" {
		logger.Warn("DATABASE_URI is not set, using in-memory storage")
		store := memory.NewStore()
		return &storage{
			accounts: store,
			ledger:   store,
			orders:   store,
			deposits: store,
			close:    func() {},
		}, nil
	}

	dbPool, err := postgres.NewPool(ctx, databaseURI)
	if err != nil {
		return nil, err
	}
	logger.Info("connected to database")

	if err := postgres.RunMigrations(databaseURI, logger); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	logger.Info("migrations completed successfully")

	return &storage{
		accounts: postgres.NewAccountRepository(dbPool),
		ledger:   postgres.NewLedgerRepository(dbPool),
		orders:   postgres.NewOrderRepository(dbPool),
		deposits: postgres.NewDepositRepository(dbPool),
		checks:   []handlers.HealthCheck{{Name: "database", Ping: dbPool.Ping}},
		close: func() {
			dbPool.Close()
			logger.Info("database connection closed")
		},
	}, nil
}

// ratesCache содержит кэш прайс-листа, если Redis настроен
type ratesCache struct {
	cache domain.RatesCache
	check *handlers.HealthCheck
	close func()
}

// initRatesCache подключает Redis. Недоступный Redis не мешает запуску, цены берутся у поставщика.
func initRatesCache(ctx context.Context, cfg *config.Config, logger *zap.Logger) *ratesCache {
	if cfg.Redis.Address == "" {
		return &ratesCache{close: func() {}}
	}

	client, err := rediscache.NewClient(ctx, cfg.Redis.Address, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Warn("rates cache disabled", zap.String("address", cfg.Redis.Address), zap.Error(err))
		return &ratesCache{close: func() {}}
	}
	logger.Info("connected to redis", zap.String("address", cfg.Redis.Address))

	return &ratesCache{
		cache: rediscache.NewRatesCache(client, cfg.Provider.RatesCacheTTL),
		check: &handlers.HealthCheck{
			Name: "redis",
			Ping: func(ctx context.Context) error { return client.Ping(ctx).Err() },
		},
		close: func() {
			if err := client.Close(); err != nil {
				logger.Warn("failed to close redis client", zap.Error(err))
			}
		},
	}
}
