package app

import (
	"context"
	"fmt"
	"net/http"

	"github.com/avc/engagement-storefront/internal/config"
	"github.com/avc/engagement-storefront/internal/worker"
	"go.uber.org/zap"
)

// App представляет приложение
type App struct {
	config     *config.Config
	logger     *zap.Logger
	storage    *storage
	rates      *ratesCache
	workerPool *worker.Pool
	server     *http.Server
}

// NewApp создает новое приложение
func NewApp() (*App, error) {
	ctx := context.Background()

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Инициализация логгера
	logger, err := initLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	// Каталог услуг
	catalog, err := config.LoadCatalog(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("service catalog loaded", zap.Int("services", len(catalog.Services)))

	// Инициализация хранилища
	store, err := initStorage(ctx, cfg.DatabaseURI, logger)
	if err != nil {
		return nil, err
	}

	rates := initRatesCache(ctx, cfg, logger)

	// Инициализация зависимостей
	deps := initDependencies(cfg, catalog, store, rates, logger)

	// Настройка роутера
	router := setupRouter(deps, cfg.CORSOrigins, logger)

	// Создание HTTP сервера
	server := createServer(cfg.RunAddress, router)

	return &App{
		config:     cfg,
		logger:     logger,
		storage:    store,
		rates:      rates,
		workerPool: deps.workerPool,
		server:     server,
	}, nil
}

// Run запускает приложение
func (a *App) Run() error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Запуск worker pool
	a.workerPool.Start(ctx)
	a.logger.Info("worker pool started")

	// Запуск HTTP сервера и ожидание сигнала завершения
	err := a.runServer(ctx)
	if err != nil {
		a.logger.Error("HTTP server failed", zap.Error(err))
	}

	// Graceful shutdown
	a.shutdown(cancel)

	return err
}
