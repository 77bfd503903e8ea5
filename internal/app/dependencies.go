package app

import (
	"context"
	"fmt"
	"time"

	"github.com/avc/engagement-storefront/internal/config"
	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/avc/engagement-storefront/internal/handlers"
	"github.com/avc/engagement-storefront/internal/service"
	"github.com/avc/engagement-storefront/internal/utils/jwt"
	"github.com/avc/engagement-storefront/internal/utils/password"
	"github.com/avc/engagement-storefront/internal/worker"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	providerPollRetries = 3
	paypalTimeout       = 15 * time.Second
	paypalRetries       = 2
	paypalRetryWait     = 500 * time.Millisecond
)

// services содержит все сервисы приложения
type services struct {
	auth    *service.AuthService
	order   *service.OrderService
	balance *service.BalanceService
	deposit *service.DepositService
	catalog *service.CatalogService
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	auth     *handlers.AuthHandler
	orders   *handlers.OrdersHandler
	balance  *handlers.BalanceHandler
	deposits *handlers.DepositsHandler
	admin    *handlers.AdminHandler
	catalog  *handlers.CatalogHandler
	health   *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	services   *services
	handlers   *handlerSet
	jwtManager *jwt.Manager
	workerPool *worker.Pool
}

// paypalDisabled отвечает на пополнения PayPal, когда ключи не настроены
type paypalDisabled struct{}

func (paypalDisabled) CreateOrder(context.Context, decimal.Decimal, string, string) (string, error) {
	return "", fmt.Errorf("%w: paypal is not configured", domain.ErrGatewayUnavailable)
}

func (paypalDisabled) CaptureOrder(context.Context, string) (*domain.GatewayCapture, error) {
	return nil, fmt.Errorf("%w: paypal is not configured", domain.ErrGatewayUnavailable)
}

// initDependencies создает все зависимости приложения
func initDependencies(
	cfg *config.Config,
	catalog *domain.Catalog,
	store *storage,
	rates *ratesCache,
	logger *zap.Logger,
) *dependencies {
	// Создание утилит
	passwordHasher := password.NewBCryptHasher(0, cfg.MinPasswordLength)
	jwtManager := jwt.NewManager(cfg.JWTSecret, cfg.JWTTokenTTL)

	// Клиенты внешних систем
	provider := service.NewSMMProviderClient(service.ProviderOptions{
		BaseURL:     cfg.Provider.URL,
		APIKey:      cfg.Provider.APIKey,
		PollTimeout: cfg.Provider.PollTimeout,
		PollRetries: providerPollRetries,
		RetryWait:   cfg.Provider.RetryBackoff,
	}, logger)

	var gateway domain.PaymentGateway = paypalDisabled{}
	if cfg.PayPal.ClientID != "" {
		gateway = service.NewPayPalClient(service.PayPalOptions{
			BaseURL:      cfg.PayPal.BaseURL,
			ClientID:     cfg.PayPal.ClientID,
			ClientSecret: cfg.PayPal.ClientSecret,
			Timeout:      paypalTimeout,
			Retries:      paypalRetries,
			RetryWait:    paypalRetryWait,
		}, logger)
	} else {
		logger.Warn("PAYPAL_CLIENT_ID is not set, PayPal deposits are disabled")
	}

	// Создание сервисов
	catalogService := service.NewCatalogService(catalog, provider, rates.cache, logger)
	svcs := &services{
		auth:    service.NewAuthService(store.accounts, passwordHasher, jwtManager, cfg.IsAdmin),
		balance: service.NewBalanceService(store.ledger, store.accounts),
		catalog: catalogService,
		order: service.NewOrderService(store.orders, catalogService, provider, service.OrderOptions{
			SubmitTimeout: cfg.Provider.SubmitTimeout,
			SubmitRetries: cfg.Provider.SubmitRetries,
			RetryBackoff:  cfg.Provider.RetryBackoff,
		}, logger),
		deposit: service.NewDepositService(store.deposits, gateway, service.DepositOptions{
			Currency:             cfg.PayPal.Currency,
			BonusRate:            cfg.Deposit.BonusRate,
			MinAmount:            cfg.Deposit.MinAmount,
			MaxAmount:            cfg.Deposit.MaxAmount,
			GCashRecipientName:   cfg.GCash.RecipientName,
			GCashRecipientNumber: cfg.GCash.RecipientNumber,
			GCashExchangeRate:    cfg.GCash.ExchangeRate,
		}, logger),
	}

	checks := append([]handlers.HealthCheck{}, store.checks...)
	if rates.check != nil {
		checks = append(checks, *rates.check)
	}

	// Создание handlers
	hdlrs := &handlerSet{
		auth:     handlers.NewAuthHandler(svcs.auth, logger),
		orders:   handlers.NewOrdersHandler(svcs.order, logger),
		balance:  handlers.NewBalanceHandler(svcs.balance, logger),
		deposits: handlers.NewDepositsHandler(svcs.deposit, logger),
		admin:    handlers.NewAdminHandler(svcs.order, svcs.balance, svcs.deposit, svcs.catalog, logger),
		catalog:  handlers.NewCatalogHandler(svcs.catalog, logger),
		health:   handlers.NewHealthHandler(logger, checks...),
	}

	// Создание worker pool
	workerPool := worker.NewPool(worker.Options{
		Workers:             cfg.Worker.PoolSize,
		QueueSize:           cfg.Worker.QueueSize,
		ScanInterval:        cfg.Worker.ScanInterval,
		Grace:               cfg.Worker.ReconcileGrace,
		BatchSize:           cfg.Worker.BatchSize,
		RateRefreshInterval: cfg.Worker.RateRefreshInterval,
	}, store.orders, svcs.order, svcs.catalog, logger)

	return &dependencies{
		services:   svcs,
		handlers:   hdlrs,
		jwtManager: jwtManager,
		workerPool: workerPool,
	}
}
