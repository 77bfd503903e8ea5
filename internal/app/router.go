package app

import (
	"net/http"

	"github.com/avc/engagement-storefront/internal/handlers"
	"github.com/avc/engagement-storefront/internal/utils/jwt"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, corsOrigins []string, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, corsOrigins, logger)

	// Маршруты
	setupRoutes(r, deps.handlers, deps.jwtManager)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, corsOrigins []string, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   corsOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Idempotency-Key", "X-Request-ID"},
		ExposedHeaders:   []string{"Authorization", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, h *handlerSet, jwtManager *jwt.Manager) {
	// Health check эндпоинты
	r.Get("/health", h.health.Health)
	r.Get("/ready", h.health.Ready)

	// Публичные эндпоинты
	r.Post("/api/user/register", h.auth.Register)
	r.Post("/api/user/login", h.auth.Login)
	r.Get("/api/services", h.catalog.ListServices)

	// Защищенные эндпоинты
	r.Group(func(r chi.Router) {
		r.Use(handlers.AuthMiddleware(jwtManager))

		r.Route("/api/orders", func(r chi.Router) {
			r.Post("/", h.orders.PlaceOrder)
			r.Get("/", h.orders.ListOrders)
			r.Get("/{orderID}", h.orders.GetOrder)
			r.Post("/{orderID}/cancel", h.orders.CancelOrder)
		})

		r.Get("/api/user/balance", h.balance.GetBalance)
		r.Get("/api/user/ledger", h.balance.GetLedger)

		r.Route("/api/deposits", func(r chi.Router) {
			r.Get("/", h.deposits.ListDeposits)
			r.Post("/paypal", h.deposits.CreatePayPal)
			r.Post("/paypal/{ref}/capture", h.deposits.CapturePayPal)
			r.Post("/gcash", h.deposits.CreateGCash)
			r.Get("/{depositID}/qr", h.deposits.QRCode)
		})

		// Администрирование
		r.Route("/api/admin", func(r chi.Router) {
			r.Use(handlers.RequireAdmin)

			r.Get("/orders", h.admin.ListOrders)
			r.Post("/orders/{orderID}/confirm", h.admin.ConfirmOrder)
			r.Post("/orders/{orderID}/abandon", h.admin.AbandonOrder)
			r.Post("/orders/{orderID}/reconcile", h.admin.ReconcileOrder)

			r.Get("/accounts", h.admin.ListAccounts)
			r.Post("/accounts/{accountID}/credit", h.admin.CreditAccount)
			r.Post("/accounts/{accountID}/debit", h.admin.DebitAccount)

			r.Get("/deposits", h.admin.ListDeposits)
			r.Post("/deposits/{depositID}/approve", h.admin.ApproveDeposit)
			r.Post("/deposits/{depositID}/reject", h.admin.RejectDeposit)

			r.Post("/catalog/refresh", h.admin.RefreshCatalog)
		})
	})
}
