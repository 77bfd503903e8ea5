package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const healthCheckTimeout = 2 * time.Second

// HealthCheck проверяет одну внешнюю зависимость
type HealthCheck struct {
	Name string
	Ping func(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	checks []HealthCheck
	logger *zap.Logger
}

// NewHealthHandler создает новый HealthHandler
func NewHealthHandler(logger *zap.Logger, checks ...HealthCheck) *HealthHandler {
	return &HealthHandler{
		checks: checks,
		logger: logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

func (h *HealthHandler) run(ctx context.Context) HealthResponse {
	response := HealthResponse{Status: "ok"}
	if len(h.checks) == 0 {
		return response
	}

	ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
	defer cancel()

	response.Checks = make(map[string]string, len(h.checks))
	for _, check := range h.checks {
		if err := check.Ping(ctx); err != nil {
			response.Status = "degraded"
			response.Checks[check.Name] = "unavailable"
			h.logger.Warn("health check failed", zap.String("check", check.Name), zap.Error(err))
			continue
		}
		response.Checks[check.Name] = "ok"
	}
	return response
}

// Health возвращает статус приложения и его зависимостей
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := h.run(r.Context())

	status := http.StatusOK
	if response.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	writeJSON(w, status, response)
}

// Ready возвращает готовность приложения принимать трафик
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	if response := h.run(r.Context()); response.Status != "ok" {
		http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
