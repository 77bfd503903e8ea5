package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// idempotencyKeyHeader подставляется как идентификатор заказа, если его нет в теле
const idempotencyKeyHeader = "Idempotency-Key"

const pendingMessage = "Your order is being processed. Check its status shortly."

type OrdersHandler struct {
	orderService domain.OrderService
	logger       *zap.Logger
}

func NewOrdersHandler(orderService domain.OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{
		orderService: orderService,
		logger:       logger,
	}
}

type orderResponse struct {
	Order    *domain.Order `json:"order"`
	Replayed bool          `json:"replayed,omitempty"`
	Message  string        `json:"message,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// PlaceOrder оформляет заказ.
// 201 - новый заказ, 200 - повтор, 202 - ожидает подтверждения поставщика.
func (h *OrdersHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var req domain.PlaceOrderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.OrderID) == "" {
		req.OrderID = strings.TrimSpace(r.Header.Get(idempotencyKeyHeader))
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusUnprocessableEntity, validationMessage(err))
		return
	}

	result, err := h.orderService.PlaceOrder(r.Context(), accountID, req)

	var rejected *domain.ProviderRejectedError
	switch {
	case err == nil:
		status := http.StatusCreated
		if result.Replayed {
			status = http.StatusOK
		}
		writeJSON(w, status, orderResponse{Order: result.Order, Replayed: result.Replayed})
	case errors.Is(err, domain.ErrPendingConfirmation) && result != nil:
		// Подробности сбоя поставщика остаются в логах, заказ доведет сверка
		h.logger.Info("order pending provider confirmation",
			zap.String("order_id", result.Order.ID),
			zap.Error(err),
		)
		writeJSON(w, http.StatusAccepted, orderResponse{
			Order:    result.Order,
			Replayed: result.Replayed,
			Message:  pendingMessage,
		})
	case errors.As(err, &rejected) && result != nil:
		writeJSON(w, http.StatusUnprocessableEntity, orderResponse{
			Order:    result.Order,
			Replayed: result.Replayed,
			Error:    rejected.Error(),
		})
	default:
		handleError(w, h.logger, err, "failed to place order")
	}
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	orders, err := h.orderService.ListOrders(r.Context(), accountID)
	if err != nil {
		handleError(w, h.logger, err, "failed to list orders")
		return
	}

	if len(orders) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// GetOrder возвращает заказ; ?refresh=true запрашивает статус у поставщика
func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	refresh, _ := strconv.ParseBool(r.URL.Query().Get("refresh"))

	order, err := h.orderService.GetOrder(r.Context(), accountID, chi.URLParam(r, "orderID"), refresh)
	if err != nil {
		handleError(w, h.logger, err, "failed to get order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *OrdersHandler) CancelOrder(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	order, err := h.orderService.CancelOrder(r.Context(), accountID, chi.URLParam(r, "orderID"))
	if err != nil {
		handleError(w, h.logger, err, "failed to cancel order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}
