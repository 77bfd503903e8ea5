package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AdminHandler обслуживает ручную сверку заказов, счетов и пополнений
type AdminHandler struct {
	orderService   domain.OrderAdminService
	balanceService domain.BalanceService
	depositService domain.DepositAdminService
	catalogService domain.CatalogService
	logger         *zap.Logger
}

func NewAdminHandler(
	orderService domain.OrderAdminService,
	balanceService domain.BalanceService,
	depositService domain.DepositAdminService,
	catalogService domain.CatalogService,
	logger *zap.Logger,
) *AdminHandler {
	return &AdminHandler{
		orderService:   orderService,
		balanceService: balanceService,
		depositService: depositService,
		catalogService: catalogService,
		logger:         logger,
	}
}

type confirmRequest struct {
	UpstreamRef string `json:"upstream_ref" validate:"required,max=64"`
}

type reasonRequest struct {
	Reason string `json:"reason" validate:"max=500"`
}

type adjustRequest struct {
	Amount decimal.Decimal `json:"amount"`
	Note   string          `json:"note" validate:"max=500"`
}

type adjustResponse struct {
	AccountID int64           `json:"account_id"`
	Balance   decimal.Decimal `json:"balance"`
}

// ListOrders возвращает заказы по фильтру ?status=A,B&needs_review=true&limit=N
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var filter domain.OrderFilter
	if statuses := query.Get("status"); statuses != "" {
		for _, s := range strings.Split(statuses, ",") {
			filter.Statuses = append(filter.Statuses, domain.OrderStatus(strings.ToUpper(strings.TrimSpace(s))))
		}
	}
	if v := query.Get("needs_review"); v != "" {
		needsReview, err := strconv.ParseBool(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid needs_review")
			return
		}
		filter.NeedsReview = &needsReview
	}
	if v := query.Get("limit"); v != "" {
		limit, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid limit")
			return
		}
		filter.Limit = limit
	}

	orders, err := h.orderService.ListAllOrders(r.Context(), filter)
	if err != nil {
		handleError(w, h.logger, err, "failed to list orders")
		return
	}

	writeJSON(w, http.StatusOK, orders)
}

// ConfirmOrder записывает номер заказа у поставщика, найденный вручную
func (h *AdminHandler) ConfirmOrder(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	order, err := h.orderService.ConfirmOrder(r.Context(), chi.URLParam(r, "orderID"), req.UpstreamRef)
	if err != nil {
		handleError(w, h.logger, err, "failed to confirm order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

// AbandonOrder отменяет заказ, который поставщик так и не принял
func (h *AdminHandler) AbandonOrder(w http.ResponseWriter, r *http.Request) {
	var req reasonRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	order, err := h.orderService.AbandonOrder(r.Context(), chi.URLParam(r, "orderID"), req.Reason)
	if err != nil {
		handleError(w, h.logger, err, "failed to abandon order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *AdminHandler) ReconcileOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orderService.ReconcileOrder(r.Context(), chi.URLParam(r, "orderID"))
	if err != nil {
		handleError(w, h.logger, err, "failed to reconcile order")
		return
	}

	writeJSON(w, http.StatusOK, order)
}

func (h *AdminHandler) ListAccounts(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.balanceService.ListAccounts(r.Context())
	if err != nil {
		handleError(w, h.logger, err, "failed to list accounts")
		return
	}

	writeJSON(w, http.StatusOK, accounts)
}

// CreditAccount зачисляет сумму на счет
func (h *AdminHandler) CreditAccount(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, false)
}

// DebitAccount списывает сумму со счета
func (h *AdminHandler) DebitAccount(w http.ResponseWriter, r *http.Request) {
	h.adjust(w, r, true)
}

func (h *AdminHandler) adjust(w http.ResponseWriter, r *http.Request, debit bool) {
	accountID, err := strconv.ParseInt(chi.URLParam(r, "accountID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid account id")
		return
	}

	var req adjustRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}
	if !req.Amount.IsPositive() {
		writeError(w, http.StatusUnprocessableEntity, "amount must be positive")
		return
	}

	amount := req.Amount
	if debit {
		amount = amount.Neg()
	}

	balance, err := h.balanceService.Adjust(r.Context(), accountID, amount, req.Note)
	if err != nil {
		handleError(w, h.logger, err, "failed to adjust balance")
		return
	}

	h.logger.Info("Balance adjusted by administrator",
		zap.Int64("account_id", accountID),
		zap.String("amount", amount.StringFixed(2)),
	)
	writeJSON(w, http.StatusOK, adjustResponse{AccountID: accountID, Balance: balance})
}

// ListDeposits возвращает пополнения всех аккаунтов, ?status= фильтрует по статусу
func (h *AdminHandler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	filter := domain.DepositFilter{
		Status: domain.DepositStatus(strings.ToUpper(r.URL.Query().Get("status"))),
	}

	deposits, err := h.depositService.ListAllDeposits(r.Context(), filter)
	if err != nil {
		handleError(w, h.logger, err, "failed to list deposits")
		return
	}

	writeJSON(w, http.StatusOK, deposits)
}

func (h *AdminHandler) ApproveDeposit(w http.ResponseWriter, r *http.Request) {
	depositID, err := strconv.ParseInt(chi.URLParam(r, "depositID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deposit id")
		return
	}

	deposit, err := h.depositService.ApproveDeposit(r.Context(), depositID)
	if err != nil {
		handleError(w, h.logger, err, "failed to approve deposit")
		return
	}

	writeJSON(w, http.StatusOK, deposit)
}

func (h *AdminHandler) RejectDeposit(w http.ResponseWriter, r *http.Request) {
	depositID, err := strconv.ParseInt(chi.URLParam(r, "depositID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deposit id")
		return
	}

	var req reasonRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, validationMessage(err))
		return
	}

	deposit, err := h.depositService.RejectDeposit(r.Context(), depositID, req.Reason)
	if err != nil {
		handleError(w, h.logger, err, "failed to reject deposit")
		return
	}

	writeJSON(w, http.StatusOK, deposit)
}

// RefreshCatalog подтягивает актуальные цены поставщика
func (h *AdminHandler) RefreshCatalog(w http.ResponseWriter, r *http.Request) {
	if err := h.catalogService.Refresh(r.Context()); err != nil {
		h.logger.Warn("failed to refresh catalog", zap.Error(err))
		writeError(w, http.StatusBadGateway, "failed to refresh catalog rates")
		return
	}

	writeJSON(w, http.StatusOK, newCatalogResponse(h.catalogService.Catalog()))
}
