package handlers

import (
	"net/http"
	"strconv"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type DepositsHandler struct {
	depositService domain.DepositService
	logger         *zap.Logger
}

func NewDepositsHandler(depositService domain.DepositService, logger *zap.Logger) *DepositsHandler {
	return &DepositsHandler{
		depositService: depositService,
		logger:         logger,
	}
}

type amountRequest struct {
	Amount decimal.Decimal `json:"amount"`
}

// CreatePayPal создает заказ PayPal; reference передается в PayPal checkout
func (h *DepositsHandler) CreatePayPal(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var req amountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	deposit, err := h.depositService.CreatePayPalDeposit(r.Context(), accountID, req.Amount)
	if err != nil {
		handleError(w, h.logger, err, "failed to create paypal deposit")
		return
	}

	writeJSON(w, http.StatusCreated, deposit)
}

// CapturePayPal завершает одобренный покупателем платеж
func (h *DepositsHandler) CapturePayPal(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	deposit, err := h.depositService.CapturePayPalDeposit(r.Context(), accountID, chi.URLParam(r, "ref"))
	if err != nil {
		handleError(w, h.logger, err, "failed to capture paypal deposit")
		return
	}

	writeJSON(w, http.StatusOK, deposit)
}

func (h *DepositsHandler) CreateGCash(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	var req amountRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	instructions, err := h.depositService.CreateGCashDeposit(r.Context(), accountID, req.Amount)
	if err != nil {
		handleError(w, h.logger, err, "failed to create gcash deposit")
		return
	}

	writeJSON(w, http.StatusCreated, instructions)
}

func (h *DepositsHandler) ListDeposits(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	deposits, err := h.depositService.ListDeposits(r.Context(), accountID)
	if err != nil {
		handleError(w, h.logger, err, "failed to list deposits")
		return
	}

	if len(deposits) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, deposits)
}

// QRCode отдает PNG с реквизитами перевода GCash
func (h *DepositsHandler) QRCode(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	depositID, err := strconv.ParseInt(chi.URLParam(r, "depositID"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid deposit id")
		return
	}

	png, err := h.depositService.GCashQRCode(r.Context(), accountID, depositID)
	if err != nil {
		handleError(w, h.logger, err, "failed to render qr code")
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "private, max-age=300")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(png); err != nil {
		h.logger.Debug("failed to write qr code", zap.Error(err))
	}
}
