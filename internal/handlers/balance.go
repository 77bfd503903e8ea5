package handlers

import (
	"net/http"

	"github.com/avc/engagement-storefront/internal/domain"
	"go.uber.org/zap"
)

type BalanceHandler struct {
	balanceService domain.BalanceService
	logger         *zap.Logger
}

func NewBalanceHandler(balanceService domain.BalanceService, logger *zap.Logger) *BalanceHandler {
	return &BalanceHandler{
		balanceService: balanceService,
		logger:         logger,
	}
}

func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	balance, err := h.balanceService.GetBalance(r.Context(), accountID)
	if err != nil {
		handleError(w, h.logger, err, "failed to get balance")
		return
	}

	writeJSON(w, http.StatusOK, balance)
}

// GetLedger возвращает историю операций по счету
func (h *BalanceHandler) GetLedger(w http.ResponseWriter, r *http.Request) {
	accountID, ok := GetAccountID(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized))
		return
	}

	entries, err := h.balanceService.ListEntries(r.Context(), accountID)
	if err != nil {
		handleError(w, h.logger, err, "failed to get ledger entries")
		return
	}

	if len(entries) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	writeJSON(w, http.StatusOK, entries)
}
