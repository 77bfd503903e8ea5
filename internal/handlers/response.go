package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

const maxRequestBody = 1 << 20

var validate = validator.New()

// errorStatusMap сопоставляет ошибки сервисов с HTTP статусами.
// Проверяется по порядку через errors.Is, поэтому обернутые ошибки тоже находятся.
var errorStatusMap = []struct {
	err    error
	status int
}{
	{domain.ErrInvalidCredentials, http.StatusUnauthorized},
	{domain.ErrForbidden, http.StatusForbidden},
	{domain.ErrAccountExists, http.StatusConflict},

	{domain.ErrInvalidInput, http.StatusBadRequest},
	{domain.ErrInvalidAmount, http.StatusUnprocessableEntity},
	{domain.ErrInsufficientFunds, http.StatusPaymentRequired},
	{domain.ErrProviderRejected, http.StatusUnprocessableEntity},
	{domain.ErrUnknownService, http.StatusServiceUnavailable},

	{domain.ErrOrderOwnedByAnother, http.StatusConflict},
	{domain.ErrOrderNotCancellable, http.StatusConflict},
	{domain.ErrOrderCancelled, http.StatusConflict},
	{domain.ErrInvalidTransition, http.StatusConflict},
	{domain.ErrUpstreamRefConflict, http.StatusConflict},
	{domain.ErrDepositFinalized, http.StatusConflict},
	{domain.ErrDuplicateDeposit, http.StatusConflict},
	{domain.ErrPaymentNotCompleted, http.StatusUnprocessableEntity},
	{domain.ErrGatewayUnavailable, http.StatusServiceUnavailable},

	{domain.ErrOrderNotFound, http.StatusNotFound},
	{domain.ErrAccountNotFound, http.StatusNotFound},
	{domain.ErrDepositNotFound, http.StatusNotFound},
}

type errorResponse struct {
	Error string `json:"error"`
}

// statusFor возвращает HTTP статус для известной ошибки
func statusFor(err error) (int, bool) {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.err) {
			return m.status, true
		}
	}
	return 0, false
}

// handleError отвечает статусом ошибки. Неизвестные ошибки логируются, клиент получает 500.
func handleError(w http.ResponseWriter, logger *zap.Logger, err error, msg string) {
	status, ok := statusFor(err)
	if !ok {
		logger.Error(msg, zap.Error(err))
		writeError(w, http.StatusInternalServerError, http.StatusText(http.StatusInternalServerError))
		return
	}

	if status >= http.StatusInternalServerError {
		logger.Warn(msg, zap.Error(err))
		writeError(w, status, http.StatusText(status))
		return
	}

	writeError(w, status, err.Error())
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	// Заголовок уже отправлен, ошибку кодирования вернуть клиенту нельзя
	_ = json.NewEncoder(w).Encode(data)
}

// decodeJSON читает JSON тело запроса с ограничением размера
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBody))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: malformed request body", domain.ErrInvalidInput)
	}
	return nil
}

// validationMessage перечисляет поля, не прошедшие проверку
func validationMessage(err error) string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err.Error()
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s: failed on %q", fe.Field(), fe.Tag()))
	}
	return "invalid input: " + strings.Join(fields, ", ")
}
