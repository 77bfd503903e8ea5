package domain

import (
	"errors"
	"fmt"
	"time"
)

// Ошибки аккаунтов
var (
	ErrAccountExists      = errors.New("account already exists")
	ErrAccountNotFound    = errors.New("account not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrForbidden          = errors.New("forbidden")
)

// Ошибки заказов
var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnknownService      = errors.New("unknown service")
	ErrDuplicateOrderID    = errors.New("order id already exists")
	ErrOrderOwnedByAnother = errors.New("order owned by another account")
	ErrOrderNotFound       = errors.New("order not found")
	ErrInvalidTransition   = errors.New("invalid order status transition")
	ErrUpstreamRefConflict = errors.New("upstream reference already set")
	ErrOrderNotCancellable = errors.New("order cannot be cancelled")
	ErrOrderCancelled      = errors.New("order was cancelled")
	ErrPendingConfirmation = errors.New("order is pending provider confirmation")
)

// Ошибки поставщика
var (
	ErrProviderRejected    = errors.New("provider rejected order")
	ErrProviderUnreachable = errors.New("provider unreachable")
	ErrProviderTimeout     = errors.New("provider timeout")
	ErrProviderAmbiguous   = errors.New("provider response lost")
)

// Ошибки баланса и пополнений
var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInvalidAmount       = errors.New("invalid amount")
	ErrDepositNotFound     = errors.New("deposit not found")
	ErrDuplicateDeposit    = errors.New("deposit reference already exists")
	ErrDepositFinalized    = errors.New("deposit already finalized")
	ErrPaymentNotCompleted = errors.New("payment not completed")
	ErrGatewayUnavailable  = errors.New("payment gateway unavailable")
)

// ProviderRejectedError - окончательный отказ поставщика с причиной
type ProviderRejectedError struct {
	Reason string
}

func (e *ProviderRejectedError) Error() string {
	return fmt.Sprintf("provider rejected order: %s", e.Reason)
}

// Is позволяет сравнивать с ErrProviderRejected через errors.Is
func (e *ProviderRejectedError) Is(target error) bool {
	return target == ErrProviderRejected
}

// RateLimitError представляет ошибку превышения лимита запросов
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// NewRateLimitError создает новую ошибку rate limit
func NewRateLimitError(retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter}
}

// IsAmbiguous сообщает, что поставщик мог принять заказ, но ответ потерян
func IsAmbiguous(err error) bool {
	return errors.Is(err, ErrProviderTimeout) || errors.Is(err, ErrProviderAmbiguous)
}
