package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus представляет статус заказа
type OrderStatus string

const (
	OrderStatusPendingPayment OrderStatus = "PENDING_PAYMENT"
	OrderStatusProcessing     OrderStatus = "PROCESSING"
	OrderStatusCompleted      OrderStatus = "COMPLETED"
	OrderStatusCancelled      OrderStatus = "CANCELLED"
	OrderStatusFailed         OrderStatus = "FAILED"
)

// SubmitState показывает, что известно об отправке заказа поставщику
type SubmitState string

const (
	// SubmitStateQueued - заказ зарезервирован, но поставщику не доставлен
	SubmitStateQueued SubmitState = "QUEUED"
	// SubmitStateDispatched - запрос отправлен, результат неизвестен
	SubmitStateDispatched   SubmitState = "DISPATCHED"
	SubmitStateAcknowledged SubmitState = "ACKNOWLEDGED"
	SubmitStateRejected     SubmitState = "REJECTED"
)

// DepositStatus представляет статус пополнения
type DepositStatus string

const (
	DepositStatusPending   DepositStatus = "PENDING"
	DepositStatusCompleted DepositStatus = "COMPLETED"
	DepositStatusRejected  DepositStatus = "REJECTED"
)

// DepositMethod - способ пополнения кошелька
type DepositMethod string

const (
	DepositMethodPayPal DepositMethod = "PAYPAL"
	DepositMethodGCash  DepositMethod = "GCASH"
)

// LedgerEntryType представляет тип операции по счету
type LedgerEntryType string

const (
	LedgerEntryDeposit    LedgerEntryType = "DEPOSIT"
	LedgerEntryBonus      LedgerEntryType = "BONUS"
	LedgerEntryOrderDebit LedgerEntryType = "ORDER_DEBIT"
	LedgerEntryRefund     LedgerEntryType = "REFUND"
	LedgerEntryAdjustment LedgerEntryType = "ADJUSTMENT"
)

// Account представляет аккаунт покупателя
type Account struct {
	ID           int64           `json:"id"`
	Email        string          `json:"email"`
	PasswordHash string          `json:"-"` // Не отправляем хеш в JSON
	Balance      decimal.Decimal `json:"balance"`
	IsAdmin      bool            `json:"is_admin"`
	CreatedAt    time.Time       `json:"created_at"`
}

// Order представляет заказ на продвижение
type Order struct {
	ID            string          `json:"order_id"`
	AccountID     int64           `json:"-"`
	ServiceID     string          `json:"service_id"`
	ServiceName   string          `json:"service_name"`
	Link          string          `json:"link"`
	Quantity      int             `json:"quantity"`
	Price         decimal.Decimal `json:"price"`
	Status        OrderStatus     `json:"status"`
	SubmitState   SubmitState     `json:"submit_state"`
	UpstreamRef   *string         `json:"upstream_ref,omitempty"` // Появляется после подтверждения поставщиком
	FailureReason string          `json:"failure_reason,omitempty"`
	NeedsReview   bool            `json:"needs_review,omitempty"`
	StartCount    *int            `json:"start_count,omitempty"`
	Remains       *int            `json:"remains,omitempty"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// Deposit представляет пополнение кошелька
type Deposit struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"-"`
	Amount      decimal.Decimal `json:"amount"`
	Bonus       decimal.Decimal `json:"bonus"`
	Method      DepositMethod   `json:"method"`
	Status      DepositStatus   `json:"status"`
	ExternalRef string          `json:"reference"`
	Note        string          `json:"note,omitempty"`
	CreatedAt   time.Time       `json:"created_at"`
	CompletedAt *time.Time      `json:"completed_at,omitempty"`
}

// LedgerEntry представляет одну операцию по счету
type LedgerEntry struct {
	ID           int64           `json:"id"`
	AccountID    int64           `json:"-"`
	Amount       decimal.Decimal `json:"amount"` // Отрицательная сумма для списаний
	Type         LedgerEntryType `json:"type"`
	OrderID      *string         `json:"order_id,omitempty"`
	DepositID    *int64          `json:"deposit_id,omitempty"`
	Note         string          `json:"note,omitempty"`
	BalanceAfter decimal.Decimal `json:"balance_after"`
	CreatedAt    time.Time       `json:"created_at"`
}

// EntryMeta описывает причину движения по счету
type EntryMeta struct {
	Type      LedgerEntryType
	OrderID   *string
	DepositID *int64
	Note      string
}

// Balance представляет баланс аккаунта
type Balance struct {
	Current   decimal.Decimal `json:"current"`
	Held      decimal.Decimal `json:"held"`      // Зарезервировано под неподтвержденные заказы
	Available decimal.Decimal `json:"available"` // Current - Held
}

// OrderFilter задает условия выборки заказов
type OrderFilter struct {
	AccountID   *int64
	Statuses    []OrderStatus
	NeedsReview *bool
	Limit       uint64
}

// DepositFilter задает условия выборки пополнений
type DepositFilter struct {
	AccountID *int64
	Status    DepositStatus
}

// ProviderUpdate - изменения заказа по данным поставщика
type ProviderUpdate struct {
	Status     OrderStatus
	StartCount *int
	Remains    *int
	Reason     string
	// Partial - поставщик завершил заказ, не выполнив Remains единиц
	Partial bool
}

// PlaceOrderRequest - запрос на оформление заказа
type PlaceOrderRequest struct {
	OrderID   string `json:"order_id" validate:"required,max=64,printascii"`
	ServiceID string `json:"service_id" validate:"required,max=32"`
	Link      string `json:"link" validate:"required,url,max=2048"`
	Quantity  int    `json:"quantity" validate:"required,gt=0"`
}

// PlaceOrderResult - результат оформления заказа
type PlaceOrderResult struct {
	Order    *Order `json:"order"`
	Replayed bool   `json:"replayed"` // Повторный запрос с тем же идентификатором
}

// SubmitRequest - заказ, отправляемый поставщику
type SubmitRequest struct {
	ServiceID string
	Link      string
	Quantity  int
	Token     string // Идемпотентный ключ (идентификатор заказа)
}

// ProviderStatus - статус заказа у поставщика
type ProviderStatus struct {
	Status     string
	Charge     decimal.Decimal
	StartCount *int
	Remains    *int
}

// ProviderService - услуга в прайс-листе поставщика
type ProviderService struct {
	ID   string          `json:"service"`
	Name string          `json:"name"`
	Rate decimal.Decimal `json:"rate"`
	Min  int             `json:"min"`
	Max  int             `json:"max"`
}

// GatewayCapture - результат списания в платежном шлюзе
type GatewayCapture struct {
	Status   string
	Amount   decimal.Decimal
	Currency string
}

// GCashInstructions - реквизиты для ручного пополнения через GCash
type GCashInstructions struct {
	Deposit         *Deposit        `json:"deposit"`
	RecipientName   string          `json:"recipient_name"`
	RecipientNumber string          `json:"recipient_number"`
	AmountPHP       decimal.Decimal `json:"amount_php"`
}
