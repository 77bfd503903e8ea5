package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// AccountRepository определяет методы для работы с аккаунтами
type AccountRepository interface {
	CreateAccount(ctx context.Context, email, passwordHash string, isAdmin bool) (*Account, error)
	GetAccountByEmail(ctx context.Context, email string) (*Account, error)
	GetAccountByID(ctx context.Context, id int64) (*Account, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
}

// LedgerRepository изменяет баланс аккаунта.
// Операции по одному аккаунту сериализуются, списание никогда не применяется частично.
type LedgerRepository interface {
	Credit(ctx context.Context, accountID int64, amount decimal.Decimal, meta EntryMeta) (decimal.Decimal, error)
	Debit(ctx context.Context, accountID int64, amount decimal.Decimal, meta EntryMeta) (decimal.Decimal, error)
	GetBalance(ctx context.Context, accountID int64) (*Balance, error)
	ListEntries(ctx context.Context, accountID int64) ([]*LedgerEntry, error)
}

// OrderRepository хранит заказы и переводит их между статусами вместе с резервом средств
type OrderRepository interface {
	CreateOrder(ctx context.Context, order *Order) (*Order, error)
	GetOrder(ctx context.Context, orderID string) (*Order, error)
	ListOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	SetStatus(ctx context.Context, orderID string, status OrderStatus) error
	SetUpstreamRef(ctx context.Context, orderID, ref string) error
	// SetSubmitState меняет состояние отправки, только если текущее равно from
	SetSubmitState(ctx context.Context, orderID string, from, to SubmitState) (bool, error)

	// ReserveOrder создает заказ PENDING_PAYMENT, если доступных средств хватает на его цену
	ReserveOrder(ctx context.Context, order *Order) (*Order, error)
	// ConfirmOrder списывает резерв и переводит заказ в PROCESSING одной транзакцией
	ConfirmOrder(ctx context.Context, orderID, upstreamRef string) (*Order, error)
	// ReleaseOrder снимает резерв без движения по счету (FAILED или CANCELLED)
	ReleaseOrder(ctx context.Context, orderID string, status OrderStatus, reason string) (*Order, error)
	// ApplyProviderUpdate применяет статус поставщика к заказу в PROCESSING.
	// Переход в FAILED возвращает цену на счет той же транзакцией.
	ApplyProviderUpdate(ctx context.Context, orderID string, update ProviderUpdate) (*Order, error)
	FlagForReview(ctx context.Context, orderID, reason string) error
	ListReconcilable(ctx context.Context, olderThan time.Time, limit uint64) ([]*Order, error)
}

// DepositRepository определяет методы для работы с пополнениями
type DepositRepository interface {
	CreateDeposit(ctx context.Context, deposit *Deposit) (*Deposit, error)
	GetDeposit(ctx context.Context, id int64) (*Deposit, error)
	GetDepositByRef(ctx context.Context, method DepositMethod, ref string) (*Deposit, error)
	ListDeposits(ctx context.Context, filter DepositFilter) ([]*Deposit, error)
	// CompleteDeposit зачисляет сумму и бонус за первое пополнение.
	// Повторное завершение ничего не меняет и возвращает false.
	CompleteDeposit(ctx context.Context, id int64, bonusRate decimal.Decimal) (*Deposit, bool, error)
	RejectDeposit(ctx context.Context, id int64, reason string) (*Deposit, error)
}

// ProviderClient определяет методы взаимодействия с SMM поставщиком
type ProviderClient interface {
	Submit(ctx context.Context, req SubmitRequest) (string, error)
	Status(ctx context.Context, ref string) (*ProviderStatus, error)
	Services(ctx context.Context) ([]ProviderService, error)
}

// TokenLookup реализуют поставщики, умеющие искать заказ по идемпотентному ключу
type TokenLookup interface {
	FindByToken(ctx context.Context, token string) (ref string, found bool, err error)
}

// PaymentGateway определяет методы платежного шлюза
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amount decimal.Decimal, currency, requestID string) (string, error)
	CaptureOrder(ctx context.Context, orderRef string) (*GatewayCapture, error)
}

// RatesCache хранит прайс-лист поставщика
type RatesCache interface {
	GetRates(ctx context.Context) ([]ProviderService, bool, error)
	SetRates(ctx context.Context, rates []ProviderService) error
}

// AuthService определяет методы аутентификации
type AuthService interface {
	Register(ctx context.Context, email, password string) (string, error)
	Login(ctx context.Context, email, password string) (string, error)
}

// OrderService определяет методы работы с заказами
type OrderService interface {
	PlaceOrder(ctx context.Context, accountID int64, req PlaceOrderRequest) (*PlaceOrderResult, error)
	GetOrder(ctx context.Context, accountID int64, orderID string, refresh bool) (*Order, error)
	ListOrders(ctx context.Context, accountID int64) ([]*Order, error)
	CancelOrder(ctx context.Context, accountID int64, orderID string) (*Order, error)
}

// OrderAdminService определяет ручную сверку заказов
type OrderAdminService interface {
	ListAllOrders(ctx context.Context, filter OrderFilter) ([]*Order, error)
	ConfirmOrder(ctx context.Context, orderID, upstreamRef string) (*Order, error)
	AbandonOrder(ctx context.Context, orderID, reason string) (*Order, error)
	ReconcileOrder(ctx context.Context, orderID string) (*Order, error)
}

// BalanceService определяет методы работы с балансом
type BalanceService interface {
	GetBalance(ctx context.Context, accountID int64) (*Balance, error)
	ListEntries(ctx context.Context, accountID int64) ([]*LedgerEntry, error)
	ListAccounts(ctx context.Context) ([]*Account, error)
	Adjust(ctx context.Context, accountID int64, amount decimal.Decimal, note string) (decimal.Decimal, error)
}

// DepositService определяет методы пополнения кошелька
type DepositService interface {
	CreatePayPalDeposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*Deposit, error)
	CapturePayPalDeposit(ctx context.Context, accountID int64, ref string) (*Deposit, error)
	CreateGCashDeposit(ctx context.Context, accountID int64, amount decimal.Decimal) (*GCashInstructions, error)
	GCashQRCode(ctx context.Context, accountID, depositID int64) ([]byte, error)
	ListDeposits(ctx context.Context, accountID int64) ([]*Deposit, error)
}

// DepositAdminService определяет ручное подтверждение пополнений
type DepositAdminService interface {
	ListAllDeposits(ctx context.Context, filter DepositFilter) ([]*Deposit, error)
	ApproveDeposit(ctx context.Context, depositID int64) (*Deposit, error)
	RejectDeposit(ctx context.Context, depositID int64, reason string) (*Deposit, error)
}

// CatalogService определяет методы работы с каталогом услуг
type CatalogService interface {
	Catalog() *Catalog
	Refresh(ctx context.Context) error
}
