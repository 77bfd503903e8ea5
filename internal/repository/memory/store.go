// Package memory содержит хранилище в памяти процесса.
// Используется, когда DATABASE_URI не задан, и в тестах сервисов.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

type depositKey struct {
	method domain.DepositMethod
	ref    string
}

// Store реализует все репозитории поверх map под одним мьютексом.
// Каждая операция атомарна целиком, поэтому резерв, списание и журнал
// всегда согласованы между собой.
type Store struct {
	mu sync.Mutex

	accounts       map[int64]*domain.Account
	accountByEmail map[string]int64
	orders         map[string]*domain.Order
	orderByRef     map[string]string
	deposits       map[int64]*domain.Deposit
	depositByRef   map[depositKey]int64
	entries        []*domain.LedgerEntry

	nextAccountID int64
	nextDepositID int64
	nextEntryID   int64

	now func() time.Time
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{
		accounts:       make(map[int64]*domain.Account),
		accountByEmail: make(map[string]int64),
		orders:         make(map[string]*domain.Order),
		orderByRef:     make(map[string]string),
		deposits:       make(map[int64]*domain.Deposit),
		depositByRef:   make(map[depositKey]int64),
		now:            time.Now,
	}
}

// SetClock подменяет источник времени
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

// CreateAccount создает аккаунт с нулевым балансом
func (s *Store) CreateAccount(_ context.Context, email, passwordHash string, isAdmin bool) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := strings.ToLower(email)
	if _, ok := s.accountByEmail[key]; ok {
		return nil, domain.ErrAccountExists
	}

	s.nextAccountID++
	account := &domain.Account{
		ID:           s.nextAccountID,
		Email:        email,
		PasswordHash: passwordHash,
		Balance:      decimal.Zero,
		IsAdmin:      isAdmin,
		CreatedAt:    s.now(),
	}
	s.accounts[account.ID] = account
	s.accountByEmail[key] = account.ID

	copied := *account
	return &copied, nil
}

// GetAccountByEmail получает аккаунт по email
func (s *Store) GetAccountByEmail(_ context.Context, email string) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.accountByEmail[strings.ToLower(email)]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	copied := *s.accounts[id]
	return &copied, nil
}

// GetAccountByID получает аккаунт по ID
func (s *Store) GetAccountByID(_ context.Context, id int64) (*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	copied := *account
	return &copied, nil
}

// ListAccounts возвращает все аккаунты по возрастанию ID
func (s *Store) ListAccounts(_ context.Context) ([]*domain.Account, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]*domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		copied := *a
		accounts = append(accounts, &copied)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

// Credit зачисляет сумму на счет
func (s *Store) Credit(_ context.Context, accountID int64, amount decimal.Decimal, meta domain.EntryMeta) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.applyBalanceChange(accountID, amount, meta)
}

// Debit списывает сумму, если она не превышает доступный остаток
func (s *Store) Debit(_ context.Context, accountID int64, amount decimal.Decimal, meta domain.EntryMeta) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	available, err := s.available(accountID)
	if err != nil {
		return decimal.Zero, err
	}
	if available.LessThan(amount) {
		return decimal.Zero, domain.ErrInsufficientFunds
	}

	return s.applyBalanceChange(accountID, amount.Neg(), meta)
}

// GetBalance возвращает баланс с учетом резерва
func (s *Store) GetBalance(_ context.Context, accountID int64) (*domain.Balance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	account, ok := s.accounts[accountID]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}

	held := s.held(accountID)
	return &domain.Balance{
		Current:   account.Balance,
		Held:      held,
		Available: account.Balance.Sub(held),
	}, nil
}

// ListEntries возвращает журнал операций, новые первыми
func (s *Store) ListEntries(_ context.Context, accountID int64) ([]*domain.LedgerEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var entries []*domain.LedgerEntry
	for i := len(s.entries) - 1; i >= 0; i-- {
		if s.entries[i].AccountID == accountID {
			copied := *s.entries[i]
			entries = append(entries, &copied)
		}
	}
	return entries, nil
}

// held - сумма цен заказов в PENDING_PAYMENT. Вызывается под мьютексом.
func (s *Store) held(accountID int64) decimal.Decimal {
	held := decimal.Zero
	for _, o := range s.orders {
		if o.AccountID == accountID && o.Status == domain.OrderStatusPendingPayment {
			held = held.Add(o.Price)
		}
	}
	return held
}

func (s *Store) available(accountID int64) (decimal.Decimal, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	return account.Balance.Sub(s.held(accountID)), nil
}

func (s *Store) applyBalanceChange(accountID int64, delta decimal.Decimal, meta domain.EntryMeta) (decimal.Decimal, error) {
	account, ok := s.accounts[accountID]
	if !ok {
		return decimal.Zero, domain.ErrAccountNotFound
	}
	if account.Balance.Add(delta).IsNegative() {
		return decimal.Zero, domain.ErrInsufficientFunds
	}

	account.Balance = account.Balance.Add(delta)

	s.nextEntryID++
	entry := &domain.LedgerEntry{
		ID:           s.nextEntryID,
		AccountID:    accountID,
		Amount:       delta,
		Type:         meta.Type,
		Note:         meta.Note,
		BalanceAfter: account.Balance,
		CreatedAt:    s.now(),
	}
	if meta.OrderID != nil {
		orderID := *meta.OrderID
		entry.OrderID = &orderID
	}
	if meta.DepositID != nil {
		depositID := *meta.DepositID
		entry.DepositID = &depositID
	}
	s.entries = append(s.entries, entry)

	return account.Balance, nil
}
