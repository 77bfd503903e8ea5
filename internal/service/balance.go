package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/shopspring/decimal"
)

// BalanceService предоставляет операции с балансом
type BalanceService struct {
	ledgerRepo  domain.LedgerRepository
	accountRepo domain.AccountRepository
}

// NewBalanceService создает новый BalanceService
func NewBalanceService(ledgerRepo domain.LedgerRepository, accountRepo domain.AccountRepository) *BalanceService {
	return &BalanceService{
		ledgerRepo:  ledgerRepo,
		accountRepo: accountRepo,
	}
}

// GetBalance получает баланс аккаунта
func (s *BalanceService) GetBalance(ctx context.Context, accountID int64) (*domain.Balance, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("balance service: failed to get balance for account %d: %w", accountID, err)
	}

	return balance, nil
}

// ListEntries получает журнал операций аккаунта
func (s *BalanceService) ListEntries(ctx context.Context, accountID int64) ([]*domain.LedgerEntry, error) {
	entries, err := s.ledgerRepo.ListEntries(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("balance service: failed to list entries for account %d: %w", accountID, err)
	}

	return entries, nil
}

// ListAccounts возвращает все аккаунты
func (s *BalanceService) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("balance service: failed to list accounts: %w", err)
	}

	return accounts, nil
}

// Adjust зачисляет положительную сумму или списывает отрицательную.
// Списание не может опустить доступный остаток ниже нуля.
func (s *BalanceService) Adjust(ctx context.Context, accountID int64, amount decimal.Decimal, note string) (decimal.Decimal, error) {
	if amount.IsZero() || !amount.Equal(amount.Round(2)) {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	meta := domain.EntryMeta{
		Type: domain.LedgerEntryAdjustment,
		Note: note,
	}

	var (
		balance decimal.Decimal
		err     error
	)
	if amount.IsPositive() {
		balance, err = s.ledgerRepo.Credit(ctx, accountID, amount, meta)
	} else {
		balance, err = s.ledgerRepo.Debit(ctx, accountID, amount.Neg(), meta)
	}
	if err != nil {
		// Не оборачиваем sentinel errors
		if errors.Is(err, domain.ErrInsufficientFunds) ||
			errors.Is(err, domain.ErrAccountNotFound) ||
			errors.Is(err, domain.ErrInvalidAmount) {
			return decimal.Zero, err
		}
		return decimal.Zero, fmt.Errorf("balance service: failed to adjust account %d by %s: %w", accountID, amount, err)
	}

	return balance, nil
}
