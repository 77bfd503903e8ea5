package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// LedgerRepository реализует domain.LedgerRepository.
// Баланс хранится в accounts.balance, каждое изменение пишется в ledger_entries.
type LedgerRepository struct {
	db DBTX
}

// NewLedgerRepository создает новый LedgerRepository
func NewLedgerRepository(db DBTX) *LedgerRepository {
	return &LedgerRepository{db: db}
}

// Credit зачисляет сумму на счет
func (r *LedgerRepository) Credit(ctx context.Context, accountID int64, amount decimal.Decimal, meta domain.EntryMeta) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to begin transaction for account %d: %w", accountID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	newBalance, err := applyBalanceChange(ctx, tx, accountID, amount, meta)
	if err != nil {
		return decimal.Zero, err
	}

	if err = tx.Commit(ctx); err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to commit credit: %w", err)
	}

	return newBalance, nil
}

// Debit списывает сумму со счета, если она не превышает доступный остаток
func (r *LedgerRepository) Debit(ctx context.Context, accountID int64, amount decimal.Decimal, meta domain.EntryMeta) (decimal.Decimal, error) {
	if !amount.IsPositive() {
		return decimal.Zero, domain.ErrInvalidAmount
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to begin transaction for account %d: %w", accountID, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	available, err := lockAvailable(ctx, tx, accountID)
	if err != nil {
		return decimal.Zero, err
	}

	if available.LessThan(amount) {
		return decimal.Zero, domain.ErrInsufficientFunds
	}

	newBalance, err := applyBalanceChange(ctx, tx, accountID, amount.Neg(), meta)
	if err != nil {
		return decimal.Zero, err
	}

	if err = tx.Commit(ctx); err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to commit debit: %w", err)
	}

	return newBalance, nil
}

// GetBalance возвращает баланс с учетом резерва под неподтвержденные заказы
func (r *LedgerRepository) GetBalance(ctx context.Context, accountID int64) (*domain.Balance, error) {
	balance := &domain.Balance{}

	err := r.db.QueryRow(ctx,
		`SELECT a.balance,
		        COALESCE((SELECT SUM(o.price) FROM orders o WHERE o.account_id = a.id AND o.status = $2), 0)
		 FROM accounts a
		 WHERE a.id = $1`,
		accountID, domain.OrderStatusPendingPayment,
	).Scan(&balance.Current, &balance.Held)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("repository: failed to get balance for account %d: %w", accountID, err)
	}

	balance.Available = balance.Current.Sub(balance.Held)

	return balance, nil
}

// ListEntries возвращает историю операций, новые первыми
func (r *LedgerRepository) ListEntries(ctx context.Context, accountID int64) ([]*domain.LedgerEntry, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, account_id, amount, type, order_id, deposit_id, note, balance_after, created_at
		 FROM ledger_entries
		 WHERE account_id = $1
		 ORDER BY id DESC`,
		accountID,
	)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to get ledger for account %d: %w", accountID, err)
	}
	defer rows.Close()

	var entries []*domain.LedgerEntry
	for rows.Next() {
		e := &domain.LedgerEntry{}
		err := rows.Scan(&e.ID, &e.AccountID, &e.Amount, &e.Type, &e.OrderID, &e.DepositID, &e.Note, &e.BalanceAfter, &e.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan ledger entry: %w", err)
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating ledger entries: %w", err)
	}

	return entries, nil
}

// lockAccount блокирует строку аккаунта до конца транзакции
func lockAccount(ctx context.Context, q DBTX, accountID int64) error {
	var one int
	err := q.QueryRow(ctx, `SELECT 1 FROM accounts WHERE id = $1 FOR UPDATE`, accountID).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrAccountNotFound
		}
		return fmt.Errorf("repository: failed to lock account %d: %w", accountID, err)
	}
	return nil
}

// lockAvailable блокирует строку аккаунта и возвращает баланс за вычетом резерва
func lockAvailable(ctx context.Context, q DBTX, accountID int64) (decimal.Decimal, error) {
	var balance decimal.Decimal
	err := q.QueryRow(ctx, `SELECT balance FROM accounts WHERE id = $1 FOR UPDATE`, accountID).Scan(&balance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("repository: failed to lock account %d: %w", accountID, err)
	}

	var held decimal.Decimal
	err = q.QueryRow(ctx,
		`SELECT COALESCE(SUM(price), 0) FROM orders WHERE account_id = $1 AND status = $2`,
		accountID, domain.OrderStatusPendingPayment,
	).Scan(&held)
	if err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to get held funds for account %d: %w", accountID, err)
	}

	return balance.Sub(held), nil
}

// applyBalanceChange меняет баланс и пишет операцию в журнал внутри транзакции
func applyBalanceChange(ctx context.Context, q DBTX, accountID int64, delta decimal.Decimal, meta domain.EntryMeta) (decimal.Decimal, error) {
	var newBalance decimal.Decimal
	err := q.QueryRow(ctx,
		`UPDATE accounts SET balance = balance + $1 WHERE id = $2 RETURNING balance`,
		delta, accountID,
	).Scan(&newBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, domain.ErrAccountNotFound
		}
		return decimal.Zero, fmt.Errorf("repository: failed to update balance for account %d: %w", accountID, err)
	}

	_, err = q.Exec(ctx,
		`INSERT INTO ledger_entries (account_id, amount, type, order_id, deposit_id, note, balance_after)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		accountID, delta, meta.Type, meta.OrderID, meta.DepositID, meta.Note, newBalance,
	)
	if err != nil {
		return decimal.Zero, fmt.Errorf("repository: failed to write %s entry for account %d: %w", meta.Type, accountID, err)
	}

	return newBalance, nil
}
