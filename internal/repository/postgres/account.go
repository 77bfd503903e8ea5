package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
)

// AccountRepository реализует domain.AccountRepository
type AccountRepository struct {
	db DBTX
}

// NewAccountRepository создает новый AccountRepository
func NewAccountRepository(db DBTX) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, email, password_hash, balance, is_admin, created_at`

// CreateAccount создает аккаунт с нулевым балансом
func (r *AccountRepository) CreateAccount(ctx context.Context, email, passwordHash string, isAdmin bool) (*domain.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx,
		`INSERT INTO accounts (email, password_hash, is_admin)
		 VALUES ($1, $2, $3)
		 RETURNING `+accountColumns,
		email, passwordHash, isAdmin,
	))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("repository: failed to create account %q: %w", email, err)
	}

	return account, nil
}

// GetAccountByEmail получает аккаунт по email
func (r *AccountRepository) GetAccountByEmail(ctx context.Context, email string) (*domain.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = $1`, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("repository: failed to get account by email %q: %w", email, err)
	}

	return account, nil
}

// GetAccountByID получает аккаунт по ID
func (r *AccountRepository) GetAccountByID(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := scanAccount(r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("repository: failed to get account %d: %w", id, err)
	}

	return account, nil
}

// ListAccounts возвращает все аккаунты
func (r *AccountRepository) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	rows, err := r.db.Query(ctx, `SELECT `+accountColumns+` FROM accounts ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []*domain.Account
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating accounts: %w", err)
	}

	return accounts, nil
}

func scanAccount(row pgx.Row) (*domain.Account, error) {
	account := &domain.Account{}
	err := row.Scan(&account.ID, &account.Email, &account.PasswordHash, &account.Balance, &account.IsAdmin, &account.CreatedAt)
	if err != nil {
		return nil, err
	}
	return account, nil
}
