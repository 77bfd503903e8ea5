package postgres

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// DepositRepository реализует domain.DepositRepository
type DepositRepository struct {
	db DBTX
}

// NewDepositRepository создает новый DepositRepository
func NewDepositRepository(db DBTX) *DepositRepository {
	return &DepositRepository{db: db}
}

var depositColumns = []string{
	"id", "account_id", "amount", "bonus", "method", "status", "external_ref", "note", "created_at", "completed_at",
}

const depositSelect = `SELECT id, account_id, amount, bonus, method, status, external_ref, note, created_at, completed_at
	FROM deposits`

// CreateDeposit создает пополнение в статусе PENDING
func (r *DepositRepository) CreateDeposit(ctx context.Context, deposit *domain.Deposit) (*domain.Deposit, error) {
	created := *deposit
	created.Status = domain.DepositStatusPending
	created.Bonus = decimal.Zero

	err := r.db.QueryRow(ctx,
		`INSERT INTO deposits (account_id, amount, method, status, external_ref, note)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id, created_at`,
		created.AccountID, created.Amount, created.Method, created.Status, created.ExternalRef, created.Note,
	).Scan(&created.ID, &created.CreatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, domain.ErrDuplicateDeposit
		}
		return nil, fmt.Errorf("repository: failed to create deposit %q: %w", deposit.ExternalRef, err)
	}

	return &created, nil
}

// GetDeposit получает пополнение по ID
func (r *DepositRepository) GetDeposit(ctx context.Context, id int64) (*domain.Deposit, error) {
	deposit, err := scanDeposit(r.db.QueryRow(ctx, depositSelect+` WHERE id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDepositNotFound
		}
		return nil, fmt.Errorf("repository: failed to get deposit %d: %w", id, err)
	}

	return deposit, nil
}

// GetDepositByRef получает пополнение по внешней ссылке платежа
func (r *DepositRepository) GetDepositByRef(ctx context.Context, method domain.DepositMethod, ref string) (*domain.Deposit, error) {
	deposit, err := scanDeposit(r.db.QueryRow(ctx,
		depositSelect+` WHERE method = $1 AND external_ref = $2`, method, ref))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDepositNotFound
		}
		return nil, fmt.Errorf("repository: failed to get deposit by ref %q: %w", ref, err)
	}

	return deposit, nil
}

// ListDeposits возвращает пополнения по фильтру, новые первыми
func (r *DepositRepository) ListDeposits(ctx context.Context, filter domain.DepositFilter) ([]*domain.Deposit, error) {
	query := psql.Select(depositColumns...).From("deposits").OrderBy("created_at DESC")

	if filter.AccountID != nil {
		query = query.Where(sq.Eq{"account_id": *filter.AccountID})
	}
	if filter.Status != "" {
		query = query.Where(sq.Eq{"status": string(filter.Status)})
	}

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, fmt.Errorf("repository: failed to build deposits query: %w", err)
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to list deposits: %w", err)
	}
	defer rows.Close()

	var deposits []*domain.Deposit
	for rows.Next() {
		deposit, err := scanDeposit(rows)
		if err != nil {
			return nil, fmt.Errorf("repository: failed to scan deposit: %w", err)
		}
		deposits = append(deposits, deposit)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repository: error iterating deposits: %w", err)
	}

	return deposits, nil
}

// CompleteDeposit зачисляет пополнение и бонус за первое пополнение аккаунта
func (r *DepositRepository) CompleteDeposit(ctx context.Context, id int64, bonusRate decimal.Decimal) (*domain.Deposit, bool, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, false, fmt.Errorf("repository: failed to begin transaction for deposit %d: %w", id, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	deposit, err := lockDeposit(ctx, tx, id)
	if err != nil {
		return nil, false, err
	}

	switch deposit.Status {
	case domain.DepositStatusCompleted:
		return deposit, false, nil
	case domain.DepositStatusRejected:
		return nil, false, domain.ErrDepositFinalized
	}

	// Бонус зависит от других пополнений аккаунта, поэтому подсчет идет под блокировкой аккаунта
	if err := lockAccount(ctx, tx, deposit.AccountID); err != nil {
		return nil, false, err
	}

	var completedBefore int
	if err := tx.QueryRow(ctx,
		`SELECT COUNT(*) FROM deposits WHERE account_id = $1 AND status = $2`,
		deposit.AccountID, domain.DepositStatusCompleted,
	).Scan(&completedBefore); err != nil {
		return nil, false, fmt.Errorf("repository: failed to count deposits for account %d: %w", deposit.AccountID, err)
	}

	if _, err := applyBalanceChange(ctx, tx, deposit.AccountID, deposit.Amount, domain.EntryMeta{
		Type:      domain.LedgerEntryDeposit,
		DepositID: &deposit.ID,
		Note:      string(deposit.Method) + " " + deposit.ExternalRef,
	}); err != nil {
		return nil, false, err
	}

	bonus := decimal.Zero
	if completedBefore == 0 && bonusRate.IsPositive() {
		bonus = deposit.Amount.Mul(bonusRate).Round(2)
	}
	if bonus.IsPositive() {
		if _, err := applyBalanceChange(ctx, tx, deposit.AccountID, bonus, domain.EntryMeta{
			Type:      domain.LedgerEntryBonus,
			DepositID: &deposit.ID,
			Note:      "first deposit bonus",
		}); err != nil {
			return nil, false, err
		}
	}

	err = tx.QueryRow(ctx,
		`UPDATE deposits SET status = $1, bonus = $2, completed_at = NOW()
		 WHERE id = $3
		 RETURNING completed_at`,
		domain.DepositStatusCompleted, bonus, id,
	).Scan(&deposit.CompletedAt)
	if err != nil {
		return nil, false, fmt.Errorf("repository: failed to complete deposit %d: %w", id, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, false, fmt.Errorf("repository: failed to commit deposit: %w", err)
	}

	deposit.Status = domain.DepositStatusCompleted
	deposit.Bonus = bonus

	return deposit, true, nil
}

// RejectDeposit отклоняет ожидающее пополнение
func (r *DepositRepository) RejectDeposit(ctx context.Context, id int64, reason string) (*domain.Deposit, error) {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("repository: failed to begin transaction for deposit %d: %w", id, err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // Rollback после Commit безопасен

	deposit, err := lockDeposit(ctx, tx, id)
	if err != nil {
		return nil, err
	}

	switch deposit.Status {
	case domain.DepositStatusRejected:
		return deposit, nil
	case domain.DepositStatusCompleted:
		return nil, domain.ErrDepositFinalized
	}

	if _, err := tx.Exec(ctx,
		`UPDATE deposits SET status = $1, note = $2 WHERE id = $3`,
		domain.DepositStatusRejected, reason, id,
	); err != nil {
		return nil, fmt.Errorf("repository: failed to reject deposit %d: %w", id, err)
	}

	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("repository: failed to commit deposit rejection: %w", err)
	}

	deposit.Status = domain.DepositStatusRejected
	deposit.Note = reason

	return deposit, nil
}

func lockDeposit(ctx context.Context, q DBTX, id int64) (*domain.Deposit, error) {
	deposit, err := scanDeposit(q.QueryRow(ctx, depositSelect+` WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrDepositNotFound
		}
		return nil, fmt.Errorf("repository: failed to lock deposit %d: %w", id, err)
	}
	return deposit, nil
}

func scanDeposit(row pgx.Row) (*domain.Deposit, error) {
	d := &domain.Deposit{}
	err := row.Scan(&d.ID, &d.AccountID, &d.Amount, &d.Bonus, &d.Method, &d.Status, &d.ExternalRef, &d.Note, &d.CreatedAt, &d.CompletedAt)
	if err != nil {
		return nil, err
	}
	return d, nil
}
