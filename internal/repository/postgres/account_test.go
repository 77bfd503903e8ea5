package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/engagement-storefront/internal/domain"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var accountRowColumns = []string{"id", "email", "password_hash", "balance", "is_admin", "created_at"}

func TestAccountRepository_CreateAccount(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(`INSERT INTO accounts`).
			WithArgs("buyer@example.com", "hash", false).
			WillReturnRows(pgxmock.NewRows(accountRowColumns).
				AddRow(int64(1), "buyer@example.com", "hash", "0", false, now))

		account, err := repo.CreateAccount(ctx, "buyer@example.com", "hash", false)
		require.NoError(t, err)
		assert.Equal(t, int64(1), account.ID)
		assert.Equal(t, "buyer@example.com", account.Email)
		assert.True(t, account.Balance.IsZero())
		assert.False(t, account.IsAdmin)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Email already taken", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO accounts`).
			WithArgs("buyer@example.com", "hash", false).
			WillReturnError(&pgconn.PgError{Code: pgerrcode.UniqueViolation})

		account, err := repo.CreateAccount(ctx, "buyer@example.com", "hash", false)
		assert.ErrorIs(t, err, domain.ErrAccountExists)
		assert.Nil(t, account)

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		mock.ExpectQuery(`INSERT INTO accounts`).
			WillReturnError(errors.New("database error"))

		_, err := repo.CreateAccount(ctx, "buyer@example.com", "hash", false)
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrAccountExists)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_GetAccountByEmail(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepository(mock)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectQuery(`FROM accounts WHERE email = \$1`).
			WithArgs("admin@example.com").
			WillReturnRows(pgxmock.NewRows(accountRowColumns).
				AddRow(int64(2), "admin@example.com", "hash", "15.25", true, time.Now()))

		account, err := repo.GetAccountByEmail(ctx, "admin@example.com")
		require.NoError(t, err)
		assert.True(t, account.IsAdmin)
		assert.Equal(t, "15.25", account.Balance.StringFixed(2))

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		mock.ExpectQuery(`FROM accounts WHERE email = \$1`).
			WithArgs("ghost@example.com").
			WillReturnError(pgx.ErrNoRows)

		_, err := repo.GetAccountByEmail(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, domain.ErrAccountNotFound)

		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestAccountRepository_ListAccounts(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewAccountRepository(mock)

	mock.ExpectQuery(`FROM accounts ORDER BY id`).
		WillReturnRows(pgxmock.NewRows(accountRowColumns).
			AddRow(int64(1), "a@example.com", "hash", "1.00", false, time.Now()).
			AddRow(int64(2), "b@example.com", "hash", "2.00", true, time.Now()))

	accounts, err := repo.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "b@example.com", accounts[1].Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}
