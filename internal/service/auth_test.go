package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/avc/engagement-storefront/internal/domain"
	domainmocks "github.com/avc/engagement-storefront/internal/domain/mocks"
	"github.com/avc/engagement-storefront/internal/utils/jwt"
	"github.com/avc/engagement-storefront/internal/utils/password"
	passwordmocks "github.com/avc/engagement-storefront/internal/utils/password/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func adminEmails(emails ...string) func(string) bool {
	return func(email string) bool {
		for _, e := range emails {
			if e == email {
				return true
			}
		}
		return false
	}
}

func TestAuthService_Register(t *testing.T) {
	mockAccountRepo := domainmocks.NewAccountRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockAccountRepo, mockHasher, jwtManager, adminEmails("admin@example.com"))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		email := "buyer@example.com"
		pwd := "password123"
		passwordHash := "hashed_password"
		account := &domain.Account{ID: 1, Email: email, PasswordHash: passwordHash}

		mockHasher.EXPECT().Hash(pwd).Return(passwordHash, nil).Once()
		mockAccountRepo.EXPECT().CreateAccount(mock.Anything, email, passwordHash, false).Return(account, nil).Once()

		token, err := svc.Register(ctx, email, pwd)
		require.NoError(t, err)

		claims, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.AccountID)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("Admin email", func(t *testing.T) {
		email := "admin@example.com"
		account := &domain.Account{ID: 2, Email: email, PasswordHash: "hash", IsAdmin: true}

		mockHasher.EXPECT().Hash("password123").Return("hash", nil).Once()
		mockAccountRepo.EXPECT().CreateAccount(mock.Anything, email, "hash", true).Return(account, nil).Once()

		token, err := svc.Register(ctx, email, "password123")
		require.NoError(t, err)

		claims, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("Empty email", func(t *testing.T) {
		token, err := svc.Register(ctx, "  ", "password")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, token)
	})

	t.Run("Empty password", func(t *testing.T) {
		token, err := svc.Register(ctx, "buyer@example.com", "")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, token)
	})

	t.Run("Weak password", func(t *testing.T) {
		mockHasher.EXPECT().Hash("short").Return("", password.ErrWeak).Once()

		token, err := svc.Register(ctx, "buyer@example.com", "short")
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, token)
	})

	t.Run("Hash password error", func(t *testing.T) {
		mockHasher.EXPECT().Hash("password123").Return("", errors.New("hash error")).Once()

		token, err := svc.Register(ctx, "buyer@example.com", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidInput)
		assert.Empty(t, token)
	})

	t.Run("Account already exists", func(t *testing.T) {
		mockHasher.EXPECT().Hash("password123").Return("hash", nil).Once()
		mockAccountRepo.EXPECT().CreateAccount(mock.Anything, "taken@example.com", "hash", false).Return(nil, domain.ErrAccountExists).Once()

		token, err := svc.Register(ctx, "taken@example.com", "password123")
		assert.ErrorIs(t, err, domain.ErrAccountExists)
		assert.Empty(t, token)
	})

	t.Run("Database error", func(t *testing.T) {
		mockHasher.EXPECT().Hash("password123").Return("hash", nil).Once()
		mockAccountRepo.EXPECT().CreateAccount(mock.Anything, "buyer@example.com", "hash", false).Return(nil, errors.New("db error")).Once()

		token, err := svc.Register(ctx, "buyer@example.com", "password123")
		assert.Error(t, err)
		assert.Empty(t, token)
	})
}

func TestAuthService_Login(t *testing.T) {
	mockAccountRepo := domainmocks.NewAccountRepositoryMock(t)
	mockHasher := passwordmocks.NewHasherMock(t)
	jwtManager := jwt.NewManager("test-secret", time.Hour)
	svc := NewAuthService(mockAccountRepo, mockHasher, jwtManager, adminEmails("promoted@example.com"))
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		account := &domain.Account{ID: 1, Email: "buyer@example.com", PasswordHash: "hash"}

		mockAccountRepo.EXPECT().GetAccountByEmail(mock.Anything, "buyer@example.com").Return(account, nil).Once()
		mockHasher.EXPECT().Check("hash", "password123").Return(nil).Once()

		token, err := svc.Login(ctx, "buyer@example.com", "password123")
		require.NoError(t, err)
		assert.NotEmpty(t, token)
	})

	t.Run("Admin promoted after registration", func(t *testing.T) {
		account := &domain.Account{ID: 3, Email: "promoted@example.com", PasswordHash: "hash"}

		mockAccountRepo.EXPECT().GetAccountByEmail(mock.Anything, "promoted@example.com").Return(account, nil).Once()
		mockHasher.EXPECT().Check("hash", "password123").Return(nil).Once()

		token, err := svc.Login(ctx, "promoted@example.com", "password123")
		require.NoError(t, err)

		claims, err := jwtManager.Validate(token)
		require.NoError(t, err)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("Empty email", func(t *testing.T) {
		token, err := svc.Login(ctx, "", "password")
		assert.Error(t, err)
		assert.Empty(t, token)
	})

	t.Run("Account not found", func(t *testing.T) {
		mockAccountRepo.EXPECT().GetAccountByEmail(mock.Anything, "ghost@example.com").Return(nil, domain.ErrAccountNotFound).Once()

		token, err := svc.Login(ctx, "ghost@example.com", "password123")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		account := &domain.Account{ID: 1, Email: "buyer@example.com", PasswordHash: "hash"}

		mockAccountRepo.EXPECT().GetAccountByEmail(mock.Anything, "buyer@example.com").Return(account, nil).Once()
		mockHasher.EXPECT().Check("hash", "wrong").Return(password.ErrMismatch).Once()

		token, err := svc.Login(ctx, "buyer@example.com", "wrong")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("Database error", func(t *testing.T) {
		mockAccountRepo.EXPECT().GetAccountByEmail(mock.Anything, "buyer@example.com").Return(nil, errors.New("db error")).Once()

		token, err := svc.Login(ctx, "buyer@example.com", "password123")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, domain.ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}
